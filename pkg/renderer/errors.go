package renderer

import "errors"

var (
	ErrNoScene          = errors.New("renderer: no scene defined")
	ErrInvalidImageSize = errors.New("renderer: invalid image size")
	ErrInvalidTileSize  = errors.New("renderer: invalid tile size")
)
