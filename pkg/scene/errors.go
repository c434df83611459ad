package scene

import "errors"

var (
	ErrNoSamples       = errors.New("scene: sample count must be at least 1")
	ErrInvalidSampling = errors.New("scene: invalid sampling parameter")
	ErrInvalidSphere   = errors.New("scene: invalid sphere")
	ErrInvalidPlane    = errors.New("scene: invalid checkerboard")
	ErrInvalidLight    = errors.New("scene: invalid light")
	ErrUnknownScene    = errors.New("scene: unknown scene")
)
