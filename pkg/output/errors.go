package output

import "errors"

var (
	ErrNoImages        = errors.New("output: no images to compose")
	ErrInvalidLayout   = errors.New("output: images per row must be positive")
	ErrSizeMismatch    = errors.New("output: images differ in size")
	ErrUnknownEncoding = errors.New("output: unknown encoding")
)
