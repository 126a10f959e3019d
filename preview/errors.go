package preview

import "errors"

// Errors returned by the renderer
var (
	ErrEmpty         = errors.New("nothing to render")
	ErrInvalidSize   = errors.New("output size must be non-negative")
	ErrUnknownFormat = errors.New("unknown image format")
)
