package amplify

import "errors"

// Errors returned by Amplify
var (
	ErrEmptyVolume        = errors.New("volume has no traces or no samples")
	ErrRaggedVolume       = errors.New("traces have different sample counts")
	ErrInvalidSampleRate  = errors.New("sample interval must be positive and finite")
	ErrInvalidMode        = errors.New("unknown amplification mode")
	ErrInvalidTransition  = errors.New("unknown transition mode")
	ErrInvalidScaleFactor = errors.New("scale factor must be finite and non-negative")
	ErrInvalidAlignWidth  = errors.New("align widths must be non-negative")
)
