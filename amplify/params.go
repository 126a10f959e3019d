package amplify

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects how the target gain is obtained
type Mode int

const (
	// ModeScale applies a fixed scale factor
	ModeScale Mode = iota
	// ModeAlign matches the window RMS to the RMS of its surroundings
	ModeAlign
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeScale:
		return "scale"
	case ModeAlign:
		return "align"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "scale" or "align" (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "scale":
		return ModeScale, nil
	case "align":
		return ModeAlign, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// TransitionMode selects on which side of the window edge the blend happens
type TransitionMode int

const (
	// TransitionOutside ramps the gain down outside the window
	TransitionOutside TransitionMode = iota
	// TransitionInside ramps the gain up from the window edge inwards
	TransitionInside
)

// String returns the transition mode name
func (m TransitionMode) String() string {
	switch m {
	case TransitionOutside:
		return "outside"
	case TransitionInside:
		return "inside"
	default:
		return fmt.Sprintf("TransitionMode(%d)", int(m))
	}
}

// ParseTransitionMode parses "outside" or "inside" (case-insensitive)
func ParseTransitionMode(s string) (TransitionMode, error) {
	switch strings.ToLower(s) {
	case "outside":
		return TransitionOutside, nil
	case "inside":
		return TransitionInside, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTransition, s)
}

// Params controls one amplification request
type Params struct {
	Mode Mode

	// ScaleFactor is the gain applied in ModeScale
	ScaleFactor float32

	// Transition band width. A width <= 0 on either axis disables blending.
	TransitionTraces int
	TransitionMs     float32
	Transition       TransitionMode

	// Dilation of the window bounding box that defines the reference
	// region in ModeAlign
	AlignTraces int
	AlignMs     float32
}

// DefaultParams returns a unity scale with a hard edge
func DefaultParams() Params {
	return Params{
		Mode:        ModeScale,
		ScaleFactor: 1,
		Transition:  TransitionOutside,
	}
}

// Validate checks if the parameters are valid
func (p Params) Validate() error {
	switch p.Mode {
	case ModeScale:
		f := float64(p.ScaleFactor)
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidScaleFactor, p.ScaleFactor)
		}
	case ModeAlign:
		if p.AlignTraces < 0 || !(p.AlignMs >= 0) {
			return fmt.Errorf("%w: %d traces, %v ms", ErrInvalidAlignWidth, p.AlignTraces, p.AlignMs)
		}
	default:
		return fmt.Errorf("%w: %v", ErrInvalidMode, p.Mode)
	}
	if p.Transition != TransitionOutside && p.Transition != TransitionInside {
		return fmt.Errorf("%w: %v", ErrInvalidTransition, p.Transition)
	}
	if math.IsNaN(float64(p.TransitionMs)) {
		return fmt.Errorf("%w: transition width is NaN", ErrInvalidTransition)
	}
	return nil
}
