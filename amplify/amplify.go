// Package amplify adjusts amplitudes inside a selected region of a seismic
// section. The gain is either a fixed factor or the RMS ratio between the
// region and its surroundings, and it is blended into the rest of the
// section through a distance-based transition band.
//
// All functions are pure: inputs are never modified and every result is
// newly allocated.
package amplify

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cocosip/go-segy-amptune/amplify/window"
	"github.com/cocosip/go-segy-amptune/grid"
)

// silentRMS is the window RMS below which ModeAlign keeps unity gain
const silentRMS = 1e-9

// Result holds the outcome of one Amplify call. All fields share the shape
// of the input.
type Result struct {
	Output     [][]float32
	Multiplier *grid.FloatMask
	Window     *grid.BoolMask

	// Gain is the target gain before blending (1 for a no-op)
	Gain float32
}

// Amplify applies p to the region sel of traces. dtMs is the sample
// interval in milliseconds.
//
// An empty selection, or one that covers no cell, is not an error: the
// result is a copy of the input with an all-false window and a unity
// multiplier.
func Amplify(traces [][]float32, dtMs float32, sel window.Selection, p Params) (*Result, error) {
	shape := grid.ShapeOf(traces)
	if shape.Traces == 0 || shape.Samples == 0 {
		return nil, ErrEmptyVolume
	}
	for i, tr := range traces {
		if len(tr) != shape.Samples {
			return nil, fmt.Errorf("%w: trace %d has %d samples, want %d", ErrRaggedVolume, i, len(tr), shape.Samples)
		}
	}
	if !(dtMs > 0) || math.IsInf(float64(dtMs), 0) {
		return nil, fmt.Errorf("%w: %v ms", ErrInvalidSampleRate, dtMs)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	mask := window.BuildMask(shape, sel, dtMs)
	if !mask.Any() {
		logrus.WithFields(logrus.Fields{
			"function": "Amplify",
			"kind":     sel.Kind().String(),
			"points":   len(sel),
		}).Debug("selection covers no cell, returning input unchanged")
		return &Result{
			Output:     copyTraces(traces),
			Multiplier: grid.Filled(shape, 1),
			Window:     mask,
			Gain:       1,
		}, nil
	}

	blend := BuildTransitionMask(mask, p.TransitionTraces, p.TransitionMs, dtMs, p.Transition)

	gain := p.ScaleFactor
	if p.Mode == ModeAlign {
		gain = alignGain(traces, mask, p.AlignTraces, sampleMargin(p.AlignMs, dtMs, shape.Samples))
	}

	mult := grid.NewFloatMask(shape)
	out := make([][]float32, shape.Traces)
	delta := gain - 1

	forEachTraceChunk(shape.Traces, func(start, end int) {
		for tr := start; tr < end; tr++ {
			w := blend.Row(tr)
			m := mult.Row(tr)
			in := traces[tr]
			o := make([]float32, shape.Samples)
			for s := range o {
				m[s] = 1 + float32(w[s]*delta)
				o[s] = in[s] * m[s]
			}
			out[tr] = o
		}
	})

	logrus.WithFields(logrus.Fields{
		"function":   "Amplify",
		"mode":       p.Mode.String(),
		"transition": p.Transition.String(),
		"gain":       gain,
		"cells":      mask.Count(),
	}).Debug("amplified window")

	return &Result{Output: out, Multiplier: mult, Window: mask, Gain: gain}, nil
}

// alignGain returns the ratio of the surrounding RMS to the window RMS.
// The surrounding region is the window bounding box dilated by dTraces and
// dSamples, minus the window itself.
func alignGain(traces [][]float32, mask *grid.BoolMask, dTraces, dSamples int) float32 {
	rmsIn := RMS(traces, mask)

	box, _ := Bounds(mask)
	ring := surrounding(mask, box.Dilate(dTraces, dSamples, mask.Shape))

	rmsOut := rmsIn
	if ring.Any() {
		rmsOut = RMS(traces, ring)
	}

	gain := float32(1)
	if rmsIn > silentRMS {
		gain = rmsOut / rmsIn
	}

	logrus.WithFields(logrus.Fields{
		"function": "alignGain",
		"rms_in":   rmsIn,
		"rms_out":  rmsOut,
		"box":      fmt.Sprintf("%+v", box),
	}).Debug("computed align gain")
	return gain
}

func copyTraces(traces [][]float32) [][]float32 {
	out := make([][]float32, len(traces))
	for i, tr := range traces {
		out[i] = append([]float32(nil), tr...)
	}
	return out
}
