package amplify

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/cocosip/go-segy-amptune/grid"
)

// RMS returns the root mean square of the samples selected by mask, or 0 when
// the mask selects nothing. traces must match the mask shape.
func RMS(traces [][]float32, mask *grid.BoolMask) float32 {
	sq := make([]float64, 0, mask.Count())
	for tr := 0; tr < mask.Traces; tr++ {
		row := mask.Row(tr)
		for s, in := range row {
			if in {
				v := traces[tr][s]
				sq = append(sq, float64(v*v))
			}
		}
	}
	if len(sq) == 0 {
		return 0
	}
	return float32(math.Sqrt(stat.Mean(sq, nil)))
}

// Box is an inclusive trace × sample rectangle
type Box struct {
	MinTrace, MaxTrace   int
	MinSample, MaxSample int
}

// Bounds returns the bounding box of the true cells of mask.
// ok is false when the mask is empty.
func Bounds(mask *grid.BoolMask) (box Box, ok bool) {
	box = Box{MinTrace: mask.Traces, MinSample: mask.Samples, MaxTrace: -1, MaxSample: -1}
	for tr := 0; tr < mask.Traces; tr++ {
		for s, in := range mask.Row(tr) {
			if !in {
				continue
			}
			box.MinTrace = min(box.MinTrace, tr)
			box.MaxTrace = max(box.MaxTrace, tr)
			box.MinSample = min(box.MinSample, s)
			box.MaxSample = max(box.MaxSample, s)
		}
	}
	return box, box.MaxTrace >= 0
}

// Dilate grows the box by dTraces and dSamples on each side and clamps it to
// shape. Margins beyond the shape size reach the edge of the grid.
func (b Box) Dilate(dTraces, dSamples int, shape grid.Shape) Box {
	dTraces = lo.Clamp(dTraces, 0, shape.Traces)
	dSamples = lo.Clamp(dSamples, 0, shape.Samples)
	return Box{
		MinTrace:  max(b.MinTrace-dTraces, 0),
		MaxTrace:  min(b.MaxTrace+dTraces, shape.Traces-1),
		MinSample: max(b.MinSample-dSamples, 0),
		MaxSample: min(b.MaxSample+dSamples, shape.Samples-1),
	}
}

// surrounding returns the cells of box that are not in window
func surrounding(window *grid.BoolMask, box Box) *grid.BoolMask {
	out := grid.NewBoolMask(window.Shape)
	for tr := box.MinTrace; tr <= box.MaxTrace; tr++ {
		in := window.Row(tr)
		row := out.Row(tr)
		for s := box.MinSample; s <= box.MaxSample; s++ {
			row[s] = !in[s]
		}
	}
	return out
}

// sampleMargin converts a time margin to whole samples, truncating and
// capping it at the sample count
func sampleMargin(ms, dtMs float32, samples int) int {
	n := float64(ms / dtMs)
	if !(n < float64(samples)) {
		return samples
	}
	return max(int(n), 0)
}
