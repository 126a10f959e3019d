// Package window rasterizes a user selection (point, rectangle or polygon)
// into a boolean mask over the trace × sample grid of a volume.
package window

import (
	"math"
	"slices"

	"github.com/samber/lo"

	"github.com/cocosip/go-segy-amptune/grid"
)

// Point is a selection vertex: a trace index and a time in milliseconds
type Point struct {
	Trace  int
	TimeMs float32
}

// Kind identifies the selection geometry, derived from the vertex count
type Kind int

const (
	KindEmpty     Kind = iota // no vertices
	KindPoint                 // one vertex
	KindRectangle             // two opposite corners
	KindPolygon               // three or more vertices, implicitly closed
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPoint:
		return "point"
	case KindRectangle:
		return "rectangle"
	default:
		return "polygon"
	}
}

// Selection is the raw vertex list captured by the caller
type Selection []Point

// Rectangle returns a selection spanning the box with corners a and b
func Rectangle(a, b Point) Selection {
	return Selection{a, b}
}

// Kind returns the geometry of the selection
func (s Selection) Kind() Kind {
	switch len(s) {
	case 0:
		return KindEmpty
	case 1:
		return KindPoint
	case 2:
		return KindRectangle
	default:
		return KindPolygon
	}
}

// BuildMask rasterizes sel onto a grid of the given shape. dtMs is the
// sample interval in milliseconds. An empty or fully out-of-range selection
// yields an all-false mask.
func BuildMask(shape grid.Shape, sel Selection, dtMs float32) *grid.BoolMask {
	mask := grid.NewBoolMask(shape)
	if shape.Len() == 0 {
		return mask
	}

	switch sel.Kind() {
	case KindEmpty:
	case KindPoint:
		fillPoint(mask, sel[0], dtMs)
	case KindRectangle:
		fillRectangle(mask, sel[0], sel[1], dtMs)
	default:
		fillPolygon(mask, sel, dtMs)
	}
	return mask
}

// sampleIndex converts a time to a sample index, truncating toward zero
func sampleIndex(timeMs, dtMs float32) int {
	return int(timeMs / dtMs)
}

func fillPoint(mask *grid.BoolMask, p Point, dtMs float32) {
	sample := int(math.Round(float64(p.TimeMs / dtMs)))
	if mask.Contains(p.Trace, sample) {
		mask.Set(p.Trace, sample, true)
	}
}

func fillRectangle(mask *grid.BoolMask, a, b Point, dtMs float32) {
	lastTrace := mask.Traces - 1
	lastSample := mask.Samples - 1

	sa, sb := sampleIndex(a.TimeMs, dtMs), sampleIndex(b.TimeMs, dtMs)

	minTrace := lo.Clamp(min(a.Trace, b.Trace), 0, lastTrace)
	maxTrace := lo.Clamp(max(a.Trace, b.Trace), 0, lastTrace)
	minSample := lo.Clamp(min(sa, sb), 0, lastSample)
	maxSample := lo.Clamp(max(sa, sb), 0, lastSample)

	for trace := minTrace; trace <= maxTrace; trace++ {
		row := mask.Row(trace)
		for sample := minSample; sample <= maxSample; sample++ {
			row[sample] = true
		}
	}
}

// fillPolygon scans each trace column and fills between pairs of edge
// crossings (even-odd rule). Edges parallel to the time axis add no crossing.
func fillPolygon(mask *grid.BoolMask, poly Selection, dtMs float32) {
	minTrace, maxTrace := poly[0].Trace, poly[0].Trace
	for _, p := range poly {
		minTrace = min(minTrace, p.Trace)
		maxTrace = max(maxTrace, p.Trace)
	}
	// columns outside the grid cannot receive cells
	minTrace = max(minTrace, 0)
	maxTrace = min(maxTrace, mask.Traces-1)

	closed := append(slices.Clone(poly), poly[0])
	lastSample := mask.Samples - 1
	crossings := make([]float32, 0, len(closed))

	for trace := minTrace; trace <= maxTrace; trace++ {
		crossings = crossings[:0]
		x := float32(trace)

		for i := 0; i < len(closed)-1; i++ {
			x1, y1 := float32(closed[i].Trace), closed[i].TimeMs
			x2, y2 := float32(closed[i+1].Trace), closed[i+1].TimeMs
			if x1 == x2 {
				continue
			}
			t := (x - x1) / (x2 - x1)
			if t >= 0 && t <= 1 {
				crossings = append(crossings, y1+float32(t*(y2-y1)))
			}
		}

		slices.Sort(crossings)

		row := mask.Row(trace)
		for i := 0; i+1 < len(crossings); i += 2 {
			start := lo.Clamp(sampleIndex(crossings[i], dtMs), 0, lastSample)
			end := lo.Clamp(sampleIndex(crossings[i+1], dtMs), 0, lastSample)
			for sample := start; sample <= end; sample++ {
				row[sample] = true
			}
		}
	}
}
