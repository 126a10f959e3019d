// Package edt implements an anisotropic two-pass chamfer distance transform.
//
// For every cell of a boolean mask the transform returns an approximate
// distance to the nearest background (false) cell, where one step along the
// trace axis costs traceUnit and one step along the sample axis costs
// timeUnit. Diagonal steps cost sqrt(traceUnit² + timeUnit²). The result is a
// chamfer approximation of the Euclidean distance: exact along the axes, and
// an overestimate for some oblique configurations.
package edt

import (
	"math"

	"github.com/cocosip/go-segy-amptune/grid"
)

// Transform computes the distance field of mask. Background cells are 0.
// Foreground cells with no reachable background stay +Inf.
func Transform(mask *grid.BoolMask, traceUnit, timeUnit float32) *grid.FloatMask {
	dist := grid.NewFloatMask(mask.Shape)
	if mask.Shape.Len() == 0 {
		return dist
	}

	inf := float32(math.Inf(1))
	for i, v := range mask.Data {
		if v {
			dist.Data[i] = inf
		}
	}

	diag := diagonal(traceUnit, timeUnit)
	forward(dist, mask, traceUnit, timeUnit, diag)
	backward(dist, mask, traceUnit, timeUnit, diag)
	return dist
}

func diagonal(traceUnit, timeUnit float32) float32 {
	sq := float32(traceUnit*traceUnit) + float32(timeUnit*timeUnit)
	return float32(math.Sqrt(float64(sq)))
}

// forward sweeps ascending traces and samples using the previous neighbors
func forward(dist *grid.FloatMask, mask *grid.BoolMask, traceUnit, timeUnit, diag float32) {
	ns := dist.Samples
	d := dist.Data
	for i := 0; i < dist.Traces; i++ {
		row := i * ns
		prev := row - ns
		for j := 0; j < ns; j++ {
			if !mask.Data[row+j] {
				continue
			}
			best := d[row+j]
			if i > 0 {
				best = min(best, d[prev+j]+traceUnit)
			}
			if j > 0 {
				best = min(best, d[row+j-1]+timeUnit)
			}
			if i > 0 && j > 0 {
				best = min(best, d[prev+j-1]+diag)
			}
			d[row+j] = best
		}
	}
}

// backward sweeps descending traces and samples using the next neighbors
func backward(dist *grid.FloatMask, mask *grid.BoolMask, traceUnit, timeUnit, diag float32) {
	ns := dist.Samples
	nt := dist.Traces
	d := dist.Data
	for i := nt - 1; i >= 0; i-- {
		row := i * ns
		next := row + ns
		for j := ns - 1; j >= 0; j-- {
			if !mask.Data[row+j] {
				continue
			}
			best := d[row+j]
			if i < nt-1 {
				best = min(best, d[next+j]+traceUnit)
			}
			if j < ns-1 {
				best = min(best, d[row+j+1]+timeUnit)
			}
			if i < nt-1 && j < ns-1 {
				best = min(best, d[next+j+1]+diag)
			}
			d[row+j] = best
		}
	}
}
