package amplify

import (
	"math"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/cocosip/go-segy-amptune/amplify/edt"
	"github.com/cocosip/go-segy-amptune/grid"
)

// BuildTransitionMask turns a window mask into blend weights in [0, 1].
//
// With a width <= 0 on either axis the window is returned as a hard 1/0 mask.
// Otherwise one transition width along each axis maps to a distance of 1:
// in TransitionOutside mode weights fall from 1 at the window edge to 0 one
// width away; in TransitionInside mode weights rise from 0 at the edge to 1
// at the deepest interior cell and everything outside is 0.
func BuildTransitionMask(window *grid.BoolMask, widthTraces int, widthMs, dtMs float32, mode TransitionMode) *grid.FloatMask {
	if widthTraces <= 0 || !(widthMs > 0) || !(dtMs > 0) {
		return window.Float()
	}

	widthSamples := widthMs / dtMs
	traceUnit := 1 / float32(widthTraces)
	timeUnit := 1 / widthSamples

	if mode == TransitionInside {
		return insideWeights(window, traceUnit, timeUnit)
	}
	return outsideWeights(window, traceUnit, timeUnit)
}

func outsideWeights(window *grid.BoolMask, traceUnit, timeUnit float32) *grid.FloatMask {
	dist := edt.Transform(window.Not(), traceUnit, timeUnit)
	weights := grid.NewFloatMask(window.Shape)

	forEachTraceChunk(window.Traces, func(start, end int) {
		for tr := start; tr < end; tr++ {
			in := window.Row(tr)
			d := dist.Row(tr)
			w := weights.Row(tr)
			for s := range w {
				if in[s] {
					w[s] = 1
					continue
				}
				w[s] = lo.Clamp(1-d[s], 0, 1)
			}
		}
	})
	return weights
}

func insideWeights(window *grid.BoolMask, traceUnit, timeUnit float32) *grid.FloatMask {
	dist := edt.Transform(window, traceUnit, timeUnit)

	var maxDist float32
	for i, in := range window.Data {
		if in && dist.Data[i] > maxDist {
			maxDist = dist.Data[i]
		}
	}
	if maxDist == 0 || math.IsInf(float64(maxDist), 0) {
		logrus.WithFields(logrus.Fields{
			"function": "BuildTransitionMask",
			"max_dist": maxDist,
		}).Debug("window has no interior depth, using hard edge")
		return window.Float()
	}

	weights := grid.NewFloatMask(window.Shape)
	forEachTraceChunk(window.Traces, func(start, end int) {
		for tr := start; tr < end; tr++ {
			in := window.Row(tr)
			d := dist.Row(tr)
			w := weights.Row(tr)
			for s := range w {
				if in[s] {
					w[s] = d[s] / maxDist
				}
			}
		}
	})
	return weights
}
