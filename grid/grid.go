// Package grid provides dense trace-by-sample masks laid out trace-major in
// flat slices, the same shape as a seismic volume.
package grid

// Shape is the size of a volume: number of traces and samples per trace
type Shape struct {
	Traces  int
	Samples int
}

// Len returns the number of cells
func (s Shape) Len() int {
	return s.Traces * s.Samples
}

// Contains reports whether (trace, sample) is inside the grid
func (s Shape) Contains(trace, sample int) bool {
	return trace >= 0 && trace < s.Traces && sample >= 0 && sample < s.Samples
}

// ShapeOf returns the shape of a trace-major 2-D array.
// The sample count is taken from the first trace.
func ShapeOf(traces [][]float32) Shape {
	if len(traces) == 0 {
		return Shape{}
	}
	return Shape{Traces: len(traces), Samples: len(traces[0])}
}

// BoolMask is a dense inside/outside mask
type BoolMask struct {
	Shape
	Data []bool
}

// NewBoolMask creates an all-false mask
func NewBoolMask(s Shape) *BoolMask {
	return &BoolMask{Shape: s, Data: make([]bool, s.Len())}
}

// At returns the value at (trace, sample)
func (m *BoolMask) At(trace, sample int) bool {
	return m.Data[trace*m.Samples+sample]
}

// Set sets the value at (trace, sample)
func (m *BoolMask) Set(trace, sample int, v bool) {
	m.Data[trace*m.Samples+sample] = v
}

// Row returns the cells of one trace
func (m *BoolMask) Row(trace int) []bool {
	return m.Data[trace*m.Samples : (trace+1)*m.Samples]
}

// Any reports whether at least one cell is true
func (m *BoolMask) Any() bool {
	for _, v := range m.Data {
		if v {
			return true
		}
	}
	return false
}

// Count returns the number of true cells
func (m *BoolMask) Count() int {
	n := 0
	for _, v := range m.Data {
		if v {
			n++
		}
	}
	return n
}

// Not returns the inverted mask
func (m *BoolMask) Not() *BoolMask {
	out := NewBoolMask(m.Shape)
	for i, v := range m.Data {
		out.Data[i] = !v
	}
	return out
}

// Float returns the mask as 1.0 (true) / 0.0 (false)
func (m *BoolMask) Float() *FloatMask {
	out := NewFloatMask(m.Shape)
	for i, v := range m.Data {
		if v {
			out.Data[i] = 1
		}
	}
	return out
}

// FloatMask is a dense float32 field (distances, blend weights, multipliers)
type FloatMask struct {
	Shape
	Data []float32
}

// NewFloatMask creates an all-zero mask
func NewFloatMask(s Shape) *FloatMask {
	return &FloatMask{Shape: s, Data: make([]float32, s.Len())}
}

// Filled creates a mask with every cell set to v
func Filled(s Shape, v float32) *FloatMask {
	m := NewFloatMask(s)
	for i := range m.Data {
		m.Data[i] = v
	}
	return m
}

// At returns the value at (trace, sample)
func (m *FloatMask) At(trace, sample int) float32 {
	return m.Data[trace*m.Samples+sample]
}

// Set sets the value at (trace, sample)
func (m *FloatMask) Set(trace, sample int, v float32) {
	m.Data[trace*m.Samples+sample] = v
}

// Row returns the cells of one trace
func (m *FloatMask) Row(trace int) []float32 {
	return m.Data[trace*m.Samples : (trace+1)*m.Samples]
}
