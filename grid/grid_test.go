package grid

import "testing"

func TestShape(t *testing.T) {
	s := Shape{Traces: 3, Samples: 4}
	if s.Len() != 12 {
		t.Errorf("Len() = %d, want 12", s.Len())
	}

	tests := []struct {
		trace, sample int
		want          bool
	}{
		{0, 0, true},
		{2, 3, true},
		{3, 0, false},
		{0, 4, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		if got := s.Contains(tt.trace, tt.sample); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.trace, tt.sample, got, tt.want)
		}
	}

	if got := ShapeOf([][]float32{{1, 2}, {3, 4}, {5, 6}}); got != (Shape{3, 2}) {
		t.Errorf("ShapeOf() = %+v, want {3 2}", got)
	}
	if got := ShapeOf(nil); got != (Shape{}) {
		t.Errorf("ShapeOf(nil) = %+v, want zero shape", got)
	}
}

func TestBoolMask(t *testing.T) {
	m := NewBoolMask(Shape{Traces: 2, Samples: 3})
	if m.Any() {
		t.Fatal("new mask should be all false")
	}

	m.Set(1, 2, true)
	m.Set(0, 0, true)
	if !m.At(1, 2) || !m.At(0, 0) || m.At(1, 1) {
		t.Errorf("At() returned wrong values: %v", m.Data)
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
	if row := m.Row(1); len(row) != 3 || !row[2] {
		t.Errorf("Row(1) = %v", row)
	}

	inv := m.Not()
	if inv.Count() != 4 || inv.At(1, 2) {
		t.Errorf("Not() = %v", inv.Data)
	}

	f := m.Float()
	want := []float32{1, 0, 0, 0, 0, 1}
	for i := range want {
		if f.Data[i] != want[i] {
			t.Errorf("Float().Data[%d] = %v, want %v", i, f.Data[i], want[i])
		}
	}
}

func TestFloatMask(t *testing.T) {
	m := Filled(Shape{Traces: 2, Samples: 2}, 1)
	for i, v := range m.Data {
		if v != 1 {
			t.Errorf("Filled Data[%d] = %v, want 1", i, v)
		}
	}
	m.Set(1, 0, 0.5)
	if m.At(1, 0) != 0.5 || m.Row(1)[0] != 0.5 {
		t.Errorf("Set/At mismatch: %v", m.Data)
	}
}
