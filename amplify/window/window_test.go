package window

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cocosip/go-segy-amptune/grid"
)

// cells lists the true cells of a mask as (trace, sample) pairs
func cells(m *grid.BoolMask) [][2]int {
	var out [][2]int
	for tr := 0; tr < m.Traces; tr++ {
		for s := 0; s < m.Samples; s++ {
			if m.At(tr, s) {
				out = append(out, [2]int{tr, s})
			}
		}
	}
	return out
}

func TestSelectionKind(t *testing.T) {
	tests := []struct {
		sel  Selection
		want Kind
	}{
		{nil, KindEmpty},
		{Selection{{1, 2}}, KindPoint},
		{Rectangle(Point{0, 0}, Point{1, 1}), KindRectangle},
		{Selection{{0, 0}, {1, 0}, {1, 1}}, KindPolygon},
		{Selection{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, KindPolygon},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.sel.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildMaskEmpty(t *testing.T) {
	m := BuildMask(grid.Shape{Traces: 4, Samples: 4}, nil, 2)
	if m.Any() {
		t.Fatalf("empty selection set %d cells", m.Count())
	}
	if m.Shape != (grid.Shape{Traces: 4, Samples: 4}) {
		t.Errorf("shape = %+v", m.Shape)
	}
}

func TestBuildMaskPoint(t *testing.T) {
	shape := grid.Shape{Traces: 5, Samples: 10}

	tests := []struct {
		name string
		p    Point
		want [][2]int
	}{
		{"exact", Point{2, 4}, [][2]int{{2, 2}}},
		{"rounds up", Point{1, 5.2}, [][2]int{{1, 3}}},
		{"rounds down", Point{1, 4.8}, [][2]int{{1, 2}}},
		{"trace out of range", Point{5, 4}, nil},
		{"negative trace", Point{-1, 4}, nil},
		{"time past end", Point{0, 20}, nil},
		{"last cell", Point{4, 18}, [][2]int{{4, 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildMask(shape, Selection{tt.p}, 2)
			if diff := cmp.Diff(tt.want, cells(m)); diff != "" {
				t.Errorf("cells mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildMaskRectangle(t *testing.T) {
	shape := grid.Shape{Traces: 5, Samples: 4}

	// traces 1..3, samples 0..2
	m := BuildMask(shape, Rectangle(Point{1, 0}, Point{3, 4}), 2)
	want := [][2]int{
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
		{3, 0}, {3, 1}, {3, 2},
	}
	if diff := cmp.Diff(want, cells(m)); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}

	// corner order does not matter
	swapped := BuildMask(shape, Rectangle(Point{3, 4}, Point{1, 0}), 2)
	if diff := cmp.Diff(m.Data, swapped.Data); diff != "" {
		t.Errorf("swapped corners differ:\n%s", diff)
	}
}

func TestBuildMaskRectangleTruncates(t *testing.T) {
	shape := grid.Shape{Traces: 2, Samples: 10}
	// 5.9/2 = 2.95 truncates to 2, 1.9/2 truncates to 0
	m := BuildMask(shape, Rectangle(Point{0, 1.9}, Point{0, 5.9}), 2)
	want := [][2]int{{0, 0}, {0, 1}, {0, 2}}
	if diff := cmp.Diff(want, cells(m)); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMaskRectangleClamps(t *testing.T) {
	shape := grid.Shape{Traces: 3, Samples: 3}
	m := BuildMask(shape, Rectangle(Point{-5, -10}, Point{10, 100}), 1)
	if got := m.Count(); got != shape.Len() {
		t.Errorf("Count() = %d, want %d", got, shape.Len())
	}
}

func TestBuildMaskTriangle(t *testing.T) {
	shape := grid.Shape{Traces: 5, Samples: 5}
	tri := Selection{{0, 0}, {4, 0}, {0, 4}}

	m := BuildMask(shape, tri, 1)
	want := [][2]int{
		{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, 0}, {2, 1}, {2, 2},
		{3, 0}, {3, 1},
		{4, 0},
	}
	if diff := cmp.Diff(want, cells(m)); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMaskPolygonWithinBoundingBox(t *testing.T) {
	shape := grid.Shape{Traces: 20, Samples: 50}
	poly := Selection{{2, 10}, {12, 4}, {17, 30}, {9, 44}, {3, 25}}

	m := BuildMask(shape, poly, 1)
	box := BuildMask(shape, Rectangle(Point{2, 4}, Point{17, 44}), 1)

	if !m.Any() {
		t.Fatal("polygon produced an empty mask")
	}
	for i, v := range m.Data {
		if v && !box.Data[i] {
			t.Fatalf("cell %d inside polygon but outside its bounding rectangle", i)
		}
	}
}

func TestBuildMaskPolygonOutOfRange(t *testing.T) {
	shape := grid.Shape{Traces: 4, Samples: 4}
	poly := Selection{{10, 0}, {14, 0}, {12, 3}}

	m := BuildMask(shape, poly, 1)
	if m.Any() {
		t.Errorf("polygon beyond the last trace set %d cells", m.Count())
	}
}

func TestBuildMaskPolygonClampsTime(t *testing.T) {
	shape := grid.Shape{Traces: 3, Samples: 4}
	poly := Selection{{0, -10}, {2, -10}, {2, 100}, {0, 100}}

	m := BuildMask(shape, poly, 1)
	if got := m.Count(); got != shape.Len() {
		t.Errorf("Count() = %d, want %d", got, shape.Len())
	}
}

func TestBuildMaskZeroShape(t *testing.T) {
	m := BuildMask(grid.Shape{}, Selection{{0, 0}, {1, 1}}, 1)
	if len(m.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(m.Data))
	}
}
