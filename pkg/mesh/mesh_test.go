package mesh

import (
	"errors"
	"testing"
)

// unitSquare returns a 2x2-cell triangulated unit square: 4 vertices, 2 triangles.
func unitSquare() (coords []float64, cells []int) {
	coords = []float64{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	}
	cells = []int{
		0, 1, 2,
		0, 2, 3,
	}
	return coords, cells
}

func TestNew(t *testing.T) {
	coords, cells := unitSquare()
	m, err := New(Triangle, 2, coords, cells)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := m.NumVertices(); got != 4 {
		t.Errorf("NumVertices() = %d, want 4", got)
	}
	if got := m.NumCells(); got != 2 {
		t.Errorf("NumCells() = %d, want 2", got)
	}
	if got := m.CellType(); got != Triangle {
		t.Errorf("CellType() = %v, want %v", got, Triangle)
	}

	v := m.CellVertices(1)
	want := []int{0, 2, 3}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("CellVertices(1) = %v, want %v", v, want)
			break
		}
	}
}

func TestNew_Errors(t *testing.T) {
	coords, cells := unitSquare()

	tests := []struct {
		name   string
		t      CellType
		gdim   int
		coords []float64
		cells  []int
		want   error
	}{
		{"truncated cells", Triangle, 2, coords, cells[:4], ErrCellVertexCount},
		{"vertex out of range", Triangle, 2, coords, []int{0, 1, 9}, ErrVertexOutOfRange},
		{"negative vertex", Triangle, 2, coords, []int{0, 1, -1}, ErrVertexOutOfRange},
		{"gdim below topological dim", Triangle, 1, []float64{0, 1, 2, 3}, []int{0, 1, 2}, ErrGeometricDim},
		{"ragged coordinates", Triangle, 2, coords[:5], cells, ErrCoordinateLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.t, tt.gdim, tt.coords, tt.cells)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGeometry_Vertex(t *testing.T) {
	coords, cells := unitSquare()
	m, err := New(Triangle, 2, coords, cells)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	g := m.Geometry()
	if g.Dim() != 2 {
		t.Errorf("Dim() = %d, want 2", g.Dim())
	}
	v2 := g.Vertex(2)
	if v2[0] != 1 || v2[1] != 1 {
		t.Errorf("Vertex(2) = %v, want [1 1]", v2)
	}

	// Vertex returns a live view, not a copy.
	v2[0] = 7
	if g.Coordinates()[4] != 7 {
		t.Error("Vertex() should write through to the coordinate buffer")
	}
}

func TestTopology_Conn(t *testing.T) {
	coords, cells := unitSquare()
	m, err := New(Triangle, 2, coords, cells)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	top := m.Topology()
	if top.Dim() != 2 {
		t.Errorf("Dim() = %d, want 2", top.Dim())
	}
	if _, ok := top.Conn(2, 0); !ok {
		t.Error("cell-vertex connectivity should exist after New")
	}
	if _, ok := top.Conn(1, 0); ok {
		t.Error("edge-vertex connectivity should not exist after New")
	}

	edges, err := NewConnectivity(2, []int{0, 1, 1, 2})
	if err != nil {
		t.Fatalf("NewConnectivity() error = %v", err)
	}
	top.SetConn(1, 0, edges)
	if c, ok := top.Conn(1, 0); !ok || c.NumEntities() != 2 {
		t.Error("SetConn should attach the relation")
	}

	top.ClearConn(1, 0)
	if _, ok := top.Conn(1, 0); ok {
		t.Error("ClearConn should remove the relation")
	}
}

func TestCellType(t *testing.T) {
	tests := []struct {
		t        CellType
		dim      int
		vertices int
		name     string
	}{
		{Interval, 1, 2, "interval"},
		{Triangle, 2, 3, "triangle"},
		{Quadrilateral, 2, 4, "quadrilateral"},
		{Tetrahedron, 3, 4, "tetrahedron"},
		{Hexahedron, 3, 8, "hexahedron"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Dim(); got != tt.dim {
				t.Errorf("Dim() = %d, want %d", got, tt.dim)
			}
			if got := tt.t.NumVertices(); got != tt.vertices {
				t.Errorf("NumVertices() = %d, want %d", got, tt.vertices)
			}
			if got := tt.t.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			parsed, err := ParseCellType(tt.name)
			if err != nil || parsed != tt.t {
				t.Errorf("ParseCellType(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}

	if _, err := ParseCellType("dodecahedron"); err == nil {
		t.Error("ParseCellType should reject unknown names")
	}
}
