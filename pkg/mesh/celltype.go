package mesh

import "fmt"

// CellType identifies the shape of every cell in a mesh. All cells of a mesh
// share one type, so the number of vertices per cell (arity) and the
// topological dimension are uniform across the cell-vertex buffer.
type CellType int

const (
	// Interval is a 1D cell with 2 vertices.
	Interval CellType = iota
	// Triangle is a 2D cell with 3 vertices.
	Triangle
	// Quadrilateral is a 2D cell with 4 vertices.
	Quadrilateral
	// Tetrahedron is a 3D cell with 4 vertices.
	Tetrahedron
	// Hexahedron is a 3D cell with 8 vertices.
	Hexahedron
)

// Dim returns the topological dimension of the cell type.
func (t CellType) Dim() int {
	switch t {
	case Interval:
		return 1
	case Triangle, Quadrilateral:
		return 2
	case Tetrahedron, Hexahedron:
		return 3
	}
	return 0
}

// NumVertices returns the number of vertices incident to a cell of this type.
func (t CellType) NumVertices() int {
	switch t {
	case Interval:
		return 2
	case Triangle:
		return 3
	case Quadrilateral, Tetrahedron:
		return 4
	case Hexahedron:
		return 8
	}
	return 0
}

// String returns the lowercase name of the cell type.
func (t CellType) String() string {
	switch t {
	case Interval:
		return "interval"
	case Triangle:
		return "triangle"
	case Quadrilateral:
		return "quadrilateral"
	case Tetrahedron:
		return "tetrahedron"
	case Hexahedron:
		return "hexahedron"
	}
	return fmt.Sprintf("celltype(%d)", int(t))
}

// ParseCellType converts a lowercase cell type name (as produced by
// [CellType.String]) back into a CellType. It returns an error for
// unrecognized names.
func ParseCellType(s string) (CellType, error) {
	switch s {
	case "interval":
		return Interval, nil
	case "triangle":
		return Triangle, nil
	case "quadrilateral":
		return Quadrilateral, nil
	case "tetrahedron":
		return Tetrahedron, nil
	case "hexahedron":
		return Hexahedron, nil
	}
	return 0, fmt.Errorf("unknown cell type: %q", s)
}
