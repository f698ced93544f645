package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrCellVertexCount is returned by [New] when the flat cell-vertex
	// slice length is not a multiple of the cell type's vertex count.
	ErrCellVertexCount = errors.New("cell buffer length must be a multiple of vertices per cell")

	// ErrVertexOutOfRange is returned by [New] when a cell references a
	// vertex index outside [0, numVertices).
	ErrVertexOutOfRange = errors.New("cell references vertex out of range")

	// ErrGeometricDim is returned by [New] when the geometric dimension is
	// smaller than the topological dimension of the cell type.
	ErrGeometricDim = errors.New("geometric dimension smaller than topological dimension")
)

// Mesh is an unstructured mesh: a topology of cells over vertices plus the
// vertex coordinates, optionally annotated with a cell [Coloring].
//
// The zero value is not usable - use [New] to create a valid mesh.
type Mesh struct {
	cellType CellType
	topology *Topology
	geometry *Geometry
	coloring *Coloring
}

// New creates a mesh of the given cell type from a flat coordinate slice
// (gdim coordinates per vertex) and a flat cell-vertex index slice
// (CellType.NumVertices indices per cell). Both slices are used directly,
// not copied; the mesh takes ownership.
//
// New validates that the buffer lengths are consistent and that every cell
// references only existing vertices.
func New(t CellType, gdim int, coords []float64, cells []int) (*Mesh, error) {
	if gdim < t.Dim() {
		return nil, fmt.Errorf("%w: %d < %d", ErrGeometricDim, gdim, t.Dim())
	}
	geometry, err := NewGeometry(gdim, coords)
	if err != nil {
		return nil, err
	}
	arity := t.NumVertices()
	if len(cells)%arity != 0 {
		return nil, ErrCellVertexCount
	}
	numVertices := geometry.NumVertices()
	for i, v := range cells {
		if v < 0 || v >= numVertices {
			return nil, fmt.Errorf("%w: index %d at cell slot %d", ErrVertexOutOfRange, v, i)
		}
	}

	conn, err := NewConnectivity(arity, cells)
	if err != nil {
		return nil, err
	}
	topology := NewTopology(t.Dim())
	topology.SetConn(t.Dim(), 0, conn)

	return &Mesh{cellType: t, topology: topology, geometry: geometry}, nil
}

// CellType returns the shape shared by all cells of the mesh.
func (m *Mesh) CellType() CellType { return m.cellType }

// Topology returns the mesh topology.
func (m *Mesh) Topology() *Topology { return m.topology }

// Geometry returns the mesh geometry.
func (m *Mesh) Geometry() *Geometry { return m.geometry }

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int { return m.geometry.NumVertices() }

// NumCells returns the number of cells in the mesh.
func (m *Mesh) NumCells() int {
	conn, _ := m.topology.Conn(m.topology.Dim(), 0)
	return conn.NumEntities()
}

// CellVertices returns the vertex indices of cell c in stored local order,
// as a subslice of the live cell-vertex buffer.
func (m *Mesh) CellVertices(c int) []int {
	conn, _ := m.topology.Conn(m.topology.Dim(), 0)
	return conn.Entities(c)
}

// SetColoring attaches an externally computed cell coloring to the mesh.
// The coloring is validated against the mesh's cell count before it is
// attached; an invalid coloring leaves the mesh unannotated.
func (m *Mesh) SetColoring(c *Coloring) error {
	if err := c.Validate(m.NumCells()); err != nil {
		return err
	}
	m.coloring = c
	return nil
}

// Coloring returns the attached cell coloring and true, or nil and false if
// the mesh has not been colored.
func (m *Mesh) Coloring() (*Coloring, bool) {
	return m.coloring, m.coloring != nil
}

// ClearColoring removes any attached cell coloring.
func (m *Mesh) ClearColoring() { m.coloring = nil }
