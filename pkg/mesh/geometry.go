package mesh

import "errors"

// ErrCoordinateLength is returned by [NewGeometry] when the flat coordinate
// slice length is not a multiple of the geometric dimension.
var ErrCoordinateLength = errors.New("coordinate buffer length must be a multiple of the geometric dimension")

// ErrInvalidDimension is returned by [NewGeometry] when the geometric
// dimension is not positive.
var ErrInvalidDimension = errors.New("geometric dimension must be positive")

// Geometry stores vertex coordinates in a single flat buffer.
// Vertex i occupies coords[i*dim : (i+1)*dim]. The geometric dimension is
// constant across all vertices and may exceed the topological dimension of
// the mesh (e.g., a triangle mesh embedded in 3D space).
type Geometry struct {
	dim    int
	coords []float64
}

// NewGeometry creates a geometry from a flat coordinate slice.
// The slice is used directly, not copied; the caller hands over ownership.
func NewGeometry(dim int, coords []float64) (*Geometry, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	if len(coords)%dim != 0 {
		return nil, ErrCoordinateLength
	}
	return &Geometry{dim: dim, coords: coords}, nil
}

// Dim returns the geometric dimension (coordinates per vertex).
func (g *Geometry) Dim() int { return g.dim }

// NumVertices returns the number of vertices stored in the buffer.
func (g *Geometry) NumVertices() int { return len(g.coords) / g.dim }

// Vertex returns the coordinate vector of vertex i as a subslice of the
// live buffer. Modifications write through to the geometry.
func (g *Geometry) Vertex(i int) []float64 {
	return g.coords[i*g.dim : (i+1)*g.dim]
}

// Coordinates returns the live flat coordinate buffer.
// The returned slice is the geometry's backing storage, not a copy.
func (g *Geometry) Coordinates() []float64 { return g.coords }
