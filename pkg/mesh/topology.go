package mesh

import "errors"

// ErrIndexCount is returned by [NewConnectivity] when the flat index slice
// length is not a multiple of the arity.
var ErrIndexCount = errors.New("index buffer length must be a multiple of the arity")

// Connectivity is an incidence relation between entities of two topological
// dimensions, stored as a flat index buffer with uniform arity. Entity i is
// incident to the entities indices[i*arity : (i+1)*arity].
type Connectivity struct {
	arity   int
	indices []int
}

// NewConnectivity creates a connectivity with the given arity over a flat
// index slice. The slice is used directly, not copied.
func NewConnectivity(arity int, indices []int) (*Connectivity, error) {
	if arity <= 0 || len(indices)%arity != 0 {
		return nil, ErrIndexCount
	}
	return &Connectivity{arity: arity, indices: indices}, nil
}

// Arity returns the number of incident entities per source entity.
func (c *Connectivity) Arity() int { return c.arity }

// Size returns the total length of the flat index buffer.
func (c *Connectivity) Size() int { return len(c.indices) }

// NumEntities returns the number of source entities in the relation.
func (c *Connectivity) NumEntities() int { return len(c.indices) / c.arity }

// Entities returns the incident entity indices of entity i as a subslice of
// the live buffer. Modifications write through to the connectivity.
func (c *Connectivity) Entities(i int) []int {
	return c.indices[i*c.arity : (i+1)*c.arity]
}

// Indices returns the live flat index buffer.
// The returned slice is the connectivity's backing storage, not a copy.
func (c *Connectivity) Indices() []int { return c.indices }

// Topology holds the incidence relations of a mesh, indexed by dimension
// pair (d0, d1) with 0 <= d0, d1 <= Dim. Only the cell-vertex relation
// (Dim, 0) is guaranteed to exist; all others are derived data attached by
// external computations.
type Topology struct {
	dim  int
	conn map[[2]int]*Connectivity
}

// NewTopology creates an empty topology of the given topological dimension.
func NewTopology(dim int) *Topology {
	return &Topology{dim: dim, conn: make(map[[2]int]*Connectivity)}
}

// Dim returns the topological dimension of the mesh.
func (t *Topology) Dim() int { return t.dim }

// Conn returns the incidence relation from dimension d0 to d1, or false if
// the relation has not been computed.
func (t *Topology) Conn(d0, d1 int) (*Connectivity, bool) {
	c, ok := t.conn[[2]int{d0, d1}]
	return c, ok
}

// SetConn attaches an incidence relation for the dimension pair (d0, d1),
// replacing any existing relation.
func (t *Topology) SetConn(d0, d1 int, c *Connectivity) {
	t.conn[[2]int{d0, d1}] = c
}

// ClearConn removes the incidence relation for (d0, d1) if present.
func (t *Topology) ClearConn(d0, d1 int) {
	delete(t.conn, [2]int{d0, d1})
}
