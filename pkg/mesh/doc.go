// Package mesh provides an in-memory representation of unstructured
// computational meshes with flat connectivity and coordinate storage.
//
// # Overview
//
// A [Mesh] owns a [Topology] (incidence relations between entities of
// different topological dimensions, stored as flat index buffers) and a
// [Geometry] (a flat coordinate buffer with a fixed geometric dimension).
// Cells are entities of the top topological dimension; vertices are entities
// of dimension zero. The cell-to-vertex relation is always present; higher
// relations (edges, faces, cell-cell adjacency) may be attached by external
// computations and are treated as derived data.
//
// # Basic Usage
//
// Create a mesh with [New] from a flat coordinate slice and a flat
// cell-vertex index slice:
//
//	m, err := mesh.New(mesh.Triangle, 2, coords, cells)
//	if err != nil {
//	    return err
//	}
//	for c := 0; c < m.NumCells(); c++ {
//	    vertices := m.CellVertices(c)
//	    // ...
//	}
//
// # Coloring
//
// A [Coloring] partitions cells into color classes such that no two cells of
// the same color share a vertex. Colorings are computed externally and
// attached with [Mesh.SetColoring]; this package only verifies that the
// annotation is shaped consistently with the mesh it is attached to. The
// [renumber] subpackage consumes the coloring to reorder the mesh so that
// same-colored cells become contiguous in memory.
//
// # Concurrency
//
// Mesh instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same mesh.
//
// [renumber]: github.com/jkoneberg/colormesh/pkg/mesh/renumber
package mesh
