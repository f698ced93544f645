// Package renumber reorders mesh vertices and cells by cell color.
//
// # Overview
//
// Given a mesh annotated with a cell [mesh.Coloring] (no two cells sharing a
// vertex share a color), [ByColor] rewrites the mesh in place so that cells
// of the same color become contiguous in memory, ordered by color then by
// the coloring's stored within-color order. Vertices are renumbered in
// first-encounter order during the color sweep, which colocates the vertex
// data touched by each color class. The point of the layout is lock-free
// parallel assembly: all cells of one color can be processed simultaneously
// without write conflicts, and their data is adjacent in memory.
//
// # Ordering
//
// The new vertex numbering is determined entirely by (color id ascending,
// within-color cell order as stored, within-cell local vertex order as
// stored). This is a deliberate policy, not an accident of iteration: it is
// what packs the vertex data of same-colored cells together for subsequent
// color-parallel passes.
//
// # Failure Semantics
//
// ByColor validates its inputs and stages every write in scratch buffers
// before touching the mesh. On any error the live connectivity, coordinates,
// and coloring metadata are exactly as they were before the call. The only
// mutation performed ahead of validation is dropping derived incidence
// relations (anything other than cell-vertex), which are stale after
// renumbering by definition and must be recomputed on demand regardless.
package renumber
