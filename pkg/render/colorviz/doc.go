// Package colorviz renders colored meshes as cell adjacency diagrams.
//
// # Overview
//
// This package produces Graphviz visualizations of a mesh's cell graph:
// each cell appears as a circle filled with its color class, and cells that
// share a facet are connected. It is a quick way to inspect a coloring and
// to verify that renumbering groups same-colored cells into contiguous
// index ranges.
//
// # Usage
//
// Convert a mesh to DOT format, then render to SVG:
//
//	dot := colorviz.ToDOT(m, colorviz.Options{Detailed: false})
//	svg, err := colorviz.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, cell labels include the cell's vertex indices
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses the neato layout engine, which tends to place
// adjacent cells next to each other the way they sit in the mesh.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package colorviz
