// Package meshio provides JSON import and export for unstructured meshes.
//
// # Overview
//
// This package enables serialization of meshes to and from a simple JSON
// format. The format is designed for:
//
//   - Supplying externally colored meshes to the renumbering pipeline
//   - Integration with external tools that produce or consume mesh data
//   - Round-trip preservation: import, renumber, export, and re-import
//
// # JSON Format
//
// The format has three required top-level fields and an optional coloring
// block:
//
//	{
//	  "cell_type": "triangle",
//	  "dim": 2,
//	  "vertices": [0, 0, 1, 0, 1, 1, 0, 1],
//	  "cells": [[0, 1, 2], [0, 2, 3]],
//	  "coloring": {
//	    "cell_colors": [0, 1],
//	    "colored_cells": [[0], [1]],
//	    "num_colored_cells": [1, 1]
//	  }
//	}
//
// # Fields
//
// Required:
//   - cell_type: one of interval, triangle, quadrilateral, tetrahedron,
//     hexahedron
//   - dim: geometric dimension (coordinates per vertex)
//   - vertices: flat coordinate array, dim values per vertex
//   - cells: one array of vertex indices per cell, cell_type arity each
//
// Optional:
//   - coloring.cell_colors: one color id per cell
//   - coloring.colored_cells: per-color ordered cell lists; derived from
//     cell_colors when omitted
//   - coloring.num_colored_cells: recorded class sizes; derived from
//     colored_cells when omitted
//
// # Import
//
// Use [ImportJSON] to read a mesh from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	m, err := meshio.ImportJSON("square.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Import errors carry the structured codes from the errors package:
// FILE_NOT_FOUND for missing files and INVALID_FORMAT for malformed or
// inconsistent mesh data.
package meshio
