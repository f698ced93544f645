package renumber

import (
	"time"

	"github.com/jkoneberg/colormesh/pkg/errors"
	"github.com/jkoneberg/colormesh/pkg/mesh"
	"github.com/jkoneberg/colormesh/pkg/observability"
)

// ByColor renumbers the vertices and cells of m so that cells of the same
// color are contiguous, sweeping colors in ascending order and keeping the
// coloring's stored cell order within each color. The mesh is mutated in
// place: the cell-vertex connectivity and coordinate buffers are rewritten
// under the new numbering, the per-color cell lists and per-cell color
// labels are rewritten to the new sequential cell numbering, and all derived
// incidence relations are dropped.
//
// ByColor fails with code MISSING_COLORING if the mesh carries no coloring,
// COLORING_MISMATCH if a color's recorded cell count disagrees with its
// current cell list (or the classes do not cover the cells exactly), and
// INCOMPLETE_RENUMBERING if some vertex is unreachable from the coloring's
// cell enumeration. No error path leaves the connectivity, coordinate, or
// coloring buffers partially rewritten; all writes are staged in scratch
// space and committed together after the completeness check passes.
func ByColor(m *mesh.Mesh) error {
	hooks := observability.Renumber()
	start := time.Now()

	coloring, ok := m.Coloring()
	if !ok {
		return errors.New(errors.ErrCodeMissingColoring, "unable to renumber mesh by colors: mesh has not been colored")
	}
	numColors := coloring.NumColors()
	if numColors == 0 {
		return errors.New(errors.ErrCodeMissingColoring, "unable to renumber mesh by colors: coloring has no color classes")
	}

	numCells := m.NumCells()
	numVertices := m.NumVertices()
	hooks.OnStart(numCells, numVertices, numColors)

	err := byColor(m, coloring, hooks)
	hooks.OnComplete(numCells, numVertices, time.Since(start), err)
	return err
}

func byColor(m *mesh.Mesh, coloring *mesh.Coloring, hooks observability.RenumberHooks) error {
	// Each color's stored cell list must still match the count recorded at
	// coloring time, and the classes together must cover the cells exactly.
	// Checked up front so that a bad coloring aborts before any mutation.
	total := 0
	for color, cells := range coloring.ColoredCells {
		if len(cells) != coloring.NumColoredCells[color] {
			return errors.New(errors.ErrCodeColoringMismatch,
				"color %d has %d cells but %d were recorded at coloring time",
				color, len(cells), coloring.NumColoredCells[color])
		}
		total += len(cells)
	}
	if total != m.NumCells() {
		return errors.New(errors.ErrCodeColoringMismatch,
			"color classes cover %d cells, mesh has %d", total, m.NumCells())
	}

	// Derived incidence relations are expressed in the old numbering and
	// would be silently wrong after the rewrite. Drop them now.
	invalidate(m.Topology(), hooks)

	topology := m.Topology()
	geometry := m.Geometry()
	D := topology.Dim()
	connectivity, _ := topology.Conn(D, 0)
	connections := connectivity.Indices()
	coordinates := geometry.Coordinates()
	gdim := geometry.Dim()

	// Scratch buffers; the live mesh is untouched until commit.
	newConnections := make([]int, len(connections))
	newCoordinates := make([]float64, len(coordinates))
	vertexIndices := newIndexMap(m.NumVertices())

	connectionsOffset := 0
	nextVertexSlot := 0
	for color := 0; color < coloring.NumColors(); color++ {
		for _, cell := range coloring.ColoredCells[color] {
			for _, vertex := range m.CellVertices(cell) {
				newIndex, assigned := vertexIndices.Lookup(vertex)
				if !assigned {
					copy(newCoordinates[nextVertexSlot*gdim:(nextVertexSlot+1)*gdim],
						coordinates[vertex*gdim:(vertex+1)*gdim])
					vertexIndices.Assign(vertex, nextVertexSlot)
					newIndex = nextVertexSlot
					nextVertexSlot++
				}
				newConnections[connectionsOffset] = newIndex
				connectionsOffset++
			}
		}
	}

	if connectionsOffset != len(connections) {
		// The class lists cover the right number of cells, so this can only
		// happen if the connectivity buffer changed under us.
		return errors.New(errors.ErrCodeInternal,
			"connectivity sweep wrote %d of %d entries", connectionsOffset, len(connections))
	}

	// Every vertex must have been reached through some cell before anything
	// is committed.
	if vertex, missing := vertexIndices.FirstUnassigned(); missing {
		return errors.New(errors.ErrCodeIncompleteRenumbering,
			"failed to renumber mesh: vertex %d not reached by any colored cell", vertex)
	}

	// Stage the metadata rewrite: cells take sequential numbers in
	// color-sweep order.
	newColoredCells := make([][]int, coloring.NumColors())
	newCellColors := make([]int, m.NumCells())
	currentCell := 0
	for color := range coloring.ColoredCells {
		cells := make([]int, coloring.NumColoredCells[color])
		for i := range cells {
			cells[i] = currentCell
			newCellColors[currentCell] = color
			currentCell++
		}
		newColoredCells[color] = cells
	}

	// Commit all buffers together.
	copy(connections, newConnections)
	copy(coordinates, newCoordinates)
	coloring.ColoredCells = newColoredCells
	coloring.CellColors = newCellColors

	return nil
}

// invalidate drops every incidence relation other than cell-vertex,
// reporting each non-empty relation through the hooks.
func invalidate(t *mesh.Topology, hooks observability.RenumberHooks) {
	D := t.Dim()
	for d0 := 0; d0 <= D; d0++ {
		for d1 := 0; d1 <= D; d1++ {
			if d0 == D && d1 == 0 {
				continue
			}
			if conn, ok := t.Conn(d0, d1); ok {
				if conn.Size() > 0 {
					hooks.OnConnectivityCleared(d0, d1)
				}
				t.ClearConn(d0, d1)
			}
		}
	}
}
