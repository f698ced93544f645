package meshio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jkoneberg/colormesh/pkg/errors"
	"github.com/jkoneberg/colormesh/pkg/mesh"
)

type meshFile struct {
	CellType string        `json:"cell_type"`
	Dim      int           `json:"dim"`
	Vertices []float64     `json:"vertices"`
	Cells    [][]int       `json:"cells"`
	Coloring *coloringFile `json:"coloring,omitempty"`
}

type coloringFile struct {
	CellColors      []int   `json:"cell_colors"`
	ColoredCells    [][]int `json:"colored_cells,omitempty"`
	NumColoredCells []int   `json:"num_colored_cells,omitempty"`
}

// WriteJSON encodes a mesh as JSON and writes it to w.
// The output includes the coloring annotation when one is attached, so the
// format round-trips through [ReadJSON].
func WriteJSON(m *mesh.Mesh, w io.Writer) error {
	out := meshFile{
		CellType: m.CellType().String(),
		Dim:      m.Geometry().Dim(),
		Vertices: m.Geometry().Coordinates(),
		Cells:    make([][]int, m.NumCells()),
	}
	for c := range out.Cells {
		out.Cells[c] = m.CellVertices(c)
	}
	if coloring, ok := m.Coloring(); ok {
		out.Coloring = &coloringFile{
			CellColors:      coloring.CellColors,
			ColoredCells:    coloring.ColoredCells,
			NumColoredCells: coloring.NumColoredCells,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode mesh")
	}
	return nil
}

// ExportJSON writes a mesh to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(m *mesh.Mesh, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(m, f)
}
