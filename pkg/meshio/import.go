package meshio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jkoneberg/colormesh/pkg/errors"
	"github.com/jkoneberg/colormesh/pkg/mesh"
)

// ReadJSON decodes a JSON mesh from r.
//
// The input must carry cell_type, dim, a flat vertices array, and a cells
// array of per-cell vertex index tuples. An optional coloring block attaches
// a cell coloring; colored_cells and num_colored_cells are derived from
// cell_colors when omitted, so external coloring tools only need to emit the
// per-cell labels.
//
// ReadJSON returns an INVALID_FORMAT error if the JSON is malformed, the
// cell type is unknown, a cell has the wrong arity, buffer lengths are
// inconsistent, or the coloring does not fit the mesh. The returned mesh is
// independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (*mesh.Mesh, error) {
	var data meshFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode mesh")
	}

	cellType, err := mesh.ParseCellType(data.CellType)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "cell type")
	}

	arity := cellType.NumVertices()
	cells := make([]int, 0, len(data.Cells)*arity)
	for i, cell := range data.Cells {
		if len(cell) != arity {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"cell %d has %d vertices, %s needs %d", i, len(cell), cellType, arity)
		}
		cells = append(cells, cell...)
	}

	m, err := mesh.New(cellType, data.Dim, data.Vertices, cells)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "build mesh")
	}

	if data.Coloring != nil {
		coloring, err := decodeColoring(data.Coloring)
		if err != nil {
			return nil, err
		}
		if err := m.SetColoring(coloring); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "coloring")
		}
	}

	return m, nil
}

func decodeColoring(data *coloringFile) (*mesh.Coloring, error) {
	// Only the labels are required; classes and counts can be derived.
	if len(data.ColoredCells) == 0 {
		coloring, err := mesh.NewColoring(data.CellColors)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "coloring")
		}
		return coloring, nil
	}

	counts := data.NumColoredCells
	if len(counts) == 0 {
		counts = make([]int, len(data.ColoredCells))
		for color, cells := range data.ColoredCells {
			counts[color] = len(cells)
		}
	}
	return &mesh.Coloring{
		CellColors:      data.CellColors,
		ColoredCells:    data.ColoredCells,
		NumColoredCells: counts,
	}, nil
}

// ImportJSON reads a JSON mesh file at path and returns the decoded mesh.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. A missing file yields a FILE_NOT_FOUND error; decoding failures
// carry the same codes as [ReadJSON].
func ImportJSON(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
