package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrNoColors is returned by [Coloring.Validate] when the coloring has
	// zero color classes.
	ErrNoColors = errors.New("coloring has no color classes")

	// ErrLabelCount is returned by [Coloring.Validate] when the per-cell
	// label slice length differs from the mesh's cell count.
	ErrLabelCount = errors.New("cell color label count does not match cell count")

	// ErrColorCount is returned by [Coloring.Validate] when the recorded
	// per-color cell counts do not line up with the color class lists.
	ErrColorCount = errors.New("recorded color count does not match color class count")

	// ErrCellOutOfRange is returned by [Coloring.Validate] when a color
	// class references a cell index outside [0, numCells).
	ErrCellOutOfRange = errors.New("color class references cell out of range")
)

// Coloring is a cell-coloring annotation: a partition of a mesh's cells into
// color classes such that no two cells sharing a vertex share a color. The
// partition itself is computed externally and trusted; this package checks
// only shape-level consistency when the coloring is attached to a mesh.
type Coloring struct {
	// CellColors maps each cell index to its color id.
	CellColors []int

	// ColoredCells lists, per color id in ascending order, the cells of
	// that color in the order the coloring produced them.
	ColoredCells [][]int

	// NumColoredCells records the length of each color class as captured
	// at coloring time. Renumbering uses it as a defensive check against
	// class lists that were mutated after the counts were recorded.
	NumColoredCells []int
}

// NewColoring builds a coloring from per-cell color labels. Color ids must
// be sequential starting at zero; the per-color cell lists and recorded
// counts are derived from the labels in cell-index order.
func NewColoring(cellColors []int) (*Coloring, error) {
	numColors := 0
	for _, color := range cellColors {
		if color < 0 {
			return nil, fmt.Errorf("negative color id %d", color)
		}
		if color >= numColors {
			numColors = color + 1
		}
	}
	if numColors == 0 {
		return nil, ErrNoColors
	}

	coloredCells := make([][]int, numColors)
	for cell, color := range cellColors {
		coloredCells[color] = append(coloredCells[color], cell)
	}
	counts := make([]int, numColors)
	for color, cells := range coloredCells {
		counts[color] = len(cells)
	}

	return &Coloring{
		CellColors:      cellColors,
		ColoredCells:    coloredCells,
		NumColoredCells: counts,
	}, nil
}

// NumColors returns the number of color classes.
func (c *Coloring) NumColors() int { return len(c.ColoredCells) }

// Validate checks that the coloring is shaped consistently for a mesh with
// numCells cells: at least one color class, one label per cell, one recorded
// count per class, and every referenced cell index in range. It does not
// re-verify the coloring property itself (that same-colored cells share no
// vertex); the partition is trusted input.
func (c *Coloring) Validate(numCells int) error {
	if c.NumColors() == 0 {
		return ErrNoColors
	}
	if len(c.CellColors) != numCells {
		return fmt.Errorf("%w: %d labels for %d cells", ErrLabelCount, len(c.CellColors), numCells)
	}
	if len(c.NumColoredCells) != len(c.ColoredCells) {
		return fmt.Errorf("%w: %d counts for %d classes", ErrColorCount, len(c.NumColoredCells), len(c.ColoredCells))
	}
	for color, cells := range c.ColoredCells {
		for _, cell := range cells {
			if cell < 0 || cell >= numCells {
				return fmt.Errorf("%w: cell %d in color %d", ErrCellOutOfRange, cell, color)
			}
		}
	}
	return nil
}
