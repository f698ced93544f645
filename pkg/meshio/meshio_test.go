package meshio

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/jkoneberg/colormesh/pkg/errors"
	"github.com/jkoneberg/colormesh/pkg/mesh"
)

const coloredSquare = `{
  "cell_type": "triangle",
  "dim": 2,
  "vertices": [0, 0, 1, 0, 1, 1, 0, 1],
  "cells": [[0, 1, 2], [0, 2, 3]],
  "coloring": {
    "cell_colors": [0, 1]
  }
}`

func TestReadJSON(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(coloredSquare))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if m.CellType() != mesh.Triangle {
		t.Errorf("CellType() = %v, want triangle", m.CellType())
	}
	if m.NumVertices() != 4 || m.NumCells() != 2 {
		t.Errorf("mesh size = %d vertices, %d cells, want 4, 2", m.NumVertices(), m.NumCells())
	}
	if got := m.CellVertices(1); !slices.Equal(got, []int{0, 2, 3}) {
		t.Errorf("CellVertices(1) = %v, want [0 2 3]", got)
	}

	coloring, ok := m.Coloring()
	if !ok {
		t.Fatal("coloring block should attach a coloring")
	}
	// Classes and counts are derived from the labels.
	if coloring.NumColors() != 2 {
		t.Errorf("NumColors() = %d, want 2", coloring.NumColors())
	}
	if !slices.Equal(coloring.NumColoredCells, []int{1, 1}) {
		t.Errorf("NumColoredCells = %v, want [1 1]", coloring.NumColoredCells)
	}
}

func TestReadJSON_ExplicitClasses(t *testing.T) {
	input := `{
	  "cell_type": "triangle",
	  "dim": 2,
	  "vertices": [0, 0, 1, 0, 1, 1, 0, 1],
	  "cells": [[0, 1, 2], [0, 2, 3]],
	  "coloring": {
	    "cell_colors": [1, 0],
	    "colored_cells": [[1], [0]]
	  }
	}`

	m, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	coloring, _ := m.Coloring()
	if !slices.Equal(coloring.ColoredCells[0], []int{1}) {
		t.Errorf("ColoredCells[0] = %v, want [1]", coloring.ColoredCells[0])
	}
	if !slices.Equal(coloring.NumColoredCells, []int{1, 1}) {
		t.Errorf("NumColoredCells = %v, want [1 1]", coloring.NumColoredCells)
	}
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"cell_type": `},
		{"unknown cell type", `{"cell_type": "blob", "dim": 2, "vertices": [], "cells": []}`},
		{"wrong arity", `{"cell_type": "triangle", "dim": 2, "vertices": [0,0,1,0,1,1], "cells": [[0, 1]]}`},
		{"vertex out of range", `{"cell_type": "triangle", "dim": 2, "vertices": [0,0,1,0,1,1], "cells": [[0, 1, 7]]}`},
		{"coloring wrong size", `{"cell_type": "triangle", "dim": 2, "vertices": [0,0,1,0,1,1], "cells": [[0, 1, 2]], "coloring": {"cell_colors": [0, 1]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("ReadJSON() error = %v, want code %v", err, errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(coloredSquare))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON(round trip) error = %v", err)
	}

	if !slices.Equal(back.Geometry().Coordinates(), m.Geometry().Coordinates()) {
		t.Error("round trip changed coordinates")
	}
	for c := 0; c < m.NumCells(); c++ {
		if !slices.Equal(back.CellVertices(c), m.CellVertices(c)) {
			t.Errorf("round trip changed cell %d", c)
		}
	}
	orig, _ := m.Coloring()
	got, ok := back.Coloring()
	if !ok || !slices.Equal(got.CellColors, orig.CellColors) {
		t.Error("round trip lost the coloring")
	}
}

func TestImportJSON_FileNotFound(t *testing.T) {
	_, err := ImportJSON(t.TempDir() + "/missing.json")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON() error = %v, want code %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestExportImportFile(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(coloredSquare))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	path := t.TempDir() + "/square.json"
	if err := ExportJSON(m, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if back.NumCells() != m.NumCells() {
		t.Errorf("NumCells() = %d, want %d", back.NumCells(), m.NumCells())
	}
}
