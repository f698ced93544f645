package colorviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/jkoneberg/colormesh/pkg/mesh"
)

// Options configures cell graph rendering.
type Options struct {
	// Detailed includes vertex indices in cell labels.
	// When false, only the cell number is shown.
	Detailed bool
}

// palette holds the fill colors used for color classes. Classes beyond its
// length cycle back to the start.
var palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
	"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
}

// ToDOT converts a mesh to Graphviz DOT format, drawing the cell adjacency
// graph. Each cell becomes a node filled with its color class; two cells are
// connected when they share a facet. The resulting DOT string can be rendered
// using [RenderSVG].
//
// Uncolored cells are drawn white.
func ToDOT(m *mesh.Mesh, opts Options) string {
	coloring, colored := m.Coloring()

	var buf bytes.Buffer
	buf.WriteString("graph mesh {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=18];\n")
	buf.WriteString("\n")

	for c := 0; c < m.NumCells(); c++ {
		label := fmtLabel(m, c, opts.Detailed)
		fill := "white"
		if colored {
			fill = palette[coloring.CellColors[c]%len(palette)]
		}
		fmt.Fprintf(&buf, "  %d [label=%q, fillcolor=%q];\n", c, label, fill)
	}

	buf.WriteString("\n")
	for _, e := range facetPairs(m) {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(m *mesh.Mesh, c int, detailed bool) string {
	if !detailed {
		return strconv.Itoa(c)
	}
	verts := m.CellVertices(c)
	parts := make([]string, len(verts))
	for i, v := range verts {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%d\n(%s)", c, strings.Join(parts, ","))
}

// facetPairs returns the pairs of cells that share a facet, each pair once
// with the lower cell number first. Two cells share a facet when they have
// dim common vertices.
func facetPairs(m *mesh.Mesh) [][2]int {
	dim := m.CellType().Dim()
	byVertex := make(map[int][]int, m.NumVertices())
	for c := 0; c < m.NumCells(); c++ {
		for _, v := range m.CellVertices(c) {
			byVertex[v] = append(byVertex[v], c)
		}
	}

	shared := make(map[[2]int]int)
	for _, cells := range byVertex {
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				a, b := cells[i], cells[j]
				if a > b {
					a, b = b, a
				}
				shared[[2]int{a, b}]++
			}
		}
	}

	var pairs [][2]int
	for pair, count := range shared {
		if count >= dim {
			pairs = append(pairs, pair)
		}
	}
	slices.SortFunc(pairs, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return pairs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
