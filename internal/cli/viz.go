package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jkoneberg/colormesh/pkg/meshio"
	"github.com/jkoneberg/colormesh/pkg/render/colorviz"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// vizOpts holds the command-line flags for the viz command.
type vizOpts struct {
	output   string // output file path; derived from input when empty
	format   string // output format: "svg" or "dot"
	detailed bool   // include vertex indices in cell labels
}

// newVizCmd creates the viz command for rendering the cell adjacency graph.
// Each cell appears as a node filled with its color class; cells sharing a
// facet are connected.
func newVizCmd() *cobra.Command {
	opts := vizOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "viz [file]",
		Short: "Render the colored cell graph of a mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("invalid format: %s (must be 'svg' or 'dot')", opts.format)
			}
			return runViz(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include vertex indices in cell labels")

	return cmd
}

// runViz loads a mesh and writes its cell graph in the requested format.
func runViz(ctx context.Context, input string, opts *vizOpts) error {
	logger := loggerFromContext(ctx)

	m, err := meshio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded mesh: %d cells, %d vertices", m.NumCells(), m.NumVertices())

	if _, ok := m.Coloring(); !ok {
		printWarning("Mesh has no coloring, cells are drawn white")
	}

	prog := newProgress(logger)
	dot := colorviz.ToDOT(m, colorviz.Options{Detailed: opts.detailed})

	data := []byte(dot)
	if opts.format == formatSVG {
		if data, err = colorviz.RenderSVG(dot); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d cells", m.NumCells()))

	path := opts.output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	printFile(path)
	return nil
}
