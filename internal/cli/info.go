package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jkoneberg/colormesh/pkg/meshio"
)

// newInfoCmd creates the info command for inspecting mesh files.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print mesh and coloring statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := meshio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			printKeyValue("file", args[0])
			printKeyValue("cell type", m.CellType().String())
			printKeyValue("dim", strconv.Itoa(m.Geometry().Dim()))
			printKeyValue("cells", strconv.Itoa(m.NumCells()))
			printKeyValue("vertices", strconv.Itoa(m.NumVertices()))

			coloring, ok := m.Coloring()
			if !ok {
				printKeyValue("coloring", "none")
				return nil
			}

			printKeyValue("colors", strconv.Itoa(coloring.NumColors()))
			for color, count := range coloring.NumColoredCells {
				printDetail("color %d: %s", color, cellWord(count))
			}
			return nil
		},
	}
}

func cellWord(n int) string {
	if n == 1 {
		return "1 cell"
	}
	return fmt.Sprintf("%d cells", n)
}
