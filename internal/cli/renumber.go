package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jkoneberg/colormesh/pkg/errors"
	"github.com/jkoneberg/colormesh/pkg/pipeline"
)

// renumberOpts holds the command-line flags for the renumber command.
type renumberOpts struct {
	output  string // output file path; derived from input when empty
	refresh bool   // recompute even when a cached result exists
	noCache bool   // disable the result cache
}

// newRenumberCmd creates the renumber command. It loads a colored mesh from
// a JSON file, reorders vertices and cells so that same-colored cells are
// contiguous, and writes the result.
//
// Results are cached by content hash of the input mesh; --refresh forces
// recomputation and --no-cache disables caching entirely.
func newRenumberCmd() *cobra.Command {
	var opts renumberOpts

	cmd := &cobra.Command{
		Use:   "renumber [file]",
		Short: "Renumber a colored mesh by cell color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenumber(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>_renumbered.json)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// outputPath derives the output file path from the input path when no
// explicit output is given (mesh.json -> mesh_renumbered.json).
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_renumbered" + ext
}

// runRenumber executes the renumbering pipeline for a single input file.
func runRenumber(ctx context.Context, input string, opts *renumberOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := newCache(ctx, cfg, opts.noCache)
	if err != nil {
		printWarning("Cache unavailable, continuing without: %v", err)
		c = nil
	}

	runner := pipeline.NewRunner(c, logger)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Renumbering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:   input,
		Output:  outputPath(opts.output, input),
		Refresh: opts.refresh,
		NoCache: opts.noCache,
		TTL:     cacheTTL(cfg),
		Logger:  logger,
	})
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	printSuccess("Renumbered %s", input)
	printStats(result.Stats.CellCount, result.Stats.VertexCount, result.Stats.ColorCount,
		result.CacheInfo.RenumberHit)
	printFile(outputPath(opts.output, input))

	return nil
}
