package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framechart/pkg/pipeline"
)

// layoutCommand creates the layout command, which prints the fitted layout
// as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		width   int
		height  int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Fit a figure document and print its layout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = "-"
			}
			return c.runLayout(cmd.Context(), args[0], output, pipeline.Options{
				Path:   args[0],
				Width:  width,
				Height: height,
			}, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&width, "width", 0, "figure width in pixels (overrides the document)")
	cmd.Flags().IntVar(&height, "height", 0, "figure height in pixels (overrides the document)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input, output string, opts pipeline.Options, noCache bool) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	doc, docHash, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	l, cached, err := runner.FitWithCacheInfo(ctx, doc, docHash, opts)
	if err != nil {
		return err
	}
	logger.Debug("fitted layout", "source", input, "charts", l.Charts(), "cached", cached)

	data, err := pipeline.MarshalLayout(l)
	if err != nil {
		return err
	}
	return writeFile(output, append(data, '\n'))
}
