package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framechart/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file (single format) or base path
	formats   []string // output formats: "svg", "png", "pdf", "json"
	width     int      // overrides the document width
	height    int      // overrides the document height
	scale     float64  // PNG pixel-density factor
	embedFont bool     // embed the TTF in SVG and PDF output
	noCache   bool     // skip the on-disk cache
	refresh   bool     // recompute and overwrite cached entries
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a figure document to SVG, PNG, PDF or JSON",
		Long: `Render a TOML figure document.

With a single format and an --output path the file is written there. With
several formats each one is written next to the base path as BASE.FORMAT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "figure width in pixels (overrides the document)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "figure height in pixels (overrides the document)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().BoolVar(&opts.embedFont, "embed-font", false, "embed the font in SVG and PDF output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached entries and overwrite them")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// completeFormats offers the supported output formats for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var done string
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done = toComplete[:i+1]
	}
	var out []string
	for _, f := range []string{pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON} {
		out = append(out, done+f)
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// runRender executes the pipeline for input and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Rendering "+input+"...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Path:      input,
		Width:     opts.width,
		Height:    opts.height,
		Formats:   opts.formats,
		Scale:     opts.scale,
		EmbedFont: opts.embedFont,
		Refresh:   opts.refresh,
		Logger:    logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	paths := outputPaths(opts.output, input, opts.formats)
	for _, format := range opts.formats {
		if err := writeFile(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", input)
	printStats(result.Stats.PlotCount, result.Stats.ChartCount, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(opts.formats)))
	return nil
}

// outputPaths maps each format to its destination. A single format with an
// explicit output keeps that path as given; "-" writes to stdout.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = out.Write(data)
	return err
}

// openOutput opens path for writing, or stdout for "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
