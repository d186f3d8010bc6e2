package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/openmesh-network/meshviz/pkg/errors"
	"github.com/openmesh-network/meshviz/pkg/pipeline"
)

// defaultBaseName is the output file stem when --output is not given.
const defaultBaseName = "openmesh-cloud"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	nodes      int
	allocation float64
	output     string   // output file (single format) or base path (multiple)
	vizType    string   // "rings" or "nodelink"
	formats    []string // svg, json, dot, png, pdf
	title      string
	showTitle  bool
	dark       bool
	hover      bool
	scale      float64
	clamp      bool
	noCache    bool
	refresh    bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the cloud stack to SVG, PNG, PDF, JSON or DOT",
		Example: `  meshviz render
  meshviz render --nodes 80 --allocation 35 -f svg,png -o stack
  meshviz render -t nodelink -f svg,dot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("nodes") {
				opts.nodes = c.cfg.Defaults.NodeCount
			}
			if !cmd.Flags().Changed("allocation") {
				opts.allocation = c.cfg.Defaults.AllocationPercent
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", 0, "number of XNodes [10-100] (default from config, 58)")
	cmd.Flags().Float64VarP(&opts.allocation, "allocation", "a", 0, "resource allocation percent [1-100] (default from config, 10)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.vizType, "type", "t", pipeline.DefaultVizType, "visualization type: rings, nodelink")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "title text (implies --show-title)")
	cmd.Flags().BoolVar(&opts.showTitle, "show-title", false, "draw the title above the scene")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "dark theme with background")
	cmd.Flags().BoolVar(&opts.hover, "hover", false, "embed hover highlighting script in SVG")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&opts.clamp, "clamp", false, "clamp out-of-range values instead of failing")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(
		[]string{pipeline.VizTypeRings, pipeline.VizTypeNodelink}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// formatNames lists output formats in the order completion offers them.
var formatNames = []string{
	pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON, pipeline.FormatDOT,
}

// completeFormats completes the format after the last comma of a --format
// list, skipping formats already in it.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	chosen := parseFormats(prefix)
	var out []string
	for _, f := range formatNames {
		if prefix != "" && slices.Contains(chosen, f) {
			continue
		}
		out = append(out, prefix+f)
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// outputPaths maps each format to the file it is written to. A single format
// with an explicit output uses that path verbatim; otherwise the output (or
// the default stem) gets one extension per format, after stripping a known
// format extension.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := output
	if base == "" {
		base = defaultBaseName
	}
	if ext := strings.TrimPrefix(filepath.Ext(base), "."); pipeline.ValidFormats[ext] {
		base = strings.TrimSuffix(base, "."+ext)
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func (o *renderOpts) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		NodeCount:  o.nodes,
		Allocation: o.allocation,
		Clamp:      o.clamp,
		VizType:    o.vizType,
		Formats:    o.formats,
		Title:      o.title,
		ShowTitle:  o.showTitle || o.title != "",
		Dark:       o.dark,
		Hover:      o.hover,
		Scale:      o.scale,
		Refresh:    o.refresh,
	}
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	paths := outputPaths(opts.output, opts.formats)
	for _, p := range paths {
		if err := errs.ValidateOutputPath(p); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	po := opts.pipelineOptions()
	po.Layout = c.cfg.Layout
	po.Logger = logger

	var spinner *Spinner
	if slices.Contains(opts.formats, pipeline.FormatPNG) || slices.Contains(opts.formats, pipeline.FormatPDF) || opts.vizType == pipeline.VizTypeNodelink {
		spinner = newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s view", opts.vizType))
		spinner.Start()
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, po)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	written := make([]string, 0, len(paths))
	for _, format := range opts.formats {
		path := paths[format]
		if slices.Contains(written, path) {
			continue
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidPath, err, "write %s", path)
		}
		written = append(written, path)
	}
	prog.done("rendered", "files", len(written), "cached", result.CacheInfo.Hits)

	p := result.Scene.Params
	printSuccess("Rendered %s view (%d XNodes, %v%% allocated)", po.VizType, p.NodeCount, p.AllocationPercent)
	printStats(result.Stats.NodeCount, result.Stats.VMCount, result.Stats.ConnectionCount, result.CacheInfo.RenderHit)
	for _, path := range written {
		printFile(path)
	}
	printNextStep("Explore interactively", appName+" serve")
	return nil
}
