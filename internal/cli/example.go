package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/blogplot/pkg/blog"
	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/errors"
	"github.com/matzehuels/blogplot/pkg/fonts"
	"github.com/matzehuels/blogplot/pkg/stylesheet"
)

// exampleOpts holds the command-line flags for the example command.
type exampleOpts struct {
	output    string   // output file path (extension replaced per format)
	formats   []string // output formats: "svg", "png", "pdf"
	styleDir  string   // directory holding styles/plot_theme.mplstyle
	styleFile string   // explicit style sheet, overrides styleDir
	labels    blog.Labels
}

func (c *CLI) exampleCommand() *cobra.Command {
	var formatsStr string
	opts := exampleOpts{
		output: "example.svg",
		labels: blog.Labels{
			Title:    "Sample Bar Chart",
			Subtitle: "Showing basic data distribution",
			Caption:  "Data is for illustration purposes only",
		},
	}

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Render the demonstration bar chart in the blog style",
		Long: `Render the demonstration bar chart in the blog style.

` + styleLookupHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := errors.ValidateFormats(opts.formats, chart.Formats...); err != nil {
				return err
			}
			return c.runExample(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output formats: svg, png, pdf (comma-separated)")
	addStyleFlags(cmd, &opts.styleDir, &opts.styleFile)
	cmd.Flags().StringVar(&opts.labels.Title, "title", opts.labels.Title, "chart title")
	cmd.Flags().StringVar(&opts.labels.Subtitle, "subtitle", opts.labels.Subtitle, "chart subtitle")
	cmd.Flags().StringVar(&opts.labels.Caption, "caption", opts.labels.Caption, "chart caption")

	return cmd
}

func (c *CLI) runExample(ctx context.Context, w io.Writer, opts exampleOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	reg := c.fontRegistry()
	cfg := chart.NewConfig()

	var written []string
	err := blog.With(cfg, func(s *blog.Scope) error {
		if s.StyleSource() == stylesheet.Default {
			printWarning(w, "theme style sheet not found, rendering with the default style")
		}
		fig, err := exampleChart(cfg, opts.labels, blog.WithRegistry(reg), blog.WithLogger(logger))
		if err != nil {
			return err
		}
		for _, format := range opts.formats {
			data, err := chart.Export(fig, format)
			if err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}
			path := outputPath(opts.output, format)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, path)
		}
		return nil
	}, scopeOptions(logger, reg, opts.styleDir, opts.styleFile)...)
	if err != nil {
		return err
	}

	prog.done("Rendered example chart")
	printSuccess(w, "Example chart")
	for _, p := range written {
		printFile(w, p)
	}
	return nil
}

// exampleChart draws a five-bar chart with one highlighted bar and finishes
// it in the blog style. It must run inside a blog scope on cfg.
func exampleChart(cfg *chart.Config, labels blog.Labels, opts ...blog.Option) (*chart.Figure, error) {
	fig, ax := chart.Subplots(cfg)

	bars, err := ax.Bar(
		[]string{"A", "B", "C", "D", "E"},
		[]float64{10, 15, 7, 12, 9},
		chart.WithColor("#7AB5CC"),
	)
	if err != nil {
		return nil, err
	}
	bars[1].SetColor("#D93649")

	ax.SetXLabel("Category")
	ax.SetYLabel("Value")

	blog.Finalize(fig, ax, labels, opts...)
	return fig, nil
}

// scopeOptions builds the blog scope options shared by commands.
func scopeOptions(logger *log.Logger, reg fonts.Registry, styleDir, styleFile string) []blog.Option {
	opts := []blog.Option{blog.WithLogger(logger), blog.WithRegistry(reg)}
	if styleDir != "" {
		opts = append(opts, blog.WithBaseDir(styleDir))
	}
	if styleFile != "" {
		opts = append(opts, blog.WithStyleFile(styleFile))
	}
	return opts
}

const styleLookupHelp = `The theme is read from styles/plot_theme.mplstyle under the source checkout,
falling back to the copy compiled into the binary. --style-dir reads it from
another root (no fallback to the compiled copy) and --style applies any sheet.`

func addStyleFlags(cmd *cobra.Command, styleDir, styleFile *string) {
	cmd.Flags().StringVar(styleDir, "style-dir", "", "project root containing styles/plot_theme.mplstyle")
	cmd.Flags().StringVar(styleFile, "style", "", "style sheet file (.mplstyle, .toml, .yaml)")
}

// outputPath returns base with its extension replaced by format.
func outputPath(base, format string) string {
	ext := filepath.Ext(base)
	if strings.EqualFold(ext, "."+format) {
		return base
	}
	return strings.TrimSuffix(base, ext) + "." + format
}
