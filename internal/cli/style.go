package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blogplot/pkg/blog"
	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/stylesheet"
)

type styleOpts struct {
	styleDir  string
	styleFile string
	prefix    string
}

func (c *CLI) styleCommand() *cobra.Command {
	var opts styleOpts

	cmd := &cobra.Command{
		Use:   "style",
		Short: "Print the parameters in effect inside the blog style",
		Long: `Print every configuration parameter as it is set while the blog style is
active, one "key : value" line each. The output is itself a valid style sheet.

` + styleLookupHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStyle(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	addStyleFlags(cmd, &opts.styleDir, &opts.styleFile)
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "only print keys starting with this prefix")

	return cmd
}

func (c *CLI) runStyle(ctx context.Context, w io.Writer, opts styleOpts) error {
	logger := loggerFromContext(ctx)
	cfg := chart.NewConfig()

	return blog.With(cfg, func(s *blog.Scope) error {
		fmt.Fprintf(w, "# source: %s\n", s.StyleSource())
		params := cfg.Snapshot()
		for _, key := range params.Keys() {
			if !strings.HasPrefix(key, opts.prefix) {
				continue
			}
			fmt.Fprintf(w, "%s : %s\n", key, formatParam(params[key]))
		}
		return nil
	}, scopeOptions(logger, c.fontRegistry(), opts.styleDir, opts.styleFile)...)
}

// formatParam renders a parameter value in style sheet syntax.
func formatParam(v any) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		// Quote strings that would otherwise read back as another type or
		// lose a trailing comment.
		if _, plain := stylesheet.Coerce(x).(string); !plain || x == "" || strings.Contains(x, "#") {
			return strconv.Quote(x)
		}
		return x
	default:
		return fmt.Sprint(x)
	}
}
