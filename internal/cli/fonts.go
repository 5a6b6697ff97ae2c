package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blogplot/pkg/errors"
	"github.com/matzehuels/blogplot/pkg/fonts"
)

func (c *CLI) fontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "Show which font each text role resolves to",
		Long: `Show the title and body font roles, their preferred families and the
family actually used on this system. A role falls back to its generic family
when the preferred one is not installed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loggerFromContext(cmd.Context()).Debug("resolving role fonts")
			return printFonts(cmd.OutOrStdout(), c.fontRegistry())
		},
	}
}

func printFonts(w io.Writer, reg fonts.Registry) error {
	for i, role := range fonts.Roles {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, StyleTitle.Render(role.Name))
		printKeyValue(w, "preferred", role.Primary)
		printKeyValue(w, "fallback", role.Fallback)

		resolved := fonts.Resolve(reg, role)
		if resolved == role.Primary {
			printKeyValue(w, "resolved", resolved)
		} else {
			printKeyValue(w, "resolved", resolved+" "+StyleDim.Render("(fallback)"))
		}
	}

	if sys, ok := reg.(*fonts.SystemRegistry); ok && sys.Err() != nil {
		printWarning(w, "font scan failed: %s", errors.UserMessage(sys.Err()))
	}
	return nil
}
