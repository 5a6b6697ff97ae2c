// Package styles embeds the bundled style sheets.
//
// The sheets are compiled into the binary so that installed builds, which
// have no source checkout to read from, still carry the blog theme.
package styles

import _ "embed"

//go:embed plot_theme.mplstyle
var plotTheme []byte

// PlotTheme returns the blog theme style sheet.
func PlotTheme() []byte {
	return plotTheme
}
