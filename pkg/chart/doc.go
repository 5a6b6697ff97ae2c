// Package chart is a small figure/axes chart model with an SVG renderer.
//
// # Configuration
//
// Rendering defaults live in a [Config], a mutable map of named parameters
// ([Params]) in the spirit of matplotlib's rc parameters:
//
//	cfg := chart.NewConfig()
//	cfg.Set(chart.KeyFontSize, 12.0)
//	saved := cfg.Snapshot()
//	// ... change things ...
//	cfg.Restore(saved)
//
// There is no package-level configuration. Each figure copies the parameters
// of the Config it was created from, so changing a Config never alters a
// figure that already exists.
//
// # Figures and Axes
//
// [Subplots] returns a figure with a single plotting area:
//
//	fig, ax := chart.Subplots(cfg)
//	bars, _ := ax.Bar([]string{"A", "B"}, []float64{3, 5})
//	bars[1].SetColor("#D93649")
//	ax.Text(-0.08, 1.05, "Title", chart.WithAlign(chart.HAlignLeft, chart.VAlignBottom))
//	fig.Text(0.98, -0.025, "Source: example", chart.WithAlign(chart.HAlignRight, chart.VAlignBottom))
//
// Axes texts use axes coordinates and figure texts use figure coordinates.
// In both, (0,0) is the bottom-left corner and (1,1) is the top-right corner.
//
// # Output
//
// [RenderSVG] produces a deterministic SVG document. [ToPNG] and [ToPDF]
// convert it with the external rsvg-convert tool, and [Export] picks the
// conversion by format name.
package chart
