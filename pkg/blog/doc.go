// Package blog applies the blog chart theme.
//
// Two entry points cover the whole workflow:
//
//   - [Enter] / [With] scope the theme onto a [chart.Config]: the style sheet
//     and the body font are applied for the duration of a block, and the
//     configuration is restored exactly on every exit path.
//   - [Finalize] adds a title block, a caption and the cosmetic spine and
//     tick styling to a finished chart.
//
// # Usage
//
//	cfg := chart.NewConfig()
//	err := blog.With(cfg, func(s *blog.Scope) error {
//	    fig, ax := chart.Subplots(cfg)
//	    if _, err := ax.Bar(categories, values); err != nil {
//	        return err
//	    }
//	    blog.Finalize(fig, ax, blog.Labels{
//	        Title:    "Sample Bar Chart",
//	        Subtitle: "Showing basic data distribution",
//	        Caption:  "Data is for illustration purposes only",
//	    })
//	    return os.WriteFile("chart.svg", chart.RenderSVG(fig), 0o644)
//	})
//
// # Fonts
//
// Role fonts are resolved per call against a [fonts.Registry]; an
// unavailable family silently falls back to the role's generic family.
//
// # Concurrency
//
// A scope mutates the Config it was given. Do not open two scopes on the
// same Config at once; scopes on distinct Configs are independent.
package blog
