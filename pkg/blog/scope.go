package blog

import (
	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/fonts"
	"github.com/matzehuels/blogplot/pkg/stylesheet"
)

// Scope is an open application of the blog theme to a [chart.Config].
// Close it with [Scope.Exit], or use [With] to have that done for you.
type Scope struct {
	cfg    *chart.Config
	saved  chart.Params
	source string
	fonts  fonts.Resolution
	exited bool
}

// Enter captures cfg, applies the theme style sheet and sets the body role
// font as the default text family.
//
// A missing or unreadable style sheet is not an error: the built-in default
// style is applied instead and a warning is logged. Without [WithBaseDir] or
// [WithStyleFile], a theme absent from the project root is taken from the
// copy embedded in the binary.
func Enter(cfg *chart.Config, opts ...Option) *Scope {
	o := newOptions(opts...)
	s := &Scope{cfg: cfg, saved: cfg.Snapshot()}
	defer func() {
		if r := recover(); r != nil {
			cfg.Restore(s.saved)
			panic(r)
		}
	}()

	s.source = applyStyle(cfg, o)
	s.fonts = fonts.ResolveRoles(o.registry)
	cfg.Set(chart.KeyFontFamily, s.fonts.Body)
	o.logger.Debug("blog style applied", "style", s.source, "title_font", s.fonts.Title, "body_font", s.fonts.Body)
	return s
}

func applyStyle(cfg *chart.Config, o options) string {
	path := o.styleFile
	if path == "" {
		p, ok := stylesheet.Locate(o.baseDir)
		if !ok && o.embedded {
			return applyEmbedded(cfg, o, p)
		}
		if !ok {
			o.logger.Warn("style file not found, using default style", "path", p)
			cfg.Use(nil)
			return stylesheet.Default
		}
		path = p
	}

	params, err := stylesheet.Load(path)
	if err != nil {
		o.logger.Warn("style file unusable, using default style", "path", path, "err", err)
		cfg.Use(nil)
		return stylesheet.Default
	}
	cfg.Update(params)
	return path
}

func applyEmbedded(cfg *chart.Config, o options, missing string) string {
	params, err := stylesheet.LoadEmbedded()
	if err != nil {
		o.logger.Warn("embedded style unusable, using default style", "err", err)
		cfg.Use(nil)
		return stylesheet.Default
	}
	o.logger.Debug("style file not on disk, using embedded theme", "path", missing)
	cfg.Update(params)
	return stylesheet.Embedded
}

// Exit restores the configuration captured by [Enter]. Calling Exit more
// than once has no further effect.
func (s *Scope) Exit() {
	if s.exited {
		return
	}
	s.exited = true
	s.cfg.Restore(s.saved)
}

// StyleSource returns the applied style sheet path, [stylesheet.Embedded]
// for the compiled-in theme, or [stylesheet.Default] when the built-in style
// was used.
func (s *Scope) StyleSource() string { return s.source }

// Fonts returns the role fonts resolved on entry.
func (s *Scope) Fonts() fonts.Resolution { return s.fonts }

// With runs fn inside a blog style scope on cfg. The configuration is
// restored when fn returns, fails or panics.
func With(cfg *chart.Config, fn func(*Scope) error, opts ...Option) error {
	s := Enter(cfg, opts...)
	defer s.Exit()
	return fn(s)
}
