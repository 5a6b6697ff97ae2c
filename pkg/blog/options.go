package blog

import (
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blogplot/pkg/fonts"
)

// Option configures [Enter], [With] and [Finalize].
type Option func(*options)

type options struct {
	logger    *log.Logger
	registry  fonts.Registry
	baseDir   string
	styleFile string

	// embedded allows the compiled-in theme when the sheet is not on disk.
	// Only the default base directory enables it.
	embedded bool
}

// WithLogger sets the logger used for the missing-style warning.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }

// WithRegistry sets the font registry used to resolve role fonts.
func WithRegistry(r fonts.Registry) Option { return func(o *options) { o.registry = r } }

// WithBaseDir sets the directory the theme style sheet is looked up under,
// replacing the project root. A sheet missing from dir is not replaced by
// the embedded copy.
func WithBaseDir(dir string) Option { return func(o *options) { o.baseDir = dir } }

// WithStyleFile applies the style sheet at path instead of the theme sheet.
func WithStyleFile(path string) Option { return func(o *options) { o.styleFile = path } }

func newOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.registry == nil {
		o.registry = fonts.NewSystemRegistry("", o.logger)
	}
	if o.baseDir == "" {
		o.baseDir = ProjectRoot()
		o.embedded = true
	}
	return o
}

// ProjectRoot returns the directory the theme style sheet is resolved
// against by default: two levels above this package's source directory.
// Installed or -trimpath builds have no such directory; they use the theme
// embedded by package styles instead.
func ProjectRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
