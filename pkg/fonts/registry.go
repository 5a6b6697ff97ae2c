package fonts

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-text/typesetting/fontscan"

	"github.com/matzehuels/blogplot/pkg/errors"
)

// StaticRegistry reports a fixed set of families as available. Generic
// families are always available. Matching is case-insensitive.
type StaticRegistry struct {
	families map[string]bool
}

// NewStaticRegistry returns a registry that knows exactly the given families.
func NewStaticRegistry(families ...string) *StaticRegistry {
	r := &StaticRegistry{families: make(map[string]bool, len(families))}
	for _, f := range families {
		r.families[normalize(f)] = true
	}
	return r
}

func (r *StaticRegistry) Available(family string) bool {
	return IsGeneric(family) || r.families[normalize(family)]
}

// SystemRegistry queries the fonts installed on the host. The first lookup
// scans the system font directories; the scan index is persisted under
// cacheDir so later processes start quickly.
//
// SystemRegistry is safe for concurrent use.
type SystemRegistry struct {
	cacheDir string
	logger   *log.Logger

	once sync.Once
	mu   sync.Mutex
	fm   *fontscan.FontMap
	err  error
}

// NewSystemRegistry creates a registry backed by the system font index.
// An empty cacheDir lets the scanner choose its default cache location.
// A nil logger uses log.Default().
func NewSystemRegistry(cacheDir string, logger *log.Logger) *SystemRegistry {
	if logger == nil {
		logger = log.Default()
	}
	return &SystemRegistry{cacheDir: cacheDir, logger: logger}
}

// Available reports whether family is installed. Generic families are always
// available; when the system index cannot be built every named family is
// reported unavailable.
func (r *SystemRegistry) Available(family string) bool {
	if IsGeneric(family) {
		return true
	}
	if r.load() != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.fm.FindSystemFont(family)
	r.logger.Debug("font lookup", "family", family, "available", ok)
	return ok
}

// Err returns the error from the system scan, if any.
func (r *SystemRegistry) Err() error {
	return r.load()
}

func (r *SystemRegistry) load() error {
	r.once.Do(func() {
		fm := fontscan.NewFontMap(scanLogger{r.logger})
		if err := fm.UseSystemFonts(r.cacheDir); err != nil {
			r.err = errors.Wrap(errors.ErrCodeFontRegistry, err, "scan system fonts")
			r.logger.Warn("system font scan failed, named fonts will fall back", "err", err)
			return
		}
		r.fm = fm
	})
	return r.err
}

// scanLogger routes fontscan's diagnostics to debug level.
type scanLogger struct{ l *log.Logger }

func (s scanLogger) Printf(format string, args ...interface{}) { s.l.Debugf(format, args...) }
