// Package stylesheet locates and loads style sheets.
//
// A style sheet is a named bundle of rendering parameters. Three encodings are
// understood, chosen by file extension:
//
//   - .mplstyle: "key : value" lines with '#' comments
//   - .toml: tables flattened to dotted keys ([axes] edgecolor -> axes.edgecolor)
//   - .yaml/.yml: nested maps flattened the same way
//
// Values are normalized to float64, bool or string so that a sheet means
// the same thing whichever encoding it was written in.
package stylesheet

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/errors"
	"github.com/matzehuels/blogplot/styles"
)

const (
	// Dir is the style directory, relative to the project root.
	Dir = "styles"
	// FileName is the blog theme style sheet.
	FileName = "plot_theme.mplstyle"
	// Default names the built-in default style.
	Default = "default"
	// Embedded names the copy of the blog theme compiled into the binary.
	Embedded = "embedded:" + Dir + "/" + FileName
)

// Path returns the location of the blog theme under baseDir.
func Path(baseDir string) string {
	return filepath.Join(baseDir, Dir, FileName)
}

// Locate returns the blog theme path under baseDir and whether a regular
// file exists there.
func Locate(baseDir string) (string, bool) {
	p := Path(baseDir)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return p, false
	}
	return p, true
}

// Load reads and parses the style sheet at path.
func Load(path string) (chart.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeStyleNotFound, err, "style sheet %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read style sheet %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mplstyle", ".rc":
		return Parse(bytes.NewReader(data))
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown style sheet extension %q", ext)
	}
}

// LoadEmbedded parses the blog theme compiled into the binary.
func LoadEmbedded() (chart.Params, error) {
	return Parse(bytes.NewReader(styles.PlotTheme()))
}
