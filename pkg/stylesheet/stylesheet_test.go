package stylesheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/errors"
)

func TestParse(t *testing.T) {
	input := `
# comment line
font.size : 11
axes.spines.top: False
axes.grid : true
text.color : "#333333"   # trailing comment
axes.edgecolor : e6e6e6
font.family : Poppins
`
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := chart.Params{
		"font.size":       11.0,
		"axes.spines.top": false,
		"axes.grid":       true,
		"text.color":      "#333333",
		"axes.edgecolor":  "e6e6e6",
		"font.family":     "Poppins",
	}
	if !got.Equal(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParseDigitOnlyHexColors(t *testing.T) {
	input := "text.color : 000000\naxes.edgecolor : 001122\nfigure.dpi : 100\n"
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		key     string
		wantCSS string
	}{
		{chart.KeyTextColor, "#000000"},
		{chart.KeyAxesEdgeColor, "#001122"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if css := chart.CSSColor(got.String(tt.key), "#ff0000"); css != tt.wantCSS {
				t.Errorf("%s = %v (css %q), want %q", tt.key, got[tt.key], css, tt.wantCSS)
			}
		})
	}

	if v, ok := got["figure.dpi"].(float64); !ok || v != 100 {
		t.Errorf("figure.dpi = %#v, want float64 100", got["figure.dpi"])
	}
}

func TestCoerceKeepsNumericReadable(t *testing.T) {
	p := chart.Params{"agg.path.chunksize": Coerce("100000")}
	if p.Float("agg.path.chunksize") != 100000 {
		t.Errorf("Float() = %v, want 100000", p.Float("agg.path.chunksize"))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing colon", "font.size 11"},
		{"empty key", ": 11"},
		{"bad key", "axes..grid : true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("Parse(%q) error = %v, want %s", tt.input, err, errors.ErrCodeInvalidStyle)
			}
		})
	}
}

func TestParseTOML(t *testing.T) {
	input := `
[font]
size = 12
family = "Lora"

[axes]
edgecolor = "#e6e6e6"
spines = { top = false, right = false }

[figure.subplot]
top = 0.9
`
	got, err := ParseTOML([]byte(input))
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}

	want := chart.Params{
		"font.size":          12.0,
		"font.family":        "Lora",
		"axes.edgecolor":     "#e6e6e6",
		"axes.spines.top":    false,
		"axes.spines.right":  false,
		"figure.subplot.top": 0.9,
	}
	if !got.Equal(want) {
		t.Errorf("ParseTOML() = %v, want %v", got, want)
	}
}

func TestParseYAML(t *testing.T) {
	input := `
font:
  size: 12
  family: Poppins
axes:
  grid: true
  prop_cycle: [a, b]
`
	got, err := ParseYAML([]byte(input))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}

	want := chart.Params{
		"font.size":       12.0,
		"font.family":     "Poppins",
		"axes.grid":       true,
		"axes.prop_cycle": "a, b",
	}
	if !got.Equal(want) {
		t.Errorf("ParseYAML() = %v, want %v", got, want)
	}
}

func TestParseStructuredErrors(t *testing.T) {
	if _, err := ParseTOML([]byte("[font\nsize = 1")); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("ParseTOML(malformed) error = %v, want %s", err, errors.ErrCodeInvalidStyle)
	}
	if _, err := ParseYAML([]byte("font: [unclosed")); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("ParseYAML(malformed) error = %v, want %s", err, errors.ErrCodeInvalidStyle)
	}
}

func TestLocate(t *testing.T) {
	base := t.TempDir()

	if p, ok := Locate(base); ok {
		t.Errorf("Locate() = %q, true on empty dir", p)
	}

	writeFile(t, Path(base), "font.size : 11\n")

	p, ok := Locate(base)
	if !ok {
		t.Fatal("Locate() = false after creating style sheet")
	}
	if want := filepath.Join(base, "styles", "plot_theme.mplstyle"); p != want {
		t.Errorf("Locate() = %q, want %q", p, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.Code
		wantSize float64
	}{
		{"mplstyle", "a.mplstyle", "font.size : 9\n", "", 9},
		{"toml", "a.toml", "[font]\nsize = 8\n", "", 8},
		{"yaml", "a.yaml", "font:\n  size: 7\n", "", 7},
		{"unknown extension", "a.json", "{}", errors.ErrCodeInvalidFormat, 0},
		{"missing", "", "", errors.ErrCodeStyleNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "missing.mplstyle")
			if tt.file != "" {
				path = filepath.Join(dir, tt.file)
				writeFile(t, path, tt.content)
			}

			got, err := Load(path)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Load() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if size := got.Float(chart.KeyFontSize); size != tt.wantSize {
				t.Errorf("font.size = %v, want %v", size, tt.wantSize)
			}
		})
	}
}

func TestBundledTheme(t *testing.T) {
	params, err := Load(filepath.Join("..", "..", Dir, FileName))
	if err != nil {
		t.Fatalf("Load(bundled theme) error = %v", err)
	}
	if params.Bool(chart.KeyAxesSpinesTop) {
		t.Error("bundled theme should hide the top spine")
	}
	if got := chart.CSSColor(params.String(chart.KeyAxesEdgeColor), "black"); got != "#e6e6e6" {
		t.Errorf("axes.edgecolor = %q, want #e6e6e6", got)
	}
}

func TestLoadEmbedded(t *testing.T) {
	embedded, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	onDisk, err := Load(filepath.Join("..", "..", Dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !embedded.Equal(onDisk) {
		t.Errorf("embedded theme = %v, want %v", embedded, onDisk)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
