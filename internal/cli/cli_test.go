package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/errors"
	"github.com/matzehuels/blogplot/pkg/fonts"
)

// newTestCLI returns a CLI with a fixed font registry and a captured log.
func newTestCLI(installed ...string) (*CLI, *bytes.Buffer) {
	var logs bytes.Buffer
	return &CLI{
		Logger:   newLogger(&logs, LogDebug),
		registry: fonts.NewStaticRegistry(installed...),
	}, &logs
}

func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommands(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()

	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, want := range []string{"completion", "example", "fonts", "style"} {
		found := false
		for _, name := range got {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("root command missing %q (have %v)", want, got)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{chart.FormatSVG}},
		{"svg", []string{"svg"}},
		{"SVG, png ,pdf", []string{"svg", "png", "pdf"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		base, format, want string
	}{
		{"chart.svg", "svg", "chart.svg"},
		{"chart.svg", "png", "chart.png"},
		{"out/chart", "pdf", "out/chart.pdf"},
		{"chart.SVG", "svg", "chart.SVG"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.base, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.base, tt.format, got, tt.want)
		}
	}
}

func TestFormatParam(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{true, "True"},
		{false, "False"},
		{2.8, "2.8"},
		{720.0, "720"},
		{"sans-serif", "sans-serif"},
		{"#e6e6e6", `"#e6e6e6"`},
		{"True", `"True"`},
		{"10", `"10"`},
		{"", `""`},
	}
	for _, tt := range tests {
		if got := formatParam(tt.in); got != tt.want {
			t.Errorf("formatParam(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExampleCommand(t *testing.T) {
	c, logs := newTestCLI("Lora", "Poppins")
	out := filepath.Join(t.TempDir(), "chart.svg")

	stdout, err := execute(t, c, "example", "-o", out)
	if err != nil {
		t.Fatalf("example: %v", err)
	}
	if !strings.Contains(stdout, out) {
		t.Errorf("stdout = %q, want written path", stdout)
	}
	if !strings.Contains(logs.String(), "Rendered example chart") {
		t.Errorf("log = %q, want completion message", logs.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	for _, want := range []string{
		"Sample Bar Chart",
		"Showing basic data distribution",
		"Data is for illustration purposes only",
		"Lora",
		"Poppins",
		"#d93649",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestExampleCommandRejectsFormat(t *testing.T) {
	c, _ := newTestCLI()
	out := filepath.Join(t.TempDir(), "chart.svg")

	_, err := execute(t, c, "example", "-o", out, "--format", "gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("err = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an invalid format")
	}
}

func TestExampleCommandMissingStyle(t *testing.T) {
	c, logs := newTestCLI()
	out := filepath.Join(t.TempDir(), "chart.svg")

	stdout, err := execute(t, c, "example", "-o", out, "--style-dir", t.TempDir())
	if err != nil {
		t.Fatalf("example: %v", err)
	}
	if !strings.Contains(stdout, "default style") {
		t.Errorf("stdout = %q, want default style warning", stdout)
	}
	if !strings.Contains(logs.String(), "style file not found") {
		t.Errorf("log = %q, want missing style warning", logs.String())
	}
}

func TestFontsCommand(t *testing.T) {
	c, _ := newTestCLI("Lora")

	stdout, err := execute(t, c, "fonts")
	if err != nil {
		t.Fatalf("fonts: %v", err)
	}
	for _, want := range []string{"title", "body", "Lora", "Poppins", "sans-serif", "(fallback)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("fonts output missing %q:\n%s", want, stdout)
		}
	}
}

func TestStyleCommand(t *testing.T) {
	c, _ := newTestCLI("Poppins")

	stdout, err := execute(t, c, "style", "--prefix", "axes.spines")
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	for _, want := range []string{"plot_theme.mplstyle", "axes.spines.top : False", "axes.spines.right : False"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("style output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "font.family") {
		t.Error("prefix filter should exclude font.family")
	}
}

func TestStyleCommandBodyFont(t *testing.T) {
	c, _ := newTestCLI()

	stdout, err := execute(t, c, "style", "--prefix", "font.family", "--style-dir", t.TempDir())
	if err != nil {
		t.Fatalf("style: %v", err)
	}
	if !strings.Contains(stdout, "# source: default") {
		t.Errorf("style output = %q, want default source", stdout)
	}
	if !strings.Contains(stdout, "font.family : sans-serif") {
		t.Errorf("style output = %q, want generic body font", stdout)
	}
}

func TestCompletionCommand(t *testing.T) {
	c, _ := newTestCLI()

	stdout, err := execute(t, c, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(stdout, appName) {
		t.Error("bash completion should mention the program name")
	}

	if _, err := execute(t, c, "completion", "tcsh"); err == nil {
		t.Error("unknown shell should be rejected")
	}
}
