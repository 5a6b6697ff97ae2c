package chart

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/blogplot/pkg/errors"
)

// ColorNone disables filling or stroking.
const ColorNone = "none"

// cycle is the default ten-color property cycle, addressable as "C0".."C9".
var cycle = [...]string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"gray":      "#808080",
	"grey":      "#808080",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"orange":    "#ffa500",
	"k":         "#000000",
	"w":         "#ffffff",
	"r":         "#ff0000",
	"g":         "#008000",
	"b":         "#0000ff",
}

// ParseColor resolves a color spec to a color. Accepted specs are hex with or
// without a leading '#', three-digit hex, the cycle names "C0".."C9" and a
// small set of named colors.
func ParseColor(spec string) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if len(s) == 2 && s[0] == 'c' && s[1] >= '0' && s[1] <= '9' {
		s = cycle[s[1]-'0']
	}
	if !strings.HasPrefix(s, "#") && isHex(s) && (len(s) == 3 || len(s) == 6) {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", spec)
	}
	return c, nil
}

// CSSColor returns spec normalized to "#rrggbb", "none" for [ColorNone], or
// fallback when spec cannot be parsed.
func CSSColor(spec, fallback string) string {
	for _, s := range []string{spec, fallback} {
		if strings.EqualFold(strings.TrimSpace(s), ColorNone) {
			return ColorNone
		}
		if c, err := ParseColor(s); err == nil {
			return c.Hex()
		}
	}
	return "#000000"
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
