package chart

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Parameter names understood by the chart model. Style sheets may carry other
// keys; they are kept in the configuration but have no effect on rendering.
const (
	KeyFigureWidth     = "figure.width"
	KeyFigureHeight    = "figure.height"
	KeyFigureFaceColor = "figure.facecolor"
	KeySubplotLeft     = "figure.subplot.left"
	KeySubplotRight    = "figure.subplot.right"
	KeySubplotTop      = "figure.subplot.top"
	KeySubplotBottom   = "figure.subplot.bottom"

	KeyAxesFaceColor   = "axes.facecolor"
	KeyAxesEdgeColor   = "axes.edgecolor"
	KeyAxesLineWidth   = "axes.linewidth"
	KeyAxesLabelColor  = "axes.labelcolor"
	KeyAxesLabelSize   = "axes.labelsize"
	KeyAxesSpinesTop   = "axes.spines.top"
	KeyAxesSpinesRight = "axes.spines.right"
	KeyAxesGrid        = "axes.grid"
	KeyGridColor       = "grid.color"
	KeyGridLineWidth   = "grid.linewidth"

	KeyFontFamily = "font.family"
	KeyFontSize   = "font.size"
	KeyTextColor  = "text.color"

	KeyXTickColor     = "xtick.color"
	KeyXTickLabelSize = "xtick.labelsize"
	KeyXTickWidth     = "xtick.major.width"
	KeyXTickSize      = "xtick.major.size"
	KeyXTickPad       = "xtick.major.pad"
	KeyYTickColor     = "ytick.color"
	KeyYTickLabelSize = "ytick.labelsize"
	KeyYTickWidth     = "ytick.major.width"
	KeyYTickSize      = "ytick.major.size"
	KeyYTickPad       = "ytick.major.pad"

	KeyLinesWidth     = "lines.linewidth"
	KeyLinesColor     = "lines.color"
	KeyPatchFaceColor = "patch.facecolor"

	KeyLegendFrameOn  = "legend.frameon"
	KeyLegendFontSize = "legend.fontsize"
)

// Params maps rendering-option names to values. Values are float64, bool or
// string; loaders normalize other scalar kinds before storing them.
type Params map[string]any

// Defaults returns the built-in default style.
func Defaults() Params {
	return Params{
		KeyFigureWidth:     640.0,
		KeyFigureHeight:    480.0,
		KeyFigureFaceColor: "white",
		KeySubplotLeft:     0.125,
		KeySubplotRight:    0.9,
		KeySubplotTop:      0.88,
		KeySubplotBottom:   0.11,

		KeyAxesFaceColor:   "white",
		KeyAxesEdgeColor:   "black",
		KeyAxesLineWidth:   0.8,
		KeyAxesLabelColor:  "black",
		KeyAxesLabelSize:   10.0,
		KeyAxesSpinesTop:   true,
		KeyAxesSpinesRight: true,
		KeyAxesGrid:        false,
		KeyGridColor:       "#b0b0b0",
		KeyGridLineWidth:   0.8,

		KeyFontFamily: "sans-serif",
		KeyFontSize:   10.0,
		KeyTextColor:  "black",

		KeyXTickColor:     "black",
		KeyXTickLabelSize: 10.0,
		KeyXTickWidth:     0.8,
		KeyXTickSize:      3.5,
		KeyXTickPad:       3.5,
		KeyYTickColor:     "black",
		KeyYTickLabelSize: 10.0,
		KeyYTickWidth:     0.8,
		KeyYTickSize:      3.5,
		KeyYTickPad:       3.5,

		KeyLinesWidth:     1.5,
		KeyLinesColor:     "C0",
		KeyPatchFaceColor: "C0",

		KeyLegendFrameOn:  true,
		KeyLegendFontSize: 10.0,
	}
}

// Clone returns a copy of p that shares no mutable state with it.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []string:
		return slices.Clone(x)
	case []float64:
		return slices.Clone(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Equal reports whether p and o hold the same keys and values.
func (p Params) Equal(o Params) bool {
	if len(p) != len(o) {
		return false
	}
	return reflect.DeepEqual(map[string]any(p), map[string]any(o))
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Float returns the value for key as a float64. Integers and numeric strings
// are converted; anything else yields 0.
func (p Params) Float(key string) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// String returns the value for key formatted as a string.
func (p Params) String(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Bool returns the value for key as a bool. The strings "true", "yes", "on"
// and "1" count as true, case-insensitively.
func (p Params) Bool(key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "on", "1":
			return true
		}
		return false
	case float64:
		return v != 0
	default:
		return false
	}
}
