package chart

import (
	"github.com/matzehuels/blogplot/pkg/errors"
)

// Side names one border of the plotting area.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideTop    Side = "top"
)

// Sides lists the spines in drawing order.
var Sides = []Side{SideLeft, SideRight, SideBottom, SideTop}

// Spine is one border line of the plotting area.
type Spine struct {
	Side      Side
	EdgeColor string
	LineWidth float64
	Visible   bool
}

// Which selects the axis a tick setting applies to.
type Which string

const (
	AxisX    Which = "x"
	AxisY    Which = "y"
	AxisBoth Which = "both"
)

// TickStyle describes major tick marks.
type TickStyle struct {
	Color  string
	Width  float64 // Stroke width in points
	Length float64 // Mark length in points
	Pad    float64 // Distance between mark and label in points
}

// Bar is one rectangle of a bar series.
type Bar struct {
	Category string
	Value    float64
	Color    string
	Label    string
}

// SetColor changes the fill color of the bar.
func (b *Bar) SetColor(c string) { b.Color = c }

// Line is a polyline series.
type Line struct {
	X, Y  []float64
	Color string
	Width float64
	Label string
}

// ArtistOption configures a bar or line series.
type ArtistOption func(*artistOpts)

type artistOpts struct {
	label string
	color string
	width float64
}

func WithLabel(label string) ArtistOption  { return func(o *artistOpts) { o.label = label } }
func WithColor(color string) ArtistOption  { return func(o *artistOpts) { o.color = color } }
func WithLineWidth(w float64) ArtistOption { return func(o *artistOpts) { o.width = w } }

// Axes is a single plotting region inside a figure.
type Axes struct {
	FaceColor string
	XLabel    string
	YLabel    string
	Grid      bool

	fig        *Figure
	spines     map[Side]*Spine
	xTicks     TickStyle
	yTicks     TickStyle
	texts      []*Text
	bars       []*Bar
	categories []string
	lines      []*Line
	legend     *Legend
}

func newAxes(f *Figure) *Axes {
	rc := f.rc
	ax := &Axes{
		FaceColor: rc.String(KeyAxesFaceColor),
		Grid:      rc.Bool(KeyAxesGrid),
		fig:       f,
		spines:    make(map[Side]*Spine, len(Sides)),
		xTicks: TickStyle{
			Color:  rc.String(KeyXTickColor),
			Width:  rc.Float(KeyXTickWidth),
			Length: rc.Float(KeyXTickSize),
			Pad:    rc.Float(KeyXTickPad),
		},
		yTicks: TickStyle{
			Color:  rc.String(KeyYTickColor),
			Width:  rc.Float(KeyYTickWidth),
			Length: rc.Float(KeyYTickSize),
			Pad:    rc.Float(KeyYTickPad),
		},
	}
	for _, side := range Sides {
		visible := true
		switch side {
		case SideTop:
			visible = rc.Bool(KeyAxesSpinesTop)
		case SideRight:
			visible = rc.Bool(KeyAxesSpinesRight)
		}
		ax.spines[side] = &Spine{
			Side:      side,
			EdgeColor: rc.String(KeyAxesEdgeColor),
			LineWidth: rc.Float(KeyAxesLineWidth),
			Visible:   visible,
		}
	}
	return ax
}

// Figure returns the figure the axes belongs to.
func (a *Axes) Figure() *Figure { return a.fig }

// Spine returns the spine on the given side.
func (a *Axes) Spine(side Side) *Spine { return a.spines[side] }

// Spines returns all spines in [Sides] order.
func (a *Axes) Spines() []*Spine {
	out := make([]*Spine, 0, len(Sides))
	for _, side := range Sides {
		out = append(out, a.spines[side])
	}
	return out
}

// TickParams sets the major tick style of the selected axes.
func (a *Axes) TickParams(which Which, style TickStyle) {
	if which == AxisX || which == AxisBoth {
		a.xTicks = style
	}
	if which == AxisY || which == AxisBoth {
		a.yTicks = style
	}
}

func (a *Axes) XTicks() TickStyle { return a.xTicks }
func (a *Axes) YTicks() TickStyle { return a.yTicks }

// Text adds a text in axes coordinates.
func (a *Axes) Text(x, y float64, s string, opts ...TextOption) *Text {
	t := newText(a.fig.rc, AxesCoords, x, y, s, opts...)
	a.texts = append(a.texts, t)
	return t
}

// Texts returns the axes-level texts in insertion order.
func (a *Axes) Texts() []*Text { return a.texts }

func (a *Axes) SetXLabel(s string) { a.XLabel = s }
func (a *Axes) SetYLabel(s string) { a.YLabel = s }

// Bar adds a categorical bar series. Categories already present on the axes
// are reused; new ones are appended to the category axis.
func (a *Axes) Bar(categories []string, values []float64, opts ...ArtistOption) ([]*Bar, error) {
	if len(categories) != len(values) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"bar: %d categories but %d values", len(categories), len(values))
	}
	o := artistOpts{color: a.fig.rc.String(KeyPatchFaceColor)}
	for _, opt := range opts {
		opt(&o)
	}
	bars := make([]*Bar, len(values))
	for i, c := range categories {
		a.addCategory(c)
		bars[i] = &Bar{Category: c, Value: values[i], Color: o.color}
	}
	if len(bars) > 0 {
		bars[0].Label = o.label
	}
	a.bars = append(a.bars, bars...)
	return bars, nil
}

func (a *Axes) addCategory(c string) {
	for _, existing := range a.categories {
		if existing == c {
			return
		}
	}
	a.categories = append(a.categories, c)
}

// Bars returns all bars in insertion order.
func (a *Axes) Bars() []*Bar { return a.bars }

// Categories returns the category axis labels.
func (a *Axes) Categories() []string { return a.categories }

// Plot adds a line series.
func (a *Axes) Plot(xs, ys []float64, opts ...ArtistOption) (*Line, error) {
	if len(xs) != len(ys) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"plot: x has %d points but y has %d", len(xs), len(ys))
	}
	o := artistOpts{
		color: a.fig.rc.String(KeyLinesColor),
		width: a.fig.rc.Float(KeyLinesWidth),
	}
	for _, opt := range opts {
		opt(&o)
	}
	l := &Line{X: xs, Y: ys, Color: o.color, Width: o.width, Label: o.label}
	a.lines = append(a.lines, l)
	return l, nil
}

// Lines returns all line series in insertion order.
func (a *Axes) Lines() []*Line { return a.lines }

// Legend creates (or recreates) the legend from every labeled series.
func (a *Axes) Legend(opts ...LegendOption) *Legend {
	lg := &Legend{
		FrameOn:  a.fig.rc.Bool(KeyLegendFrameOn),
		FontSize: a.fig.rc.Float(KeyLegendFontSize),
	}
	for _, b := range a.bars {
		if b.Label != "" {
			lg.Entries = append(lg.Entries, LegendEntry{Label: b.Label, Color: b.Color})
		}
	}
	for _, l := range a.lines {
		if l.Label != "" {
			lg.Entries = append(lg.Entries, LegendEntry{Label: l.Label, Color: l.Color})
		}
	}
	for _, opt := range opts {
		opt(lg)
	}
	a.legend = lg
	return lg
}

// GetLegend returns the legend, or nil if none was created.
func (a *Axes) GetLegend() *Legend { return a.legend }
