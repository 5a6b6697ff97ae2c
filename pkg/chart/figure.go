package chart

// SubplotParams are the margins of the plotting area as fractions of the
// figure size, measured from the figure's left and bottom edges.
type SubplotParams struct {
	Left, Right, Top, Bottom float64
}

// SubplotAdjust changes one margin of a figure.
type SubplotAdjust func(*SubplotParams)

func AdjustLeft(v float64) SubplotAdjust   { return func(p *SubplotParams) { p.Left = v } }
func AdjustRight(v float64) SubplotAdjust  { return func(p *SubplotParams) { p.Right = v } }
func AdjustTop(v float64) SubplotAdjust    { return func(p *SubplotParams) { p.Top = v } }
func AdjustBottom(v float64) SubplotAdjust { return func(p *SubplotParams) { p.Bottom = v } }

// Figure is the whole drawing surface. It owns its axes and any
// figure-level texts.
type Figure struct {
	Width, Height float64 // Size in points
	FaceColor     string

	rc      Params
	subplot SubplotParams
	axes    []*Axes
	texts   []*Text
}

// NewFigure creates an empty figure. The figure copies cfg's current
// parameters; later changes to cfg do not affect it.
func NewFigure(cfg *Config) *Figure {
	rc := cfg.Snapshot()
	return &Figure{
		Width:     rc.Float(KeyFigureWidth),
		Height:    rc.Float(KeyFigureHeight),
		FaceColor: rc.String(KeyFigureFaceColor),
		rc:        rc,
		subplot: SubplotParams{
			Left:   rc.Float(KeySubplotLeft),
			Right:  rc.Float(KeySubplotRight),
			Top:    rc.Float(KeySubplotTop),
			Bottom: rc.Float(KeySubplotBottom),
		},
	}
}

// Subplots creates a figure holding a single axes.
func Subplots(cfg *Config) (*Figure, *Axes) {
	fig := NewFigure(cfg)
	return fig, fig.AddAxes()
}

// AddAxes adds a plotting area spanning the figure's subplot margins.
func (f *Figure) AddAxes() *Axes {
	ax := newAxes(f)
	f.axes = append(f.axes, ax)
	return ax
}

func (f *Figure) Axes() []*Axes { return f.axes }

// Text adds a text in figure coordinates.
func (f *Figure) Text(x, y float64, s string, opts ...TextOption) *Text {
	t := newText(f.rc, FigureCoords, x, y, s, opts...)
	f.texts = append(f.texts, t)
	return t
}

// Texts returns the figure-level texts in insertion order.
func (f *Figure) Texts() []*Text { return f.texts }

// Subplot returns the current plotting-area margins.
func (f *Figure) Subplot() SubplotParams { return f.subplot }

// SubplotsAdjust changes the plotting-area margins.
func (f *Figure) SubplotsAdjust(adj ...SubplotAdjust) {
	for _, a := range adj {
		a(&f.subplot)
	}
}

// Params returns a copy of the parameters the figure was created with.
func (f *Figure) Params() Params { return f.rc.Clone() }
