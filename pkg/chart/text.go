package chart

// Coords selects the coordinate system a [Text] position is expressed in.
type Coords int

const (
	// AxesCoords places (0,0) at the bottom-left and (1,1) at the top-right
	// of the plotting area. Values outside [0,1] land outside it.
	AxesCoords Coords = iota
	// FigureCoords places (0,0) at the bottom-left and (1,1) at the top-right
	// of the whole drawing surface.
	FigureCoords
)

func (c Coords) String() string {
	if c == FigureCoords {
		return "figure"
	}
	return "axes"
}

// HAlign is the horizontal anchor of a text relative to its position.
type HAlign string

const (
	HAlignLeft   HAlign = "left"
	HAlignCenter HAlign = "center"
	HAlignRight  HAlign = "right"
)

// VAlign is the vertical anchor of a text relative to its position.
type VAlign string

const (
	VAlignBottom   VAlign = "bottom"
	VAlignCenter   VAlign = "center"
	VAlignTop      VAlign = "top"
	VAlignBaseline VAlign = "baseline"
)

// Font weights.
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// Text is a free-standing text annotation.
type Text struct {
	X, Y     float64 // Position in Coords units
	Coords   Coords  // Coordinate system of X and Y
	Content  string  // Displayed string
	HAlign   HAlign  // Horizontal anchor
	VAlign   VAlign  // Vertical anchor
	Size     float64 // Font size in points
	Weight   string  // Font weight ("normal", "bold")
	Family   string  // Font family name
	Color    string  // Color spec, see ParseColor
	Rotation float64 // Degrees, counter-clockwise
}

// TextOption configures a [Text] at creation.
type TextOption func(*Text)

func WithAlign(h HAlign, v VAlign) TextOption {
	return func(t *Text) { t.HAlign, t.VAlign = h, v }
}
func WithFontSize(size float64) TextOption   { return func(t *Text) { t.Size = size } }
func WithFontWeight(w string) TextOption      { return func(t *Text) { t.Weight = w } }
func WithFontFamily(family string) TextOption { return func(t *Text) { t.Family = family } }
func WithTextColor(color string) TextOption   { return func(t *Text) { t.Color = color } }
func WithRotation(deg float64) TextOption     { return func(t *Text) { t.Rotation = deg } }

// newText builds a text whose unset properties come from rc.
func newText(rc Params, coords Coords, x, y float64, s string, opts ...TextOption) *Text {
	t := &Text{
		X:       x,
		Y:       y,
		Coords:  coords,
		Content: s,
		HAlign:  HAlignLeft,
		VAlign:  VAlignBaseline,
		Size:    rc.Float(KeyFontSize),
		Weight:  WeightNormal,
		Family:  rc.String(KeyFontFamily),
		Color:   rc.String(KeyTextColor),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
