package chart

// LegendEntry is one labeled swatch.
type LegendEntry struct {
	Label string
	Color string
}

// Legend lists the labeled series of an axes.
type Legend struct {
	Title    string
	Entries  []LegendEntry
	FrameOn  bool
	FontSize float64
}

// SetTitle replaces the legend title. An empty title hides the title row.
func (l *Legend) SetTitle(title string) { l.Title = title }

// LegendOption configures a legend at creation.
type LegendOption func(*Legend)

func WithLegendTitle(title string) LegendOption { return func(l *Legend) { l.Title = title } }
