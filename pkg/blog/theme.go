package blog

// Title block placement, in axes coordinates.
const (
	TitleX             = -0.08
	TitleY             = 1.05
	TitleYWithSubtitle = 1.10
	SubtitleY          = 1.03
	TitleSize          = 18.0
	SubtitleSize       = 14.0
	SubtitleColor      = "#555555"
)

// Figure top margin reserved for the title block.
const (
	TopMargin             = 0.90
	TopMarginWithSubtitle = 0.88
)

// Caption placement, in figure coordinates.
const (
	CaptionX     = 0.98
	CaptionY     = -0.025
	CaptionSize  = 10.0
	CaptionColor = "#808080"
)

// Border and tick styling.
const (
	SpineColor = "#e6e6e6"
	SpineWidth = 0.4
	TickLength = 2.8
	TickPad    = 2.0
)
