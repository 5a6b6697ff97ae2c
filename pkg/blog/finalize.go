package blog

import (
	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/fonts"
)

// Labels are the optional texts added by [Finalize]. Empty fields are skipped.
type Labels struct {
	Title    string
	Subtitle string // Only drawn together with Title
	Caption  string
}

// Finalize makes a chart blog-ready in place:
//
//   - the title is left-aligned above the plotting area, raised when a
//     subtitle sits beneath it
//   - the caption goes to the bottom-right of the whole figure
//   - any legend title is cleared
//   - spines and major ticks are drawn thin and light gray
//   - the figure's top margin leaves room for the title block
func Finalize(fig *chart.Figure, ax *chart.Axes, labels Labels, opts ...Option) {
	o := newOptions(opts...)
	roles := fonts.ResolveRoles(o.registry)

	if labels.Title != "" {
		y := TitleY
		if labels.Subtitle != "" {
			y = TitleYWithSubtitle
		}
		ax.Text(TitleX, y, labels.Title,
			chart.WithAlign(chart.HAlignLeft, chart.VAlignBottom),
			chart.WithFontSize(TitleSize),
			chart.WithFontWeight(chart.WeightNormal),
			chart.WithFontFamily(roles.Title),
		)

		if labels.Subtitle != "" {
			ax.Text(TitleX, SubtitleY, labels.Subtitle,
				chart.WithAlign(chart.HAlignLeft, chart.VAlignBottom),
				chart.WithFontSize(SubtitleSize),
				chart.WithFontWeight(chart.WeightNormal),
				chart.WithFontFamily(roles.Title),
				chart.WithTextColor(SubtitleColor),
			)
		}
	}

	if labels.Caption != "" {
		fig.Text(CaptionX, CaptionY, labels.Caption,
			chart.WithAlign(chart.HAlignRight, chart.VAlignBottom),
			chart.WithFontSize(CaptionSize),
			chart.WithTextColor(CaptionColor),
			chart.WithFontFamily(roles.Body),
		)
	}

	if lg := ax.GetLegend(); lg != nil {
		lg.SetTitle("")
	}

	for _, s := range ax.Spines() {
		s.EdgeColor = SpineColor
		s.LineWidth = SpineWidth
	}
	ax.TickParams(chart.AxisBoth, chart.TickStyle{
		Color:  SpineColor,
		Width:  SpineWidth,
		Length: TickLength,
		Pad:    TickPad,
	})

	top := TopMargin
	if labels.Subtitle != "" {
		top = TopMarginWithSubtitle
	}
	fig.SubplotsAdjust(chart.AdjustTop(top))
}
