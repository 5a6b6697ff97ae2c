package chart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/matzehuels/blogplot/pkg/fonts"
)

const (
	charWidthRatio = 0.55 // average glyph advance, in ems
	ascentRatio    = 0.8  // baseline offset from the top of a line, in ems
	barWidthRatio  = 0.8  // bar width as a fraction of its category band
	targetTicks    = 5
	legendPad      = 6.0
	legendSwatch   = 12.0
)

type box struct{ x0, y0, x1, y1 float64 }

func (b *box) include(o box) {
	b.x0 = min(b.x0, o.x0)
	b.y0 = min(b.y0, o.y0)
	b.x1 = max(b.x1, o.x1)
	b.y1 = max(b.y1, o.y1)
}

// at maps a point in unit coordinates of b to pixels. y grows upward in
// unit space and downward in pixel space.
func (b box) at(ux, uy float64) (float64, float64) {
	return b.x0 + ux*(b.x1-b.x0), b.y1 - uy*(b.y1-b.y0)
}

func (b box) w() float64 { return b.x1 - b.x0 }
func (b box) h() float64 { return b.y1 - b.y0 }

// RenderSVG draws the figure as a standalone SVG document. The view box
// grows to include text placed outside the figure, such as a caption below
// its bottom edge.
func RenderSVG(f *Figure) []byte {
	var body bytes.Buffer
	view := box{0, 0, f.Width, f.Height}

	for _, ax := range f.axes {
		renderAxes(&body, ax, f.axesBox(), &view)
	}
	for _, t := range f.texts {
		x, y := box{0, 0, f.Width, f.Height}.at(t.X, t.Y)
		writeText(&body, "figure-text", t, x, y)
		view.include(textBox(t, x, y))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		view.x0, view.y0, view.w(), view.h(), math.Ceil(view.w()), math.Ceil(view.h()))
	fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		view.x0, view.y0, view.w(), view.h(), CSSColor(f.FaceColor, "white"))
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (f *Figure) axesBox() box {
	sp := f.subplot
	return box{
		x0: sp.Left * f.Width,
		y0: (1 - sp.Top) * f.Height,
		x1: sp.Right * f.Width,
		y1: (1 - sp.Bottom) * f.Height,
	}
}

func renderAxes(buf *bytes.Buffer, ax *Axes, area box, view *box) {
	rc := ax.fig.rc
	fmt.Fprintf(buf, `  <rect class="axes" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		area.x0, area.y0, area.w(), area.h(), CSSColor(ax.FaceColor, "white"))

	yTicks := niceTicks(ax.yRange())
	ys := linear{yTicks[0], yTicks[len(yTicks)-1]}

	var xTicks []float64
	var xs linear
	if len(ax.categories) == 0 {
		xTicks = niceTicks(ax.xRange())
		xs = linear{xTicks[0], xTicks[len(xTicks)-1]}
	}

	if ax.Grid {
		for _, v := range yTicks {
			_, y := area.at(0, ys.frac(v))
			fmt.Fprintf(buf, `  <line class="grid" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
				area.x0, y, area.x1, y, CSSColor(rc.String(KeyGridColor), "lightgray"), rc.Float(KeyGridLineWidth))
		}
	}

	renderBars(buf, ax, area, ys)
	renderLines(buf, ax, area, xs, ys)
	renderSpines(buf, ax, area)

	// x ticks
	xt := ax.xTicks
	xLabelSize := rc.Float(KeyXTickLabelSize)
	textColor := rc.String(KeyTextColor)
	for _, tk := range xTickPositions(ax, area, xs, xTicks) {
		writeTickMark(buf, xt, tk.px, area.y1, tk.px, area.y1+xt.Length)
		t := &Text{Content: tk.label, HAlign: HAlignCenter, VAlign: VAlignTop, Size: xLabelSize,
			Weight: WeightNormal, Family: rc.String(KeyFontFamily), Color: textColor}
		ty := area.y1 + xt.Length + xt.Pad
		writeText(buf, "tick-label", t, tk.px, ty)
		view.include(textBox(t, tk.px, ty))
	}

	// y ticks
	yt := ax.yTicks
	yLabelSize := rc.Float(KeyYTickLabelSize)
	maxLabel := 0.0
	for _, v := range yTicks {
		_, py := area.at(0, ys.frac(v))
		writeTickMark(buf, yt, area.x0, py, area.x0-yt.Length, py)
		t := &Text{Content: formatTick(v, yTicks), HAlign: HAlignRight, VAlign: VAlignCenter, Size: yLabelSize,
			Weight: WeightNormal, Family: rc.String(KeyFontFamily), Color: textColor}
		tx := area.x0 - yt.Length - yt.Pad
		writeText(buf, "tick-label", t, tx, py)
		tb := textBox(t, tx, py)
		maxLabel = max(maxLabel, tb.w())
		view.include(tb)
	}

	labelSize := rc.Float(KeyAxesLabelSize)
	labelColor := rc.String(KeyAxesLabelColor)
	if ax.XLabel != "" {
		t := &Text{Content: ax.XLabel, HAlign: HAlignCenter, VAlign: VAlignTop, Size: labelSize,
			Weight: WeightNormal, Family: rc.String(KeyFontFamily), Color: labelColor}
		x := area.x0 + area.w()/2
		y := area.y1 + xt.Length + xt.Pad + xLabelSize + 4
		writeText(buf, "axis-label", t, x, y)
		view.include(textBox(t, x, y))
	}
	if ax.YLabel != "" {
		t := &Text{Content: ax.YLabel, HAlign: HAlignCenter, VAlign: VAlignBottom, Size: labelSize,
			Weight: WeightNormal, Family: rc.String(KeyFontFamily), Color: labelColor, Rotation: 90}
		x := area.x0 - yt.Length - yt.Pad - maxLabel - 4
		y := area.y0 + area.h()/2
		writeText(buf, "axis-label", t, x, y)
		view.include(textBox(t, x, y))
	}

	for _, t := range ax.texts {
		x, y := area.at(t.X, t.Y)
		writeText(buf, "axes-text", t, x, y)
		view.include(textBox(t, x, y))
	}

	if ax.legend != nil {
		renderLegend(buf, ax.legend, area, rc)
	}
}

type tickPos struct {
	px    float64
	label string
}

// xTickPositions places one tick per category, or one per round value when
// the axes holds only line series.
func xTickPositions(ax *Axes, area box, xs linear, ticks []float64) []tickPos {
	if len(ax.categories) > 0 {
		band := area.w() / float64(len(ax.categories))
		out := make([]tickPos, len(ax.categories))
		for i, c := range ax.categories {
			out[i] = tickPos{area.x0 + (float64(i)+0.5)*band, c}
		}
		return out
	}
	out := make([]tickPos, len(ticks))
	for i, v := range ticks {
		px, _ := area.at(xs.frac(v), 0)
		out[i] = tickPos{px, formatTick(v, ticks)}
	}
	return out
}

func renderBars(buf *bytes.Buffer, ax *Axes, area box, ys linear) {
	if len(ax.categories) == 0 {
		return
	}
	index := make(map[string]int, len(ax.categories))
	for i, c := range ax.categories {
		index[c] = i
	}
	band := area.w() / float64(len(ax.categories))
	_, base := area.at(0, ys.frac(clamp(0, ys.lo, ys.hi)))
	for _, b := range ax.bars {
		if !finite(b.Value) {
			continue
		}
		cx := area.x0 + (float64(index[b.Category])+0.5)*band
		w := band * barWidthRatio
		_, top := area.at(0, ys.frac(b.Value))
		y, h := min(top, base), math.Abs(base-top)
		fmt.Fprintf(buf, `  <rect class="bar" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			cx-w/2, y, w, h, CSSColor(b.Color, "C0"))
	}
}

// renderLines draws each series as one polyline per run of finite points,
// so a NaN or infinite value leaves a gap.
func renderLines(buf *bytes.Buffer, ax *Axes, area box, xs, ys linear) {
	for _, l := range ax.lines {
		stroke := CSSColor(l.Color, "C0")
		var pts bytes.Buffer
		flush := func() {
			if pts.Len() > 0 {
				fmt.Fprintf(buf, `  <polyline class="line" points="%s" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
					pts.String(), stroke, l.Width)
				pts.Reset()
			}
		}
		for i := range l.X {
			if !finite(l.X[i]) || !finite(l.Y[i]) {
				flush()
				continue
			}
			if pts.Len() > 0 {
				pts.WriteByte(' ')
			}
			px, py := area.at(xs.frac(l.X[i]), ys.frac(l.Y[i]))
			fmt.Fprintf(&pts, "%.2f,%.2f", px, py)
		}
		flush()
	}
}

func renderSpines(buf *bytes.Buffer, ax *Axes, area box) {
	for _, s := range ax.Spines() {
		if !s.Visible {
			continue
		}
		var x1, y1, x2, y2 float64
		switch s.Side {
		case SideLeft:
			x1, y1, x2, y2 = area.x0, area.y0, area.x0, area.y1
		case SideRight:
			x1, y1, x2, y2 = area.x1, area.y0, area.x1, area.y1
		case SideBottom:
			x1, y1, x2, y2 = area.x0, area.y1, area.x1, area.y1
		case SideTop:
			x1, y1, x2, y2 = area.x0, area.y0, area.x1, area.y0
		}
		fmt.Fprintf(buf, `  <line class="spine spine-%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
			s.Side, x1, y1, x2, y2, CSSColor(s.EdgeColor, "black"), s.LineWidth)
	}
}

func renderLegend(buf *bytes.Buffer, lg *Legend, area box, rc Params) {
	rows := len(lg.Entries)
	if lg.Title != "" {
		rows++
	}
	if rows == 0 {
		return
	}
	lineH := lg.FontSize * 1.4
	width := 0.0
	for _, e := range lg.Entries {
		width = max(width, legendSwatch+legendPad+textWidth(e.Label, lg.FontSize))
	}
	width = max(width, textWidth(lg.Title, lg.FontSize)) + 2*legendPad
	height := float64(rows)*lineH + 2*legendPad
	x0 := area.x1 - width - legendPad
	y0 := area.y0 + legendPad

	if lg.FrameOn {
		fmt.Fprintf(buf, `  <rect class="legend" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#ffffff" fill-opacity="0.8" stroke="#cccccc" stroke-width="0.8"/>`+"\n",
			x0, y0, width, height)
	}
	family := rc.String(KeyFontFamily)
	color := rc.String(KeyTextColor)
	y := y0 + legendPad
	if lg.Title != "" {
		t := &Text{Content: lg.Title, HAlign: HAlignCenter, VAlign: VAlignTop, Size: lg.FontSize,
			Weight: WeightNormal, Family: family, Color: color}
		writeText(buf, "legend-title", t, x0+width/2, y)
		y += lineH
	}
	for _, e := range lg.Entries {
		fmt.Fprintf(buf, `  <rect class="legend-swatch" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			x0+legendPad, y+(lineH-legendSwatch)/2, legendSwatch, legendSwatch*0.7, CSSColor(e.Color, "C0"))
		t := &Text{Content: e.Label, HAlign: HAlignLeft, VAlign: VAlignCenter, Size: lg.FontSize,
			Weight: WeightNormal, Family: family, Color: color}
		writeText(buf, "legend-label", t, x0+legendPad+legendSwatch+legendPad, y+lineH/2)
		y += lineH
	}
}

func writeTickMark(buf *bytes.Buffer, ts TickStyle, x1, y1, x2, y2 float64) {
	fmt.Fprintf(buf, `  <line class="tick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x1, y1, x2, y2, CSSColor(ts.Color, "black"), ts.Width)
}

func writeText(buf *bytes.Buffer, class string, t *Text, x, y float64) {
	var rotate string
	if t.Rotation != 0 {
		rotate = fmt.Sprintf(` transform="rotate(%.1f %.2f %.2f)"`, -t.Rotation, x, y)
	}
	fmt.Fprintf(buf, `  <text class="%s" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" font-weight="%s" fill="%s" text-anchor="%s" dominant-baseline="%s"%s>%s</text>`+"\n",
		class, x, y, EscapeXML(fonts.CSSFamily(t.Family)), t.Size, t.Weight, CSSColor(t.Color, "black"),
		textAnchor(t.HAlign), dominantBaseline(t.VAlign), rotate, EscapeXML(t.Content))
}

func textAnchor(h HAlign) string {
	switch h {
	case HAlignCenter:
		return "middle"
	case HAlignRight:
		return "end"
	default:
		return "start"
	}
}

func dominantBaseline(v VAlign) string {
	switch v {
	case VAlignBottom:
		return "text-after-edge"
	case VAlignTop:
		return "text-before-edge"
	case VAlignCenter:
		return "central"
	default:
		return "alphabetic"
	}
}

func textWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * charWidthRatio
}

// textBox estimates the pixel extent of t anchored at (x, y).
func textBox(t *Text, x, y float64) box {
	w, h := textWidth(t.Content, t.Size), t.Size
	if math.Mod(math.Abs(t.Rotation), 180) == 90 {
		// Rotated a quarter turn: the run is vertical and centered on x.
		return box{x - h, y - w/2, x, y + w/2}
	}
	var left, top float64
	switch t.HAlign {
	case HAlignCenter:
		left = x - w/2
	case HAlignRight:
		left = x - w
	default:
		left = x
	}
	switch t.VAlign {
	case VAlignBottom:
		top = y - h
	case VAlignTop:
		top = y
	case VAlignCenter:
		top = y - h/2
	default:
		top = y - h*ascentRatio
	}
	return box{left, top, left + w, top + h}
}

// EscapeXML escapes s for use in SVG text content and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

type linear struct{ lo, hi float64 }

func (l linear) frac(v float64) float64 {
	if l.hi == l.lo {
		return 0.5
	}
	return (v - l.lo) / (l.hi - l.lo)
}

func (a *Axes) yRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	if len(a.bars) > 0 {
		lo, hi = 0, 0
	}
	for _, b := range a.bars {
		if finite(b.Value) {
			lo, hi = min(lo, b.Value), max(hi, b.Value)
		}
	}
	for _, l := range a.lines {
		for i, v := range l.Y {
			if finite(v) && finite(l.X[i]) {
				lo, hi = min(lo, v), max(hi, v)
			}
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	return lo, hi
}

func (a *Axes) xRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, l := range a.lines {
		for i, v := range l.X {
			if finite(v) && finite(l.Y[i]) {
				lo, hi = min(lo, v), max(hi, v)
			}
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	return lo, hi
}

// niceTicks returns evenly spaced round values covering [lo, hi].
func niceTicks(lo, hi float64) []float64 {
	if !finite(lo) || !finite(hi) || !finite(hi-lo) {
		lo, hi = 0, 1
	}
	if hi <= lo {
		hi = lo + 1
	}
	step := niceStep((hi - lo) / targetTicks)
	start := math.Floor(lo/step) * step
	n := int(math.Round((math.Ceil(hi/step)*step - start) / step))
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, start+float64(i)*step)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	base := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

func formatTick(v float64, ticks []float64) string {
	decimals := 0
	if len(ticks) > 1 {
		step := ticks[1] - ticks[0]
		decimals = max(0, -int(math.Floor(math.Log10(step))))
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

func clamp(v, lo, hi float64) float64 { return max(lo, min(hi, v)) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
