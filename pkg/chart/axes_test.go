package chart

import "testing"

func TestSubplotsReadsConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Set(KeyAxesSpinesTop, false)
	cfg.Set(KeyAxesEdgeColor, "#e6e6e6")
	cfg.Set(KeySubplotTop, 0.8)

	fig, ax := Subplots(cfg)
	cfg.Set(KeyAxesEdgeColor, "red") // figures do not track later changes

	if ax.Spine(SideTop).Visible {
		t.Error("top spine visible, want hidden")
	}
	if !ax.Spine(SideLeft).Visible {
		t.Error("left spine hidden, want visible")
	}
	if got := ax.Spine(SideLeft).EdgeColor; got != "#e6e6e6" {
		t.Errorf("edge color = %q, want #e6e6e6", got)
	}
	if got := fig.Subplot().Top; got != 0.8 {
		t.Errorf("subplot top = %v, want 0.8", got)
	}
	if len(fig.Axes()) != 1 || ax.Figure() != fig {
		t.Error("axes not attached to figure")
	}
}

func TestSpinesOrder(t *testing.T) {
	_, ax := Subplots(NewConfig())
	spines := ax.Spines()
	if len(spines) != len(Sides) {
		t.Fatalf("Spines() = %d, want %d", len(spines), len(Sides))
	}
	for i, s := range spines {
		if s.Side != Sides[i] {
			t.Errorf("Spines()[%d] = %s, want %s", i, s.Side, Sides[i])
		}
	}
}

func TestTickParams(t *testing.T) {
	_, ax := Subplots(NewConfig())
	orig := ax.YTicks()
	style := TickStyle{Color: "#e6e6e6", Width: 0.4, Length: 2.8, Pad: 2}

	ax.TickParams(AxisX, style)
	if ax.XTicks() != style || ax.YTicks() != orig {
		t.Errorf("TickParams(x) = %+v / %+v", ax.XTicks(), ax.YTicks())
	}
	ax.TickParams(AxisBoth, style)
	if ax.YTicks() != style {
		t.Errorf("TickParams(both) left y = %+v", ax.YTicks())
	}
}

func TestBar(t *testing.T) {
	_, ax := Subplots(NewConfig())

	bars, err := ax.Bar([]string{"A", "B"}, []float64{1, 2}, WithColor("#7AB5CC"), WithLabel("s"))
	if err != nil {
		t.Fatal(err)
	}
	bars[1].SetColor("#D93649")
	if _, err := ax.Bar([]string{"B", "C"}, []float64{3, 4}); err != nil {
		t.Fatal(err)
	}

	if got := ax.Categories(); len(got) != 3 || got[2] != "C" {
		t.Errorf("Categories() = %v, want [A B C]", got)
	}
	if bars[0].Color != "#7AB5CC" || bars[1].Color != "#D93649" {
		t.Errorf("bar colors = %q, %q", bars[0].Color, bars[1].Color)
	}
	if _, err := ax.Bar([]string{"A"}, []float64{1, 2}); err == nil {
		t.Error("Bar with mismatched lengths succeeded")
	}
}

func TestLegendFromLabeledSeries(t *testing.T) {
	_, ax := Subplots(NewConfig())
	if ax.GetLegend() != nil {
		t.Fatal("new axes has a legend")
	}
	if _, err := ax.Bar([]string{"A"}, []float64{1}, WithLabel("bars")); err != nil {
		t.Fatal(err)
	}
	if _, err := ax.Plot([]float64{0, 1}, []float64{1, 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := ax.Plot([]float64{0, 1}, []float64{2, 3}, WithLabel("trend"), WithColor("C1")); err != nil {
		t.Fatal(err)
	}

	lg := ax.Legend(WithLegendTitle("Series"))
	if ax.GetLegend() != lg {
		t.Error("GetLegend() does not return the created legend")
	}
	if lg.Title != "Series" {
		t.Errorf("Title = %q", lg.Title)
	}
	want := []LegendEntry{{"bars", "C0"}, {"trend", "C1"}}
	if len(lg.Entries) != len(want) || lg.Entries[0] != want[0] || lg.Entries[1] != want[1] {
		t.Errorf("Entries = %v, want %v", lg.Entries, want)
	}
}

func TestTextDefaultsFromConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Set(KeyFontFamily, "Poppins")
	cfg.Set(KeyFontSize, 12.0)
	fig, ax := Subplots(cfg)

	at := ax.Text(0.5, 0.5, "a")
	ft := fig.Text(0.1, 0.1, "f", WithFontSize(8), WithTextColor("#808080"))

	if at.Family != "Poppins" || at.Size != 12 || at.Coords != AxesCoords {
		t.Errorf("axes text = %+v", at)
	}
	if ft.Size != 8 || ft.Color != "#808080" || ft.Coords != FigureCoords {
		t.Errorf("figure text = %+v", ft)
	}
	if len(ax.Texts()) != 1 || len(fig.Texts()) != 1 {
		t.Error("texts not recorded on their owners")
	}
}

func TestSubplotsAdjust(t *testing.T) {
	fig := NewFigure(NewConfig())
	fig.SubplotsAdjust(AdjustTop(0.9), AdjustLeft(0.2))
	got := fig.Subplot()
	if got.Top != 0.9 || got.Left != 0.2 || got.Bottom != 0.11 {
		t.Errorf("Subplot() = %+v", got)
	}
}
