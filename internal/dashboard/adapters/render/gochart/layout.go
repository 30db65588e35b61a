package gochart

import (
	"math"
	"slices"

	"customer-behaviour-dashboard/internal/dashboard/core/domain"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	groupFill    = 0.8 // share of a slot covered by a group of bars
	categoryPad  = 0.1
	overlayAlpha = 128
)

type axisLayout struct {
	min, max float64
	ticks    []chart.Tick
}

func (a axisLayout) xAxis(name string) chart.XAxis {
	return chart.XAxis{Name: name, Range: &chart.ContinuousRange{Min: a.min, Max: a.max}, Ticks: a.ticks}
}

// numericAxis pads [lo, hi] so go-chart never sees a zero-width range.
func numericAxis(lo, hi float64) axisLayout {
	if lo == hi {
		return axisLayout{min: lo - 1, max: hi + 1}
	}
	pad := (hi - lo) * 0.05
	return axisLayout{min: lo - pad, max: hi + pad}
}

// categoryAxis centers category i on i+offset. go-chart takes the range from
// the ticks when they are set, so the outer edges get blank ticks.
func categoryAxis(categories []string, lo, hi, offset float64) axisLayout {
	ticks := []chart.Tick{{Value: lo}}
	for i, c := range categories {
		ticks = append(ticks, chart.Tick{Value: float64(i) + offset, Label: c})
	}
	ticks = append(ticks, chart.Tick{Value: hi})
	return axisLayout{min: lo, max: hi, ticks: ticks}
}

func countRange(maxCount float64) *chart.ContinuousRange {
	if maxCount <= 0 {
		maxCount = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: maxCount * 1.05}
}

// groupedBars places the series side by side around each x value.
func groupedBars(series []domain.Series) ([]barSeries, axisLayout, float64) {
	var xs []float64
	maxY := 0.0
	for _, s := range series {
		for _, p := range s.Points {
			xs = append(xs, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	slices.Sort(xs)
	xs = slices.Compact(xs)

	gap := 1.0
	for i := 1; i < len(xs); i++ {
		gap = math.Min(gap, xs[i]-xs[i-1])
	}
	width := gap * groupFill / float64(len(series))

	out := make([]barSeries, 0, len(series))
	for k, s := range series {
		bs := barSeries{name: s.Name, style: barStyle(s, k)}
		for _, p := range s.Points {
			x0 := p.X - gap*groupFill/2 + float64(k)*width
			bs.bars = append(bs.bars, bar{x0: x0, x1: x0 + width, y1: p.Y})
		}
		out = append(out, bs)
	}
	axis := axisLayout{min: xs[0] - gap/2, max: xs[len(xs)-1] + gap/2}
	return out, axis, maxY
}

// histogramBars lays out counted bins for the requested mode. Every series
// must carry the same bins.
func histogramBars(series []domain.Series, mode domain.BarMode) ([]barSeries, float64) {
	n := 0
	for _, s := range series {
		n = max(n, len(s.Bins))
	}
	stack := make([]float64, n)
	maxY := 0.0

	out := make([]barSeries, 0, len(series))
	for k, s := range series {
		bs := barSeries{name: s.Name, style: barStyle(s, k)}
		for i, b := range s.Bins {
			x0, x1 := b.Start, b.End
			if b.Label != "" {
				x0, x1 = x0+categoryPad, x1-categoryPad
			}
			y0, y1 := 0.0, float64(b.Count)

			switch mode {
			case domain.BarModeStack:
				y0, y1 = stack[i], stack[i]+float64(b.Count)
				stack[i] = y1
			case domain.BarModeGroup:
				w := (x1 - x0) / float64(len(series))
				x0 = x0 + float64(k)*w
				x1 = x0 + w
			}
			maxY = math.Max(maxY, y1)
			bs.bars = append(bs.bars, bar{x0: x0, x1: x1, y0: y0, y1: y1})
		}
		out = append(out, bs)
	}
	return out, maxY
}

func histogramAxis(spec domain.ChartSpec) axisLayout {
	if len(spec.XAxis.Categories) > 0 {
		return categoryAxis(spec.XAxis.Categories, 0, float64(len(spec.XAxis.Categories)), 0.5)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		for _, b := range s.Bins {
			lo, hi = math.Min(lo, b.Start), math.Max(hi, b.End)
		}
	}
	return axisLayout{min: lo, max: hi}
}

func barStyle(s domain.Series, index int) chart.Style {
	col := seriesColor(s.Color, index)
	fill := col
	if s.Outline {
		fill = col.WithAlpha(overlayAlpha)
	}
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 1,
		FillColor:   fill,
	}
}
