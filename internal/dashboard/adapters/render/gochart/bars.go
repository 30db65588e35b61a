package gochart

import (
	"github.com/wcharczuk/go-chart/v2"
)

// bar is one rectangle in data coordinates.
type bar struct {
	x0, x1 float64
	y0, y1 float64
}

// barSeries draws explicit rectangles. The ranges always come from the
// chart axes, so it does not report its values to go-chart.
type barSeries struct {
	name  string
	style chart.Style
	bars  []bar
}

func (bs barSeries) GetName() string           { return bs.name }
func (bs barSeries) GetStyle() chart.Style     { return bs.style }
func (bs barSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (bs barSeries) Validate() error           { return nil }

func (bs barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.style.InheritFrom(defaults)
	for _, b := range bs.bars {
		if b.y1 == b.y0 {
			continue
		}
		chart.Draw.Box(r, chart.Box{
			Left:   canvasBox.Left + xrange.Translate(b.x0),
			Right:  canvasBox.Left + xrange.Translate(b.x1),
			Top:    canvasBox.Bottom - yrange.Translate(b.y1),
			Bottom: canvasBox.Bottom - yrange.Translate(b.y0),
		}, style)
	}
}
