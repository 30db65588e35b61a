package gochart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"customer-behaviour-dashboard/internal/dashboard/core/domain"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ErrEmptyChart    = errors.New("chart has no data to draw")
	ErrUnknownFormat = errors.New("unknown image format")
	ErrUnknownKind   = errors.New("unknown chart kind")
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

const (
	DefaultWidth  = 960
	DefaultHeight = 480
)

// Renderer turns chart specs into SVG or PNG images.
type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{width: width, height: height}
}

func (r *Renderer) Render(w io.Writer, spec domain.ChartSpec, f Format) error {
	if f != FormatSVG && f != FormatPNG {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	var err error
	switch spec.Kind {
	case domain.KindPie:
		err = r.pie(w, spec, f)
	case domain.KindScatter:
		err = r.scatter(w, spec, f)
	case domain.KindBar:
		err = r.bars(w, spec, f)
	case domain.KindHistogram:
		err = r.histogram(w, spec, f)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(spec.Kind))
	}
	if err != nil && !errors.Is(err, ErrEmptyChart) {
		return fmt.Errorf("render %s: %w", spec.ID, err)
	}
	return err
}

func (r *Renderer) pie(w io.Writer, spec domain.ChartSpec, f Format) error {
	var values []chart.Value
	total := 0.0
	for i, s := range spec.Series {
		for _, p := range s.Points {
			values = append(values, chart.Value{
				Label: fmt.Sprintf("%s (%.0f)", p.Label, p.Y),
				Value: p.Y,
				Style: chart.Style{FillColor: seriesColor(s.Color, i), StrokeColor: drawing.ColorWhite},
			})
			total += p.Y
		}
	}
	if total == 0 {
		return ErrEmptyChart
	}

	pc := chart.PieChart{
		Title:  spec.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}
	return pc.Render(f.provider(), w)
}

func (r *Renderer) scatter(w io.Writer, spec domain.ChartSpec, f Format) error {
	var series []chart.Series
	lo, hi := math.Inf(1), math.Inf(-1)
	ylo, yhi := math.Inf(1), math.Inf(-1)
	for i, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		cs := chart.ContinuousSeries{
			Name:  s.Name,
			Style: pointStyle(seriesColor(s.Color, i)),
		}
		for _, p := range s.Points {
			cs.XValues = append(cs.XValues, p.X)
			cs.YValues = append(cs.YValues, p.Y)
			lo, hi = math.Min(lo, p.X), math.Max(hi, p.X)
			ylo, yhi = math.Min(ylo, p.Y), math.Max(yhi, p.Y)
		}
		series = append(series, cs)
	}
	if len(series) == 0 {
		return ErrEmptyChart
	}

	x := numericAxis(lo, hi)
	if cats := spec.XAxis.Categories; len(cats) > 0 {
		x = categoryAxis(cats, -0.5, float64(len(cats))-0.5, 0)
	}
	y := numericAxis(ylo, yhi)

	ch := r.newChart(spec, series)
	ch.XAxis = x.xAxis(spec.XAxis.Title)
	ch.YAxis = chart.YAxis{Name: spec.YAxis.Title, Range: &chart.ContinuousRange{Min: y.min, Max: y.max}}
	return ch.Render(f.provider(), w)
}

func (r *Renderer) bars(w io.Writer, spec domain.ChartSpec, f Format) error {
	points := 0
	for _, s := range spec.Series {
		points += len(s.Points)
	}
	if points == 0 {
		return ErrEmptyChart
	}

	bs, x, maxY := groupedBars(spec.Series)
	ch := r.newChart(spec, asSeries(bs))
	ch.XAxis = x.xAxis(spec.XAxis.Title)
	ch.YAxis = chart.YAxis{Name: spec.YAxis.Title, Range: countRange(maxY)}
	r.legend(&ch, spec.Legend)
	return ch.Render(f.provider(), w)
}

func (r *Renderer) histogram(w io.Writer, spec domain.ChartSpec, f Format) error {
	bins := 0
	for _, s := range spec.Series {
		bins += len(s.Bins)
	}
	if bins == 0 {
		return ErrEmptyChart
	}

	bs, maxY := histogramBars(spec.Series, spec.BarMode)
	ch := r.newChart(spec, asSeries(bs))
	ch.XAxis = histogramAxis(spec).xAxis(spec.XAxis.Title)
	ch.YAxis = chart.YAxis{Name: spec.YAxis.Title, Range: countRange(maxY)}
	r.legend(&ch, spec.Legend)
	return ch.Render(f.provider(), w)
}

func (r *Renderer) newChart(spec domain.ChartSpec, series []chart.Series) chart.Chart {
	return chart.Chart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Series:     series,
	}
}

// legend attaches a legend listing the series in the order the chart asks for.
// Drawing order is left untouched.
func (r *Renderer) legend(ch *chart.Chart, l domain.Legend) {
	src := *ch
	if l.Reversed {
		src.Series = slices.Clone(ch.Series)
		slices.Reverse(src.Series)
	}
	if l.Orientation == "h" {
		ch.Elements = []chart.Renderable{chart.LegendThin(&src)}
		return
	}
	ch.Elements = []chart.Renderable{chart.Legend(&src)}
}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func asSeries(bs []barSeries) []chart.Series {
	out := make([]chart.Series, len(bs))
	for i, b := range bs {
		out[i] = b
	}
	return out
}
