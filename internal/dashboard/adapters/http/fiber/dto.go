package fiber

import (
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
)

type MetricCardResponse struct {
	Label     string  `json:"label" example:"Number of customers"`
	Value     float64 `json:"value" example:"350"`
	Precision int     `json:"precision"`
	Available bool    `json:"available"`
}

type MetricsResponse struct {
	Cards []MetricCardResponse `json:"cards"`
}

type PointResponse struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

type BinResponse struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Label string  `json:"label,omitempty"`
	Count int     `json:"count"`
}

type SeriesResponse struct {
	Name    string          `json:"name"`
	Color   string          `json:"color"`
	Outline bool            `json:"outline,omitempty"`
	Points  []PointResponse `json:"points,omitempty"`
	Bins    []BinResponse   `json:"bins,omitempty"`
}

type BinningResponse struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Size  float64 `json:"size"`
}

type LegendResponse struct {
	Orientation string `json:"orientation" example:"h"`
	Anchor      string `json:"anchor" example:"bottom"`
	Title       string `json:"title,omitempty" example:"Gender"`
	Reversed    bool   `json:"reversed,omitempty"`
}

type AxisResponse struct {
	Title      string   `json:"title,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

type ChartResponse struct {
	ID      string           `json:"id" example:"rating-histogram"`
	Title   string           `json:"title"`
	Kind    string           `json:"kind" example:"histogram"`
	BarMode string           `json:"bar_mode,omitempty" example:"stack"`
	Binning *BinningResponse `json:"binning,omitempty"`
	Legend  LegendResponse   `json:"legend"`
	XAxis   AxisResponse     `json:"x_axis"`
	YAxis   AxisResponse     `json:"y_axis"`
	Series  []SeriesResponse `json:"series"`
}

type SectionResponse struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Filtered bool                 `json:"filtered,omitempty"`
	Metrics  []MetricCardResponse `json:"metrics,omitempty"`
	Charts   []ChartResponse      `json:"charts,omitempty"`
}

type DashboardResponse struct {
	SnapshotID string            `json:"snapshot_id"`
	Rows       int               `json:"rows"`
	Gender     string            `json:"gender" example:"All"`
	Sections   []SectionResponse `json:"sections"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_gender"`
	Message string `json:"message" example:"unknown gender selector: \"Other\""`
}

func toCards(cards []domain.MetricCard) []MetricCardResponse {
	out := make([]MetricCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, MetricCardResponse{
			Label:     c.Label,
			Value:     c.Value,
			Precision: c.Precision,
			Available: c.Available,
		})
	}
	return out
}

func toChart(spec domain.ChartSpec) ChartResponse {
	resp := ChartResponse{
		ID:      string(spec.ID),
		Title:   spec.Title,
		Kind:    string(spec.Kind),
		BarMode: string(spec.BarMode),
		Legend: LegendResponse{
			Orientation: spec.Legend.Orientation,
			Anchor:      spec.Legend.Anchor,
			Title:       spec.Legend.Title,
			Reversed:    spec.Legend.Reversed,
		},
		XAxis:  AxisResponse{Title: spec.XAxis.Title, Categories: spec.XAxis.Categories},
		YAxis:  AxisResponse{Title: spec.YAxis.Title, Categories: spec.YAxis.Categories},
		Series: make([]SeriesResponse, 0, len(spec.Series)),
	}
	if b := spec.Binning; b != nil {
		resp.Binning = &BinningResponse{Start: b.Start, End: b.End, Size: b.Size}
	}

	for _, s := range spec.Series {
		sr := SeriesResponse{Name: s.Name, Color: s.Color, Outline: s.Outline}
		for _, p := range s.Points {
			sr.Points = append(sr.Points, PointResponse{X: p.X, Y: p.Y, Label: p.Label})
		}
		for _, b := range s.Bins {
			sr.Bins = append(sr.Bins, BinResponse{Start: b.Start, End: b.End, Label: b.Label, Count: b.Count})
		}
		resp.Series = append(resp.Series, sr)
	}
	return resp
}

func toDashboard(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		SnapshotID: d.SnapshotID,
		Rows:       d.Rows,
		Gender:     string(d.Gender),
		Sections:   make([]SectionResponse, 0, len(d.Sections)),
	}
	for _, s := range d.Sections {
		sr := SectionResponse{ID: s.ID, Title: s.Title, Filtered: s.Filtered}
		if len(s.Metrics) > 0 {
			sr.Metrics = toCards(s.Metrics)
		}
		for _, c := range s.Charts {
			sr.Charts = append(sr.Charts, toChart(c))
		}
		resp.Sections = append(resp.Sections, sr)
	}
	return resp
}
