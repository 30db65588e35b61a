package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	httpadapter "customer-behaviour-dashboard/internal/dashboard/adapters/http/fiber"
	"customer-behaviour-dashboard/internal/dashboard/adapters/render/gochart"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.Dashboard, error)
	MetricsFn func(ctx context.Context) ([]domain.MetricCard, error)
	ChartFn   func(ctx context.Context, in usecase.ChartInput) (*domain.ChartSpec, error)
	lastChart usecase.ChartInput
}

func (f *fakeDashboardUseCase) Execute(ctx context.Context, in usecase.BuildDashboardInput) (*domain.Dashboard, error) {
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.Dashboard{Gender: in.Gender}, nil
}

func (f *fakeDashboardUseCase) Metrics(ctx context.Context) ([]domain.MetricCard, error) {
	if f.MetricsFn != nil {
		return f.MetricsFn(ctx)
	}
	return nil, nil
}

func (f *fakeDashboardUseCase) Chart(ctx context.Context, in usecase.ChartInput) (*domain.ChartSpec, error) {
	f.lastChart = in
	if f.ChartFn != nil {
		return f.ChartFn(ctx, in)
	}
	return &domain.ChartSpec{ID: in.ID}, nil
}

type fakeRenderer struct {
	RenderFn   func(w io.Writer, spec domain.ChartSpec, f gochart.Format) error
	lastFormat gochart.Format
}

func (f *fakeRenderer) Render(w io.Writer, spec domain.ChartSpec, format gochart.Format) error {
	f.lastFormat = format
	if f.RenderFn != nil {
		return f.RenderFn(w, spec, format)
	}
	_, err := io.WriteString(w, "<svg></svg>")
	return err
}

func setupApp(t *testing.T, uc httpadapter.DashboardUseCase, r httpadapter.ChartRenderer) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewDashboardHandler(uc, r)
	app.Get("/", h.GetPage)
	app.Get("/api/metrics", h.GetMetrics)
	app.Get("/api/dashboard", h.GetDashboard)
	app.Get("/api/charts/:id", h.GetChart)
	app.Get("/charts/:file", h.GetChartImage)
	return app
}

func sampleDashboard(g customers.Selector) *domain.Dashboard {
	return &domain.Dashboard{
		SnapshotID: "snap-1",
		Rows:       2,
		Gender:     g,
		Sections: []domain.Section{
			{ID: "overview", Title: "Overview", Metrics: []domain.MetricCard{
				{Label: "Number of customers", Value: 2, Available: true},
				{Label: "Average Rating", Precision: 1},
			}},
			{ID: "by-gender", Filtered: true, Charts: []domain.ChartSpec{
				{ID: domain.ChartSpendVsRating, Title: "Total spend vs Average rating", Kind: domain.KindScatter},
			}},
		},
	}
}

// ------------------------------------------------------------
// METRICS
// ------------------------------------------------------------

func TestGetMetrics_Success(t *testing.T) {
	uc := &fakeDashboardUseCase{
		MetricsFn: func(ctx context.Context) ([]domain.MetricCard, error) {
			return []domain.MetricCard{{Label: "Total Revenue (USD)", Value: 1234, Available: true}}, nil
		},
	}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body httpadapter.MetricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(body.Cards) != 1 || body.Cards[0].Value != 1234 {
		t.Fatalf("unexpected cards: %+v", body.Cards)
	}
}

func TestGetMetrics_InternalError(t *testing.T) {
	uc := &fakeDashboardUseCase{
		MetricsFn: func(ctx context.Context) ([]domain.MetricCard, error) {
			return nil, errors.New("db down")
		},
	}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}

// ------------------------------------------------------------
// DASHBOARD
// ------------------------------------------------------------

func TestGetDashboard_DefaultsToAll(t *testing.T) {
	var got customers.Selector
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.Dashboard, error) {
			got = in.Gender
			return sampleDashboard(in.Gender), nil
		},
	}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got != customers.SelectAll {
		t.Fatalf("expected gender All, got %q", got)
	}

	var body httpadapter.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.SnapshotID != "snap-1" || len(body.Sections) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Sections[1].Charts[0].ID != string(domain.ChartSpendVsRating) {
		t.Fatalf("unexpected chart: %+v", body.Sections[1].Charts)
	}
}

func TestGetDashboard_InvalidGender(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.Dashboard, error) {
			return nil, usecase.ErrUnknownSelector
		},
	}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/dashboard?gender=Other", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body httpadapter.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Error != "invalid_gender" {
		t.Fatalf("expected invalid_gender, got %q", body.Error)
	}
}

// ------------------------------------------------------------
// CHARTS
// ------------------------------------------------------------

func TestGetChart_Success(t *testing.T) {
	uc := &fakeDashboardUseCase{}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/charts/spend-vs-rating?gender=Female", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if uc.lastChart.ID != domain.ChartSpendVsRating || uc.lastChart.Gender != customers.SelectFemale {
		t.Fatalf("unexpected input: %+v", uc.lastChart)
	}
}

func TestGetChart_Unknown(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ChartFn: func(ctx context.Context, in usecase.ChartInput) (*domain.ChartSpec, error) {
			return nil, usecase.ErrUnknownChart
		},
	}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/charts/nope", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestGetChartImage(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		renderErr   error
		wantStatus  int
		wantType    string
		wantFormat  gochart.Format
		wantChartID domain.ChartID
	}{
		{
			name:        "svg",
			path:        "/charts/rating-histogram.svg",
			wantStatus:  http.StatusOK,
			wantType:    "image/svg+xml",
			wantFormat:  gochart.FormatSVG,
			wantChartID: domain.ChartRatingHistogram,
		},
		{
			name:        "png",
			path:        "/charts/gender-distribution.png",
			wantStatus:  http.StatusOK,
			wantType:    "image/png",
			wantFormat:  gochart.FormatPNG,
			wantChartID: domain.ChartGenderDistribution,
		},
		{
			name:       "unknown format",
			path:       "/charts/rating-histogram.gif",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "empty chart",
			path:        "/charts/items-histogram.svg",
			renderErr:   gochart.ErrEmptyChart,
			wantStatus:  http.StatusUnprocessableEntity,
			wantFormat:  gochart.FormatSVG,
			wantChartID: domain.ChartItemsHistogram,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeDashboardUseCase{}
			r := &fakeRenderer{}
			if tt.renderErr != nil {
				r.RenderFn = func(w io.Writer, spec domain.ChartSpec, f gochart.Format) error { return tt.renderErr }
			}
			app := setupApp(t, uc, r)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
			if tt.wantType != "" && resp.Header.Get("Content-Type") != tt.wantType {
				t.Fatalf("expected content type %q, got %q", tt.wantType, resp.Header.Get("Content-Type"))
			}
			if r.lastFormat != tt.wantFormat {
				t.Fatalf("expected format %q, got %q", tt.wantFormat, r.lastFormat)
			}
			if uc.lastChart.ID != tt.wantChartID {
				t.Fatalf("expected chart %q, got %q", tt.wantChartID, uc.lastChart.ID)
			}
		})
	}
}

// ------------------------------------------------------------
// PAGE
// ------------------------------------------------------------

func TestGetPage(t *testing.T) {
	uc := &fakeDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.Dashboard, error) {
			return sampleDashboard(in.Gender), nil
		},
	}
	app := setupApp(t, uc, &fakeRenderer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?gender=Male", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Fatalf("expected html, got %q", resp.Header.Get("Content-Type"))
	}

	raw, _ := io.ReadAll(resp.Body)
	body := string(raw)
	for _, want := range []string{
		"E-commerce Customer Behaviour",
		"Number of customers",
		"n/a",
		"/charts/spend-vs-rating.svg?gender=Male",
		`<option value="Male" selected>`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page is missing %q", want)
		}
	}
}
