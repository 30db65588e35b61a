package fiber

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/adapters/render/gochart"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/usecase"
	"customer-behaviour-dashboard/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

var log = logger.New("dashboard.http")

type DashboardUseCase interface {
	Execute(ctx context.Context, in usecase.BuildDashboardInput) (*domain.Dashboard, error)
	Metrics(ctx context.Context) ([]domain.MetricCard, error)
	Chart(ctx context.Context, in usecase.ChartInput) (*domain.ChartSpec, error)
}

type ChartRenderer interface {
	Render(w io.Writer, spec domain.ChartSpec, f gochart.Format) error
}

type DashboardHandler struct {
	uc       DashboardUseCase
	renderer ChartRenderer
}

func NewDashboardHandler(uc DashboardUseCase, renderer ChartRenderer) *DashboardHandler {
	return &DashboardHandler{uc: uc, renderer: renderer}
}

func gender(c *fiber.Ctx) customers.Selector {
	return customers.Selector(c.Query("gender", string(customers.SelectAll)))
}

// GetMetrics godoc
// @Summary Overview metric cards
// @Description Returns the five overview cards computed from the whole table
// @Tags Dashboard
// @Produce json
// @Success 200 {object} MetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/metrics [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	cards, err := h.uc.Metrics(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(MetricsResponse{Cards: toCards(cards)})
}

// GetDashboard godoc
// @Summary Full dashboard
// @Description Returns every section with its metric cards and chart specs
// @Tags Dashboard
// @Produce json
// @Param gender query string false "Gender filter: All | Female | Male" default(All)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.uc.Execute(c.Context(), usecase.BuildDashboardInput{Gender: gender(c)})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboard(d))
}

// GetChart godoc
// @Summary Single chart spec
// @Tags Charts
// @Produce json
// @Param id path string true "Chart id"
// @Param gender query string false "Gender filter: All | Female | Male" default(All)
// @Success 200 {object} ChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/charts/{id} [get]
func (h *DashboardHandler) GetChart(c *fiber.Ctx) error {
	spec, err := h.uc.Chart(c.Context(), usecase.ChartInput{
		ID:     domain.ChartID(c.Params("id")),
		Gender: gender(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toChart(*spec))
}

// GetChartImage godoc
// @Summary Rendered chart
// @Description Renders a chart as SVG or PNG
// @Tags Charts
// @Produce image/svg+xml
// @Produce image/png
// @Param file path string true "Chart id with an image extension, e.g. rating-histogram.svg"
// @Param gender query string false "Gender filter: All | Female | Male" default(All)
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /charts/{file} [get]
func (h *DashboardHandler) GetChartImage(c *fiber.Ctx) error {
	file := c.Params("file")
	ext := path.Ext(file)
	format, err := gochart.ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		return writeError(c, err)
	}
	spec, err := h.uc.Chart(c.Context(), usecase.ChartInput{
		ID:     domain.ChartID(strings.TrimSuffix(file, ext)),
		Gender: gender(c),
	})
	if err != nil {
		return writeError(c, err)
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, *spec, format); err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownSelector):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_gender",
			Message: err.Error(),
		})
	case errors.Is(err, gochart.ErrUnknownFormat):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_format",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUnknownChart):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "unknown_chart",
			Message: err.Error(),
		})
	case errors.Is(err, gochart.ErrEmptyChart):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "empty_chart",
			Message: err.Error(),
		})
	default:
		log.Errorf("dashboard request %s failed: %v", c.OriginalURL(), err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
