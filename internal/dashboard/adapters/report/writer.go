package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/adapters/render/gochart"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/core/usecase"
	"customer-behaviour-dashboard/internal/platform/logger"

	"github.com/schollz/progressbar/v3"
)

const SummaryFile = "report.md"

type DashboardUseCase interface {
	Metrics(ctx context.Context) ([]domain.MetricCard, error)
	Chart(ctx context.Context, in usecase.ChartInput) (*domain.ChartSpec, error)
}

type ChartRenderer interface {
	Render(w io.Writer, spec domain.ChartSpec, f gochart.Format) error
}

type Options struct {
	Dir      string
	Format   gochart.Format
	Gender   customers.Selector
	Progress io.Writer // progress bar output; nil disables it
}

type Result struct {
	Summary string
	Charts  []string
	Skipped []domain.ChartID // charts with nothing to draw
}

// Writer renders every chart into a directory and summarizes the metric
// cards in a Markdown file next to them.
type Writer struct {
	uc       DashboardUseCase
	renderer ChartRenderer
	now      func() time.Time
	log      *logger.Logger
}

func NewWriter(uc DashboardUseCase, renderer ChartRenderer) *Writer {
	return &Writer{uc: uc, renderer: renderer, now: time.Now, log: logger.New("dashboard.report")}
}

func (w *Writer) Write(ctx context.Context, opts Options) (*Result, error) {
	defer w.log.Track("write report")()

	if opts.Format == "" {
		opts.Format = gochart.FormatSVG
	}
	if opts.Gender == "" {
		opts.Gender = customers.SelectAll
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	cards, err := w.uc.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	out := opts.Progress
	if out == nil {
		out = io.Discard
	}
	bar := progressbar.NewOptions(len(domain.ChartIDs),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("rendering charts"),
		progressbar.OptionShowCount(),
	)

	res := &Result{}
	titles := map[domain.ChartID]string{}
	for _, id := range domain.ChartIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		spec, err := w.uc.Chart(ctx, usecase.ChartInput{ID: id, Gender: opts.Gender})
		if err != nil {
			return nil, fmt.Errorf("chart %s: %w", id, err)
		}
		titles[id] = spec.Title

		var buf bytes.Buffer
		err = w.renderer.Render(&buf, *spec, opts.Format)
		switch {
		case errors.Is(err, gochart.ErrEmptyChart):
			w.log.Warnf("chart %s has no data, skipped", id)
			res.Skipped = append(res.Skipped, id)
		case err != nil:
			return nil, err
		default:
			name := string(id) + "." + string(opts.Format)
			if err := os.WriteFile(filepath.Join(opts.Dir, name), buf.Bytes(), 0o644); err != nil {
				return nil, fmt.Errorf("write %s: %w", name, err)
			}
			res.Charts = append(res.Charts, name)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	res.Summary = filepath.Join(opts.Dir, SummaryFile)
	md := summary(cards, res, titles, opts.Gender, w.now())
	if err := os.WriteFile(res.Summary, []byte(md), 0o644); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}
	w.log.Infof("report written to %s (%d charts, %d skipped)", opts.Dir, len(res.Charts), len(res.Skipped))
	return res, nil
}

func summary(cards []domain.MetricCard, res *Result, titles map[domain.ChartID]string, g customers.Selector, at time.Time) string {
	var b strings.Builder
	b.WriteString("# E-commerce Customer Behaviour\n\n")
	fmt.Fprintf(&b, "Generated %s, gender filter: %s\n\n", at.UTC().Format(time.RFC3339), g)

	b.WriteString("## Overview\n\n| Metric | Value |\n|---|---|\n")
	for _, c := range cards {
		v := "n/a"
		if c.Available {
			v = strconv.FormatFloat(c.Value, 'f', c.Precision, 64)
		}
		fmt.Fprintf(&b, "| %s | %s |\n", c.Label, v)
	}

	b.WriteString("\n## Charts\n")
	for _, name := range res.Charts {
		id := domain.ChartID(strings.TrimSuffix(name, filepath.Ext(name)))
		fmt.Fprintf(&b, "\n### %s\n\n![%s](%s)\n", titles[id], titles[id], name)
	}
	for _, id := range res.Skipped {
		fmt.Fprintf(&b, "\n### %s\n\nNo data.\n", titles[id])
	}
	return b.String()
}
