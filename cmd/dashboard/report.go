package main

import (
	"fmt"
	"os"
	"strconv"

	"customer-behaviour-dashboard/internal/customers/adapters/memory"
	customers "customer-behaviour-dashboard/internal/customers/core/domain"
	"customer-behaviour-dashboard/internal/dashboard/adapters/render/gochart"
	"customer-behaviour-dashboard/internal/dashboard/adapters/report"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
	dashboardUsecase "customer-behaviour-dashboard/internal/dashboard/core/usecase"

	"github.com/spf13/cobra"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	var (
		dir    string
		format string
		gender string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the metric cards and write every chart to a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if dir == "" {
				dir = cfg.ReportDir
			}
			f, err := gochart.ParseFormat(format)
			if err != nil {
				return err
			}
			sel := customers.Selector(gender)
			if !sel.Valid() {
				return fmt.Errorf("%w: %q", dashboardUsecase.ErrUnknownSelector, gender)
			}

			table, err := loadTable(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			uc := dashboardUsecase.NewBuildDashboardUseCase(memory.NewTableStore(table), cfg.Colors, domain.DefaultHistogramPolicies())

			cards, err := uc.Metrics(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range cards {
				v := "n/a"
				if c.Available {
					v = strconv.FormatFloat(c.Value, 'f', c.Precision, 64)
				}
				fmt.Fprintf(out, "%-34s %s\n", c.Label, v)
			}

			res, err := report.NewWriter(uc, gochart.NewRenderer(width, height)).Write(cmd.Context(), report.Options{
				Dir:      dir,
				Format:   f,
				Gender:   sel,
				Progress: os.Stderr,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nwrote %d charts and %s\n", len(res.Charts), res.Summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "out", "", "output directory (default $REPORT_DIR)")
	cmd.Flags().StringVar(&format, "format", string(gochart.FormatSVG), "svg or png")
	cmd.Flags().StringVar(&gender, "gender", string(customers.SelectAll), "gender filter for the filtered charts")
	cmd.Flags().IntVar(&width, "width", gochart.DefaultWidth, "chart width in pixels")
	cmd.Flags().IntVar(&height, "height", gochart.DefaultHeight, "chart height in pixels")
	return cmd
}
