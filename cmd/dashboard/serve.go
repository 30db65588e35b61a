package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customer-behaviour-dashboard/internal/customers/adapters/memory"
	dashboardHttp "customer-behaviour-dashboard/internal/dashboard/adapters/http/fiber"
	"customer-behaviour-dashboard/internal/dashboard/adapters/render/gochart"
	"customer-behaviour-dashboard/internal/dashboard/core/domain"
	dashboardUsecase "customer-behaviour-dashboard/internal/dashboard/core/usecase"
	"customer-behaviour-dashboard/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "customer-behaviour-dashboard/docs"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the customer table and serve the dashboard over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts, width, height)
		},
	}
	cmd.Flags().IntVar(&width, "width", gochart.DefaultWidth, "chart width in pixels")
	cmd.Flags().IntVar(&height, "height", gochart.DefaultHeight, "chart height in pixels")
	return cmd
}

func serve(ctx context.Context, opts *rootOptions, width, height int) error {
	cfg := opts.cfg

	table, err := loadTable(ctx, cfg)
	if err != nil {
		return err
	}
	store := memory.NewTableStore(table)

	// Usecases
	dashboardUC := dashboardUsecase.NewBuildDashboardUseCase(store, cfg.Colors, domain.DefaultHistogramPolicies())

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName:               "customer-behaviour-dashboard",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberLogger.New(fiberLogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint: "/healthz",
		ReadinessProbe: func(c *fiber.Ctx) bool {
			_, err := store.CurrentTable(c.Context())
			return err == nil
		},
	}))

	dashboardHandler := dashboardHttp.NewDashboardHandler(dashboardUC, gochart.NewRenderer(width, height))
	app.Get("/", dashboardHandler.GetPage)
	app.Get("/api/metrics", dashboardHandler.GetMetrics)
	app.Get("/api/dashboard", dashboardHandler.GetDashboard)
	app.Get("/api/charts/:id", dashboardHandler.GetChart)
	app.Get("/charts/:file", dashboardHandler.GetChartImage)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	errc := make(chan error, 1)
	go func() {
		errc <- app.Listen(cfg.Addr)
	}()

	log.Infof("server started on %s (%d rows, snapshot %s)", cfg.Addr, table.Len(), table.SnapshotID())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errc:
		return err
	case <-quit:
	}

	log.Infof("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("fiber shutdown error: %v", err)
	}

	log.Infof("server exiting")
	return nil
}
