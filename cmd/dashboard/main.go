package main

import (
	"os"

	"customer-behaviour-dashboard/internal/platform/logger"
)

var log = logger.New("dashboard")

// @title Customer Behaviour Dashboard API
// @version 1.0
// @description Metric cards and chart specs for the e-commerce customer behaviour dashboard.
// @host localhost:8080
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
