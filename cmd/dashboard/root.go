package main

import (
	"customer-behaviour-dashboard/internal/platform/config"
	"customer-behaviour-dashboard/internal/platform/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile  string
	dataFile string
	dsn      string
	logLevel string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "dashboard",
		Short:        "E-commerce customer behaviour dashboard",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if opts.envFile != "" {
				files = append(files, opts.envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}

			// flags win over the environment
			if opts.dataFile != "" {
				cfg.DataFile = opts.dataFile
			}
			if opts.dsn != "" {
				cfg.DSN = opts.dsn
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger.SetLevel(cfg.LogLevel)
			opts.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file to load (default .env when present)")
	flags.StringVar(&opts.dataFile, "data-file", "", "read customers from a local CSV file")
	flags.StringVar(&opts.dsn, "dsn", "", "read customers from a database (postgres://, mysql://, mariadb://, sqlite://)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(newServeCmd(opts), newReportCmd(opts))
	return root
}
