package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"landing_backend/pkg/config"
	"landing_backend/pkg/logging"
)

var (
	rootCmd = &cobra.Command{
		Use:           "landing",
		Short:         "Landing site backend: links, news, subscriptions and premium registrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  cmdServe,
	}
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create indexes (mongo) or tables (postgres)",
		RunE:  cmdMigrate,
	}
	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load community links and news from a JSON file",
		RunE:  cmdSeed,
	}

	seedFile string
	skipNews bool
)

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.json", "seed file to load")
	seedCmd.Flags().BoolVar(&skipNews, "links-only", false, "only upsert links")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// setup loads configuration and builds the process logger. Only the server
// needs the full configuration; the other commands just need the database.
func setup(full bool) (*config.Config, *logrus.Logger, error) {
	cfg := config.Load()
	log := logging.New(cfg.Server.LogLevel, cfg.Server.Env)

	validate := cfg.ValidateDatabase
	if full {
		validate = cfg.Validate
	}
	if err := validate(); err != nil {
		return nil, log, err
	}
	return cfg, log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
