package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func cmdMigrate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(false)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	be, err := openBackend(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer be.store.Close(context.Background())

	if err := be.migrate(ctx); err != nil {
		return err
	}
	log.Info("migration complete")
	return nil
}
