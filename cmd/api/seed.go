package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"landing_backend/pkg/seed"
)

func cmdSeed(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(false)
	if err != nil {
		return err
	}

	data, err := seed.Load(seedFile)
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

	if err := seed.SeedLinks(ctx, be.store.Links, data, log); err != nil {
		return err
	}
	if skipNews {
		return nil
	}
	return seed.SeedNews(ctx, be.store.News, data, log)
}
