package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"landing_backend/internal/repository"
	"landing_backend/internal/repository/memory"
	"landing_backend/internal/repository/mongostore"
	"landing_backend/internal/repository/sqlstore"
	"landing_backend/pkg/config"
	"landing_backend/pkg/database"
	"landing_backend/pkg/utils/storage"
)

// backend is the selected store plus its schema step.
type backend struct {
	store   *repository.Store
	migrate func(ctx context.Context) error
}

func openBackend(ctx context.Context, cfg config.DatabaseConfig, log logrus.FieldLogger) (*backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		gw, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.UsersDB, cfg.DataDB)
		if err != nil {
			return nil, err
		}
		log.WithField("driver", cfg.Driver).Info("connected to database")
		return &backend{store: mongostore.NewStore(gw), migrate: gw.EnsureIndexes}, nil

	case config.DriverPostgres:
		db, err := database.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		log.WithField("driver", cfg.Driver).Info("connected to database")
		return &backend{
			store: sqlstore.NewStore(db),
			migrate: func(context.Context) error {
				return database.MigrateDatabase(db, log, sqlstore.Models...)
			},
		}, nil

	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return &backend{
			store:   memory.New().Repositories(),
			migrate: func(context.Context) error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

type backendOpener func(ctx context.Context, cfg config.DatabaseConfig, log logrus.FieldLogger) (*backend, error)

// startBackend opens the store and runs its schema step before the server takes
// traffic. Duplicate subscriptions are only rejected once the unique index exists.
func startBackend(ctx context.Context, cfg config.DatabaseConfig, log logrus.FieldLogger, open backendOpener) (*backend, error) {
	be, err := open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := be.migrate(ctx); err != nil {
		if cerr := be.store.Close(context.Background()); cerr != nil {
			log.WithError(cerr).Warn("could not close database")
		}
		return nil, fmt.Errorf("migrate %s: %w", cfg.Driver, err)
	}
	log.WithField("driver", cfg.Driver).Info("database schema ready")
	return be, nil
}

func openFiles(ctx context.Context, cfg *config.Config) (storage.FileStorage, error) {
	up := cfg.Upload
	switch up.Backend {
	case config.UploadLocal:
		local, err := storage.NewLocalStorage(cfg.Server.PublicDir, up.Dir, up.StagingDir)
		if err != nil {
			return nil, err
		}
		return local, nil
	case config.UploadR2:
		r2, err := storage.NewR2Storage(ctx, up.R2AccountID, up.R2AccessKey, up.R2SecretKey, up.R2Bucket, up.Dir)
		if err != nil {
			return nil, err
		}
		return r2, nil
	}
	return nil, fmt.Errorf("unsupported upload backend %q", up.Backend)
}
