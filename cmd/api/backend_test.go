package main

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_backend/internal/model"
	"landing_backend/internal/repository"
	"landing_backend/internal/repository/memory"
	"landing_backend/pkg/config"
)

type fakeBackend struct {
	migrated   int
	closed     int
	migrateErr error
}

func (f *fakeBackend) open(context.Context, config.DatabaseConfig, logrus.FieldLogger) (*backend, error) {
	store := memory.New().Repositories()
	store.Close = func(context.Context) error {
		f.closed++
		return nil
	}
	return &backend{
		store: store,
		migrate: func(context.Context) error {
			f.migrated++
			return f.migrateErr
		},
	}, nil
}

func TestStartBackendMigratesBeforeServing(t *testing.T) {
	log, _ := test.NewNullLogger()
	fake := &fakeBackend{}

	be, err := startBackend(context.Background(), config.DatabaseConfig{Driver: config.DriverMongo}, log, fake.open)
	require.NoError(t, err)
	require.NotNil(t, be)
	assert.Equal(t, 1, fake.migrated)
	assert.Equal(t, 0, fake.closed)
}

func TestStartBackendFailsWhenMigrationFails(t *testing.T) {
	log, _ := test.NewNullLogger()
	fake := &fakeBackend{migrateErr: errors.New("index build failed")}

	be, err := startBackend(context.Background(), config.DatabaseConfig{Driver: config.DriverMongo}, log, fake.open)
	require.Error(t, err)
	assert.Nil(t, be)
	assert.Contains(t, err.Error(), "index build failed")
	assert.Equal(t, 1, fake.closed)
}

func TestStartBackendOpenFailure(t *testing.T) {
	log, _ := test.NewNullLogger()
	open := func(context.Context, config.DatabaseConfig, logrus.FieldLogger) (*backend, error) {
		return nil, errors.New("no reachable servers")
	}

	_, err := startBackend(context.Background(), config.DatabaseConfig{Driver: config.DriverMongo}, log, open)
	assert.EqualError(t, err, "no reachable servers")
}

func TestStartBackendMemoryRejectsDuplicates(t *testing.T) {
	log, _ := test.NewNullLogger()

	be, err := startBackend(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory}, log, openBackend)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = be.store.Subscriptions.Insert(ctx, &model.Subscription{Email: "a@example.com", Subscribed: true})
	require.NoError(t, err)
	_, err = be.store.Subscriptions.Insert(ctx, &model.Subscription{Email: "a@example.com", Subscribed: true})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}
