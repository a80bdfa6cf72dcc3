// Package repository declares the storage contracts used by the services. The mongo,
// sql and memory subpackages provide the implementations.
package repository

import (
	"context"
	"errors"

	"landing_backend/internal/model"
)

var (
	// ErrNotFound is returned when a lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique key.
	ErrDuplicate = errors.New("duplicate key")
)

type Links interface {
	FindByPlatform(ctx context.Context, platform model.Platform) (*model.Link, error)
	Upsert(ctx context.Context, link *model.Link) error
}

type News interface {
	// Latest returns at most limit items ordered by NewsDate, newest first.
	Latest(ctx context.Context, limit int) ([]model.NewsItem, error)
	Insert(ctx context.Context, item *model.NewsItem) (string, error)
}

type Subscriptions interface {
	// Insert stores the subscription and returns its id. A second insert for the
	// same email fails with ErrDuplicate.
	Insert(ctx context.Context, sub *model.Subscription) (string, error)
}

type Registrations interface {
	Insert(ctx context.Context, reg *model.Registration) (string, error)
}

type Customers interface {
	FindByID(ctx context.Context, id string) (*model.Customer, error)
}

// Store bundles every repository behind one backend.
type Store struct {
	Links         Links
	News          News
	Subscriptions Subscriptions
	Registrations Registrations
	Customers     Customers

	// Ping checks backend reachability.
	Ping func(ctx context.Context) error
	// Close releases the backend connection.
	Close func(ctx context.Context) error
}
