// Package memory keeps every repository in process memory. It backs tests and
// DATABASE_DRIVER=memory for local development.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"landing_backend/internal/model"
	"landing_backend/internal/repository"
)

type Store struct {
	mu            sync.RWMutex
	links         map[model.Platform]model.Link
	news          []model.NewsItem
	subscriptions map[string]model.Subscription // keyed by email
	registrations map[string]model.Registration
	customers     map[string]model.Customer
}

func New() *Store {
	return &Store{
		links:         make(map[model.Platform]model.Link),
		subscriptions: make(map[string]model.Subscription),
		registrations: make(map[string]model.Registration),
		customers:     make(map[string]model.Customer),
	}
}

// Repositories exposes the store through the repository contracts.
func (s *Store) Repositories() *repository.Store {
	return &repository.Store{
		Links:         linkRepo{s},
		News:          newsRepo{s},
		Subscriptions: subscriptionRepo{s},
		Registrations: registrationRepo{s},
		Customers:     customerRepo{s},
		Ping:          func(context.Context) error { return nil },
		Close:         func(context.Context) error { return nil },
	}
}

// PutCustomer stands in for the external account system.
func (s *Store) PutCustomer(c model.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

func (s *Store) Subscriptions() []model.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		out = append(out, sub)
	}
	return out
}

func (s *Store) Registrations() []model.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Registration, 0, len(s.registrations))
	for _, reg := range s.registrations {
		out = append(out, reg)
	}
	return out
}

type linkRepo struct{ s *Store }

func (r linkRepo) FindByPlatform(_ context.Context, platform model.Platform) (*model.Link, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	link, ok := r.s.links[platform]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &link, nil
}

func (r linkRepo) Upsert(_ context.Context, link *model.Link) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.links[link.Platform] = *link
	return nil
}

type newsRepo struct{ s *Store }

func (r newsRepo) Latest(_ context.Context, limit int) ([]model.NewsItem, error) {
	r.s.mu.RLock()
	items := append([]model.NewsItem(nil), r.s.news...)
	r.s.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].NewsDate.After(items[j].NewsDate)
	})
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r newsRepo) Insert(_ context.Context, item *model.NewsItem) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = uuid.NewString()
	r.s.news = append(r.s.news, *item)
	return item.ID, nil
}

type subscriptionRepo struct{ s *Store }

func (r subscriptionRepo) Insert(_ context.Context, sub *model.Subscription) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.subscriptions[sub.Email]; exists {
		return "", repository.ErrDuplicate
	}
	sub.ID = uuid.NewString()
	r.s.subscriptions[sub.Email] = *sub
	return sub.ID, nil
}

type registrationRepo struct{ s *Store }

func (r registrationRepo) Insert(_ context.Context, reg *model.Registration) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reg.ID = uuid.NewString()
	r.s.registrations[reg.ID] = *reg
	return reg.ID, nil
}

type customerRepo struct{ s *Store }

func (r customerRepo) FindByID(_ context.Context, id string) (*model.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}
