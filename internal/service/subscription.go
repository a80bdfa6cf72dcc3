package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"landing_backend/internal/apperr"
	"landing_backend/internal/model"
	"landing_backend/internal/repository"
)

var ErrAlreadySubscribed = errors.New("this email is already subscribed")

type SubscriptionService struct {
	repo     repository.Subscriptions
	validate *Validator
	now      func() time.Time
}

func NewSubscriptionService(repo repository.Subscriptions, v *Validator) *SubscriptionService {
	return &SubscriptionService{repo: repo, validate: v, now: time.Now}
}

// Subscribe stores a new subscription and returns its id. The store's unique key
// on email decides duplicates, so concurrent calls for one address create a
// single record.
func (s *SubscriptionService) Subscribe(ctx context.Context, email string) (string, error) {
	fields, err := s.validate.Validate(map[string]string{"email": email}, map[string]string{
		"email": "required,email,max=254",
	})
	if err != nil {
		return "", err
	}

	sub := &model.Subscription{
		Email:        normalizeEmail(fields["email"]),
		Subscribed:   true,
		SubscribedAt: s.now().UTC(),
	}

	id, err := s.repo.Insert(ctx, sub)
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return "", apperr.Conflict.Wrap(ErrAlreadySubscribed)
	case err != nil:
		return "", apperr.Storage.Wrap(err)
	}
	return id, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
