package service

import (
	"context"
	"errors"

	"landing_backend/internal/apperr"
	"landing_backend/internal/repository"
	"landing_backend/pkg/email"
)

var ErrCustomerNotFound = errors.New("user not found")

// SupportNotifier is satisfied by *email.Dispatcher.
type SupportNotifier interface {
	NotifySupport(ctx context.Context, profile email.Profile, subject, message string) error
}

type ContactService struct {
	customers repository.Customers
	notifier  SupportNotifier
	validate  *Validator
}

func NewContactService(customers repository.Customers, notifier SupportNotifier, v *Validator) *ContactService {
	return &ContactService{customers: customers, notifier: notifier, validate: v}
}

// Submit emails a contact request from the signed-in customer to support.
func (s *ContactService) Submit(ctx context.Context, customerID, subject, message string) error {
	form, err := s.validate.Validate(map[string]string{
		"subject": subject,
		"message": message,
	}, map[string]string{
		"subject": "required,max=200",
		"message": "required,max=5000",
	})
	if err != nil {
		return err
	}

	customer, err := s.customers.FindByID(ctx, customerID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound.Wrap(ErrCustomerNotFound)
	case err != nil:
		return apperr.Storage.Wrap(err)
	}

	profile := email.Profile{
		ID:          customer.ID,
		Name:        customer.GetFullName(),
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
	}
	if err := s.notifier.NotifySupport(ctx, profile, form["subject"], form["message"]); err != nil {
		return apperr.Send.Wrap(err)
	}
	return nil
}
