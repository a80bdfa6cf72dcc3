package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"landing_backend/internal/apperr"
	"landing_backend/internal/model"
	"landing_backend/internal/repository"
	"landing_backend/pkg/utils/storage"
	"landing_backend/pkg/utils/validation"
)

// ScreenshotField is the multipart field carrying the payment screenshot.
const ScreenshotField = "paymentScreenshot"

var registrationRules = map[string]string{
	"fullName":       "required,max=200",
	"phoneNumber":    "required,max=50",
	"contactMethod":  "required,max=50",
	"email":          "required,email,max=254",
	"referralSource": "required,max=100",
	"plan":           "required,max=100",
	"transactionID":  "required,max=200",
}

// Upload is a single file taken from a multipart form.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

type RegistrationService struct {
	repo     repository.Registrations
	files    storage.FileStorage
	validate *Validator
	maxBytes int64
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewRegistrationService(repo repository.Registrations, files storage.FileStorage, v *Validator, maxBytes int64, log logrus.FieldLogger) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		files:    files,
		validate: v,
		maxBytes: maxBytes,
		log:      log,
		now:      time.Now,
	}
}

// Register validates the form and screenshot, stores the screenshot and saves a
// Pending registration. The screenshot only becomes public once the record is
// saved.
func (s *RegistrationService) Register(ctx context.Context, fields map[string]string, upload *Upload) (string, error) {
	form, verr := s.validate.check(fields, registrationRules)
	if upload == nil || upload.Name == "" {
		if verr == nil {
			verr = &ValidationError{Fields: map[string]string{}}
		}
		verr.Fields[ScreenshotField] = "is required"
	}
	if verr != nil {
		return "", apperr.Validation.Wrap(verr)
	}

	if err := validation.ValidateImage(upload.Name, upload.ContentType, upload.Size, s.maxBytes); err != nil {
		return "", apperr.Validation.Wrap(err)
	}
	content, err := validation.SniffImage(upload.Content)
	if err != nil {
		if errors.Is(err, validation.ErrFileType) {
			return "", apperr.Validation.Wrap(err)
		}
		return "", apperr.Storage.Wrap(err)
	}

	now := s.now().UTC()
	staged, err := s.files.Stage(ctx, validation.GenerateFilename(upload.Name, now), content, upload.ContentType)
	if err != nil {
		return "", apperr.Storage.Wrap(err)
	}

	reg := &model.Registration{
		FullName:       form["fullName"],
		PhoneNumber:    form["phoneNumber"],
		ContactMethod:  form["contactMethod"],
		Email:          normalizeEmail(form["email"]),
		ReferralSource: form["referralSource"],
		FriendName:     friendName(form),
		Plan:           form["plan"],
		TransactionID:  form["transactionID"],
		ScreenshotPath: staged.Path,
		CreatedAt:      now,
		Status:         model.RegistrationPending,
	}

	id, err := s.repo.Insert(ctx, reg)
	if err != nil {
		if derr := s.files.Discard(ctx, staged); derr != nil {
			s.log.WithError(derr).WithField("file", staged.Name).Warn("could not discard staged screenshot")
		}
		return "", apperr.Storage.Wrap(err)
	}

	if err := s.publish(ctx, staged); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"registration_id": id,
			"file":            staged.Name,
		}).Error("registration saved but screenshot was not published")
		return "", apperr.Storage.Wrap(err)
	}

	return id, nil
}

// publish tries twice. A record whose screenshot stays unpublished is logged
// with its id so the proof can be requested again.
func (s *RegistrationService) publish(ctx context.Context, staged *storage.Staged) error {
	err := s.files.Publish(ctx, staged)
	if err == nil {
		return nil
	}
	s.log.WithError(err).WithField("file", staged.Name).Warn("publishing screenshot failed, retrying")
	return s.files.Publish(ctx, staged)
}

// friendName keeps the referring friend only for friend referrals.
func friendName(form Fields) *string {
	if form["referralSource"] != model.ReferralFriend {
		return nil
	}
	name := form["friendName"]
	if name == "" {
		return nil
	}
	return &name
}
