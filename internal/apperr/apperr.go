// Package apperr classifies failures so that handlers can map them to HTTP statuses
// without inspecting driver or transport errors.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zeebo/errs"
)

var (
	// Validation marks user-correctable input problems.
	Validation = errs.Class("validation")
	// NotFound marks a referenced entity that does not exist.
	NotFound = errs.Class("not found")
	// Conflict marks a duplicate of a natural key.
	Conflict = errs.Class("conflict")
	// Storage marks database and file storage failures.
	Storage = errs.Class("storage")
	// Send marks email transport failures.
	Send = errs.Class("send")
)

// HTTPStatus maps an error class to the status code returned to callers.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case Validation.Has(err), Conflict.Has(err):
		return fiber.StatusBadRequest
	case NotFound.Has(err):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Exposable reports whether the error text can be shown to the caller.
func Exposable(err error) bool {
	return Validation.Has(err) || NotFound.Has(err) || Conflict.Has(err)
}

// Message returns the innermost error text, without class prefixes.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
