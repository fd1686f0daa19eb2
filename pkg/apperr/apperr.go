// Package apperr holds the error kinds the workflow engine surfaces.
// Guards are evaluated before any write, so a returned kind always means
// no state changed.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound: unresolvable audit/answer/user reference.
	ErrNotFound = errors.New("not found")
	// ErrForbidden: role/department/identity guard failed.
	ErrForbidden = errors.New("not authorized")
	// ErrInvalidAssignee: target user's department does not match the NC's
	// assigned department.
	ErrInvalidAssignee = errors.New("assignee department mismatch")
	// ErrValidation: missing or malformed field on a submitted payload.
	ErrValidation = errors.New("validation failed")
	// ErrConflict is absorbed by upsert semantics and should not reach a
	// controller; it exists so repositories can classify constraint hits.
	ErrConflict = errors.New("conflict")
)

// Status maps an error to the HTTP status a controller should emit.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidAssignee):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
