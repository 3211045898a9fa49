package models

import (
	"errors"

	"inventory-server/db"
)

// ValidationError covers bad or missing input, including
// status/assignee invariant violations.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError covers duplicate serial numbers and category names.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError covers lookups of unknown ids.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// UpstreamError covers failures of external collaborators
// (identity provider, media store).
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return e.Message }

// decodeStoreError maps typed persistence errors onto the user-facing
// taxonomy, so raw store error text never reaches a response.
func decodeStoreError(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	err = db.Decode(err)
	var unique *db.ErrUniqueViolation
	if errors.As(err, &unique) {
		return &ConflictError{Message: "duplicate value for " + unique.Column}
	}
	var notNull *db.ErrNotNullViolation
	if errors.As(err, &notNull) {
		return &ValidationError{Message: "missing required field " + notNull.Column}
	}
	if errors.Is(err, db.ErrNotFound) {
		return &NotFoundError{Message: notFoundMessage}
	}
	return err
}
