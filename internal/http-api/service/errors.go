package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate signals a create collided with an existing imdb_id.
	ErrDuplicate = errors.New("movie already exists in the collection")
)

// ValidationError reports a rejected request field. Handlers map it to 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
