package core

import "github.com/pkg/errors"

// FieldError points an error at a specific request field, mirroring the shape
// of the validator's translated errors.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a business-rule rejection the tag-based validators cannot
// express (e.g. a required query parameter). The API layer renders it as a 400
// with a field->message map.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown means the process can no longer serve requests (e.g. the shared
// store client was lost) and should terminate gracefully.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
