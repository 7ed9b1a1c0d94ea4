package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can decide how to surface
// it. NotFound and InvalidState are ordinary conversational branches; only
// ValidationFailure and PersistenceFailure represent genuinely broken input
// or infrastructure.
type Kind int

const (
	KindNotFound Kind = iota
	KindInvalidState
	KindValidationFailure
	KindPersistenceFailure
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidationFailure, Message: fmt.Sprintf(format, args...)}
}

func Persistence(message string, err error) *AppError {
	return &AppError{Kind: KindPersistenceFailure, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain. Unclassified errors report
// as PersistenceFailure so nothing ever escapes the taxonomy.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindPersistenceFailure
}
