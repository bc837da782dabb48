package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingTarget  = errors.New("please specify a target identifier or element")
	ErrTargetNotFound = errors.New("target element not found")
	ErrTooFewItems    = errors.New("target must contain at least 2 items")
	ErrInvalidOption  = errors.New("invalid option")
)

// ConfigurationError is fatal and raised once, at construction. A slider that
// fails with it never becomes interactive.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NewConfigError wraps err as a ConfigurationError for field
func NewConfigError(field string, err error) *ConfigurationError {
	return &ConfigurationError{Field: field, Err: err}
}

// InvalidOption builds a ConfigurationError wrapping ErrInvalidOption
func InvalidOption(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidOption, fmt.Sprintf(format, args...)),
	}
}
