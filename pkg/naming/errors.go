package naming

import (
	"errors"
	"fmt"
)

const (
	errorCodeInvalidName    = "naming.invalid_name"
	errorCodeNameTooLong    = "naming.name_too_long"
	errorCodeInvalidOptions = "naming.invalid_options"
)

var (
	ErrInvalidName    = errors.New(errorCodeInvalidName)
	ErrNameTooLong    = errors.New(errorCodeNameTooLong)
	ErrInvalidOptions = errors.New(errorCodeInvalidOptions)
)

// InvalidNameError reports a base name that cannot produce a resource name.
type InvalidNameError struct {
	BaseName string
	Reason   string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s: base name %q %s", errorCodeInvalidName, e.BaseName, e.Reason)
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// NameTooLongError reports a name that is still over its limit after trimming.
type NameTooLongError struct {
	Name      string
	MaxLength int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("%s: %q is %d characters, limit is %d", errorCodeNameTooLong, e.Name, len(e.Name), e.MaxLength)
}

func (e *NameTooLongError) Unwrap() error { return ErrNameTooLong }

type InvalidOptionsError struct {
	Field   string
	Message string
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("%s: %s: %s", errorCodeInvalidOptions, e.Field, e.Message)
}

func (e *InvalidOptionsError) Unwrap() error { return ErrInvalidOptions }
