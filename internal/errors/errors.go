// Package errors provides standardized error handling for the wuerfel application.
// It defines the error kinds raised by the dice model and the front ends, and
// helper functions for consistent error creation, wrapping, and classification.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Configuration error kinds
	InvalidFace
	InvalidCatalog
	// Die error kinds
	UnconfiguredDie
	InvalidInput
	// Front end error kinds
	InputMismatch
	IOFailure
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case InvalidFace:
		return "invalid face"
	case InvalidCatalog:
		return "invalid catalog"
	case UnconfiguredDie:
		return "unconfigured die"
	case InvalidInput:
		return "invalid input"
	case InputMismatch:
		return "input mismatch"
	case IOFailure:
		return "io failure"
	default:
		return "unknown"
	}
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigurationError reports a face number outside the fixed catalog or a
// malformed dice catalog. It always indicates a programming error.
type ConfigurationError struct {
	ApplicationError
	param string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(msg string, param string, kind ErrorKind, err error) *ConfigurationError {
	return &ConfigurationError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the configuration error message
func (e *ConfigurationError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the offending parameter
func (e *ConfigurationError) Param() string {
	return e.param
}

// DieError represents errors raised by a single die
type DieError struct {
	ApplicationError
	dieName string
}

// NewDieError creates a new die error
func NewDieError(msg string, dieName string, kind ErrorKind, err error) *DieError {
	return &DieError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		dieName: dieName,
	}
}

// Error returns the die error message
func (e *DieError) Error() string {
	if e.dieName != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.dieName, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.dieName)
	}
	return e.ApplicationError.Error()
}

// DieName returns the name of the die associated with the error
func (e *DieError) DieName() string {
	return e.dieName
}

// InputError represents errors while talking to the user: unexpected answers
// and failures of the underlying input or terminal.
type InputError struct {
	ApplicationError
	input string
}

// NewInputError creates a new input error
func NewInputError(msg string, input string, kind ErrorKind, err error) *InputError {
	return &InputError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		input: input,
	}
}

// Input returns the raw input associated with the error, if any
func (e *InputError) Input() string {
	return e.input
}

// NewIOError wraps a read, write or terminal failure
func NewIOError(msg string, err error) *InputError {
	return NewInputError(msg, "", IOFailure, err)
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first classified error in err's chain
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsConfigurationError checks if the error is a configuration error
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsUnconfiguredDie checks if the error was raised by a die without faces
func IsUnconfiguredDie(err error) bool {
	var dieErr *DieError
	if errors.As(err, &dieErr) {
		return dieErr.Kind() == UnconfiguredDie
	}
	return false
}

// IsInputMismatch checks if the error is a recoverable input mismatch
func IsInputMismatch(err error) bool {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Kind() == InputMismatch
	}
	return false
}

// IsIOError checks if the error is an io failure
func IsIOError(err error) bool {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Kind() == IOFailure
	}
	return false
}
