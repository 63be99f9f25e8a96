package xmldocrinse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	CodeUsage         ErrorCode = "usage"
	CodeMissingFile   ErrorCode = "missing_file"
	CodeMetadataLoad  ErrorCode = "metadata_load"
	CodeDocumentLoad  ErrorCode = "document_load"
	CodeInvalidConfig ErrorCode = "invalid_config"
	CodeWrite         ErrorCode = "write"
	CodeCanceled      ErrorCode = "canceled"
	CodeInternal      ErrorCode = "internal"
)

// Error is a failed run, classified by Code.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]any

	err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// NewError creates a new error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap classifies err under code. The message is msg followed by the cause.
func Wrap(code ErrorCode, err error, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg + ": " + err.Error(),
		err:     err,
	}
}

// WithDetail returns a new Error with the key-value pair added to details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		err:     e.err,
	}
}

// ExitCode is the process exit status for an error with this code.
func (c ErrorCode) ExitCode() int {
	if c == CodeUsage {
		return 2
	}
	return 1
}

// AsError maps any error to an *Error. Errors already carrying a code pass
// through unchanged; nil maps to nil.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var runErr *Error
	if errors.As(err, &runErr) {
		return runErr
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: CodeCanceled, Message: err.Error(), err: err}
	}

	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		details := make(map[string]any)
		messages := make([]string, 0, len(valErrs))
		for _, ve := range valErrs {
			msg := formatValidationError(ve)
			details[ve.Field()] = msg
			messages = append(messages, ve.Field()+": "+msg)
		}
		return &Error{
			Code:    CodeInvalidConfig,
			Message: strings.Join(messages, "; "),
			Details: details,
			err:     err,
		}
	}

	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Code: CodeMissingFile, Message: err.Error(), err: err}
	}

	// errors.Join: classify by the first error, keep every message.
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		errs := u.Unwrap()
		if len(errs) > 0 {
			first := AsError(errs[0])
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			return &Error{
				Code:    first.Code,
				Message: strings.Join(msgs, "; "),
				Details: first.Details,
				err:     err,
			}
		}
	}

	return &Error{Code: CodeInternal, Message: err.Error(), err: err}
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "startswith":
		return fmt.Sprintf("must start with %q", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
