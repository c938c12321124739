package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError for callers that branch on failure type
type Kind string

const (
	KindRequest    Kind = "request"
	KindValidation Kind = "validation_failure"
	KindSubmission Kind = "submission_failure"
	KindInternal   Kind = "internal"
)

type AppError struct {
	Code    int         `json:"code"`
	Kind    Kind        `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithData attaches data the client needs alongside the error, such as the
// view to redirect to.
func (e *AppError) WithData(data interface{}) *AppError {
	e.Data = data
	return e
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    KindRequest,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

func Internal(err error) *AppError {
	e := New(http.StatusInternalServerError, "Internal Server Error", err)
	e.Kind = KindInternal
	return e
}

// ValidationFailure blocks a submission. details carries the verdict in the
// shape the client renders.
func ValidationFailure(message string, details interface{}) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
		Details: details,
	}
}

// SubmissionFailure hides the cause behind a generic message.
func SubmissionFailure(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadGateway,
		Kind:    KindSubmission,
		Message: message,
		Err:     err,
	}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
