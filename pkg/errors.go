package pkg

import "fmt"

// AppError is the error envelope returned by the HTTP layer.
//
// Code is a stable machine-readable identifier, Message is safe to show to the
// panel user, Err (optional) keeps the underlying cause for logs.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewDomainError creates an AppError carrying an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple creates an AppError without a cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body written for failed requests.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message}
	if e.Err != nil {
		out.Detail = e.Err.Error()
	}
	return out
}
