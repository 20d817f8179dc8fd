package apperr

import "net/http"

type Code string

const (
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeValidation   Code = "validation_error"
	CodeNotFound     Code = "not_found"
	CodeGateway      Code = "gateway_error"
	CodeInternal     Code = "internal_error"
)

// Error is the taxonomy every handler-visible failure is converted into.
// The server's error handler renders it as a structured JSON body.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Unauthorized(message string) *Error {
	return &Error{Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Gateway(message string, cause error) *Error {
	return &Error{Code: CodeGateway, Message: message, cause: cause}
}

func Internal(message string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: message, cause: cause}
}
