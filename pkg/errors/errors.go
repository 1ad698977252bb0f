// Package errors gives every failure in framechart a machine-readable code.
//
// Library code returns [*Error] values built with [New] or [Wrap]. The CLI
// prints [UserMessage], and the render service answers with [HTTPStatus]
// and the code in its JSON body:
//
//	if len(points) == 0 {
//	    return errors.New(errors.ErrCodeEmptyData, "line chart needs at least one point")
//	}
//	if _, err := os.Create(path); err != nil {
//	    return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
//	}
//
// Codes are grouped by prefix: INVALID_* for rejected input, EMPTY_* for
// operations that received nothing to work on, then IO, NOT_FOUND,
// UNSUPPORTED and INTERNAL_ERROR.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, machine-readable error identifier.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidData   Code = "INVALID_DATA"
	ErrCodeInvalidFrame  Code = "INVALID_FRAME"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeEmptyData Code = "EMPTY_DATA"

	ErrCodeNotFound Code = "NOT_FOUND"
	ErrCodeIO       Code = "IO"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// statusByCode lists the codes that are not server faults.
var statusByCode = map[Code]int{
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidData:   http.StatusBadRequest,
	ErrCodeInvalidFrame:  http.StatusBadRequest,
	ErrCodeInvalidFormat: http.StatusBadRequest,
	ErrCodeInvalidConfig: http.StatusBadRequest,
	ErrCodeInvalidPath:   http.StatusBadRequest,
	ErrCodeEmptyData:     http.StatusBadRequest,
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeUnsupported:   http.StatusNotImplemented,
}

// Error carries a Code, a message for people and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	s := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// as finds the outermost *Error in err's chain.
func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without code or cause for coded errors
// and err.Error() otherwise.
func UserMessage(err error) string {
	if e, ok := as(err); ok {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps err to the status the render service answers with.
// Uncoded errors and server faults map to 500.
func HTTPStatus(err error) int {
	if status, ok := statusByCode[GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
