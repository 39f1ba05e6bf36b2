package telegram

import (
	"errors"
	"fmt"
)

// Error codes, matching the ones Bot API libraries commonly report.
const (
	CodeFatal    = "EFATAL"    // the request never produced a response
	CodeParse    = "EPARSE"    // the response or update body was not valid JSON
	CodeTelegram = "ETELEGRAM" // the API answered ok=false
)

// Error is returned by every Client method.
type Error struct {
	Code string
	// Description is human readable; for ETELEGRAM it starts with the
	// API's numeric error code.
	Description string
	// Status is the HTTP status of the response, zero for EFATAL.
	Status int
	Err    error
}

func (e *Error) Error() string { return e.Code + ": " + e.Description }

func (e *Error) Unwrap() error { return e.Err }

func fatalError(method string, err error) *Error {
	return &Error{Code: CodeFatal, Description: fmt.Sprintf("%s: %v", method, err), Err: err}
}

func parseError(what string, status int, err error) *Error {
	return &Error{Code: CodeParse, Description: fmt.Sprintf("%s: %v", what, err), Status: status, Err: err}
}

func apiError(status, code int, description string) *Error {
	return &Error{Code: CodeTelegram, Description: fmt.Sprintf("%d %s", code, description), Status: status}
}

// AsError converts err to *Error, wrapping unknown errors as EFATAL.
func AsError(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return &Error{Code: CodeFatal, Description: err.Error(), Err: err}
}
