/*
Package core holds definitions shared by all packages of flowlayout.

Errors

Recoverable failures are reported as errors carrying an error code and a
user message (type AppError). Programming errors, i.e. broken invariants of
the layout tree, are never reported this way: they panic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package core

import (
	"errors"
	"fmt"
)

// Error codes. Every error returned from flowlayout carries one of them.
const (
	NOERROR     int = 0
	EMISSING    int = 122 // resource does not exist
	EINVALID    int = 123 // validation failed
	ECONNECTION int = 124 // message could not be delivered
	EINTERNAL   int = 125 // internal error
	ETERMINATED int = 126 // execution unit has terminated
)

var codeText = map[int]string{
	NOERROR:     "OK",
	EMISSING:    "not found",
	EINVALID:    "invalid",
	ECONNECTION: "undeliverable",
	EINTERNAL:   "internal error",
	ETERMINATED: "terminated",
}

func errorText(code int) string {
	if t, ok := codeText[code]; ok {
		return t
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// appError is the only implementation of AppError.
type appError struct {
	cause error
	code  int
	msg   string
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return &appError{
		cause: errors.New(errorText(code)),
		code:  code,
		msg:   fmt.Sprintf(format, v...),
	}
}

// WrapError wraps err into an error with an error code and a user message.
// err remains accessible with errors.Is and errors.As. A nil err is replaced
// by an error denoting the code.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return &appError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

func (e *appError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("[%d] %v", e.code, e.cause)
	}
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.cause)
}

func (e *appError) Unwrap() error       { return e.cause }
func (e *appError) ErrorCode() int      { return e.code }
func (e *appError) UserMessage() string { return e.msg }

var _ AppError = &appError{}

// Code returns the error code of the outermost AppError in err's chain.
// nil has code NOERROR, errors without a code are EINTERNAL.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// IsCode is true if err carries error code code.
func IsCode(err error, code int) bool {
	return Code(err) == code
}

// UserMessage returns the user message of the outermost AppError in err's
// chain, or the text for err's error code.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) && e.UserMessage() != "" {
		return e.UserMessage()
	}
	return errorText(Code(err))
}
