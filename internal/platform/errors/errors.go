// Package errors provides the coded error type shared by the reader, services and transports
//
// import it as perr; messages on *Error are client facing, wrapped causes are not
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode classifies an error for transports
// values are on the wire; append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for I/O failures and cancellation where a retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeForbidden is for permission failures, including unreadable files
	ErrorCodeForbidden

	// ErrorCodeInvalidArgument is for inputs that are well formed but unusable
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for struct validation failures
	ErrorCodeValidation

	// ErrorCodeJSON is for undecodable JSON documents
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing files and routes
	ErrorCodeNotFound
)

var statusByCode = map[ErrorCode]int{
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeForbidden:       http.StatusForbidden,
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
}

// HTTPStatusCode maps a code to an http status; unmapped codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Sentinels match any *Error with the same code under errors.Is
var (
	ErrNotFound    = sentinel(ErrorCodeNotFound, "not found")
	ErrUnavailable = sentinel(ErrorCodeUnavailable, "unavailable")
	ErrForbidden   = sentinel(ErrorCodeForbidden, "forbidden")
)

// Error carries a code, a client facing message and an optional cause
// field names the offending input for validation errors; op tags the failing operation in logs
type Error struct {
	orig     error
	msg      string
	code     ErrorCode
	field    string
	op       string
	sentinel bool
}

// Wire is the client facing projection of an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// unknownMessage replaces the text of foreign errors on the wire
const unknownMessage = "internal error"

func sentinel(code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, sentinel: true}
}

// Error renders op, message and cause for logs
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	if e.op != "" {
		b.WriteString(e.op)
		b.WriteString(": ")
	}
	b.WriteString(e.msg)
	if e.orig != nil {
		fmt.Fprintf(&b, ": %v", e.orig)
	}
	return b.String()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.orig }

// Is lets errors.Is(err, ErrNotFound) match on code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.sentinel && t.code == e.code
}

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// ToWire drops op and cause; both may carry local paths
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom projects any error; foreign errors are reported as unknown with a generic message
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: unknownMessage}
}

// CodeOf extracts the outermost ErrorCode, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As returns the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithField returns a copy of err's *Error with field set; foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp returns a copy of err's *Error tagged with op; foreign errors pass through
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// New returns an *Error with code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error with code and message around orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// NotFoundf returns a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef returns an unavailable error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }
