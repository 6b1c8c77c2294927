package errors

// Filesystem helpers for mapping os/fs errors to project ErrorCode and retry semantics

import (
	stderrs "errors"
	"fmt"
	"io/fs"
	"syscall"
)

// FSCode classifies a filesystem error
func FSCode(err error) ErrorCode {
	switch {
	case err == nil:
		return ErrorCodeUnknown
	case stderrs.Is(err, fs.ErrNotExist):
		return ErrorCodeNotFound
	case stderrs.Is(err, fs.ErrPermission):
		return ErrorCodeForbidden
	case stderrs.Is(err, fs.ErrInvalid):
		return ErrorCodeInvalidArgument
	default:
		return ErrorCodeUnavailable
	}
}

// WrapFS wraps a filesystem error with its classified code and a formatted message
// the OS error stays reachable through Unwrap so errors.Is(err, fs.ErrNotExist) still holds
func WrapFS(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return &Error{code: FSCode(err), msg: fmt.Sprintf(format, a...), orig: err}
}

// IsRetryable reports whether a filesystem error is likely transient
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, syscall.EINTR) || stderrs.Is(err, syscall.EAGAIN) || stderrs.Is(err, syscall.EMFILE) {
		return true
	}
	return CodeOf(err) == ErrorCodeUnavailable && !stderrs.Is(err, fs.ErrClosed)
}

