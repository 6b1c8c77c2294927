package errors

import (
	stderrs "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestFSCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ErrorCodeUnknown},
		{"not exist", fs.ErrNotExist, ErrorCodeNotFound},
		{"wrapped not exist", fmt.Errorf("open: %w", fs.ErrNotExist), ErrorCodeNotFound},
		{"permission", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}, ErrorCodeForbidden},
		{"invalid", fs.ErrInvalid, ErrorCodeInvalidArgument},
		{"other", stderrs.New("disk"), ErrorCodeUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FSCode(tc.err); got != tc.want {
				t.Fatalf("FSCode = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWrapFS_RealMissingFile(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected open error")
	}
	wrapped := WrapFS(err, "open %s", "graph")
	if !IsCode(wrapped, ErrorCodeNotFound) {
		t.Fatalf("code = %v", CodeOf(wrapped))
	}
	if !stderrs.Is(wrapped, fs.ErrNotExist) {
		t.Fatalf("wrapped error lost fs.ErrNotExist")
	}
	if WireFrom(wrapped).Message != "open graph" {
		t.Fatalf("wire message leaked cause: %q", WireFrom(wrapped).Message)
	}
	if WrapFS(nil, "x") != nil {
		t.Fatal("WrapFS(nil) should be nil")
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) {
		t.Fatal("nil is not retryable")
	}
	if !IsRetryable(&fs.PathError{Op: "read", Path: "/x", Err: syscall.EINTR}) {
		t.Fatal("EINTR should be retryable")
	}
	if !IsRetryable(Unavailablef("busy")) {
		t.Fatal("unavailable should be retryable")
	}
	if IsRetryable(NotFoundf("gone")) {
		t.Fatal("not found is not retryable")
	}
	if IsRetryable(Wrap(fs.ErrClosed, ErrorCodeUnavailable, "closed")) {
		t.Fatal("closed file is not retryable")
	}
}
