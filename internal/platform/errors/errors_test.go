package errors

import (
	stderrs "errors"
	"fmt"
	"io/fs"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestError_Render(t *testing.T) {
	var nilErr *Error
	src := stderrs.New("permission denied")

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil receiver", nilErr, "<nil>"},
		{"message only", New(ErrorCodeValidation, "bad scope"), "bad scope"},
		{"formatted", Newf(ErrorCodeJSON, "line %d", 12), "line 12"},
		{"with cause", Wrap(src, ErrorCodeForbidden, "graph artifact not readable"), "graph artifact not readable: permission denied"},
		{"with op", WithOp(Wrapf(src, ErrorCodeForbidden, "read %s", "x"), "manifest.Load"), "manifest.Load: read x: permission denied"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWrapAndAs(t *testing.T) {
	src := stderrs.New("root")
	e := Wrap(src, ErrorCodeUnavailable, "read failed")
	if !stderrs.Is(e, src) {
		t.Fatal("cause not reachable")
	}
	if CodeOf(e) != ErrorCodeUnavailable || HTTPStatus(e) != http.StatusServiceUnavailable {
		t.Fatalf("code/status = %v/%d", CodeOf(e), HTTPStatus(e))
	}
	// outermost code wins when project errors nest
	outer := Wrap(e, ErrorCodeNotFound, "gone")
	if CodeOf(outer) != ErrorCodeNotFound {
		t.Fatalf("CodeOf(outer) = %v", CodeOf(outer))
	}
	// found through fmt wrapping
	if got, ok := As(fmt.Errorf("ctx: %w", e)); !ok || got.Code() != ErrorCodeUnavailable {
		t.Fatal("As through fmt.Errorf failed")
	}
	if _, ok := As(src); ok {
		t.Fatal("As true for foreign error")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatal("CodeOf(nil) should be unknown")
	}
}

func TestMutators_CopyOnWrite(t *testing.T) {
	src := stderrs.New("root")
	base := Wrap(src, ErrorCodeValidation, "oops")
	withField := WithField(base, "version")
	withOp := WithOp(withField, "manifest.Load")

	if fe, _ := As(withField); fe.Field() != "version" {
		t.Fatal("WithField failed")
	}
	if oe, _ := As(withOp); oe.Op() != "manifest.Load" || oe.Field() != "version" {
		t.Fatal("WithOp failed")
	}
	if b, _ := As(base); b.Field() != "" || b.Op() != "" {
		t.Fatal("copy-on-write mutated original")
	}
	if WithField(src, "x") != src || WithOp(src, "x") != src {
		t.Fatal("mutators should not wrap foreign errors")
	}
}

func TestWire(t *testing.T) {
	src := &fs.PathError{Op: "open", Path: "/home/dev/app/package.json", Err: fs.ErrPermission}
	ours := WithOp(WithField(Wrap(src, ErrorCodeForbidden, "manifest not readable"), "path"), "manifest.Load")

	cases := []struct {
		name string
		err  error
		want Wire
	}{
		{"nil", nil, Wire{}},
		{"ours drops op and cause", ours, Wire{Code: ErrorCodeForbidden, Message: "manifest not readable", Field: "path"}},
		{"foreign is generic", src, Wire{Code: ErrorCodeUnknown, Message: "internal error"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WireFrom(tc.err); got != tc.want {
				t.Fatalf("WireFrom = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSentinels(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"not found by code", NotFoundf("graph artifact not found"), ErrNotFound, true},
		{"wrapped not found", fmt.Errorf("x: %w", Wrap(fs.ErrNotExist, ErrorCodeNotFound, "gone")), ErrNotFound, true},
		{"unavailable", Unavailablef("disk"), ErrUnavailable, true},
		{"forbidden", Newf(ErrorCodeForbidden, "nope"), ErrForbidden, true},
		{"code mismatch", Unavailablef("disk"), ErrNotFound, false},
		{"non-sentinel target", NotFoundf("a"), NotFoundf("a"), false},
		{"foreign", stderrs.New("x"), ErrNotFound, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stderrs.Is(tc.err, tc.target); got != tc.want {
				t.Fatalf("errors.Is = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSugar(t *testing.T) {
	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(Unavailablef("x"), ErrorCodeUnavailable) {
		t.Fatal("sugar helpers code mismatch")
	}
}
