package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeRouteNotFound, http.StatusNotFound},
		{ErrorCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeUnavailable, http.StatusInternalServerError},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want Kind
	}{
		{ErrorCodeValidation, KindValidation},
		{ErrorCodeJSON, KindValidation},
		{ErrorCodeConflict, KindConflict},
		{ErrorCodeDuplicateKey, KindConflict},
		{ErrorCodeNotFound, KindNotFound},
		{ErrorCodeRouteNotFound, KindNotFound},
		{ErrorCodeDB, KindInternal},
		{ErrorCodePanic, KindInternal},
		{ErrorCodeUnknown, KindInternal},
	}
	for _, c := range cases {
		if got := KindOf(c.code); got != c.want {
			t.Fatalf("KindOf(%v) = %q, want %q", c.code, got, c.want)
		}
	}
	if !IsKind(Conflictf("Name already exists"), KindConflict) {
		t.Fatalf("IsKind(conflict) = false")
	}
	if !IsKind(stderrs.New("boom"), KindInternal) {
		t.Fatalf("foreign errors should be internal")
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeDB, "db failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeConflict, "nope %s", "here")
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeConflict || got.Message() != "nope here" {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// copy-on-write
	e5 := Wrap(src, ErrorCodeValidation, "oops")
	e6 := WithField(e5, "name")
	e7 := WithOp(e6, "register")
	if fe, ok := As(e6); !ok || fe.Field() != "name" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "register" {
		t.Fatalf("WithOp failed")
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	if WithField(src, "x") != src {
		t.Fatalf("WithField should pass foreign errors through")
	}

	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(Validationf("x"), ErrorCodeValidation) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(Conflictf("x"), ErrorCodeConflict) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) {
		t.Fatalf("sugar helpers code mismatch")
	}

	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got == nil || got.Error() != "root" {
		t.Fatalf("Root() failed, got %v", got)
	}
	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatalf("ErrNotFound code mismatch")
	}
	if st := HTTPStatus(e3); st != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(db) = %d", st)
	}
}

func TestMessageOf(t *testing.T) {
	if MessageOf(nil) != nil {
		t.Fatalf("MessageOf(nil) should be nil")
	}
	// ours: message only, no wrapped cause
	if m := MessageOf(Wrap(stderrs.New("dial tcp"), ErrorCodeDB, "query failed")); m == nil || *m != "query failed" {
		t.Fatalf("MessageOf(ours) = %v", m)
	}
	// foreign: passthrough
	if m := MessageOf(stderrs.New("kaput")); m == nil || *m != "kaput" {
		t.Fatalf("MessageOf(foreign) = %v", m)
	}
	// empty message renders as null
	if m := MessageOf(New(ErrorCodeUnknown, "")); m != nil {
		t.Fatalf("MessageOf(empty) = %q, want nil", *m)
	}
}
