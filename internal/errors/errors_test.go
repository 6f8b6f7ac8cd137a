package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidation(t *testing.T) {
	err := Validation("shirt number out of range")

	if err.Kind != ErrValidation {
		t.Errorf("expected Kind to be ErrValidation (%d), got %d", ErrValidation, err.Kind)
	}
	if err.Message != "shirt number out of range" {
		t.Errorf("unexpected Message: %q", err.Message)
	}
	if err.Err != nil {
		t.Errorf("expected Err to be nil, got %v", err.Err)
	}
}

func TestValidationf(t *testing.T) {
	err := Validationf("shirt number %d out of range", 100)

	if err.Kind != ErrValidation {
		t.Errorf("expected Kind to be ErrValidation (%d), got %d", ErrValidation, err.Kind)
	}
	if err.Message != "shirt number 100 out of range" {
		t.Errorf("unexpected Message: %q", err.Message)
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("player not found")

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != "player not found" {
		t.Errorf("unexpected Message: %q", err.Message)
	}
}

func TestNotFoundf(t *testing.T) {
	err := NotFoundf("player %q not found", "A-10")

	if err.Kind != ErrNotFound {
		t.Errorf("expected Kind to be ErrNotFound (%d), got %d", ErrNotFound, err.Kind)
	}
	if err.Message != `player "A-10" not found` {
		t.Errorf("unexpected Message: %q", err.Message)
	}
}

func TestDuplicate(t *testing.T) {
	err := Duplicate("action type already exists")

	if err.Kind != ErrDuplicate {
		t.Errorf("expected Kind to be ErrDuplicate (%d), got %d", ErrDuplicate, err.Kind)
	}
}

func TestDuplicatef(t *testing.T) {
	err := Duplicatef("action type %q already exists", "goal")

	if err.Kind != ErrDuplicate {
		t.Errorf("expected Kind to be ErrDuplicate (%d), got %d", ErrDuplicate, err.Kind)
	}
	if err.Message != `action type "goal" already exists` {
		t.Errorf("unexpected Message: %q", err.Message)
	}
}

func TestPersistence_WrapsUnderlyingError(t *testing.T) {
	cause := errors.New("disk full")
	err := Persistence("failed to save snapshot", cause)

	if err.Kind != ErrPersistence {
		t.Errorf("expected Kind to be ErrPersistence (%d), got %d", ErrPersistence, err.Kind)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the underlying cause")
	}
	want := "failed to save snapshot: disk full"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestInternal(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)

	if err.Kind != ErrInternal {
		t.Errorf("expected Kind to be ErrInternal (%d), got %d", ErrInternal, err.Kind)
	}
	if errors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, ErrValidation, "context message")

	if err.Kind != ErrValidation {
		t.Errorf("expected wrapped kind to be preserved, got %d", err.Kind)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the underlying cause")
	}
}

func TestError_MessageOnlyWithoutCause(t *testing.T) {
	err := &Error{Kind: ErrValidation, Message: "just a message"}
	if err.Error() != "just a message" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestErrorsAs_FindsTypedError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Validation("inner"))

	var appErr *Error
	if !errors.As(wrapped, &appErr) {
		t.Fatal("expected errors.As to find *Error")
	}
	if appErr.Kind != ErrValidation {
		t.Errorf("expected ErrValidation, got %d", appErr.Kind)
	}
}
