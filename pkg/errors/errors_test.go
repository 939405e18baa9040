package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCount, "count must be positive, got %d", -2)

	if err.Code != ErrCodeInvalidCount {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidCount)
	}
	if err.Message != "count must be positive, got -2" {
		t.Errorf("Message = %v", err.Message)
	}

	expected := "INVALID_COUNT: count must be positive, got -2"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidPath, cause, "cannot write output")

	if err.Code != ErrCodeInvalidPath {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPath)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidCount, "test"), ErrCodeInvalidCount, true},
		{"different code", New(ErrCodeInvalidCount, "test"), ErrCodeOutOfBounds, false},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"wrapped coded error", Wrap(ErrCodeOutOfBounds, errors.New("x"), "y"), ErrCodeOutOfBounds, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid count", New(ErrCodeInvalidCount, "x"), true},
		{"invalid bounds", New(ErrCodeInvalidBounds, "x"), true},
		{"out of bounds", New(ErrCodeOutOfBounds, "x"), false},
		{"internal", New(ErrCodeInternal, "x"), false},
		{"plain error", errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalid(tt.err); got != tt.expected {
				t.Errorf("IsInvalid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeOutOfBounds, "x")); got != ErrCodeOutOfBounds {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeOutOfBounds)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidGenerator, "unknown generator")
	if got := UserMessage(err); got != "unknown generator" {
		t.Errorf("UserMessage() = %v", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage(plain) = %v", got)
	}
}
