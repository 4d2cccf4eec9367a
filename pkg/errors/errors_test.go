package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeEmptyInput, "no decks in %s", "deck.json")

	if err.Code != ErrCodeEmptyInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeEmptyInput)
	}

	if err.Message != "no decks in deck.json" {
		t.Errorf("Message = %v, want %v", err.Message, "no decks in deck.json")
	}

	expected := "EMPTY_INPUT: no decks in deck.json"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeAssetUnavailable, cause, "card %q", "Dark Magician")

	if err.Code != ErrCodeAssetUnavailable {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeAssetUnavailable)
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

	want := `ASSET_UNAVAILABLE: card "Dark Magician": connection refused`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeEmptyInput, "test"),
			code:     ErrCodeEmptyInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeEmptyInput, "test"),
			code:     ErrCodeNetwork,
			expected: false,
		},
		{
			name:     "outer code of nested errors",
			err:      Wrap(ErrCodeAssetUnavailable, New(ErrCodeNetwork, "inner"), "outer"),
			code:     ErrCodeAssetUnavailable,
			expected: true,
		},
		{
			name:     "inner code of nested errors",
			err:      Wrap(ErrCodeAssetUnavailable, New(ErrCodeNetwork, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "wrapped with fmt",
			err:      fmt.Errorf("render: %w", New(ErrCodeInvalidAssetDimensions, "too small")),
			code:     ErrCodeInvalidAssetDimensions,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidConfig, "test"),
			expected: ErrCodeInvalidConfig,
		},
		{
			name:     "outermost code wins",
			err:      Wrap(ErrCodeAssetUnavailable, New(ErrCodeNotFound, "inner"), "outer"),
			expected: ErrCodeAssetUnavailable,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeAssetUnavailable, "unable to find a card image for Kuriboh"),
			expected: "unable to find a card image for Kuriboh",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
		{
			name: "wrapped chain keeps context",
			err: fmt.Errorf("deck Dragons: %w",
				Wrap(ErrCodeAssetUnavailable, New(ErrCodeNotFound, "resource not found"), "unable to find a card image for Blue-Eyes")),
			expected: "deck Dragons: unable to find a card image for Blue-Eyes: resource not found",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRateLimitedError(t *testing.T) {
	t.Run("with retry after", func(t *testing.T) {
		err := &RateLimitedError{RetryAfter: 60}
		expected := "rate limited: retry after 60 seconds"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("without retry after", func(t *testing.T) {
		err := &RateLimitedError{}
		expected := "rate limited"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &RateLimitedError{}
		if err.Code() != ErrCodeRateLimited {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeRateLimited)
		}
	})
}
