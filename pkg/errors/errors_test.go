package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeLetterMultiplicity, "letter %q occurs %d times", "a", 3)
	want := `LETTER_MULTIPLICITY: letter "a" occurs 3 times`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidInput, cause, "loading scenario")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Error() != "INVALID_INPUT: loading scenario: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := New(ErrCodeDegenerateInduction, "end letters coincide")

	if !Is(err, ErrCodeDegenerateInduction) {
		t.Error("Is() = false, want true")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is() matched the wrong code")
	}

	// Wrapped in a plain fmt error, the code must still be found.
	wrapped := fmt.Errorf("building diagram: %w", err)
	if !Is(wrapped, ErrCodeDegenerateInduction) {
		t.Error("Is() did not unwrap the chain")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFlippable, "flips unsupported")); got != ErrCodeNotFlippable {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeNotFlippable)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeLengthMismatch, "3 lengths for 4 letters")
	if got := UserMessage(err); got != "3 lengths for 4 letters" {
		t.Errorf("UserMessage() = %q", got)
	}
}
