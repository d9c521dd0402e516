package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	err := NewValidationError("id", "must be a UUID")

	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError should unwrap to ErrValidation")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As should find *ValidationError")
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Field != "id" {
		t.Errorf("unexpected field errors: %+v", ve.Errors)
	}
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	single := NewValidationError("name", "required")
	if single.Error() != "validation: name — required" {
		t.Errorf("got %q", single.Error())
	}

	multi := &ValidationError{Errors: []FieldError{
		{Field: "a", Message: "x"},
		{Field: "b", Message: "y"},
	}}
	if multi.Error() != "validation: 2 errors" {
		t.Errorf("got %q", multi.Error())
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("language %s: %w", "abc", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped ErrNotFound should still match")
	}

	wrapped = fmt.Errorf("acquire: %w", ErrConnection)
	if !errors.Is(wrapped, ErrConnection) {
		t.Error("wrapped ErrConnection should still match")
	}
}
