package word

import (
	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

const maxTextLen = 5000

// CreateInput holds the caller-supplied fields for a new word. The norm is
// normalized before storage; Lemma is best-effort and dropped when it does
// not resolve within the same language.
type CreateInput struct {
	Norm         string
	Native       *string
	Lemma        *uuid.UUID
	Language     uuid.UUID
	PartOfSpeech domain.PartOfSpeech
	Audio        *string
	Video        *string
	Image        *string
	Description  *string
	Etymology    *string
	Usage        *string
	Morphology   *string
}

// Validate checks all fields and collects all errors. The norm is checked
// in its normalized form: input that normalizes to nothing is rejected.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if domain.NormalizeNorm(i.Norm) == "" {
		errs = append(errs, domain.FieldError{Field: "norm", Message: "required"})
	}
	if i.Language == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if !i.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "unknown value"})
	}
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"description", i.Description},
		{"etymology", i.Etymology},
		{"usage", i.Usage},
		{"morphology", i.Morphology},
	} {
		if f.value != nil && len(*f.value) > maxTextLen {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
