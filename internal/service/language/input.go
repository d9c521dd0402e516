package language

import (
	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

const (
	maxNameLen = 200
	maxTextLen = 5000
)

// CreateInput holds the caller-supplied fields for a new language.
// The owner is never part of the input; it is always the caller.
type CreateInput struct {
	Name        string
	Native      *string
	Release     domain.Release
	Genre       []domain.DictGenre
	Abstract    *string
	Description *string
	Rights      *string
	License     *string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if !i.Release.IsValid() {
		errs = append(errs, domain.FieldError{Field: "release", Message: "unknown value"})
	}
	for _, g := range i.Genre {
		if !g.IsValid() {
			errs = append(errs, domain.FieldError{Field: "genre", Message: "unknown value"})
			break
		}
	}
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"abstract", i.Abstract},
		{"description", i.Description},
		{"rights", i.Rights},
		{"license", i.License},
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
