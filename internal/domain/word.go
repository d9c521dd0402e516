package domain

import (
	"github.com/google/uuid"
)

// Word is a single vocabulary item belonging to exactly one language.
// Lemma, when set, points at the word's base form; inflected forms carry
// the reference, the lemma itself does not.
type Word struct {
	ID           uuid.UUID
	Norm         string
	Native       *string
	Lemma        *uuid.UUID
	Language     uuid.UUID
	PartOfSpeech PartOfSpeech
	Audio        *string
	Video        *string
	Image        *string
	Description  *string
	Etymology    *string
	Usage        *string
	Morphology   *string
}

// NewWord carries caller-supplied fields for word creation. The ID is
// assigned by the store; Language must reference an existing language owned
// by the caller. A Lemma that does not resolve is dropped, not rejected.
type NewWord struct {
	Norm         string
	Native       *string
	Lemma        *uuid.UUID
	Language     uuid.UUID
	PartOfSpeech PartOfSpeech
	Audio        *string
	Video        *string
	Image        *string
	Description  *string
	Etymology    *string
	Usage        *string
	Morphology   *string
}
