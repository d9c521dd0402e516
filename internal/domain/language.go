package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language is a user-owned dictionary of words. Name in the main target
// language (often English); Native is the language's own name for itself.
type Language struct {
	ID          uuid.UUID
	Name        string
	Native      *string
	Release     Release
	Genre       []DictGenre
	Abstract    *string
	Created     time.Time
	Description *string
	Rights      *string
	License     *string
	Owner       string // User ID
}

// NewLanguage carries caller-supplied fields for language creation.
// ID, Created, and Owner are assigned by the store and the orchestrator.
type NewLanguage struct {
	Name        string
	Native      *string
	Release     Release
	Genre       []DictGenre
	Abstract    *string
	Description *string
	Rights      *string
	License     *string
}
