package domain

import (
	"github.com/google/uuid"
)

// LanguageAgent links a user to a language as author or publisher.
type LanguageAgent struct {
	ID           int32
	Agent        string // User ID
	Language     uuid.UUID
	Relationship AgentLanguageRelation
}

// LanguageTranslation is a directed, asymmetric link stating that LangFrom
// is translated into LangTo.
type LanguageTranslation struct {
	ID       int32
	LangFrom uuid.UUID
	LangTo   uuid.UUID
}

// UserFollow is a directed follow between two users.
type UserFollow struct {
	ID        int32
	Follower  string
	Following string
}

// LanguageFollow records that a user follows a language.
type LanguageFollow struct {
	ID     int32
	Lang   uuid.UUID
	UserID string
}

// WordRelation is a directed link between two words, either a definition
// or a looser association.
type WordRelation struct {
	ID           int32
	WordSource   uuid.UUID
	WordTarget   uuid.UUID
	Relationship WordRelationship
}

// WordLearning records that a user is learning (or has learned) a word.
type WordLearning struct {
	ID     int32
	Word   uuid.UUID
	UserID string
	Status WordLearningStatus
}
