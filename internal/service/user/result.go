package user

import (
	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// LearningEntry pairs a resolved word with the user's progress on it.
type LearningEntry struct {
	Word   domain.Word
	Status domain.WordLearningStatus
}
