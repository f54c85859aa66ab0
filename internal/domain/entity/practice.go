package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PracticeSession records one attempt at recalling a word.
type PracticeSession struct {
	ID        int64
	WordID    int64
	AccountID uuid.UUID
	Correct   bool
	CreatedAt time.Time
}

// PracticeStats summarizes the practice history of a single word.
type PracticeStats struct {
	TotalPractices int64
	CorrectAnswers int64
	LastPracticed  *time.Time
}

// SuccessRate returns the percentage of correct answers rounded to two decimals, or 0 without practice.
func (s PracticeStats) SuccessRate() float64 {
	if s.TotalPractices == 0 {
		return 0
	}

	rate := float64(s.CorrectAnswers) / float64(s.TotalPractices) * 100

	return math.Round(rate*100) / 100
}
