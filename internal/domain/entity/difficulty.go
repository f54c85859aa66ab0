package entity

// Difficulty ranks how hard a word is to learn.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when a caller does not pick one.
const DefaultDifficulty = DifficultyMedium

// IsValid reports whether d is one of the known levels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// OrDefault returns d, or DefaultDifficulty when d is empty.
func (d Difficulty) OrDefault() Difficulty {
	if d == "" {
		return DefaultDifficulty
	}

	return d
}
