package models

// ScoreResult is derived from a session's questions on demand, never
// stored as independent mutable state.
type ScoreResult struct {
	CorrectCount     int     `json:"correct_count"`
	WrongCount       int     `json:"wrong_count"`
	SkippedCount     int     `json:"skipped_count"`
	TotalQuestions   int     `json:"total_questions"`
	TotalPoints      int     `json:"total_points"`
	MaxPossibleScore int     `json:"max_possible_score"`
	PassingScore     float64 `json:"passing_score"`
	Passed           bool    `json:"passed"`
}
