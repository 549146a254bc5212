// Package grading turns a session's question list into a score. Grade
// has no side effects and may be called any number of times on the same
// session.
package grading

import "exam-service/internal/models"

// Scoring follows a negative-marking scheme: a wrong answer costs a
// point while a skip costs nothing, so guessing is penalized harder
// than leaving a question blank.
const (
	CorrectPoints = 2
	WrongPenalty  = 1
	PassingRatio  = 0.67
)

// Grade computes the score for a batch of session questions. The total
// is not floored at zero and can go negative.
func Grade(questions []models.SessionQuestion) models.ScoreResult {
	result := models.ScoreResult{TotalQuestions: len(questions)}
	for _, sq := range questions {
		switch {
		case !sq.Answered.Answered():
			result.SkippedCount++
		case sq.Answered.IsCorrect != nil && *sq.Answered.IsCorrect:
			result.CorrectCount++
			result.TotalPoints += CorrectPoints
		default:
			result.WrongCount++
			result.TotalPoints -= WrongPenalty
		}
	}
	result.MaxPossibleScore = result.TotalQuestions * CorrectPoints
	result.PassingScore = PassingRatio * float64(result.MaxPossibleScore)
	// A zero-question attempt never passes, even though 0 >= 0.
	result.Passed = result.TotalQuestions > 0 &&
		float64(result.TotalPoints) >= result.PassingScore
	return result
}
