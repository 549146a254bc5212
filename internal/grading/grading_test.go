package grading

import (
	"reflect"
	"testing"

	"exam-service/internal/models"
)

// makeQuestions builds a question list with the given number of correct,
// wrong and skipped answers, in that order.
func makeQuestions(correct, wrong, skipped int) []models.SessionQuestion {
	var questions []models.SessionQuestion
	add := func(n int, isCorrect bool) {
		for i := 0; i < n; i++ {
			chosen := "some option"
			ok := isCorrect
			questions = append(questions, models.SessionQuestion{
				Answered: models.AnsweredState{ChosenOption: &chosen, IsCorrect: &ok},
			})
		}
	}
	add(correct, true)
	add(wrong, false)
	for i := 0; i < skipped; i++ {
		questions = append(questions, models.SessionQuestion{})
	}
	return questions
}

func TestGrade(t *testing.T) {
	testCases := []struct {
		name                    string
		correct, wrong, skipped int
		wantPoints              int
		wantMax                 int
		wantPassingScore        float64
		wantPassed              bool
	}{
		{"seven of ten correct fails", 7, 2, 1, 12, 20, 13.4, false},
		{"all five correct passes", 5, 0, 0, 10, 10, 6.7, true},
		{"zero questions never passes", 0, 0, 0, 0, 0, 0, false},
		{"mostly wrong goes negative", 1, 8, 1, -6, 20, 13.4, false},
		{"all skipped", 0, 0, 4, 0, 8, 5.36, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Grade(makeQuestions(tc.correct, tc.wrong, tc.skipped))

			if result.TotalPoints != tc.wantPoints {
				t.Errorf("TotalPoints = %d, want %d", result.TotalPoints, tc.wantPoints)
			}
			if result.MaxPossibleScore != tc.wantMax {
				t.Errorf("MaxPossibleScore = %d, want %d", result.MaxPossibleScore, tc.wantMax)
			}
			if result.PassingScore != tc.wantPassingScore {
				t.Errorf("PassingScore = %v, want %v", result.PassingScore, tc.wantPassingScore)
			}
			if result.Passed != tc.wantPassed {
				t.Errorf("Passed = %v, want %v", result.Passed, tc.wantPassed)
			}
			if result.CorrectCount != tc.correct || result.WrongCount != tc.wrong || result.SkippedCount != tc.skipped {
				t.Errorf("counts = %d/%d/%d, want %d/%d/%d",
					result.CorrectCount, result.WrongCount, result.SkippedCount,
					tc.correct, tc.wrong, tc.skipped)
			}
			if got := result.CorrectCount + result.WrongCount + result.SkippedCount; got != result.TotalQuestions {
				t.Errorf("counts sum to %d, want TotalQuestions %d", got, result.TotalQuestions)
			}
		})
	}
}

func TestGradeIsIdempotent(t *testing.T) {
	questions := makeQuestions(3, 2, 1)

	first := Grade(questions)
	second := Grade(questions)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated grading differed: %+v vs %+v", first, second)
	}
}

func TestGradeDoesNotMutateInput(t *testing.T) {
	questions := makeQuestions(2, 1, 1)
	before := make([]models.SessionQuestion, len(questions))
	for i, q := range questions {
		before[i] = models.SessionQuestion{Question: q.Question, Answered: q.Answered.Clone()}
	}

	Grade(questions)

	for i := range questions {
		if questions[i].Answered.Answered() != before[i].Answered.Answered() {
			t.Fatalf("question %d answer state changed", i)
		}
		if (questions[i].Answered.IsCorrect == nil) != (before[i].Answered.IsCorrect == nil) {
			t.Fatalf("question %d correctness state changed", i)
		}
	}
}
