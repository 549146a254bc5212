package models

import (
	"fmt"
	"strings"
)

// NumOptions is the fixed number of answer options per question.
const NumOptions = 4

var optionLabels = [NumOptions]string{"A", "B", "C", "D"}

// QuestionDoc mirrors one document in the questions collection.
type QuestionDoc struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	Question      string   `bson:"question" json:"question"`
	OptionA       string   `bson:"option_A" json:"option_A"`
	OptionB       string   `bson:"option_B" json:"option_B"`
	OptionC       string   `bson:"option_C" json:"option_C"`
	OptionD       string   `bson:"option_D" json:"option_D"`
	CorrectAnswer string   `bson:"correct_answer" json:"correct_answer"`
	ExamDate      string   `bson:"exam_date,omitempty" json:"exam_date,omitempty"`
	MainTopic     []string `bson:"main_topic,omitempty" json:"main_topic,omitempty"`
	SubTopic      []string `bson:"sub_topic,omitempty" json:"sub_topic,omitempty"`
}

// Question is an immutable exam question with its options resolved into
// the fixed A-D slot order.
type Question struct {
	ID           string
	Text         string
	Options      [NumOptions]string
	CorrectLabel string
	ExamDate     string
}

// LabelIndex returns the option slot for a label, or -1 when the label
// is not one of A-D.
func LabelIndex(label string) int {
	for i, l := range optionLabels {
		if l == label {
			return i
		}
	}
	return -1
}

// ToQuestion validates the raw document and resolves the positional
// option mapping.
func (d QuestionDoc) ToQuestion() (Question, error) {
	if strings.TrimSpace(d.Question) == "" {
		return Question{}, fmt.Errorf("question %s: empty question text", d.ID)
	}
	label := strings.ToUpper(strings.TrimSpace(d.CorrectAnswer))
	if LabelIndex(label) < 0 {
		return Question{}, fmt.Errorf("question %s: invalid correct answer label %q", d.ID, d.CorrectAnswer)
	}
	return Question{
		ID:           d.ID,
		Text:         d.Question,
		Options:      [NumOptions]string{d.OptionA, d.OptionB, d.OptionC, d.OptionD},
		CorrectLabel: label,
		ExamDate:     d.ExamDate,
	}, nil
}

// CorrectOption returns the text of the correct option, or "" when the
// label does not resolve. An empty result never matches a chosen option,
// so a question with a malformed label grades every choice as wrong.
func (q Question) CorrectOption() string {
	idx := LabelIndex(q.CorrectLabel)
	if idx < 0 {
		return ""
	}
	return q.Options[idx]
}
