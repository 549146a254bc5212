package models

// QuestionView is the per-question slice of a session snapshot. The
// correct option is only filled in once the session rules allow the
// presentation layer to reveal it.
type QuestionView struct {
	ID            string        `json:"id"`
	Text          string        `json:"text"`
	Options       []string      `json:"options"`
	ExamDate      string        `json:"exam_date,omitempty"`
	Answered      AnsweredState `json:"answered"`
	CorrectOption string        `json:"correct_option,omitempty"`
}

// SessionView is an immutable copy of session state for the presentation
// layer; mutating it never touches the live session.
type SessionView struct {
	ID            string         `json:"id"`
	Mode          Mode           `json:"mode"`
	Status        Status         `json:"status"`
	ShowDates     bool           `json:"show_dates"`
	AnsweredCount int            `json:"answered_count"`
	Questions     []QuestionView `json:"questions"`
}

// ControllerView is the full state exposed to the presentation layer
// after each operation.
type ControllerView struct {
	Session          *SessionView `json:"session"`
	ScoreResult      *ScoreResult `json:"score_result,omitempty"`
	SecondsRemaining *int         `json:"seconds_remaining"`
	Loading          bool         `json:"loading"`
	Error            string       `json:"error,omitempty"`
}
