package models

type Mode string

const (
	ModeStudy Mode = "study"
	ModeExam  Mode = "exam"
)

func (m Mode) Valid() bool {
	return m == ModeStudy || m == ModeExam
}

type Status string

const (
	StatusIdle      Status = "idle"
	StatusActive    Status = "active"
	StatusSubmitted Status = "submitted"
)

const (
	DefaultQuestionCount = 1
	DefaultTimerMinutes  = 60
)

// SessionConfig is the user-supplied configuration for one attempt.
type SessionConfig struct {
	QuestionCount int    `json:"question_count"`
	Mode          Mode   `json:"mode"`
	TimerMinutes  int    `json:"timer_minutes"`
	MainTopic     string `json:"main_topic,omitempty"`
	SubTopic      string `json:"sub_topic,omitempty"`
	ExamDate      string `json:"exam_date,omitempty"`
	ShowDates     bool   `json:"show_dates"`
}

// Normalized clamps out-of-range values to safe defaults instead of
// rejecting them. A sub-topic is only meaningful underneath a main topic.
func (c SessionConfig) Normalized() SessionConfig {
	if c.QuestionCount < 1 {
		c.QuestionCount = DefaultQuestionCount
	}
	if c.TimerMinutes < 1 {
		c.TimerMinutes = DefaultTimerMinutes
	}
	if !c.Mode.Valid() {
		c.Mode = ModeStudy
	}
	if c.MainTopic == "" {
		c.SubTopic = ""
	}
	return c
}

// AnsweredState records the user's choice for one question. Both fields
// are nil until an answer is recorded; they are always set together.
type AnsweredState struct {
	ChosenOption *string `json:"chosen_option"`
	IsCorrect    *bool   `json:"is_correct"`
}

func (a AnsweredState) Answered() bool {
	return a.ChosenOption != nil
}

func (a AnsweredState) Clone() AnsweredState {
	var out AnsweredState
	if a.ChosenOption != nil {
		chosen := *a.ChosenOption
		out.ChosenOption = &chosen
	}
	if a.IsCorrect != nil {
		correct := *a.IsCorrect
		out.IsCorrect = &correct
	}
	return out
}

// SessionQuestion pairs a fetched question with its per-session answer
// state.
type SessionQuestion struct {
	Question Question
	Answered AnsweredState
}

// Session is one end-to-end attempt at a generated question batch. The
// question order is fixed once fetched.
type Session struct {
	ID               string
	Config           SessionConfig
	Questions        []SessionQuestion
	Status           Status
	SecondsRemaining *int
}
