package models

import "testing"

func TestSessionConfigNormalized(t *testing.T) {
	testCases := []struct {
		name string
		in   SessionConfig
		want SessionConfig
	}{
		{
			"valid config untouched",
			SessionConfig{QuestionCount: 10, Mode: ModeExam, TimerMinutes: 90, MainTopic: "Law", SubTopic: "Contracts"},
			SessionConfig{QuestionCount: 10, Mode: ModeExam, TimerMinutes: 90, MainTopic: "Law", SubTopic: "Contracts"},
		},
		{
			"zero count clamps to one",
			SessionConfig{QuestionCount: 0, Mode: ModeStudy, TimerMinutes: 30},
			SessionConfig{QuestionCount: 1, Mode: ModeStudy, TimerMinutes: 30},
		},
		{
			"negative timer clamps to default",
			SessionConfig{QuestionCount: 5, Mode: ModeExam, TimerMinutes: -2},
			SessionConfig{QuestionCount: 5, Mode: ModeExam, TimerMinutes: 60},
		},
		{
			"unknown mode falls back to study",
			SessionConfig{QuestionCount: 5, Mode: "turbo", TimerMinutes: 10},
			SessionConfig{QuestionCount: 5, Mode: ModeStudy, TimerMinutes: 10},
		},
		{
			"subtopic dropped without main topic",
			SessionConfig{QuestionCount: 5, Mode: ModeStudy, TimerMinutes: 10, SubTopic: "Contracts"},
			SessionConfig{QuestionCount: 5, Mode: ModeStudy, TimerMinutes: 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalized(); got != tc.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestAnsweredStateClone(t *testing.T) {
	chosen := "Paris"
	correct := true
	orig := AnsweredState{ChosenOption: &chosen, IsCorrect: &correct}

	clone := orig.Clone()
	*clone.ChosenOption = "Rome"
	*clone.IsCorrect = false

	if *orig.ChosenOption != "Paris" || !*orig.IsCorrect {
		t.Error("mutating the clone changed the original")
	}
}
