// Package session implements the exam session engine: the lifecycle
// state machine for one attempt, the countdown timer that can
// auto-submit it, and the per-user controller registry.
package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"exam-service/internal/grading"
	"exam-service/internal/models"

	"github.com/google/uuid"
)

// QuestionSource supplies question batches for new sessions. The
// controller does not know or care how it is implemented.
type QuestionSource interface {
	FetchQuestions(ctx context.Context, req QuestionRequest) ([]models.Question, error)
}

// QuestionRequest is the filter set handed to the question source.
type QuestionRequest struct {
	MainTopic string
	SubTopic  string
	ExamDate  string
	Count     int
	Random    bool
}

// EventSink receives lifecycle events that originate inside the engine
// rather than from a request, such as timer expiry.
type EventSink interface {
	Publish(eventType string, payload any) error
}

var (
	// ErrSourceUnavailable wraps any question source failure, including
	// an empty or malformed batch.
	ErrSourceUnavailable = errors.New("question source unavailable")

	// ErrGenerationInProgress rejects a start request while a previous
	// fetch is still outstanding.
	ErrGenerationInProgress = errors.New("exam generation already in progress")
)

// generateFailedMessage is the only error text surfaced to the user;
// the underlying cause goes to the log.
const generateFailedMessage = "Failed to generate exam. Please try again."

// Controller owns at most one session at a time for a single user. All
// operations serialize on its mutex, including the timer callback, so
// answer recording, ticking and fetch completion never interleave.
type Controller struct {
	userID string
	source QuestionSource
	events EventSink

	// tickInterval is one logical second; tests shrink it.
	tickInterval time.Duration

	mu      sync.Mutex
	sess    *models.Session
	timer   *countdown
	loading bool
	lastErr string
}

func NewController(userID string, source QuestionSource, events EventSink) *Controller {
	return &Controller{
		userID:       userID,
		source:       source,
		events:       events,
		tickInterval: time.Second,
	}
}

// StartSession validates the config, fetches a fresh question batch and
// replaces any previous session with a new active one. On fetch failure
// the previous session is left untouched; only the stored error message
// changes.
func (c *Controller) StartSession(ctx context.Context, cfg models.SessionConfig) (models.ControllerView, error) {
	c.mu.Lock()
	if c.loading {
		view := c.snapshotLocked()
		c.mu.Unlock()
		return view, ErrGenerationInProgress
	}
	c.lastErr = ""
	c.loading = true
	cfg = cfg.Normalized()
	c.mu.Unlock()

	questions, err := c.source.FetchQuestions(ctx, QuestionRequest{
		MainTopic: cfg.MainTopic,
		SubTopic:  cfg.SubTopic,
		ExamDate:  cfg.ExamDate,
		Count:     cfg.QuestionCount,
		Random:    true,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		log.Printf("user %s: exam generation failed: %v", c.userID, err)
		c.lastErr = generateFailedMessage
		if !errors.Is(err, ErrSourceUnavailable) {
			err = errors.Join(ErrSourceUnavailable, err)
		}
		return c.snapshotLocked(), err
	}

	c.stopTimerLocked()
	sess := &models.Session{
		ID:        uuid.NewString(),
		Config:    cfg,
		Status:    models.StatusActive,
		Questions: make([]models.SessionQuestion, 0, len(questions)),
	}
	for _, q := range questions {
		sess.Questions = append(sess.Questions, models.SessionQuestion{Question: q})
	}
	c.sess = sess

	if cfg.Mode == models.ModeExam {
		// Duration is fixed here; later edits to the timer input do not
		// affect a running session.
		total := cfg.TimerMinutes * 60
		sess.SecondsRemaining = &total
		c.timer = newCountdown(c.tickInterval, c.tick)
	}
	return c.snapshotLocked(), nil
}

// RecordAnswer stores the user's choice for one question. Calls against
// a non-active session, an unknown question or an already-locked answer
// are silent no-ops: they only arise from stale clicks.
func (c *Controller) RecordAnswer(questionID, chosenOption string) models.ControllerView {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil || c.sess.Status != models.StatusActive || chosenOption == "" {
		return c.snapshotLocked()
	}
	for i := range c.sess.Questions {
		sq := &c.sess.Questions[i]
		if sq.Question.ID != questionID {
			continue
		}
		if sq.Answered.Answered() && c.sess.Config.Mode == models.ModeExam {
			// Locked: exam mode commits the first choice for good.
			break
		}
		chosen := chosenOption
		correct := sq.Question.CorrectOption()
		isCorrect := correct != "" && chosen == correct
		sq.Answered = models.AnsweredState{ChosenOption: &chosen, IsCorrect: &isCorrect}
		break
	}
	return c.snapshotLocked()
}

// Submit finishes the current session. Idempotent: submitting an
// already-submitted or absent session changes nothing.
func (c *Controller) Submit() models.ControllerView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitLocked()
	return c.snapshotLocked()
}

// Reset discards the current session and its timer entirely.
func (c *Controller) Reset() models.ControllerView {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
	c.sess = nil
	c.lastErr = ""
	return c.snapshotLocked()
}

// Snapshot returns the current state without mutating anything.
func (c *Controller) Snapshot() models.ControllerView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close stops the timer so an abandoned controller never keeps ticking.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

// tick runs once per logical second while an exam session is active.
// Reaching zero submits the session exactly once; the clock never goes
// negative.
func (c *Controller) tick() {
	c.mu.Lock()
	expired := false
	var sessionID string
	if c.sess != nil && c.sess.Status == models.StatusActive &&
		c.sess.Config.Mode == models.ModeExam && c.sess.SecondsRemaining != nil {
		if *c.sess.SecondsRemaining <= 1 {
			*c.sess.SecondsRemaining = 0
			c.submitLocked()
			expired = true
			sessionID = c.sess.ID
		} else {
			*c.sess.SecondsRemaining--
		}
	}
	c.mu.Unlock()

	if expired && c.events != nil {
		c.events.Publish("exam.session.expired", map[string]any{
			"user_id":    c.userID,
			"session_id": sessionID,
		})
	}
}

func (c *Controller) submitLocked() {
	if c.sess == nil || c.sess.Status != models.StatusActive {
		return
	}
	c.sess.Status = models.StatusSubmitted
	c.stopTimerLocked()
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// snapshotLocked builds the immutable view handed to the presentation
// layer. In exam mode correctness stays hidden until submission; study
// mode reveals it per question as soon as an answer lands.
func (c *Controller) snapshotLocked() models.ControllerView {
	view := models.ControllerView{Loading: c.loading, Error: c.lastErr}
	if c.sess == nil {
		return view
	}

	s := c.sess
	submitted := s.Status == models.StatusSubmitted
	sv := &models.SessionView{
		ID:        s.ID,
		Mode:      s.Config.Mode,
		Status:    s.Status,
		ShowDates: s.Config.ShowDates,
		Questions: make([]models.QuestionView, 0, len(s.Questions)),
	}
	for _, sq := range s.Questions {
		qv := models.QuestionView{
			ID:       sq.Question.ID,
			Text:     sq.Question.Text,
			Options:  append([]string(nil), sq.Question.Options[:]...),
			Answered: sq.Answered.Clone(),
		}
		if s.Config.ShowDates {
			qv.ExamDate = sq.Question.ExamDate
		}
		if submitted || (s.Config.Mode == models.ModeStudy && sq.Answered.Answered()) {
			qv.CorrectOption = sq.Question.CorrectOption()
		} else if s.Config.Mode == models.ModeExam {
			// Feedback is deferred until submission in exam mode.
			qv.Answered.IsCorrect = nil
		}
		if sq.Answered.Answered() {
			sv.AnsweredCount++
		}
		sv.Questions = append(sv.Questions, qv)
	}
	view.Session = sv

	if s.SecondsRemaining != nil {
		seconds := *s.SecondsRemaining
		view.SecondsRemaining = &seconds
	}
	if submitted {
		score := grading.Grade(s.Questions)
		view.ScoreResult = &score
	}
	return view
}
