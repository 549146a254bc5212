package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"exam-service/internal/middleware"
	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/service"
	"exam-service/internal/session"

	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	Sessions *session.Manager
	Exams    *service.ExamService
}

func NewExamHandler(sessions *session.Manager, exams *service.ExamService) *ExamHandler {
	return &ExamHandler{Sessions: sessions, Exams: exams}
}

func (h *ExamHandler) controller(c *gin.Context) *session.Controller {
	return h.Sessions.Controller(middleware.UserID(c))
}

// StartSession generates a fresh exam for the caller, replacing any
// session they already had.
func (h *ExamHandler) StartSession(c *gin.Context) {
	var cfg models.SessionConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if cfg.Mode != "" && !cfg.Mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be study or exam"})
		return
	}

	view, err := h.controller(c).StartSession(c.Request.Context(), cfg)
	switch {
	case errors.Is(err, session.ErrGenerationInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Exam generation already in progress", "state": view})
	case errors.Is(err, session.ErrSourceUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": view.Error, "state": view})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
	default:
		c.JSON(http.StatusCreated, view)
	}
}

// GetSession returns the caller's current engine state.
func (h *ExamHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller(c).Snapshot())
}

// RecordAnswer stores an option choice. Stale or out-of-order clicks
// are absorbed silently; the response is always the fresh state.
func (h *ExamHandler) RecordAnswer(c *gin.Context) {
	var req struct {
		QuestionID   string `json:"question_id" binding:"required"`
		ChosenOption string `json:"chosen_option" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer format", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.controller(c).RecordAnswer(req.QuestionID, req.ChosenOption))
}

// SubmitSession finishes the caller's session; repeated calls are
// harmless.
func (h *ExamHandler) SubmitSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller(c).Submit())
}

// ResetSession discards the caller's session and timer.
func (h *ExamHandler) ResetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller(c).Reset())
}

// ListQuestions serves paginated browsing for the topic pages.
func (h *ExamHandler) ListQuestions(c *gin.Context) {
	filter := repository.QuestionFilter{
		MainTopic: c.Query("main_topic"),
		SubTopic:  c.Query("sub_topic"),
		ExamDate:  c.Query("exam_date"),
	}
	n, err := strconv.ParseInt(c.DefaultQuery("n", "10"), 10, 64)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
		return
	}
	skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	random := c.DefaultQuery("random", "false") == "true"

	page, err := h.Exams.ListQuestions(c.Request.Context(), filter, n, skip, random)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No questions found for given filters"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, page)
}
