package handlers

import (
	"net/http"

	"exam-service/internal/repository"
	"exam-service/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Service *service.CatalogService
}

func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

// GetTopics lists all main topics and their subtopics.
func (h *CatalogHandler) GetTopics(c *gin.Context) {
	topics, err := h.Service.Topics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch topics"})
		return
	}
	c.JSON(http.StatusOK, topics)
}

// GetExamDates lists all exam dates in chronological order.
func (h *CatalogHandler) GetExamDates(c *gin.Context) {
	dates, err := h.Service.ExamDates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch exam dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exam_dates": dates})
}

// GetSubtopicCounts lists how many questions exist per subtopic.
func (h *CatalogHandler) GetSubtopicCounts(c *gin.Context) {
	counts, err := h.Service.SubtopicCounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subtopic counts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subtopic_counts": counts})
}

// GetQuestionCount returns the number of questions matching the query
// filters.
func (h *CatalogHandler) GetQuestionCount(c *gin.Context) {
	filter := repository.QuestionFilter{
		MainTopic: c.Query("main_topic"),
		SubTopic:  c.Query("sub_topic"),
		ExamDate:  c.Query("exam_date"),
	}
	total, err := h.Service.QuestionCount(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}
