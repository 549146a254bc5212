package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/session"
)

// ErrNoQuestions signals that a browse query matched nothing.
var ErrNoQuestions = errors.New("no questions found for given filters")

// QuestionPage is one page of a browse query.
type QuestionPage struct {
	Questions []models.QuestionDoc `json:"questions"`
	Total     int64                `json:"total"`
	Skip      int64                `json:"skip"`
	Limit     int64                `json:"limit"`
	HasMore   bool                 `json:"has_more"`
	Random    bool                 `json:"random"`
}

// ExamService adapts the question repository to the session engine's
// QuestionSource contract and serves question browsing.
type ExamService struct {
	Repo *repository.QuestionRepository
}

func NewExamService(repo *repository.QuestionRepository) *ExamService {
	return &ExamService{Repo: repo}
}

// FetchQuestions draws a batch for a new session. The requested count
// is clamped to what the filters can supply; an empty pool or a batch
// with no usable records maps to ErrSourceUnavailable.
func (s *ExamService) FetchQuestions(ctx context.Context, req session.QuestionRequest) ([]models.Question, error) {
	filter := repository.QuestionFilter{
		MainTopic: req.MainTopic,
		SubTopic:  req.SubTopic,
		ExamDate:  req.ExamDate,
	}
	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: counting questions: %v", session.ErrSourceUnavailable, err)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: no questions match the requested filters", session.ErrSourceUnavailable)
	}

	n := int64(req.Count)
	if n > total {
		n = total
	}
	var docs []models.QuestionDoc
	if req.Random {
		docs, err = s.Repo.Sample(ctx, filter, n)
	} else {
		docs, err = s.Repo.Find(ctx, filter, 0, n)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: fetching questions: %v", session.ErrSourceUnavailable, err)
	}

	questions := make([]models.Question, 0, len(docs))
	for _, doc := range docs {
		q, err := doc.ToQuestion()
		if err != nil {
			log.Printf("Skipping malformed question: %v", err)
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: fetched batch contained no usable questions", session.ErrSourceUnavailable)
	}
	return questions, nil
}

// ListQuestions serves paginated browsing for the topic pages. Random
// pages carry no stable offset, so skip and has_more reset for them.
func (s *ExamService) ListQuestions(ctx context.Context, filter repository.QuestionFilter, n, skip int64, random bool) (*QuestionPage, error) {
	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoQuestions
	}
	if n > total {
		n = total
	}

	var docs []models.QuestionDoc
	if random {
		docs, err = s.Repo.Sample(ctx, filter, n)
	} else {
		docs, err = s.Repo.Find(ctx, filter, skip, n)
	}
	if err != nil {
		return nil, err
	}

	page := &QuestionPage{
		Questions: docs,
		Total:     total,
		Limit:     n,
		Random:    random,
	}
	if !random {
		page.Skip = skip
		page.HasMore = skip+n < total
	}
	return page, nil
}
