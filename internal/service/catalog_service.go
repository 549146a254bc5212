package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"exam-service/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	catalogCacheTTL = 5 * time.Minute

	topicsCacheKey         = "exam:catalog:topics"
	examDatesCacheKey      = "exam:catalog:exam_dates"
	subtopicCountsCacheKey = "exam:catalog:subtopic_counts"
)

// examDateLayout is dd.mm.yyyy, the format the scraped questions carry.
const examDateLayout = "02.01.2006"

// CatalogService serves the read-only enumerations the filter UI is
// built from. Results are cached in redis when a client is configured;
// a nil client or a cache failure falls through to Mongo.
type CatalogService struct {
	Repo  *repository.QuestionRepository
	Cache *redis.Client
}

func NewCatalogService(repo *repository.QuestionRepository, cache *redis.Client) *CatalogService {
	return &CatalogService{Repo: repo, Cache: cache}
}

// Topics returns the main-topic to subtopics tree.
func (s *CatalogService) Topics(ctx context.Context) (map[string][]string, error) {
	var topics map[string][]string
	if s.fromCache(ctx, topicsCacheKey, &topics) {
		return topics, nil
	}
	topics, err := s.Repo.TopicTree(ctx)
	if err != nil {
		return nil, err
	}
	s.storeCache(ctx, topicsCacheKey, topics)
	return topics, nil
}

// ExamDates returns every exam date, sorted chronologically.
func (s *CatalogService) ExamDates(ctx context.Context) ([]string, error) {
	var dates []string
	if s.fromCache(ctx, examDatesCacheKey, &dates) {
		return dates, nil
	}
	dates, err := s.Repo.DistinctExamDates(ctx)
	if err != nil {
		return nil, err
	}
	sortExamDates(dates)
	s.storeCache(ctx, examDatesCacheKey, dates)
	return dates, nil
}

// SubtopicCounts returns how many questions exist per subtopic.
func (s *CatalogService) SubtopicCounts(ctx context.Context) ([]repository.SubtopicCount, error) {
	var counts []repository.SubtopicCount
	if s.fromCache(ctx, subtopicCountsCacheKey, &counts) {
		return counts, nil
	}
	counts, err := s.Repo.SubtopicCounts(ctx)
	if err != nil {
		return nil, err
	}
	s.storeCache(ctx, subtopicCountsCacheKey, counts)
	return counts, nil
}

// QuestionCount returns the number of questions matching a filter.
// Counts vary per filter combination, so they are not cached.
func (s *CatalogService) QuestionCount(ctx context.Context, filter repository.QuestionFilter) (int64, error) {
	return s.Repo.Count(ctx, filter)
}

func (s *CatalogService) fromCache(ctx context.Context, key string, dest any) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (s *CatalogService) storeCache(ctx context.Context, key string, value any) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, key, data, catalogCacheTTL)
}

// sortExamDates orders dd.mm.yyyy strings chronologically; values that
// fail to parse sort to the end.
func sortExamDates(dates []string) {
	sort.SliceStable(dates, func(i, j int) bool {
		ti, erri := time.Parse(examDateLayout, dates[i])
		tj, errj := time.Parse(examDateLayout, dates[j])
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return ti.Before(tj)
	})
}
