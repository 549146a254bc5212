package repository

import (
	"context"
	"sort"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionFilter narrows queries against the questions collection.
// Topic and date filters are independent and combine with logical AND.
type QuestionFilter struct {
	MainTopic string
	SubTopic  string
	ExamDate  string
}

func (f QuestionFilter) toQuery() bson.M {
	query := bson.M{}
	if f.MainTopic != "" {
		query["main_topic"] = f.MainTopic
	}
	if f.SubTopic != "" {
		query["sub_topic"] = f.SubTopic
	}
	if f.ExamDate != "" {
		query["exam_date"] = f.ExamDate
	}
	return query
}

// SubtopicCount is one row of the per-subtopic aggregation.
type SubtopicCount struct {
	SubTopic string `bson:"_id" json:"sub_topic"`
	Count    int64  `bson:"count" json:"count"`
}

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) Count(ctx context.Context, filter QuestionFilter) (int64, error) {
	return r.Col.CountDocuments(ctx, filter.toQuery())
}

// Find returns questions in collection order with skip/limit pagination.
func (r *QuestionRepository) Find(ctx context.Context, filter QuestionFilter, skip, limit int64) ([]models.QuestionDoc, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := r.Col.Find(ctx, filter.toQuery(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeQuestions(ctx, cur)
}

// Sample returns up to n random questions matching the filter.
func (r *QuestionRepository) Sample(ctx context.Context, filter QuestionFilter, n int64) ([]models.QuestionDoc, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter.toQuery()}},
		bson.D{{Key: "$sample", Value: bson.M{"size": n}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	return decodeQuestions(ctx, cur)
}

// DistinctExamDates returns every exam_date value present, unsorted.
func (r *QuestionRepository) DistinctExamDates(ctx context.Context) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "exam_date", bson.M{})
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			dates = append(dates, s)
		}
	}
	return dates, nil
}

// SubtopicCounts groups questions per subtopic, most populous first.
func (r *QuestionRepository) SubtopicCounts(ctx context.Context) ([]SubtopicCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$sub_topic"}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$sub_topic", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var counts []SubtopicCount
	for cur.Next(ctx) {
		var c SubtopicCount
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, cur.Err()
}

// TopicTree maps each main topic to its subtopics. Documents carry
// main_topic as a list; the first entry is the canonical one.
func (r *QuestionRepository) TopicTree(ctx context.Context) (map[string][]string, error) {
	opts := options.Find().SetProjection(bson.M{"main_topic": 1, "sub_topic": 1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	subsByMain := make(map[string]map[string]struct{})
	for cur.Next(ctx) {
		var doc models.QuestionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		main := "Unknown"
		if len(doc.MainTopic) > 0 {
			main = doc.MainTopic[0]
		}
		if _, ok := subsByMain[main]; !ok {
			subsByMain[main] = make(map[string]struct{})
		}
		for _, sub := range doc.SubTopic {
			subsByMain[main][sub] = struct{}{}
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	topics := make(map[string][]string, len(subsByMain))
	for main, subs := range subsByMain {
		list := make([]string, 0, len(subs))
		for sub := range subs {
			list = append(list, sub)
		}
		sort.Strings(list)
		topics[main] = list
	}
	return topics, nil
}

func decodeQuestions(ctx context.Context, cur *mongo.Cursor) ([]models.QuestionDoc, error) {
	var questions []models.QuestionDoc
	for cur.Next(ctx) {
		var q models.QuestionDoc
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}
