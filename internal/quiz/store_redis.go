package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the session-style store: records live in redis with an
// optional TTL, matching the browser-session variant of the product.
// INCR keeps the identity counters monotonic across instances, and results
// are additionally written with SetNX under result:quiz:<id> so the first
// stored result for a quiz is the one the lookup keeps returning.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration // 0 means no expiry
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) create(ctx context.Context, seqKey, keyFmt string, v any, setID func(int64)) error {
	id, err := s.rdb.Incr(ctx, seqKey).Result()
	if err != nil {
		return err
	}
	setID(id)
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, fmt.Sprintf(keyFmt, id), buf, s.ttl).Err()
}

func (s *RedisStore) get(ctx context.Context, key string, v any) error {
	buf, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(buf, v)
}

func (s *RedisStore) CreateQuiz(ctx context.Context, topic string, questions []Question) (Quiz, error) {
	q := Quiz{Topic: topic, Questions: questions}
	if err := s.create(ctx, "seq:quizzes", "quiz:%d", &q, func(id int64) { q.ID = id }); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *RedisStore) GetQuiz(ctx context.Context, id int64) (Quiz, error) {
	var q Quiz
	if err := s.get(ctx, fmt.Sprintf("quiz:%d", id), &q); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *RedisStore) CreateFlashcardSet(ctx context.Context, topic string, cards []Flashcard, mcqs []MCQ) (FlashcardSet, error) {
	set := FlashcardSet{Topic: topic, Flashcards: cards, MCQs: mcqs}
	if err := s.create(ctx, "seq:flashcard_sets", "flashcards:%d", &set, func(id int64) { set.ID = id }); err != nil {
		return FlashcardSet{}, err
	}
	return set, nil
}

func (s *RedisStore) GetFlashcardSet(ctx context.Context, id int64) (FlashcardSet, error) {
	var set FlashcardSet
	if err := s.get(ctx, fmt.Sprintf("flashcards:%d", id), &set); err != nil {
		return FlashcardSet{}, err
	}
	return set, nil
}

func (s *RedisStore) SaveResult(ctx context.Context, res QuizResult) (QuizResult, error) {
	if err := s.create(ctx, "seq:quiz_results", "result:%d", &res, func(id int64) { res.ID = id }); err != nil {
		return QuizResult{}, err
	}
	buf, err := json.Marshal(&res)
	if err != nil {
		return QuizResult{}, err
	}
	// First result for a quiz wins the by-quiz lookup.
	if err := s.rdb.SetNX(ctx, fmt.Sprintf("result:quiz:%d", res.QuizID), buf, s.ttl).Err(); err != nil {
		return QuizResult{}, err
	}
	return res, nil
}

func (s *RedisStore) GetResultByQuizID(ctx context.Context, quizID int64) (QuizResult, error) {
	var res QuizResult
	if err := s.get(ctx, fmt.Sprintf("result:quiz:%d", quizID), &res); err != nil {
		return QuizResult{}, err
	}
	return res, nil
}
