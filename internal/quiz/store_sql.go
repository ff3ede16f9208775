package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore persists records in sqlite or postgres. Question, flashcard and
// answer slices are stored as JSON text columns; ids come from the
// AUTOINCREMENT / BIGSERIAL primary keys, which never reuse values.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// insertID runs an insert and reports the assigned id. Postgres needs
// RETURNING; sqlite exposes LastInsertId.
func (s *SQLStore) insertID(ctx context.Context, query string, args ...any) (int64, error) {
	if s.driver == "postgres" {
		var id int64
		err := s.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id)
		return id, err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *SQLStore) CreateQuiz(ctx context.Context, topic string, questions []Question) (Quiz, error) {
	qj, err := json.Marshal(questions)
	if err != nil {
		return Quiz{}, err
	}
	id, err := s.insertID(ctx,
		`INSERT INTO quizzes (topic, questions_json, created_at) VALUES ($1,$2,$3)`,
		topic, string(qj), time.Now().Unix())
	if err != nil {
		return Quiz{}, err
	}
	return Quiz{ID: id, Topic: topic, Questions: questions}, nil
}

func (s *SQLStore) GetQuiz(ctx context.Context, id int64) (Quiz, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, topic, questions_json FROM quizzes WHERE id=$1`, id)
	var q Quiz
	var qjson string
	if err := row.Scan(&q.ID, &q.Topic, &qjson); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, ErrNotFound
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) CreateFlashcardSet(ctx context.Context, topic string, cards []Flashcard, mcqs []MCQ) (FlashcardSet, error) {
	fj, err := json.Marshal(cards)
	if err != nil {
		return FlashcardSet{}, err
	}
	mj, err := json.Marshal(mcqs)
	if err != nil {
		return FlashcardSet{}, err
	}
	id, err := s.insertID(ctx,
		`INSERT INTO flashcard_sets (topic, flashcards_json, mcqs_json, created_at) VALUES ($1,$2,$3,$4)`,
		topic, string(fj), string(mj), time.Now().Unix())
	if err != nil {
		return FlashcardSet{}, err
	}
	return FlashcardSet{ID: id, Topic: topic, Flashcards: cards, MCQs: mcqs}, nil
}

func (s *SQLStore) GetFlashcardSet(ctx context.Context, id int64) (FlashcardSet, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, topic, flashcards_json, mcqs_json FROM flashcard_sets WHERE id=$1`, id)
	var set FlashcardSet
	var fjson, mjson string
	if err := row.Scan(&set.ID, &set.Topic, &fjson, &mjson); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FlashcardSet{}, ErrNotFound
		}
		return FlashcardSet{}, err
	}
	if err := json.Unmarshal([]byte(fjson), &set.Flashcards); err != nil {
		return FlashcardSet{}, err
	}
	if err := json.Unmarshal([]byte(mjson), &set.MCQs); err != nil {
		return FlashcardSet{}, err
	}
	return set, nil
}

func (s *SQLStore) SaveResult(ctx context.Context, res QuizResult) (QuizResult, error) {
	aj, err := json.Marshal(res.Answers)
	if err != nil {
		return QuizResult{}, err
	}
	id, err := s.insertID(ctx,
		`INSERT INTO quiz_results (quiz_id, score, total_questions, answers_json, created_at) VALUES ($1,$2,$3,$4,$5)`,
		res.QuizID, res.Score, res.TotalQuestions, string(aj), time.Now().Unix())
	if err != nil {
		return QuizResult{}, err
	}
	res.ID = id
	return res, nil
}

func (s *SQLStore) GetResultByQuizID(ctx context.Context, quizID int64) (QuizResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, quiz_id, score, total_questions, answers_json FROM quiz_results WHERE quiz_id=$1 ORDER BY id LIMIT 1`,
		quizID)
	var res QuizResult
	var ajson string
	if err := row.Scan(&res.ID, &res.QuizID, &res.Score, &res.TotalQuestions, &ajson); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QuizResult{}, ErrNotFound
		}
		return QuizResult{}, err
	}
	if err := json.Unmarshal([]byte(ajson), &res.Answers); err != nil {
		return QuizResult{}, err
	}
	return res, nil
}
