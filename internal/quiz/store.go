package quiz

import (
	"context"
	"sync"
)

// Store is the persistence contract for generated content and results.
// Records are written once at creation and never mutated; implementations
// must assign monotonically increasing integer ids starting at 1.
type Store interface {
	CreateQuiz(ctx context.Context, topic string, questions []Question) (Quiz, error)
	GetQuiz(ctx context.Context, id int64) (Quiz, error)

	CreateFlashcardSet(ctx context.Context, topic string, cards []Flashcard, mcqs []MCQ) (FlashcardSet, error)
	GetFlashcardSet(ctx context.Context, id int64) (FlashcardSet, error)

	SaveResult(ctx context.Context, res QuizResult) (QuizResult, error)
	// GetResultByQuizID returns the earliest stored result for the quiz.
	// Later results for the same quiz are invisible to this lookup.
	GetResultByQuizID(ctx context.Context, quizID int64) (QuizResult, error)
}

// table is one append-only keyed collection with its own identity counter.
// The caller's mutex serializes counter increment and insert.
type table[T any] struct {
	seq  int64
	rows map[int64]T
}

func newTable[T any]() table[T] {
	return table[T]{rows: map[int64]T{}}
}

func (t *table[T]) nextID() int64 {
	t.seq++
	return t.seq
}

type memoryStore struct {
	mu      sync.Mutex
	quizzes table[Quiz]
	sets    table[FlashcardSet]
	results table[QuizResult]
}

func NewMemoryStore() Store {
	return &memoryStore{
		quizzes: newTable[Quiz](),
		sets:    newTable[FlashcardSet](),
		results: newTable[QuizResult](),
	}
}

func (m *memoryStore) CreateQuiz(_ context.Context, topic string, questions []Question) (Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := Quiz{ID: m.quizzes.nextID(), Topic: topic, Questions: questions}
	m.quizzes.rows[q.ID] = q
	return q, nil
}

func (m *memoryStore) GetQuiz(_ context.Context, id int64) (Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quizzes.rows[id]
	if !ok {
		return Quiz{}, ErrNotFound
	}
	return q, nil
}

func (m *memoryStore) CreateFlashcardSet(_ context.Context, topic string, cards []Flashcard, mcqs []MCQ) (FlashcardSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := FlashcardSet{ID: m.sets.nextID(), Topic: topic, Flashcards: cards, MCQs: mcqs}
	m.sets.rows[s.ID] = s
	return s, nil
}

func (m *memoryStore) GetFlashcardSet(_ context.Context, id int64) (FlashcardSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sets.rows[id]
	if !ok {
		return FlashcardSet{}, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) SaveResult(_ context.Context, res QuizResult) (QuizResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res.ID = m.results.nextID()
	m.results.rows[res.ID] = res
	return res, nil
}

func (m *memoryStore) GetResultByQuizID(_ context.Context, quizID int64) (QuizResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Scan in id order so "first match" means earliest stored.
	for id := int64(1); id <= m.results.seq; id++ {
		if r, ok := m.results.rows[id]; ok && r.QuizID == quizID {
			return r, nil
		}
	}
	return QuizResult{}, ErrNotFound
}
