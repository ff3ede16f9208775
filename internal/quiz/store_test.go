package quiz

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []Question {
	return []Question{
		{
			Question:      "Which Article establishes UPSC?",
			Options:       []string{"Article 315", "Article 320", "Article 324", "Article 330"},
			CorrectAnswer: 0,
			Explanation:   "Articles 315-323.",
		},
		{
			Question:      "When was UPSC given constitutional status?",
			Options:       []string{"1926", "1935", "1947", "1950"},
			CorrectAnswer: 3,
			Explanation:   "With the Constitution in 1950.",
		},
	}
}

func TestMemoryStore_QuizRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	created, err := s.CreateQuiz(ctx, "Indian Constitution", sampleQuestions())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := s.GetQuiz(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Indian Constitution", got.Topic)
	assert.Equal(t, sampleQuestions(), got.Questions)
}

func TestMemoryStore_MonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var last int64
	for i := 0; i < 5; i++ {
		q, err := s.CreateQuiz(ctx, "t", sampleQuestions())
		require.NoError(t, err)
		assert.Greater(t, q.ID, last)
		last = q.ID
	}
	assert.Equal(t, int64(5), last)
}

func TestMemoryStore_SeparateCountersPerCollection(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	q, err := s.CreateQuiz(ctx, "t", sampleQuestions())
	require.NoError(t, err)
	set, err := s.CreateFlashcardSet(ctx, "t",
		[]Flashcard{{Front: "f", Back: "b"}},
		[]MCQ{{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0}})
	require.NoError(t, err)

	assert.Equal(t, int64(1), q.ID)
	assert.Equal(t, int64(1), set.ID)
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetQuiz(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetQuiz(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetFlashcardSet(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetResultByQuizID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_FirstResultWins(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.SaveResult(ctx, QuizResult{QuizID: 3, Score: 1, TotalQuestions: 2})
	require.NoError(t, err)
	second, err := s.SaveResult(ctx, QuizResult{QuizID: 3, Score: 2, TotalQuestions: 2})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	got, err := s.GetResultByQuizID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, 1, got.Score)
}

func TestMemoryStore_FlashcardSetRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	cards := []Flashcard{{Front: "What is UPSC?", Back: "Union Public Service Commission."}}
	mcqs := []MCQ{{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2}}
	created, err := s.CreateFlashcardSet(ctx, "UPSC", cards, mcqs)
	require.NoError(t, err)

	got, err := s.GetFlashcardSet(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemoryStore_ConcurrentCreateUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := s.CreateQuiz(ctx, "t", sampleQuestions())
			assert.NoError(t, err)
			ids <- q.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
