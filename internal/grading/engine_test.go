package grading

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/quiz"
)

func quizWithKey(key ...int) quiz.Quiz {
	questions := make([]quiz.Question, len(key))
	for i, k := range key {
		questions[i] = quiz.Question{
			Question:      fmt.Sprintf("question %d", i),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: k,
			Explanation:   "because",
		}
	}
	return quiz.Quiz{ID: 7, Topic: "test", Questions: questions}
}

func TestGrade_FullSubmission(t *testing.T) {
	res := Grade(quizWithKey(0, 2, 1), []int{0, 2, 0})

	assert.Equal(t, int64(7), res.QuizID)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 3, res.TotalQuestions)
	require.Len(t, res.Answers, 3)
	assert.Equal(t, quiz.AnswerDetail{QuestionIndex: 0, SelectedAnswer: 0, IsCorrect: true}, res.Answers[0])
	assert.Equal(t, quiz.AnswerDetail{QuestionIndex: 1, SelectedAnswer: 2, IsCorrect: true}, res.Answers[1])
	assert.Equal(t, quiz.AnswerDetail{QuestionIndex: 2, SelectedAnswer: 0, IsCorrect: false}, res.Answers[2])
}

func TestGrade_PartialSubmission(t *testing.T) {
	res := Grade(quizWithKey(1, 0, 3), []int{1})

	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 3, res.TotalQuestions, "total reflects the quiz, not the submission")
	require.Len(t, res.Answers, 1)
	assert.True(t, res.Answers[0].IsCorrect)
}

func TestGrade_PartialWrongAnswer(t *testing.T) {
	res := Grade(quizWithKey(1, 0, 3), []int{2})

	assert.Zero(t, res.Score)
	require.Len(t, res.Answers, 1)
	assert.False(t, res.Answers[0].IsCorrect)
}

func TestGrade_ExcessAnswersIgnored(t *testing.T) {
	res := Grade(quizWithKey(0, 1), []int{0, 1, 3, 2})

	assert.Equal(t, 2, res.Score)
	assert.Len(t, res.Answers, 2)
}

func TestGrade_EmptySubmission(t *testing.T) {
	res := Grade(quizWithKey(0, 1), nil)

	assert.Zero(t, res.Score)
	assert.Equal(t, 2, res.TotalQuestions)
	assert.Empty(t, res.Answers)
}

func TestGrade_IsPure(t *testing.T) {
	q := quizWithKey(0, 2, 1)
	first := Grade(q, []int{0, 2, 0})
	second := Grade(q, []int{0, 2, 0})
	assert.Equal(t, first, second)
	assert.Equal(t, 0, q.Questions[0].CorrectAnswer, "input quiz untouched")
}
