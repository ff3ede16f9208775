package genai

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quizforge/quizforge/internal/quiz"
)

type fakeTextGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (f *fakeTextGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGenerateQuiz_HappyPath(t *testing.T) {
	fake := &fakeTextGenerator{reply: "```json\n" + questionJSON(nil) + "\n```"}
	g := NewGenerator(fake, zap.NewNop())

	questions, err := g.GenerateQuiz(context.Background(), "Indian Constitution")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, fake.calls)
	assert.Contains(t, fake.prompts[0], "Indian Constitution")
	assert.Contains(t, fake.prompts[0], "15 multiple choice questions")
}

func TestGenerateQuiz_EmptyTopicFailsFast(t *testing.T) {
	fake := &fakeTextGenerator{reply: questionJSON(nil)}
	g := NewGenerator(fake, zap.NewNop())

	for _, topic := range []string{"", "   ", "\t\n"} {
		_, err := g.GenerateQuiz(context.Background(), topic)
		assert.ErrorIs(t, err, quiz.ErrInvalidInput)
	}
	assert.Zero(t, fake.calls, "external service must not be called for invalid topics")
}

func TestGenerateQuiz_UpstreamErrorPropagates(t *testing.T) {
	fake := &fakeTextGenerator{err: fmt.Errorf("%w: gemini http 429", quiz.ErrUpstream)}
	g := NewGenerator(fake, zap.NewNop())

	_, err := g.GenerateQuiz(context.Background(), "Polity")
	assert.ErrorIs(t, err, quiz.ErrUpstream)
	assert.Equal(t, 1, fake.calls, "exactly one outbound call, no retry")
}

func TestGenerateQuiz_MalformedReply(t *testing.T) {
	fake := &fakeTextGenerator{reply: "Sure! Here are your questions:"}
	g := NewGenerator(fake, zap.NewNop())

	_, err := g.GenerateQuiz(context.Background(), "Polity")
	assert.ErrorIs(t, err, quiz.ErrMalformedResponse)
}

func TestGenerateQuiz_SchemaViolationReply(t *testing.T) {
	fake := &fakeTextGenerator{reply: questionJSON(func(q map[string]any) { q["correctAnswer"] = 7 })}
	g := NewGenerator(fake, zap.NewNop())

	var sv *quiz.SchemaViolationError
	_, err := g.GenerateQuiz(context.Background(), "Polity")
	assert.ErrorAs(t, err, &sv)
}

func TestGenerateFlashcardSet_HappyPath(t *testing.T) {
	fake := &fakeTextGenerator{reply: validFlashcardsJSON}
	g := NewGenerator(fake, zap.NewNop())

	cards, mcqs, err := g.GenerateFlashcardSet(context.Background(), "UPSC history")
	require.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Len(t, mcqs, 1)
	require.Equal(t, 1, fake.calls)
	assert.Contains(t, fake.prompts[0], "10 detailed flashcards")
	assert.True(t, strings.Contains(fake.prompts[0], "UPSC history"))
}

func TestGenerateFlashcardSet_EmptyTopic(t *testing.T) {
	fake := &fakeTextGenerator{reply: validFlashcardsJSON}
	g := NewGenerator(fake, zap.NewNop())

	_, _, err := g.GenerateFlashcardSet(context.Background(), " ")
	assert.ErrorIs(t, err, quiz.ErrInvalidInput)
	assert.Zero(t, fake.calls)
}
