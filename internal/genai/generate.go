// Package genai turns a topic string into validated quiz or flashcard
// content via an external generative-text service.
package genai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Generator builds the prompt, makes exactly one call to the text
// generator, then pipes the raw reply through Sanitize and the variant's
// validator. It never touches the store.
type Generator struct {
	gen TextGenerator
	log *zap.Logger
}

func NewGenerator(gen TextGenerator, log *zap.Logger) *Generator {
	return &Generator{gen: gen, log: log.Named("generator")}
}

func (g *Generator) GenerateQuiz(ctx context.Context, topic string) ([]quiz.Question, error) {
	raw, err := g.generate(ctx, topic, quizPrompt)
	if err != nil {
		return nil, err
	}
	questions, err := ValidateQuiz(raw)
	if err != nil {
		return nil, err
	}
	g.log.Info("quiz generated", zap.String("topic", topic), zap.Int("questions", len(questions)))
	return questions, nil
}

func (g *Generator) GenerateFlashcardSet(ctx context.Context, topic string) ([]quiz.Flashcard, []quiz.MCQ, error) {
	raw, err := g.generate(ctx, topic, flashcardPrompt)
	if err != nil {
		return nil, nil, err
	}
	cards, mcqs, err := ValidateFlashcards(raw)
	if err != nil {
		return nil, nil, err
	}
	g.log.Info("flashcard set generated", zap.String("topic", topic),
		zap.Int("flashcards", len(cards)), zap.Int("mcqs", len(mcqs)))
	return cards, mcqs, nil
}

func (g *Generator) generate(ctx context.Context, topic string, prompt func(string) string) (string, error) {
	if strings.TrimSpace(topic) == "" {
		return "", fmt.Errorf("%w: topic must not be empty", quiz.ErrInvalidInput)
	}
	raw, err := g.gen.GenerateText(ctx, prompt(topic))
	if err != nil {
		return "", err
	}
	return Sanitize(raw), nil
}
