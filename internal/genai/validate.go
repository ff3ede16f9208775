package genai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Payload shapes for strict decoding. Pointer fields distinguish an absent
// key from a zero value; a wrong JSON type is a decode error, never a
// silent coercion.
type questionPayload struct {
	Question      *string  `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
	Explanation   *string  `json:"explanation"`
}

type flashcardPayload struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

func decodeStrict(text string, v any) error {
	if err := json.Unmarshal([]byte(text), v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &quiz.SchemaViolationError{
				Element: typeErr.Field,
				Reason:  fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return fmt.Errorf("%w: %v", quiz.ErrMalformedResponse, err)
	}
	return nil
}

func checkChoice(element string, p questionPayload, needExplanation bool) error {
	violation := func(field, reason string) error {
		return &quiz.SchemaViolationError{Element: element + "." + field, Reason: reason}
	}
	if p.Question == nil || strings.TrimSpace(*p.Question) == "" {
		return violation("question", "missing or empty")
	}
	if p.Options == nil {
		return violation("options", "missing")
	}
	if len(p.Options) != 4 {
		return violation("options", fmt.Sprintf("expected 4 options, got %d", len(p.Options)))
	}
	seen := map[string]bool{}
	for _, o := range p.Options {
		if strings.TrimSpace(o) == "" {
			return violation("options", "empty option text")
		}
		if seen[o] {
			return violation("options", "duplicate option: "+o)
		}
		seen[o] = true
	}
	if p.CorrectAnswer == nil {
		return violation("correctAnswer", "missing")
	}
	if *p.CorrectAnswer < 0 || *p.CorrectAnswer >= len(p.Options) {
		return violation("correctAnswer", fmt.Sprintf("index %d out of range", *p.CorrectAnswer))
	}
	if needExplanation && (p.Explanation == nil || strings.TrimSpace(*p.Explanation) == "") {
		return violation("explanation", "missing or empty")
	}
	return nil
}

// ValidateQuiz parses sanitized model output into the quiz shape,
// enforcing the per-question invariants. It returns ErrMalformedResponse
// for text that is not JSON and a SchemaViolationError naming the first
// offending element otherwise.
func ValidateQuiz(text string) ([]quiz.Question, error) {
	var envelope struct {
		Questions []questionPayload `json:"questions"`
	}
	if err := decodeStrict(text, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Questions) == 0 {
		return nil, &quiz.SchemaViolationError{Element: "questions", Reason: "missing or empty"}
	}
	out := make([]quiz.Question, 0, len(envelope.Questions))
	for i, p := range envelope.Questions {
		if err := checkChoice(fmt.Sprintf("questions[%d]", i), p, true); err != nil {
			return nil, err
		}
		out = append(out, quiz.Question{
			Question:      *p.Question,
			Options:       p.Options,
			CorrectAnswer: *p.CorrectAnswer,
			Explanation:   *p.Explanation,
		})
	}
	return out, nil
}

// ValidateFlashcards parses sanitized model output into the flashcard-set
// shape: a flashcards array plus an mcqs array whose questions carry no
// explanation.
func ValidateFlashcards(text string) ([]quiz.Flashcard, []quiz.MCQ, error) {
	var envelope struct {
		Flashcards []flashcardPayload `json:"flashcards"`
		MCQs       []questionPayload  `json:"mcqs"`
	}
	if err := decodeStrict(text, &envelope); err != nil {
		return nil, nil, err
	}
	if len(envelope.Flashcards) == 0 {
		return nil, nil, &quiz.SchemaViolationError{Element: "flashcards", Reason: "missing or empty"}
	}
	if len(envelope.MCQs) == 0 {
		return nil, nil, &quiz.SchemaViolationError{Element: "mcqs", Reason: "missing or empty"}
	}

	cards := make([]quiz.Flashcard, 0, len(envelope.Flashcards))
	for i, p := range envelope.Flashcards {
		if p.Front == nil || strings.TrimSpace(*p.Front) == "" {
			return nil, nil, &quiz.SchemaViolationError{Element: fmt.Sprintf("flashcards[%d].front", i), Reason: "missing or empty"}
		}
		if p.Back == nil || strings.TrimSpace(*p.Back) == "" {
			return nil, nil, &quiz.SchemaViolationError{Element: fmt.Sprintf("flashcards[%d].back", i), Reason: "missing or empty"}
		}
		cards = append(cards, quiz.Flashcard{Front: *p.Front, Back: *p.Back})
	}

	mcqs := make([]quiz.MCQ, 0, len(envelope.MCQs))
	for i, p := range envelope.MCQs {
		if err := checkChoice(fmt.Sprintf("mcqs[%d]", i), p, false); err != nil {
			return nil, nil, err
		}
		mcqs = append(mcqs, quiz.MCQ{
			Question:      *p.Question,
			Options:       p.Options,
			CorrectAnswer: *p.CorrectAnswer,
		})
	}
	return cards, mcqs, nil
}
