// Package http maps the wire contract onto the quiz components. Handlers
// are thin adapters: decode, dispatch, translate typed failures into
// statuses. The generic failure messages reach the user; the typed reason
// only reaches the logs.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quiz"
)

// Generator is what the create handlers need from the generation pipeline.
type Generator interface {
	GenerateQuiz(ctx context.Context, topic string) ([]quiz.Question, error)
	GenerateFlashcardSet(ctx context.Context, topic string) ([]quiz.Flashcard, []quiz.MCQ, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func CreateQuizHandler(store quiz.Store, gen Generator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic string `json:"topic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "bad json")
			return
		}
		topic := strings.TrimSpace(req.Topic)
		if topic == "" {
			writeMessage(w, http.StatusBadRequest, "topic is required")
			return
		}

		questions, err := gen.GenerateQuiz(r.Context(), topic)
		if err != nil {
			if errors.Is(err, quiz.ErrInvalidInput) {
				writeMessage(w, http.StatusBadRequest, "topic is required")
				return
			}
			log.Error("quiz generation failed", zap.String("topic", topic), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Failed to generate quiz")
			return
		}

		q, err := store.CreateQuiz(r.Context(), topic, questions)
		if err != nil {
			log.Error("quiz store failed", zap.String("topic", topic), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Failed to generate quiz")
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

func GetQuizHandler(store quiz.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "quizID")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "invalid quiz id")
			return
		}
		q, err := store.GetQuiz(r.Context(), id)
		if err != nil {
			if errors.Is(err, quiz.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "Quiz not found")
				return
			}
			log.Error("quiz lookup failed", zap.Int64("id", id), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Something went wrong!")
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}

// SaveResultHandler accepts the browser's answer selections and stores a
// graded result. The grade is recomputed server-side from the stored
// answer key; client-sent score/isCorrect fields are never trusted.
func SaveResultHandler(store quiz.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			QuizID  int64 `json:"quizId"`
			Answers []struct {
				QuestionIndex  int `json:"questionIndex"`
				SelectedAnswer int `json:"selectedAnswer"`
			} `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid quiz result data")
			return
		}
		if req.QuizID <= 0 || len(req.Answers) == 0 {
			writeMessage(w, http.StatusBadRequest, "Invalid quiz result data")
			return
		}
		// Answers arrive in question order, one per answered question.
		selections := make([]int, 0, len(req.Answers))
		for i, a := range req.Answers {
			if a.QuestionIndex != i {
				writeMessage(w, http.StatusBadRequest, "Invalid quiz result data")
				return
			}
			selections = append(selections, a.SelectedAnswer)
		}

		q, err := store.GetQuiz(r.Context(), req.QuizID)
		if err != nil {
			if errors.Is(err, quiz.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "Quiz not found")
				return
			}
			log.Error("quiz lookup failed", zap.Int64("id", req.QuizID), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Something went wrong!")
			return
		}

		res, err := store.SaveResult(r.Context(), grading.Grade(q, selections))
		if err != nil {
			log.Error("result store failed", zap.Int64("quizId", req.QuizID), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Something went wrong!")
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func GetResultHandler(store quiz.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID, ok := pathID(r, "quizID")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "invalid quiz id")
			return
		}
		res, err := store.GetResultByQuizID(r.Context(), quizID)
		if err != nil {
			if errors.Is(err, quiz.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "Quiz result not found")
				return
			}
			log.Error("result lookup failed", zap.Int64("quizId", quizID), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Something went wrong!")
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func CreateFlashcardSetHandler(store quiz.Store, gen Generator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic string `json:"topic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "bad json")
			return
		}
		topic := strings.TrimSpace(req.Topic)
		if topic == "" {
			writeMessage(w, http.StatusBadRequest, "topic is required")
			return
		}

		cards, mcqs, err := gen.GenerateFlashcardSet(r.Context(), topic)
		if err != nil {
			if errors.Is(err, quiz.ErrInvalidInput) {
				writeMessage(w, http.StatusBadRequest, "topic is required")
				return
			}
			log.Error("flashcard generation failed", zap.String("topic", topic), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Failed to generate flashcards")
			return
		}

		set, err := store.CreateFlashcardSet(r.Context(), topic, cards, mcqs)
		if err != nil {
			log.Error("flashcard store failed", zap.String("topic", topic), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Failed to generate flashcards")
			return
		}
		writeJSON(w, http.StatusOK, set)
	}
}

func GetFlashcardSetHandler(store quiz.Store, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "setID")
		if !ok {
			writeMessage(w, http.StatusBadRequest, "invalid flashcard set id")
			return
		}
		set, err := store.GetFlashcardSet(r.Context(), id)
		if err != nil {
			if errors.Is(err, quiz.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, "Flashcard set not found")
				return
			}
			log.Error("flashcard set lookup failed", zap.Int64("id", id), zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Something went wrong!")
			return
		}
		writeJSON(w, http.StatusOK, set)
	}
}
