package http

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/quizforge/quizforge/internal/quiz"
)

// Mount attaches the API routes to r. Paths match what the browser client
// calls.
func Mount(r chi.Router, store quiz.Store, gen Generator, log *zap.Logger) {
	r.Route("/api", func(ar chi.Router) {
		ar.Post("/quizzes", CreateQuizHandler(store, gen, log))
		ar.Get("/quizzes/{quizID}", GetQuizHandler(store, log))

		ar.Post("/quiz-results", SaveResultHandler(store, log))
		ar.Get("/quiz-results/{quizID}", GetResultHandler(store, log))

		ar.Post("/flashcard-sets", CreateFlashcardSetHandler(store, gen, log))
		ar.Get("/flashcard-sets/{setID}", GetFlashcardSetHandler(store, log))
	})
}
