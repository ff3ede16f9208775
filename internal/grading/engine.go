// Package grading scores submitted answers against a quiz's answer key.
// It is pure: no I/O, no store access; persisting the result is the
// caller's job.
package grading

import "github.com/quizforge/quizforge/internal/quiz"

// Grade compares each submitted option index against the corresponding
// question's correct answer. A short submission grades only the answered
// prefix; excess entries beyond the question count are ignored. The
// returned result carries no ID; the store assigns one at save time.
func Grade(q quiz.Quiz, selections []int) quiz.QuizResult {
	n := len(selections)
	if n > len(q.Questions) {
		n = len(q.Questions)
	}

	answers := make([]quiz.AnswerDetail, 0, n)
	score := 0
	for i := 0; i < n; i++ {
		correct := selections[i] == q.Questions[i].CorrectAnswer
		if correct {
			score++
		}
		answers = append(answers, quiz.AnswerDetail{
			QuestionIndex:  i,
			SelectedAnswer: selections[i],
			IsCorrect:      correct,
		})
	}

	return quiz.QuizResult{
		QuizID:         q.ID,
		Score:          score,
		TotalQuestions: len(q.Questions),
		Answers:        answers,
	}
}
