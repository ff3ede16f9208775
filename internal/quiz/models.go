package quiz

// Question is one multiple-choice question of a quiz. Options is always
// exactly four entries; CorrectAnswer indexes into it.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type Quiz struct {
	ID        int64      `json:"id"`
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

// Flashcard is one front/back card of a flashcard set.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// MCQ is the lighter question shape used in flashcard sets: no explanation.
type MCQ struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type FlashcardSet struct {
	ID         int64       `json:"id"`
	Topic      string      `json:"topic"`
	Flashcards []Flashcard `json:"flashcards"`
	MCQs       []MCQ       `json:"mcqs"`
}

// AnswerDetail records the outcome of a single answered question.
// QuestionIndex is the position in Quiz.Questions.
type AnswerDetail struct {
	QuestionIndex  int  `json:"questionIndex"`
	SelectedAnswer int  `json:"selectedAnswer"`
	IsCorrect      bool `json:"isCorrect"`
}

type QuizResult struct {
	ID             int64          `json:"id"`
	QuizID         int64          `json:"quizId"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Answers        []AnswerDetail `json:"answers"`
}
