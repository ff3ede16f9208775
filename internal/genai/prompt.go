package genai

import "strings"

// Prompt templates. The wording pins the model to JSON-only output; the
// validator rejects anything that drifts from the declared shape.

const quizPromptTemplate = `Create a comprehensive quiz for UPSC exam preparation on the topic: {topic}
Generate 15 multiple choice questions, returning ONLY the JSON data without any markdown formatting or backticks. The response should be exactly in this format:
{
  "questions": [
    {
      "question": "detailed question text",
      "options": ["option1", "option2", "option3", "option4"],
      "correctAnswer": 0,
      "explanation": "detailed explanation of why this answer is correct"
    }
  ]
}`

const flashcardPromptTemplate = `Create educational content for UPSC exam preparation on the topic: {topic}

Please provide:
1. 10 detailed flashcards with clear front (question) and back (answer) content
2. 5 multiple choice questions with 4 options each

Return ONLY the JSON data without any markdown formatting, backticks or surrounding prose, exactly as a JSON object with this structure:
{
  "flashcards": [
    { "front": "question", "back": "detailed answer" }
  ],
  "mcqs": [
    {
      "question": "question text",
      "options": ["option1", "option2", "option3", "option4"],
      "correctAnswer": 0
    }
  ]
}`

func quizPrompt(topic string) string {
	return strings.ReplaceAll(quizPromptTemplate, "{topic}", topic)
}

func flashcardPrompt(topic string) string {
	return strings.ReplaceAll(flashcardPromptTemplate, "{topic}", topic)
}
