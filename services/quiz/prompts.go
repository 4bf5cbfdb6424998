package quiz

import "fmt"

const jsonFormatInstruction = `Return strictly a JSON array of objects.
Format: [{ "question": "string", "optionA": "string", "optionB": "string", "optionC": "string", "optionD": "string", "correct": "A" (or B/C/D) }]
Do not include markdown formatting like ` + "```json" + `. Just the raw JSON.`

// TopicPrompt builds the instruction for practice quiz generation on a
// video topic with a requested count and difficulty.
func TopicPrompt(topic string, count int, difficulty string) string {
	return fmt.Sprintf(`Create %d multiple-choice questions (MCQs) based on the topic: "%s". Difficulty: %s.
%s`, count, topic, difficulty, jsonFormatInstruction)
}

// DocumentPrompt builds the instruction sent alongside an inline
// image or PDF payload.
func DocumentPrompt(count int) string {
	return fmt.Sprintf(`Analyze this document and create %d MCQs.
%s`, count, jsonFormatInstruction)
}

// HintPrompt asks for a nudge on a question without giving it away
func HintPrompt(question string) string {
	return fmt.Sprintf(`Give a short hint for this question: "%s". Do not reveal the answer directly.`, question)
}

// FeedbackPrompt asks for short encouragement after a finished quiz
func FeedbackPrompt(score, total int, videoTitle string) string {
	return fmt.Sprintf(`I scored %d/%d on a quiz about "%s". Give me short encouraging feedback for a student.`, score, total, videoTitle)
}
