package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidAIResponse is the single failure kind for malformed or empty
// generation output. The caller decides whether to re-prompt.
var ErrInvalidAIResponse = errors.New("AI response is not a valid quiz")

// Question is one multiple-choice question. The same shape is stored in
// the sheet backend and requested from the AI generator.
type Question struct {
	Question string `json:"question" validate:"required"`
	OptionA  string `json:"optionA" validate:"required"`
	OptionB  string `json:"optionB" validate:"required"`
	OptionC  string `json:"optionC" validate:"required"`
	OptionD  string `json:"optionD" validate:"required"`
	Correct  string `json:"correct" validate:"required,oneof=A B C D"`
}

var validate = validator.New()

// ValidateQuestions checks a manually built or AI generated question set
func ValidateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidAIResponse)
	}
	for i, q := range questions {
		if err := validate.Struct(q); err != nil {
			return fmt.Errorf("%w: question %d is malformed", ErrInvalidAIResponse, i+1)
		}
	}
	return nil
}

// ClampCount bounds a requested question count to the supported range;
// zero or negative requests fall back to the default set size.
func ClampCount(n int) int {
	if n < 1 {
		return 5
	}
	if n > 20 {
		return 20
	}
	return n
}

// StripFences removes markdown code block markers, optionally tagged
// json, that models wrap around their output despite instructions.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Parse coerces raw generation output into a validated question set
func Parse(text string) ([]Question, error) {
	cleaned := StripFences(text)

	var questions []Question
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return questions, nil
}
