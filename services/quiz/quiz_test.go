package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validQuizJSON = `[
	{"question": "Q1", "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d", "correct": "A"},
	{"question": "Q2", "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d", "correct": "B"},
	{"question": "Q3", "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d", "correct": "C"},
	{"question": "Q4", "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d", "correct": "D"},
	{"question": "Q5", "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d", "correct": "A"}
]`

func TestParseFencedQuiz(t *testing.T) {
	questions, err := Parse("```json\n" + validQuizJSON + "\n```")
	require.NoError(t, err)
	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.Contains(t, []string{"A", "B", "C", "D"}, q.Correct)
	}
}

func TestParseBareQuiz(t *testing.T) {
	questions, err := Parse(validQuizJSON)
	require.NoError(t, err)
	assert.Len(t, questions, 5)
}

func TestParseUntaggedFences(t *testing.T) {
	questions, err := Parse("```\n" + validQuizJSON + "\n```")
	require.NoError(t, err)
	assert.Len(t, questions, 5)
}

func TestParseNotJSON(t *testing.T) {
	_, err := Parse("Sorry, I cannot create a quiz about that topic.")
	assert.ErrorIs(t, err, ErrInvalidAIResponse)
}

func TestParseEmptyArray(t *testing.T) {
	_, err := Parse("[]")
	assert.ErrorIs(t, err, ErrInvalidAIResponse)
}

func TestParseBadCorrectLetter(t *testing.T) {
	_, err := Parse(`[{"question": "Q", "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d", "correct": "E"}]`)
	assert.ErrorIs(t, err, ErrInvalidAIResponse)
}

func TestParseMissingOption(t *testing.T) {
	_, err := Parse(`[{"question": "Q", "optionA": "a", "optionB": "b", "correct": "A"}]`)
	assert.ErrorIs(t, err, ErrInvalidAIResponse)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "[1]", StripFences("```json\n[1]\n```"))
	assert.Equal(t, "[1]", StripFences("```\n[1]\n```"))
	assert.Equal(t, "plain", StripFences("plain"))
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 5, ClampCount(0), "unset count falls back to the default")
	assert.Equal(t, 5, ClampCount(-3))
	assert.Equal(t, 1, ClampCount(1))
	assert.Equal(t, 12, ClampCount(12))
	assert.Equal(t, 20, ClampCount(20))
	assert.Equal(t, 20, ClampCount(50), "oversized requests are capped")
}

func TestValidateQuestionsManualSet(t *testing.T) {
	good := []Question{{Question: "Q", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Correct: "D"}}
	assert.NoError(t, ValidateQuestions(good))

	assert.Error(t, ValidateQuestions(nil))

	bad := []Question{{Question: "Q", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Correct: "X"}}
	assert.Error(t, ValidateQuestions(bad))
}
