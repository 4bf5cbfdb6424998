package sheet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"vidya/services/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuiz(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getQuiz", r.URL.Query().Get("action"))
		assert.Equal(t, "v1", r.URL.Query().Get("videoId"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status": "success", "data": [
			{"question": "Q", "optionA": "a", "optionB": "b", "optionC": "c", "optionD": "d", "correct": "A"}
		]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	questions, err := client.GetQuiz(context.Background(), "v1")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "A", questions[0].Correct)
}

func TestGetNotesReturnsRawPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getNotes", r.URL.Query().Get("action"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status": "success", "data": "## Hello"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	raw, err := client.GetNotes(context.Background(), "v1")
	require.NoError(t, err)
	assert.JSONEq(t, `"## Hello"`, string(raw))
}

func TestGetQuizWithoutData(t *testing.T) {
	for name, payload := range map[string]string{
		"absent": `{"status": "success"}`,
		"null":   `{"status": "success", "data": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				io.WriteString(w, payload)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			questions, err := client.GetQuiz(context.Background(), "v1")
			require.NoError(t, err)
			assert.Empty(t, questions)
		})
	}
}

func TestNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status": "error", "message": "sheet not found"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetQuiz(context.Background(), "v1")
	assert.ErrorIs(t, err, ErrSheetUnavailable)
}

func TestHTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetNotes(context.Background(), "v1")
	assert.ErrorIs(t, err, ErrSheetUnavailable)
}

func TestUnreachableBackend(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.GetQuiz(context.Background(), "v1")
	assert.ErrorIs(t, err, ErrSheetUnavailable)
}

func TestSaveQuizPostsPlainText(t *testing.T) {
	var gotContentType string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status": "success"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SaveQuiz(context.Background(), "v1", []quiz.Question{
		{Question: "Q", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", Correct: "A"},
	})
	require.NoError(t, err)

	// The script endpoint only accepts preflight-free requests
	assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
	assert.Equal(t, "save_quiz", gotBody["type"])
	assert.Equal(t, "v1", gotBody["videoId"])
}

func TestSaveNote(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status": "success"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SaveNote(context.Background(), "v1", "Algebra Basics", "## Notes\ntext")
	require.NoError(t, err)

	assert.Equal(t, "note", gotBody["type"])
	assert.Equal(t, "Algebra Basics", gotBody["videoTitle"])
	assert.Equal(t, "## Notes\ntext", gotBody["text"])
}

func TestSaveQuizScore(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status": "success"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SaveQuizScore(context.Background(), "Student", "u7", "Algebra Basics", 4, 5)
	require.NoError(t, err)

	assert.Equal(t, "quiz_result", gotBody["type"])
	assert.Equal(t, "u7", gotBody["uid"])
	assert.Equal(t, "4", gotBody["score"])
	assert.Equal(t, "5", gotBody["total"])
}
