package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"vidya/services/quiz"

	"github.com/go-resty/resty/v2"
)

// ErrSheetUnavailable covers transport failures, non-2xx answers and
// non-success statuses from the script endpoint.
var ErrSheetUnavailable = errors.New("sheet backend unavailable")

// envelope is the uniform response of the script endpoint
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the spreadsheet-backed script endpoint that stores
// quizzes, notes and quiz results.
type Client struct {
	http      *resty.Client
	scriptURL string
}

func NewClient(scriptURL string) *Client {
	return &Client{
		http:      resty.New(),
		scriptURL: scriptURL,
	}
}

// get performs one query-string action call and unwraps the envelope
func (c *Client) get(ctx context.Context, action, videoID string) (json.RawMessage, error) {
	var result envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":  action,
			"videoId": videoID,
		}).
		SetResult(&result).
		Get(c.scriptURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSheetUnavailable, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: status %d", ErrSheetUnavailable, resp.StatusCode())
	}
	if result.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrSheetUnavailable, result.Message)
	}
	return result.Data, nil
}

// post sends one JSON payload. The script endpoint only answers CORS
// free when the body is sent as text/plain, so the payload is marshalled
// by hand instead of letting resty set a JSON content type.
func (c *Client) post(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSheetUnavailable, err)
	}

	var result envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain;charset=utf-8").
		SetBody(body).
		SetResult(&result).
		Post(c.scriptURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSheetUnavailable, err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: status %d", ErrSheetUnavailable, resp.StatusCode())
	}
	if result.Status != "success" {
		return fmt.Errorf("%w: %s", ErrSheetUnavailable, result.Message)
	}
	return nil
}

// GetQuiz fetches the stored quiz for a video. A success envelope
// without data means no quiz has been uploaded yet.
func (c *Client) GetQuiz(ctx context.Context, videoID string) ([]quiz.Question, error) {
	data, err := c.get(ctx, "getQuiz", videoID)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []quiz.Question{}, nil
	}
	var questions []quiz.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: malformed quiz data: %v", ErrSheetUnavailable, err)
	}
	return questions, nil
}

// GetNotes fetches the raw note payload for a video. The payload shape
// varies; normalization is the caller's concern.
func (c *Client) GetNotes(ctx context.Context, videoID string) (json.RawMessage, error) {
	return c.get(ctx, "getNotes", videoID)
}

// SaveQuiz stores a question set against a video
func (c *Client) SaveQuiz(ctx context.Context, videoID string, questions []quiz.Question) error {
	return c.post(ctx, map[string]interface{}{
		"type":      "save_quiz",
		"videoId":   videoID,
		"questions": questions,
	})
}

// SaveNote stores note text against a video
func (c *Client) SaveNote(ctx context.Context, videoID, videoTitle, text string) error {
	return c.post(ctx, map[string]interface{}{
		"type":       "note",
		"videoId":    videoID,
		"videoTitle": videoTitle,
		"text":       text,
	})
}

// SaveQuizScore persists a finished regular-mode quiz result
func (c *Client) SaveQuizScore(ctx context.Context, name, uid, videoTitle string, score, total int) error {
	return c.post(ctx, map[string]interface{}{
		"type":       "quiz_result",
		"name":       name,
		"uid":        uid,
		"videoTitle": videoTitle,
		"score":      strconv.Itoa(score),
		"total":      strconv.Itoa(total),
	})
}
