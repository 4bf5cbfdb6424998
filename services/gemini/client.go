package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrNotConfigured is returned when no API key has been provided
	ErrNotConfigured = errors.New("AI service is not configured: missing API key")
	// ErrEmptyResponse is returned when the API answers without any candidate text
	ErrEmptyResponse = errors.New("AI returned an empty response")
)

// Part is one element of a generation request: either plain text or an
// inline binary payload with its media type.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries base64 encoded binary content (image or PDF)
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Text builds a text part
func Text(s string) Part {
	return Part{Text: s}
}

// Inline builds an inline binary part from already base64 encoded data
func Inline(mimeType, base64Data string) Part {
	return Part{InlineData: &InlineData{MimeType: mimeType, Data: base64Data}}
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client is a single-key Gemini REST client. No streaming and no server
// side conversation state: multi-turn context is embedded in the prompt
// by the caller per request.
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
	model   string
}

// NewClient builds a client against the given API base URL. An empty
// apiKey yields a client whose calls fail with ErrNotConfigured.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		http:    resty.New(),
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

// Configured reports whether an API key is present
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Generate performs one generateContent call with the given role-tagged
// parts and returns the generated text of the first candidate.
func (c *Client) Generate(ctx context.Context, parts ...Part) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body := generateRequest{
		Contents: []requestContent{{Role: "user", Parts: parts}},
	}

	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model))
	if err != nil {
		return "", fmt.Errorf("AI request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("AI request rejected (%d): %s", resp.StatusCode(), result.Error.Message)
		}
		return "", fmt.Errorf("AI request rejected with status %d", resp.StatusCode())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
