package notes

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrUnparseableNote marks payloads whose shape is genuinely unknown, so
// callers can tell "no note" apart from "unreadable note".
var ErrUnparseableNote = errors.New("note payload has an unrecognized shape")

// Note is the normalized form of a sheet note response: a displayable
// text blob, flagged when it is really a reference to an external
// document rather than inline markdown.
type Note struct {
	Content    string `json:"content"`
	IsDocument bool   `json:"is_document"`
}

// envelope keys tried in priority order on object payloads
var stringKeys = []string{"content", "text", "note"}
var nestedKeys = []string{"data", "result"}

// Normalize reduces a note payload of unknown shape (plain string, JSON
// string, array, or any of the known object envelopes) to a Note.
func Normalize(raw json.RawMessage) (Note, error) {
	text, err := extract(raw)
	if err != nil {
		return Note{}, err
	}
	return Note{Content: text, IsDocument: IsDocumentURL(text)}, nil
}

func extract(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", ErrUnparseableNote
		}
		return extractString(s), nil

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return "", ErrUnparseableNote
		}
		if len(items) == 0 {
			return "", nil
		}
		return extract(items[0])

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return "", ErrUnparseableNote
		}
		for _, key := range stringKeys {
			if v, ok := obj[key]; ok {
				var s string
				if err := json.Unmarshal(v, &s); err == nil {
					return s, nil
				}
			}
		}
		for _, key := range nestedKeys {
			if v, ok := obj[key]; ok {
				return extract(v)
			}
		}
		return "", ErrUnparseableNote
	}

	// numbers, booleans and anything else are not note content
	return "", ErrUnparseableNote
}

// extractString re-parses strings that themselves look like JSON. When
// the embedded value does not normalize cleanly the original string is
// kept verbatim.
func extractString(s string) string {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if text, err := extract(json.RawMessage(trimmed)); err == nil {
			return text
		}
	}
	return s
}

// IsDocumentURL reports whether normalized note content is a reference
// to an external document (PDF viewer route) instead of inline markdown.
func IsDocumentURL(s string) bool {
	if s == "" {
		return false
	}
	return strings.HasPrefix(s, "http") ||
		strings.Contains(s, "drive.google.com") ||
		strings.HasSuffix(s, ".pdf")
}
