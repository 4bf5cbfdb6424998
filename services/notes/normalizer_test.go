package notes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlainString(t *testing.T) {
	note, err := Normalize(json.RawMessage(`"## Hello"`))
	require.NoError(t, err)
	assert.Equal(t, "## Hello", note.Content)
	assert.False(t, note.IsDocument)
}

func TestNormalizeIdempotent(t *testing.T) {
	// Normalizing already-normalized plain text returns it unchanged
	first, err := Normalize(json.RawMessage(`"Some plain note text"`))
	require.NoError(t, err)

	encoded, err := json.Marshal(first.Content)
	require.NoError(t, err)

	second, err := Normalize(encoded)
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content)
}

func TestNormalizeEnvelopeKeys(t *testing.T) {
	cases := map[string]string{
		"content": `{"content": "X"}`,
		"text":    `{"text": "X"}`,
		"note":    `{"note": "X"}`,
		"nested":  `{"data": {"content": "X"}}`,
		"result":  `{"result": {"text": "X"}}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			note, err := Normalize(json.RawMessage(payload))
			require.NoError(t, err)
			assert.Equal(t, "X", note.Content)
		})
	}
}

func TestNormalizeKeyPriority(t *testing.T) {
	// content wins over text, text over note
	note, err := Normalize(json.RawMessage(`{"text": "second", "content": "first"}`))
	require.NoError(t, err)
	assert.Equal(t, "first", note.Content)
}

func TestNormalizeSkipsNonStringKey(t *testing.T) {
	// A non-string content value is skipped in favor of the next key
	note, err := Normalize(json.RawMessage(`{"content": 5, "text": "fallback"}`))
	require.NoError(t, err)
	assert.Equal(t, "fallback", note.Content)
}

func TestNormalizeArrayTakesFirstElement(t *testing.T) {
	note, err := Normalize(json.RawMessage(`[{"content": "first"}, {"content": "second"}]`))
	require.NoError(t, err)
	assert.Equal(t, "first", note.Content)
}

func TestNormalizeEmptyInputs(t *testing.T) {
	for name, payload := range map[string]json.RawMessage{
		"nil":         nil,
		"null":        json.RawMessage(`null`),
		"empty array": json.RawMessage(`[]`),
	} {
		t.Run(name, func(t *testing.T) {
			note, err := Normalize(payload)
			require.NoError(t, err)
			assert.Empty(t, note.Content)
		})
	}
}

func TestNormalizeJSONEncodedString(t *testing.T) {
	// A string that itself encodes an envelope is parsed one level down
	note, err := Normalize(json.RawMessage(`"{\"content\": \"inner\"}"`))
	require.NoError(t, err)
	assert.Equal(t, "inner", note.Content)
}

func TestNormalizeJSONLookingStringKeptVerbatim(t *testing.T) {
	// Looks like JSON but is not parseable: kept as-is
	note, err := Normalize(json.RawMessage(`"{not actually json"`))
	require.NoError(t, err)
	assert.Equal(t, "{not actually json", note.Content)
}

func TestNormalizeUnknownShapes(t *testing.T) {
	for name, payload := range map[string]json.RawMessage{
		"number":        json.RawMessage(`42`),
		"boolean":       json.RawMessage(`true`),
		"alien object":  json.RawMessage(`{"foo": "bar"}`),
		"invalid bytes": json.RawMessage(`{{{`),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Normalize(payload)
			assert.ErrorIs(t, err, ErrUnparseableNote)
		})
	}
}

func TestDocumentClassifier(t *testing.T) {
	docNote, err := Normalize(json.RawMessage(`"https://drive.google.com/x.pdf"`))
	require.NoError(t, err)
	assert.True(t, docNote.IsDocument)

	inline, err := Normalize(json.RawMessage(`"## Hello"`))
	require.NoError(t, err)
	assert.False(t, inline.IsDocument)

	assert.True(t, IsDocumentURL("http://example.com/notes"))
	assert.True(t, IsDocumentURL("chapter-2.pdf"))
	assert.True(t, IsDocumentURL("see drive.google.com/file/d/abc"))
	assert.False(t, IsDocumentURL(""))
	assert.False(t, IsDocumentURL("# Markdown heading"))
}
