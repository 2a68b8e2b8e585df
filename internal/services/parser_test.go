package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStructuredFencedJSON(t *testing.T) {
	response := "```json\n{\"passed\": true, \"score\": 85, \"feedback\": \"Good\"}\n```"

	var result ReviewResult
	err := DecodeStructured(response, &result)

	require.NoError(t, err)
	assert.True(t, result.Passed)
	require.NotNil(t, result.Score)
	assert.Equal(t, 85, *result.Score)
	assert.Equal(t, "Good", result.Feedback)
}

func TestDecodeStructuredPlainJSON(t *testing.T) {
	var result ReviewResult
	err := DecodeStructured(`{"passed": false, "feedback": "Needs work"}`, &result)

	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, "Needs work", result.Feedback)
}

func TestDecodeStructuredWithSurroundingCommentary(t *testing.T) {
	response := "Sure! Here is the result:\n{\"passed\": true, \"feedback\": \"ok\"}\nLet me know if you need anything else."

	var result ReviewResult
	err := DecodeStructured(response, &result)

	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, "ok", result.Feedback)
}

func TestDecodeStructuredBracesInsideStrings(t *testing.T) {
	response := `{"feedback": "use map[string]int{} here", "passed": true}`

	var result ReviewResult
	err := DecodeStructured(response, &result)

	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, "use map[string]int{} here", result.Feedback)
}

func TestDecodeStructuredEscapedQuotes(t *testing.T) {
	response := `{"feedback": "she said \"done\"", "passed": false}`

	var result ReviewResult
	err := DecodeStructured(response, &result)

	require.NoError(t, err)
	assert.Equal(t, `she said "done"`, result.Feedback)
}

func TestDecodeStructuredNoJSON(t *testing.T) {
	var result ReviewResult
	err := DecodeStructured("I cannot produce JSON right now, sorry.", &result)

	assert.Error(t, err)
}

func TestDecodeStructuredUnterminatedObject(t *testing.T) {
	var result ReviewResult
	err := DecodeStructured(`{"passed": true, "feedback": "truncat`, &result)

	assert.Error(t, err)
}

func TestDecodeStructuredInvalidJSON(t *testing.T) {
	var result ReviewResult
	err := DecodeStructured(`{passed: yes}`, &result)

	assert.Error(t, err)
}

func TestExtractJSONObjectStopsAtBalance(t *testing.T) {
	text := `{"a": {"b": 1}} trailing } garbage }`

	jsonStr, ok := extractJSONObject(text)

	require.True(t, ok)
	assert.Equal(t, `{"a": {"b": 1}}`, jsonStr)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripCodeFences("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripCodeFences(`{"a": 1}`))
}
