package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewSubmissionDecodesResult(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		`{"feedback": "Clean joins, good naming", "passed": true, "score": 88, "improvement_points": []}`,
	}}
	r := NewReviewerService(gen, 3)

	result, err := r.ReviewSubmission(context.Background(),
		"Sales dashboard", "Build the Q3 dashboard", "SELECT ...", "")

	require.NoError(t, err)
	assert.True(t, result.Passed)
	require.NotNil(t, result.Score)
	assert.Equal(t, 88, *result.Score)
	assert.Equal(t, "Clean joins, good naming", result.Feedback)
}

func TestReviewSubmissionUnparseableFailsClosed(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		"This looks great, I'd say it passes with flying colors!",
	}}
	r := NewReviewerService(gen, 3)

	result, err := r.ReviewSubmission(context.Background(),
		"Sales dashboard", "Build the Q3 dashboard", "SELECT ...", "")

	require.NoError(t, err)
	// A submission is never approved on an unparseable review.
	assert.False(t, result.Passed)
	require.NotNil(t, result.Score)
	assert.Equal(t, 0, *result.Score)
	assert.NotEmpty(t, result.ImprovementPoints)
	assert.Equal(t, "This looks great, I'd say it passes with flying colors!", result.Feedback)
}

func TestReviewSubmissionMissingScoreBackfilled(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		`{"feedback": "Acceptable", "passed": true, "improvement_points": []}`,
	}}
	r := NewReviewerService(gen, 3)

	result, err := r.ReviewSubmission(context.Background(),
		"Task", "Brief", "content", "")

	require.NoError(t, err)
	require.NotNil(t, result.Score)
	assert.Equal(t, 50, *result.Score)
}

func TestReviewSubmissionFailedWithoutPointsGetsDefault(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		`{"feedback": "Not good enough", "passed": false, "score": 30}`,
	}}
	r := NewReviewerService(gen, 3)

	result, err := r.ReviewSubmission(context.Background(),
		"Task", "Brief", "content", "")

	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.NotEmpty(t, result.ImprovementPoints)
}

func TestReviewSubmissionTransportErrorPropagates(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection reset")}
	r := NewReviewerService(gen, 3)

	_, err := r.ReviewSubmission(context.Background(), "Task", "Brief", "content", "")

	assert.Error(t, err)
}

func TestInterrogateSubmissionReturnsQuestions(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		"1. Why a LEFT JOIN here?\n2. What happens with NULL customer IDs?",
	}}
	r := NewReviewerService(gen, 3)

	questions, err := r.InterrogateSubmission(context.Background(),
		"SELECT ...", "I joined orders to customers")

	require.NoError(t, err)
	assert.Contains(t, questions, "LEFT JOIN")
}
