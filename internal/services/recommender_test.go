package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLetterTrimsAndLabels(t *testing.T) {
	gen := &stubGenerator{responses: []string{"\n\nTo whom it may concern...\n"}}
	r := NewRecommenderService(gen, 3)

	letter, err := r.GenerateLetter(context.Background(),
		"CV text here", 24, "Data Analytics", "Consistently strong")

	require.NoError(t, err)
	assert.Equal(t, "To whom it may concern...", letter.LetterText)
	assert.Equal(t, 24, letter.DurationWeeks)
	assert.Equal(t, "formal", letter.Tone)
	assert.Contains(t, gen.lastPrompt(), "24-week internship")
}

func TestGenerateLetterDefaultsToTwelveWeeks(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Letter."}}
	r := NewRecommenderService(gen, 3)

	letter, err := r.GenerateLetter(context.Background(), "CV", 0, "Software Engineering", "")

	require.NoError(t, err)
	assert.Equal(t, 12, letter.DurationWeeks)
	assert.Contains(t, gen.lastPrompt(), "12-week internship")
}

func TestGenerateLetterErrorPropagates(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota")}
	r := NewRecommenderService(gen, 3)

	_, err := r.GenerateLetter(context.Background(), "CV", 12, "Product Design", "")

	assert.Error(t, err)
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "12-week internship", DurationLabel(12))
	assert.Equal(t, "24-week internship", DurationLabel(24))
	assert.Equal(t, "8-week internship", DurationLabel(8))
}
