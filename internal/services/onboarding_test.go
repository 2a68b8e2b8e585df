package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wdclabs/ai-office/internal/models"
)

func TestAssessBioLevelZeroEnablesWarmup(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		`{"response_text": "Welcome aboard!", "assessed_level": "Level 0", "reasoning": "No prior experience mentioned"}`,
	}}
	o := NewOnboardingService(gen, 3)

	result, err := o.AssessBio(context.Background(), "I just finished school", "Data Analytics")

	require.NoError(t, err)
	assert.Equal(t, string(models.LevelZero), result.AssessedLevel)
	assert.True(t, result.WarmupMode)
	assert.Equal(t, "Welcome aboard!", result.ResponseText)
}

func TestAssessBioHigherLevelsSkipWarmup(t *testing.T) {
	for _, level := range []string{string(models.LevelOne), string(models.LevelTwo)} {
		gen := &stubGenerator{responses: []string{
			`{"response_text": "Welcome!", "assessed_level": "` + level + `", "reasoning": "Has shipped projects"}`,
		}}
		o := NewOnboardingService(gen, 3)

		result, err := o.AssessBio(context.Background(), "3 years of SQL at an agency", "Data Analytics")

		require.NoError(t, err)
		assert.Equal(t, level, result.AssessedLevel)
		assert.False(t, result.WarmupMode, level)
	}
}

func TestAssessBioUnparseableDefaultsToLevelOne(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		"Hmm, this candidate seems fine to me.",
	}}
	o := NewOnboardingService(gen, 3)

	result, err := o.AssessBio(context.Background(), "bio text", "Software Engineering")

	require.NoError(t, err)
	assert.Equal(t, string(models.LevelOne), result.AssessedLevel)
	assert.False(t, result.WarmupMode)
	assert.NotEmpty(t, result.Reasoning)
}

func TestAssessBioTransportErrorPropagates(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	o := NewOnboardingService(gen, 3)

	_, err := o.AssessBio(context.Background(), "bio text", "Product Design")

	assert.Error(t, err)
}
