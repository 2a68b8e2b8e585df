package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wdclabs/ai-office/internal/models"
)

func TestTranslateToCVBulletDecodesResult(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		`{"skill_tag": "Data Cleaning", "bullet_point": "Standardized 3 messy client datasets into a reusable pipeline"}`,
	}}
	c := NewCoachService(gen, 3)

	result, err := c.TranslateToCVBullet(context.Background(),
		"Clean the sales data", "Remove duplicates and fix types", "I cleaned everything")

	require.NoError(t, err)
	assert.Equal(t, "Data Cleaning", result.SkillTag)
	assert.Contains(t, result.BulletPoint, "Standardized")
}

func TestTranslateToCVBulletUnparseableFallsBack(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Great job on this task!"}}
	c := NewCoachService(gen, 3)

	result, err := c.TranslateToCVBullet(context.Background(),
		"Clean the sales data", "Remove duplicates", "done")

	require.NoError(t, err)
	assert.Equal(t, "General", result.SkillTag)
	assert.Equal(t, "Successfully completed: Clean the sales data", result.BulletPoint)
}

func TestProvideSoftSkillsFeedbackUsesLastTenInteractions(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Your tone has improved over time."}}
	c := NewCoachService(gen, 3)

	var interactions []models.InteractionRecord
	for i := 1; i <= 12; i++ {
		interactions = append(interactions, models.InteractionRecord{
			UserMessage:   fmt.Sprintf("user message number %d", i),
			AgentResponse: fmt.Sprintf("agent reply number %d", i),
		})
	}

	feedback, err := c.ProvideSoftSkillsFeedback(context.Background(), interactions)

	require.NoError(t, err)
	assert.Equal(t, "Your tone has improved over time.", feedback)

	prompt := gen.lastPrompt()
	assert.NotContains(t, prompt, "user message number 1\n")
	assert.NotContains(t, prompt, "user message number 2")
	assert.Contains(t, prompt, "user message number 3")
	assert.Contains(t, prompt, "user message number 12")
}

func TestConductMockInterviewDecodesResult(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		`{"evaluation": "Good structure", "question": "Tell me about a conflict you resolved.", "tip": "Name the outcome"}`,
	}}
	c := NewCoachService(gen, 3)

	result, err := c.ConductMockInterview(context.Background(), "behavioral", 2, "I once...")

	require.NoError(t, err)
	assert.Equal(t, "Good structure", result.Evaluation)
	assert.Contains(t, result.Question, "conflict")
}

func TestConductMockInterviewUnparseableFallsBack(t *testing.T) {
	gen := &stubGenerator{responses: []string{"Let's begin the interview, shall we?"}}
	c := NewCoachService(gen, 3)

	result, err := c.ConductMockInterview(context.Background(), "behavioral", 1, "")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Question)
	assert.Contains(t, result.Tip, "STAR")
}
