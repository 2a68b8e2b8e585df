package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"wdclabs/ai-office/internal/models"
)

func TestClassifyIntentKnownLabels(t *testing.T) {
	cases := []struct {
		intent string
		want   models.AgentName
	}{
		{"hr_onboarding", models.AgentTolu},
		{"project_manager", models.AgentEmem},
		{"supervisor", models.AgentSola},
		{"career_strategist", models.AgentKemi},
	}

	for _, tc := range cases {
		gen := &stubGenerator{responses: []string{
			`{"intent": "` + tc.intent + `", "confidence": 0.9, "reason": "matched"}`,
		}}
		ic := NewIntentClassifier(gen)

		agent := ic.Classify(context.Background(), "some message")

		assert.Equal(t, tc.want, agent, tc.intent)
		assert.Equal(t, 1, gen.calls, tc.intent)
	}
}

func TestClassifyIntentFencedAnswer(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		"```json\n{\"intent\": \"career_strategist\", \"confidence\": 0.8, \"reason\": \"emotional\"}\n```",
	}}
	ic := NewIntentClassifier(gen)

	agent := ic.Classify(context.Background(), "I feel like a fraud")

	assert.Equal(t, models.AgentKemi, agent)
}

func TestClassifyIntentModelErrorFallsBackToKeywords(t *testing.T) {
	gen := &stubGenerator{err: errors.New("unavailable")}
	ic := NewIntentClassifier(gen)

	agent := ic.Classify(context.Background(), "when is my deadline for the client task?")

	assert.Equal(t, models.AgentEmem, agent)
	// Exactly one attempt, no retry.
	assert.Equal(t, 1, gen.calls)
}

func TestClassifyIntentUnknownLabelFallsBack(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		`{"intent": "receptionist", "confidence": 0.4, "reason": "unsure"}`,
	}}
	ic := NewIntentClassifier(gen)

	agent := ic.Classify(context.Background(), "ok")

	assert.Equal(t, models.AgentSola, agent)
}

func TestClassifyIntentGarbageAnswerFallsBack(t *testing.T) {
	gen := &stubGenerator{responses: []string{"I would route this to the PM, probably."}}
	ic := NewIntentClassifier(gen)

	agent := ic.Classify(context.Background(), "I'm stressed about my resume")

	assert.Equal(t, models.AgentKemi, agent)
}
