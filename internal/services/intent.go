package services

import (
	"context"
	"log"

	"wdclabs/ai-office/internal/models"
)

// IntentClassifier is the single-shot classification entry point used by
// callers that only need an agent identity, not a routed response.
type IntentClassifier interface {
	Classify(ctx context.Context, message string) models.AgentName
}

type intentClassifier struct {
	generator TextGenerator
	prompts   *PromptBuilder
}

func NewIntentClassifier(generator TextGenerator) IntentClassifier {
	return &intentClassifier{
		generator: generator,
		prompts:   NewPromptBuilder(),
	}
}

// intentAgents maps the classifier protocol's intent labels to agents.
var intentAgents = map[string]models.AgentName{
	"hr_onboarding":     models.AgentTolu,
	"project_manager":   models.AgentEmem,
	"supervisor":        models.AgentSola,
	"career_strategist": models.AgentKemi,
}

type intentAnswer struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// Classify implements IntentClassifier. One model call; any failure falls
// back to keyword scoring so the caller always gets an agent. The keyword
// default (Sola) is the single canonical default shared with the router.
func (ic *intentClassifier) Classify(ctx context.Context, message string) models.AgentName {
	prompt := ic.prompts.BuildIntentPrompt(message)

	response, err := ic.generator.GenerateText(ctx, prompt, 0.0)
	if err != nil {
		log.Printf("⚠️  Intent classification failed, using fallback: %v\n", err)
		return scoreKeywords(message)
	}

	var answer intentAnswer
	if err := DecodeStructured(response, &answer); err != nil {
		return scoreKeywords(message)
	}

	if agent, ok := intentAgents[answer.Intent]; ok {
		return agent
	}

	return scoreKeywords(message)
}
