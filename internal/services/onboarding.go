package services

import (
	"context"
	"fmt"

	"wdclabs/ai-office/internal/models"
)

// OnboardingService is Tolu, the Onboarding Officer.
type OnboardingService interface {
	AssessBio(ctx context.Context, bioText, track string) (*models.BioAssessmentResponse, error)
	RespondToMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (string, error)
}

type onboardingService struct {
	generator  TextGenerator
	prompts    *PromptBuilder
	maxRetries int
}

func NewOnboardingService(generator TextGenerator, maxRetries int) OnboardingService {
	return &onboardingService{
		generator:  generator,
		prompts:    NewPromptBuilder(),
		maxRetries: maxRetries,
	}
}

type bioAssessment struct {
	ResponseText  string `json:"response_text"`
	AssessedLevel string `json:"assessed_level"`
	Reasoning     string `json:"reasoning"`
}

// AssessBio implements OnboardingService. Assigns Level 0/1/2 from the
// intern's bio. An unparseable assessment defaults to Level 1 rather than
// blocking intake.
func (o *onboardingService) AssessBio(ctx context.Context, bioText, track string) (*models.BioAssessmentResponse, error) {
	prompt := o.prompts.BuildBioAssessmentPrompt(bioText, track)

	response, err := o.generator.GenerateTextWithRetry(ctx, prompt, 0.3, o.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate bio assessment: %w", err)
	}

	var result bioAssessment
	if err := DecodeStructured(response, &result); err != nil {
		return &models.BioAssessmentResponse{
			ResponseText:  response,
			AssessedLevel: string(models.LevelOne),
			Reasoning:     "Unable to reliably parse assessment; defaulting to Level 1.",
			WarmupMode:    false,
		}, nil
	}

	return &models.BioAssessmentResponse{
		ResponseText:  result.ResponseText,
		AssessedLevel: result.AssessedLevel,
		Reasoning:     result.Reasoning,
		// Warmup mode only for Level 0
		WarmupMode: result.AssessedLevel == string(models.LevelZero),
	}, nil
}

// RespondToMessage implements OnboardingService.
func (o *onboardingService) RespondToMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (string, error) {
	prompt := o.prompts.BuildToluChatPrompt(message, chatCtx, history)

	response, err := o.generator.GenerateTextWithRetry(ctx, prompt, 0.7, o.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	return response, nil
}
