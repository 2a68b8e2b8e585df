package services

import (
	"context"
	"fmt"

	"wdclabs/ai-office/internal/models"
)

// CoachService is Kemi, the Career Coach.
type CoachService interface {
	TranslateToCVBullet(ctx context.Context, taskTitle, taskDescription, accomplishment string) (*models.PortfolioBulletResponse, error)
	ProvideSoftSkillsFeedback(ctx context.Context, interactions []models.InteractionRecord) (string, error)
	ConductMockInterview(ctx context.Context, interviewType string, questionNumber int, previousAnswer string) (*MockInterviewResult, error)
	RespondToMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (string, error)
}

type MockInterviewResult struct {
	Evaluation string `json:"evaluation"`
	Question   string `json:"question"`
	Tip        string `json:"tip"`
}

type coachService struct {
	generator  TextGenerator
	prompts    *PromptBuilder
	maxRetries int
}

func NewCoachService(generator TextGenerator, maxRetries int) CoachService {
	return &coachService{
		generator:  generator,
		prompts:    NewPromptBuilder(),
		maxRetries: maxRetries,
	}
}

// TranslateToCVBullet implements CoachService. Informational output: a parse
// failure falls back to a generic bullet rather than an error.
func (c *coachService) TranslateToCVBullet(ctx context.Context, taskTitle, taskDescription, accomplishment string) (*models.PortfolioBulletResponse, error) {
	prompt := c.prompts.BuildCVBulletPrompt(taskTitle, taskDescription, accomplishment)

	response, err := c.generator.GenerateTextWithRetry(ctx, prompt, 0.5, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CV bullet: %w", err)
	}

	var result models.PortfolioBulletResponse
	if err := DecodeStructured(response, &result); err != nil {
		return &models.PortfolioBulletResponse{
			SkillTag:    "General",
			BulletPoint: fmt.Sprintf("Successfully completed: %s", taskTitle),
		}, nil
	}

	return &result, nil
}

// ProvideSoftSkillsFeedback implements CoachService. Only the last 10
// interactions are considered.
func (c *coachService) ProvideSoftSkillsFeedback(ctx context.Context, interactions []models.InteractionRecord) (string, error) {
	if len(interactions) > 10 {
		interactions = interactions[len(interactions)-10:]
	}

	prompt := c.prompts.BuildSoftSkillsPrompt(interactions)

	response, err := c.generator.GenerateTextWithRetry(ctx, prompt, 0.7, c.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate soft skills feedback: %w", err)
	}

	return response, nil
}

// ConductMockInterview implements CoachService.
func (c *coachService) ConductMockInterview(ctx context.Context, interviewType string, questionNumber int, previousAnswer string) (*MockInterviewResult, error) {
	prompt := c.prompts.BuildMockInterviewPrompt(interviewType, questionNumber, previousAnswer)

	response, err := c.generator.GenerateTextWithRetry(ctx, prompt, 0.7, c.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate interview question: %w", err)
	}

	var result MockInterviewResult
	if err := DecodeStructured(response, &result); err != nil {
		return &MockInterviewResult{
			Question: "Tell me about a time you faced a challenging deadline.",
			Tip:      "Use the STAR method: Situation, Task, Action, Result",
		}, nil
	}

	return &result, nil
}

// RespondToMessage implements CoachService.
func (c *coachService) RespondToMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (string, error) {
	prompt := c.prompts.BuildKemiChatPrompt(message, chatCtx, history)

	response, err := c.generator.GenerateTextWithRetry(ctx, prompt, 0.7, c.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	return response, nil
}
