package services

import (
	"context"
	"fmt"

	"wdclabs/ai-office/internal/models"
)

// ReviewerService is Sola, the Technical Supervisor. Submission reviews gate a
// pass/fail decision, so every parse failure degrades to a rejection.
type ReviewerService interface {
	ReviewSubmission(ctx context.Context, taskTitle, taskBrief, submissionContent, clientConstraints string) (*ReviewResult, error)
	InterrogateSubmission(ctx context.Context, submissionContent, approachUsed string) (string, error)
	RespondToMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (string, error)
}

type ReviewResult struct {
	Feedback          string   `json:"feedback"`
	Passed            bool     `json:"passed"`
	Score             *int     `json:"score"`
	ImprovementPoints []string `json:"improvement_points"`
}

type reviewerService struct {
	generator  TextGenerator
	prompts    *PromptBuilder
	maxRetries int
}

func NewReviewerService(generator TextGenerator, maxRetries int) ReviewerService {
	return &reviewerService{
		generator:  generator,
		prompts:    NewPromptBuilder(),
		maxRetries: maxRetries,
	}
}

// ReviewSubmission implements ReviewerService. A transport failure propagates
// (there is no meaningful default for a review that never happened); an
// unparseable model response degrades to a fail-closed rejection.
func (r *reviewerService) ReviewSubmission(ctx context.Context, taskTitle, taskBrief, submissionContent, clientConstraints string) (*ReviewResult, error) {
	prompt := r.prompts.BuildReviewPrompt(taskTitle, taskBrief, submissionContent, clientConstraints)

	response, err := r.generator.GenerateTextWithRetry(ctx, prompt, 0.3, r.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate review: %w", err)
	}

	var result ReviewResult
	if err := DecodeStructured(response, &result); err != nil {
		return rejectionDefault(response), nil
	}

	if result.Score == nil {
		// Decoded but score omitted: neutral midpoint.
		score := 50
		result.Score = &score
	}

	if !result.Passed && len(result.ImprovementPoints) == 0 {
		result.ImprovementPoints = []string{"Please resubmit with clearer formatting"}
	}

	return &result, nil
}

// rejectionDefault is the fail-closed review returned when the model's answer
// cannot be decoded. A submission is never approved on a parsing hiccup.
func rejectionDefault(rawResponse string) *ReviewResult {
	feedback := rawResponse
	if feedback == "" {
		feedback = "The review could not be completed. Please resubmit your work."
	}

	score := 0
	return &ReviewResult{
		Feedback:          feedback,
		Passed:            false,
		Score:             &score,
		ImprovementPoints: []string{"Please resubmit with clearer formatting"},
	}
}

// InterrogateSubmission implements ReviewerService. The Socratic Defense:
// probing questions that copied work cannot survive.
func (r *reviewerService) InterrogateSubmission(ctx context.Context, submissionContent, approachUsed string) (string, error) {
	prompt := r.prompts.BuildInterrogationPrompt(submissionContent, approachUsed)

	response, err := r.generator.GenerateTextWithRetry(ctx, prompt, 0.7, r.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate interrogation questions: %w", err)
	}

	return response, nil
}

// RespondToMessage implements ReviewerService.
func (r *reviewerService) RespondToMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (string, error) {
	prompt := r.prompts.BuildSolaChatPrompt(message, chatCtx, history)

	response, err := r.generator.GenerateTextWithRetry(ctx, prompt, 0.7, r.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	return response, nil
}
