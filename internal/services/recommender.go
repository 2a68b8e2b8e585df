package services

import (
	"context"
	"fmt"
	"strings"

	"wdclabs/ai-office/internal/models"
)

// RecommenderService writes formal recommendation letters for interns who
// completed the program.
type RecommenderService interface {
	GenerateLetter(ctx context.Context, cvText string, durationWeeks int, track, performanceSummary string) (*models.RecommendationResponse, error)
}

type recommenderService struct {
	generator  TextGenerator
	prompts    *PromptBuilder
	maxRetries int
}

func NewRecommenderService(generator TextGenerator, maxRetries int) RecommenderService {
	return &recommenderService{
		generator:  generator,
		prompts:    NewPromptBuilder(),
		maxRetries: maxRetries,
	}
}

// GenerateLetter implements RecommenderService. The program runs in 12-week
// and 24-week cohorts; anything else is labelled by its week count.
func (r *recommenderService) GenerateLetter(ctx context.Context, cvText string, durationWeeks int, track, performanceSummary string) (*models.RecommendationResponse, error) {
	if durationWeeks <= 0 {
		durationWeeks = 12
	}

	prompt := r.prompts.BuildRecommendationPrompt(
		cvText, DurationLabel(durationWeeks), track, performanceSummary,
	)

	response, err := r.generator.GenerateTextWithRetry(ctx, prompt, 0.5, r.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendation letter: %w", err)
	}

	return &models.RecommendationResponse{
		LetterText:    strings.TrimSpace(response),
		DurationWeeks: durationWeeks,
		Tone:          "formal",
	}, nil
}

func DurationLabel(durationWeeks int) string {
	switch durationWeeks {
	case 12:
		return "12-week internship"
	case 24:
		return "24-week internship"
	default:
		return fmt.Sprintf("%d-week internship", durationWeeks)
	}
}
