package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"

	"wdclabs/ai-office/internal/models"
)

// Router is the orchestrator's decision engine. Resolution is attempted in a
// fixed order: hard deterministic rules, then one AI classification call,
// then keyword scoring. The chain always terminates with one of the five
// known agents; no failure on the classification path ever reaches a caller.
type Router interface {
	ResolveDeterministic(message string, chatCtx models.ChatContext) (models.AgentName, bool)
	ClassifyWithModel(ctx context.Context, message string, chatCtx models.ChatContext) models.ClassificationOutcome
	ClassifyByKeywords(message string) models.AgentName
	DetermineAgent(ctx context.Context, message string, chatCtx models.ChatContext) models.ClassificationOutcome
	RouteMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (*models.ChatResponse, error)
	ReviewSubmissionWithPortfolio(ctx context.Context, taskTitle, taskBrief, submissionContent, clientConstraints string) (*ReviewResult, string, error)
}

type router struct {
	generator   TextGenerator
	prompts     *PromptBuilder
	onboarding  OnboardingService
	manager     ManagerService
	reviewer    ReviewerService
	coach       CoachService
	recommender RecommenderService
}

func NewRouter(
	generator TextGenerator,
	onboarding OnboardingService,
	manager ManagerService,
	reviewer ReviewerService,
	coach CoachService,
	recommender RecommenderService,
) Router {
	return &router{
		generator:   generator,
		prompts:     NewPromptBuilder(),
		onboarding:  onboarding,
		manager:     manager,
		reviewer:    reviewer,
		coach:       coach,
		recommender: recommender,
	}
}

// recommendationPhrases short-circuit routing to the letter writer. Checked
// against the lower-cased message.
var recommendationPhrases = []string{
	"recommendation letter",
	"reference letter",
	"referee",
}

// Keyword vocabularies for the fallback classifier, one per agent category.
// Scored by occurrence count, evaluated in this priority order; the first
// entry doubles as the zero-score default.
var keywordCategories = []struct {
	agent models.AgentName
	words []string
}{
	{models.AgentSola, []string{"code", "bug", "error", "debug", "review", "technical", "broken", "crash", "sql", "function"}},
	{models.AgentEmem, []string{"deadline", "brief", "client", "task", "submit", "deliverable", "priority", "extension", "project"}},
	{models.AgentTolu, []string{"salary", "contract", "hours", "policy", "onboarding", "certificate", "payment", "leave"}},
	{models.AgentKemi, []string{"help", "worried", "scared", "career", "resume", "cv", "interview", "stressed", "overwhelmed", "anxious"}},
}

// ResolveDeterministic implements Router. First match wins:
//  1. submission review always goes to Sola, regardless of content
//  2. first login goes to Tolu
//  3. recommendation-letter requests go to the letter writer
//
// Pure function of its inputs; no model call is made.
func (r *router) ResolveDeterministic(message string, chatCtx models.ChatContext) (models.AgentName, bool) {
	if chatCtx.IsSubmission {
		return models.AgentSola, true
	}

	if chatCtx.IsFirstLogin {
		return models.AgentTolu, true
	}

	lower := strings.ToLower(message)
	for _, phrase := range recommendationPhrases {
		if strings.Contains(lower, phrase) {
			return models.AgentRecommender, true
		}
	}
	// "write me a recommendation for my 12 weeks" and similar.
	if strings.Contains(lower, "recommendation") &&
		(strings.Contains(lower, "week") || strings.Contains(lower, "month")) {
		return models.AgentRecommender, true
	}

	return "", false
}

// ClassifyWithModel implements Router. Exactly one model call, no retry; any
// failure or unrecognized answer falls through to the keyword classifier.
func (r *router) ClassifyWithModel(ctx context.Context, message string, chatCtx models.ChatContext) models.ClassificationOutcome {
	prompt := r.prompts.BuildClassificationPrompt(message, chatCtx)

	response, err := r.generator.GenerateText(ctx, prompt, 0.0)
	if err != nil {
		log.Printf("⚠️  AI routing failed, using fallback: %v\n", err)
		return models.ClassificationOutcome{
			Agent:  r.ClassifyByKeywords(message),
			Method: models.ResolvedKeywords,
		}
	}

	token := titleCaseToken(response)
	if agent, ok := agentTokens[token]; ok {
		return models.ClassificationOutcome{
			Agent:     agent,
			Method:    models.ResolvedAIClassifier,
			RawAnswer: response,
		}
	}

	log.Printf("⚠️  Unrecognized router answer %q, using fallback\n", token)
	return models.ClassificationOutcome{
		Agent:     r.ClassifyByKeywords(message),
		Method:    models.ResolvedKeywords,
		RawAnswer: response,
	}
}

// ClassifyByKeywords implements Router. Occurrence counting so repeated
// signals weigh more; ties and all-zero scores resolve to the category order
// above, with Sola as the safe general handler.
func (r *router) ClassifyByKeywords(message string) models.AgentName {
	return scoreKeywords(message)
}

func scoreKeywords(message string) models.AgentName {
	lower := strings.ToLower(message)

	best := keywordCategories[0].agent
	bestScore := 0

	for _, category := range keywordCategories {
		score := 0
		for _, word := range category.words {
			score += strings.Count(lower, word)
		}
		if score > bestScore {
			best = category.agent
			bestScore = score
		}
	}

	return best
}

// DetermineAgent implements Router: the full resolution chain.
func (r *router) DetermineAgent(ctx context.Context, message string, chatCtx models.ChatContext) models.ClassificationOutcome {
	if agent, ok := r.ResolveDeterministic(message, chatCtx); ok {
		return models.ClassificationOutcome{
			Agent:  agent,
			Method: models.ResolvedDeterministic,
		}
	}

	return r.ClassifyWithModel(ctx, message, chatCtx)
}

// RouteMessage implements Router: resolve, dispatch to the agent's responder,
// and wrap the answer in the response envelope.
func (r *router) RouteMessage(ctx context.Context, message string, chatCtx models.ChatContext, history []models.ConversationTurn) (*models.ChatResponse, error) {
	outcome := r.DetermineAgent(ctx, message, chatCtx)

	var responseText string
	var err error

	switch outcome.Agent {
	case models.AgentTolu:
		responseText, err = r.onboarding.RespondToMessage(ctx, message, chatCtx, history)
	case models.AgentEmem:
		responseText, err = r.manager.RespondToMessage(ctx, message, chatCtx, history)
	case models.AgentSola:
		responseText, err = r.reviewer.RespondToMessage(ctx, message, chatCtx, history)
	case models.AgentKemi:
		responseText, err = r.coach.RespondToMessage(ctx, message, chatCtx, history)
	case models.AgentRecommender:
		var letter *models.RecommendationResponse
		letter, err = r.recommender.GenerateLetter(
			ctx, chatCtx.CVText, durationWeeksFromMessage(message), chatCtx.Track, chatCtx.PerformanceSummary,
		)
		if err == nil {
			responseText = letter.LetterText
		}
	default:
		// Unreachable given the fallback chain, kept as a guard.
		responseText = "I'm not sure how to help with that. Please rephrase your question."
	}

	if err != nil {
		return nil, fmt.Errorf("agent %s failed to respond: %w", outcome.Agent, err)
	}

	return &models.ChatResponse{
		Agent:   outcome.Agent,
		Message: responseText,
		Metadata: map[string]any{
			"context":           chatCtx,
			"resolution_method": outcome.Method,
		},
	}, nil
}

// ReviewSubmissionWithPortfolio implements Router: the compound review
// operation. The CV bullet call is issued only after the review result is
// known, and only when the review passed.
func (r *router) ReviewSubmissionWithPortfolio(ctx context.Context, taskTitle, taskBrief, submissionContent, clientConstraints string) (*ReviewResult, string, error) {
	review, err := r.reviewer.ReviewSubmission(ctx, taskTitle, taskBrief, submissionContent, clientConstraints)
	if err != nil {
		return nil, "", err
	}

	if !review.Passed {
		return review, "", nil
	}

	bullet, err := r.coach.TranslateToCVBullet(ctx, taskTitle, taskBrief, submissionContent)
	if err != nil {
		// The review itself stands; losing the bullet is not a failure.
		log.Printf("⚠️  Failed to generate portfolio bullet: %v\n", err)
		return review, "", nil
	}

	return review, bullet.BulletPoint, nil
}

// titleCaseToken normalizes the model's one-word answer: surrounding
// whitespace and punctuation dropped, first letter upper, rest lower.
func titleCaseToken(answer string) string {
	token := strings.TrimFunc(answer, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	if token == "" {
		return ""
	}

	return strings.ToUpper(token[:1]) + strings.ToLower(token[1:])
}

// durationWeeksFromMessage picks the cohort length a letter request refers
// to. 12 weeks unless the message names the 24-week cohort.
func durationWeeksFromMessage(message string) int {
	if strings.Contains(message, "24") {
		return 24
	}
	return 12
}
