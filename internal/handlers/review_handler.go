package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"wdclabs/ai-office/internal/models"
	"wdclabs/ai-office/internal/services"
)

type ReviewHandler struct {
	router   services.Router
	reviewer services.ReviewerService
}

func NewReviewHandler(router services.Router, reviewer services.ReviewerService) *ReviewHandler {
	return &ReviewHandler{
		router:   router,
		reviewer: reviewer,
	}
}

// HandleReviewSubmission handles POST /review-submission. Sola reviews the
// work; when it passes, Kemi's portfolio bullet is attached.
func (h *ReviewHandler) HandleReviewSubmission(c *fiber.Ctx) error {
	var req models.SubmissionReviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.TaskTitle == "" || req.TaskBrief == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "task_title and task_brief are required",
		})
	}

	submissionContent := req.FileContent
	if submissionContent == "" {
		if req.FileURL == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Either file_content or file_url must be provided",
			})
		}
		submissionContent = fmt.Sprintf("[File submitted: %s]", req.FileURL)
	}

	review, bullet, err := h.router.ReviewSubmissionWithPortfolio(
		c.UserContext(), req.TaskTitle, req.TaskBrief, submissionContent, req.ClientConstraints,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to review submission",
		})
	}

	score := 0
	if review.Score != nil {
		score = *review.Score
	}

	return c.JSON(models.SubmissionReviewResponse{
		Agent:             models.AgentSola,
		Feedback:          review.Feedback,
		Passed:            review.Passed,
		Score:             score,
		ImprovementPoints: review.ImprovementPoints,
		PortfolioBullet:   bullet,
	})
}

// HandleInterrogateSubmission handles POST /interrogate-submission: Sola's
// probing questions about the intern's stated approach.
func (h *ReviewHandler) HandleInterrogateSubmission(c *fiber.Ctx) error {
	var req models.InterrogationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.SubmissionContent == "" || req.Approach == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "submission_content and approach are required",
		})
	}

	questions, err := h.reviewer.InterrogateSubmission(c.UserContext(), req.SubmissionContent, req.Approach)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate interrogation questions",
		})
	}

	return c.JSON(fiber.Map{
		"agent":     models.AgentSola,
		"questions": questions,
	})
}
