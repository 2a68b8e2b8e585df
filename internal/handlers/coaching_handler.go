package handlers

import (
	"github.com/gofiber/fiber/v2"

	"wdclabs/ai-office/internal/models"
	"wdclabs/ai-office/internal/repositories"
	"wdclabs/ai-office/internal/services"
)

type CoachingHandler struct {
	coach           services.CoachService
	interactionRepo repositories.InteractionRepository
}

func NewCoachingHandler(coach services.CoachService, interactionRepo repositories.InteractionRepository) *CoachingHandler {
	return &CoachingHandler{
		coach:           coach,
		interactionRepo: interactionRepo,
	}
}

// HandleTranslateToCV handles POST /translate-to-cv.
func (h *CoachingHandler) HandleTranslateToCV(c *fiber.Ctx) error {
	var req models.PortfolioBulletRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.TaskTitle == "" || req.TaskDescription == "" || req.UserSubmission == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "task_title, task_description and user_submission are required",
		})
	}

	result, err := h.coach.TranslateToCVBullet(
		c.UserContext(), req.TaskTitle, req.TaskDescription, req.UserSubmission,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate CV bullet",
		})
	}

	return c.JSON(result)
}

// HandleSoftSkillsFeedback handles POST /soft-skills-feedback. Interactions
// may be supplied inline, or looked up from the user's logged exchanges.
func (h *CoachingHandler) HandleSoftSkillsFeedback(c *fiber.Ctx) error {
	var req models.SoftSkillsRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	interactions := req.RecentInteractions

	if len(interactions) == 0 && req.UserID != "" {
		logged, err := h.interactionRepo.FindRecentByUser(req.UserID, 10)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load recent interactions",
			})
		}
		// Oldest first, so the coach reads the conversation in order.
		for i := len(logged) - 1; i >= 0; i-- {
			interactions = append(interactions, models.InteractionRecord{
				UserMessage:   logged[i].UserMessage,
				AgentResponse: logged[i].AgentResponse,
			})
		}
	}

	if len(interactions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No interactions available for feedback",
		})
	}

	feedback, err := h.coach.ProvideSoftSkillsFeedback(c.UserContext(), interactions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate soft skills feedback",
		})
	}

	return c.JSON(fiber.Map{
		"agent":    models.AgentKemi,
		"feedback": feedback,
	})
}

// HandleMockInterview handles POST /mock-interview.
func (h *CoachingHandler) HandleMockInterview(c *fiber.Ctx) error {
	req := models.MockInterviewRequest{
		InterviewType:  "behavioral",
		QuestionNumber: 1,
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.InterviewType == "" {
		req.InterviewType = "behavioral"
	}
	if req.QuestionNumber <= 0 {
		req.QuestionNumber = 1
	}

	result, err := h.coach.ConductMockInterview(
		c.UserContext(), req.InterviewType, req.QuestionNumber, req.PreviousAnswer,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate interview question",
		})
	}

	return c.JSON(models.MockInterviewResponse{
		Agent:      models.AgentKemi,
		Evaluation: result.Evaluation,
		Question:   result.Question,
		Tip:        result.Tip,
	})
}
