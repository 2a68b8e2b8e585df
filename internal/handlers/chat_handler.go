package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"wdclabs/ai-office/internal/models"
	"wdclabs/ai-office/internal/repositories"
	"wdclabs/ai-office/internal/services"
)

type ChatHandler struct {
	router          services.Router
	intent          services.IntentClassifier
	interactionRepo repositories.InteractionRepository
}

func NewChatHandler(
	router services.Router,
	intent services.IntentClassifier,
	interactionRepo repositories.InteractionRepository,
) *ChatHandler {
	return &ChatHandler{
		router:          router,
		intent:          intent,
		interactionRepo: interactionRepo,
	}
}

// HandleChat handles POST /chat. The orchestrator picks the agent from the
// message and context, the agent answers, and the exchange is logged for
// later soft-skills coaching.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_id is required",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	response, err := h.router.RouteMessage(c.UserContext(), req.Message, req.Context, req.ChatHistory)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate response",
		})
	}

	method := ""
	if m, ok := response.Metadata["resolution_method"].(models.ResolutionMethod); ok {
		method = string(m)
	}

	interaction := &models.Interaction{
		UserID:        req.UserID,
		Agent:         string(response.Agent),
		Method:        method,
		UserMessage:   req.Message,
		AgentResponse: response.Message,
	}
	if err := h.interactionRepo.Create(interaction); err != nil {
		// Losing the log entry must not fail the chat.
		log.Printf("⚠️  Failed to log interaction: %v\n", err)
	}

	return c.JSON(response)
}

// HandleClassifyIntent handles POST /classify-intent: the single-shot
// classification entry point.
func (h *ChatHandler) HandleClassifyIntent(c *fiber.Ctx) error {
	var req struct {
		Message string `json:"message"`
	}

	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	agent := h.intent.Classify(c.UserContext(), req.Message)

	return c.JSON(fiber.Map{
		"agent": agent,
	})
}
