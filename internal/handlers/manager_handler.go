package handlers

import (
	"github.com/gofiber/fiber/v2"

	"wdclabs/ai-office/internal/models"
	"wdclabs/ai-office/internal/services"
)

type ManagerHandler struct {
	manager services.ManagerService
}

func NewManagerHandler(manager services.ManagerService) *ManagerHandler {
	return &ManagerHandler{
		manager: manager,
	}
}

// HandleAssignTask handles POST /assign-task: Emem's assignment message,
// enriched with reference material from the track archive.
func (h *ManagerHandler) HandleAssignTask(c *fiber.Ctx) error {
	var req models.TaskAssignmentRequest

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

	message, err := h.manager.AssignTask(
		c.UserContext(), req.TaskTitle, req.TaskBrief, req.Deadline, req.Track, req.ClientConstraints,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate task assignment",
		})
	}

	return c.JSON(fiber.Map{
		"agent":   models.AgentEmem,
		"message": message,
	})
}

// HandleGenerateInterruption handles POST /generate-interruption: the
// "Moving Target" mid-task client change.
func (h *ManagerHandler) HandleGenerateInterruption(c *fiber.Ctx) error {
	req := models.InterruptionRequest{
		InterruptionType: "scope_change",
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.CurrentTask == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "current_task is required",
		})
	}

	message, err := h.manager.GenerateClientInterruption(
		c.UserContext(), req.CurrentTask, req.InterruptionType,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate interruption",
		})
	}

	return c.JSON(fiber.Map{
		"agent":   models.AgentEmem,
		"message": message,
	})
}
