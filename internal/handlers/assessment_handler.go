package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"wdclabs/ai-office/internal/models"
	"wdclabs/ai-office/internal/repositories"
	"wdclabs/ai-office/internal/services"
)

type AssessmentHandler struct {
	assessmentRepo repositories.AssessmentRepository
	docRepo        repositories.DocumentRepository
	onboarding     services.OnboardingService
	worker         services.Worker
}

func NewAssessmentHandler(
	assessmentRepo repositories.AssessmentRepository,
	docRepo repositories.DocumentRepository,
	onboarding services.OnboardingService,
	worker services.Worker,
) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentRepo: assessmentRepo,
		docRepo:        docRepo,
		onboarding:     onboarding,
		worker:         worker,
	}
}

// HandleAssessBio handles POST /assess-bio. Inline bio text is assessed
// synchronously; an uploaded document becomes a queued job whose result is
// fetched via GET /assessment/:id.
func (h *AssessmentHandler) HandleAssessBio(c *fiber.Ctx) error {
	var req models.BioAssessmentRequest

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

	if req.Track == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "track is required",
		})
	}

	if req.BioText == "" && req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Either bio_text or document_id must be provided",
		})
	}

	// Inline text: assess right away.
	if req.BioText != "" {
		result, err := h.onboarding.AssessBio(c.UserContext(), req.BioText, req.Track)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to assess bio",
			})
		}
		return c.JSON(result)
	}

	// Uploaded document: queue a job for the worker.
	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	if _, err := h.docRepo.FindByID(docID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "CV document not found",
		})
	}

	assessment := &models.Assessment{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Track:      req.Track,
		DocumentID: docID,
		Status:     models.StatusQueued,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.assessmentRepo.Create(assessment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create assessment job",
		})
	}

	h.worker.EnqueueJob(assessment.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.AssessmentJobResponse{
		ID:     assessment.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// HandleGetAssessment handles GET /assessment/:id.
func (h *AssessmentHandler) HandleGetAssessment(c *fiber.Ctx) error {
	idParam := c.Params("id")
	assessmentID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid assessment ID format",
		})
	}

	assessment, err := h.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	response := models.AssessmentResultResponse{
		ID:     assessment.ID.String(),
		Status: string(assessment.Status),
	}

	if assessment.Status == models.StatusCompleted {
		result := &models.BioAssessmentResponse{}
		if assessment.ResponseText != nil {
			result.ResponseText = *assessment.ResponseText
		}
		if assessment.AssessedLevel != nil {
			result.AssessedLevel = *assessment.AssessedLevel
		}
		if assessment.Reasoning != nil {
			result.Reasoning = *assessment.Reasoning
		}
		if assessment.WarmupMode != nil {
			result.WarmupMode = *assessment.WarmupMode
		}
		response.Result = result
	}

	if assessment.Status == models.StatusFailed && assessment.ErrorMessage != "" {
		response.ErrorMessage = assessment.ErrorMessage
	}

	return c.JSON(response)
}
