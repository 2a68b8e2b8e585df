package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"wdclabs/ai-office/internal/models"
	"wdclabs/ai-office/internal/repositories"
	"wdclabs/ai-office/internal/services"
)

type RecommendationHandler struct {
	recommender services.RecommenderService
	docRepo     repositories.DocumentRepository
	cvParser    services.CVParserService
}

func NewRecommendationHandler(
	recommender services.RecommenderService,
	docRepo repositories.DocumentRepository,
	cvParser services.CVParserService,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommender: recommender,
		docRepo:     docRepo,
		cvParser:    cvParser,
	}
}

// HandleRecommendationLetter handles POST /recommendation-letter. The CV can
// be inline text or a previously uploaded document.
func (h *RecommendationHandler) HandleRecommendationLetter(c *fiber.Ctx) error {
	var req models.RecommendationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Track == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "track is required",
		})
	}

	cvText := req.CVText
	if cvText == "" {
		if req.DocumentID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Either cv_text or document_id must be provided",
			})
		}

		docID, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id format",
			})
		}

		doc, err := h.docRepo.FindByID(docID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "CV document not found",
			})
		}

		cvText, err = h.cvParser.ExtractText(doc.FilePath)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to extract CV text",
			})
		}
	}

	letter, err := h.recommender.GenerateLetter(
		c.UserContext(), cvText, req.DurationWeeks, req.Track, req.PerformanceSummary,
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate recommendation letter",
		})
	}

	return c.JSON(letter)
}
