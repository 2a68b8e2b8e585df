package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"wdclabs/ai-office/internal/models"
	"wdclabs/ai-office/internal/repositories"
)

// AssessmentService runs queued bio-assessment jobs: extract the uploaded
// CV's text, have Tolu assess it, persist the verdict.
type AssessmentService interface {
	ProcessAssessment(ctx context.Context, assessmentID uuid.UUID) error
}

type assessmentService struct {
	assessmentRepo repositories.AssessmentRepository
	docRepo        repositories.DocumentRepository
	onboarding     OnboardingService
	cvParser       CVParserService
}

func NewAssessmentService(
	assessmentRepo repositories.AssessmentRepository,
	docRepo repositories.DocumentRepository,
	onboarding OnboardingService,
	cvParser CVParserService,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		docRepo:        docRepo,
		onboarding:     onboarding,
		cvParser:       cvParser,
	}
}

// ProcessAssessment implements AssessmentService.
func (s *assessmentService) ProcessAssessment(ctx context.Context, assessmentID uuid.UUID) error {
	if err := s.assessmentRepo.UpdateStatus(assessmentID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting assessment for job ID: %s\n", assessmentID)

	assessment, err := s.assessmentRepo.FindByID(assessmentID)
	if err != nil {
		s.assessmentRepo.UpdateError(assessmentID, err.Error())
		return fmt.Errorf("failed to get assessment: %w", err)
	}

	doc, err := s.docRepo.FindByID(assessment.DocumentID)
	if err != nil {
		s.assessmentRepo.UpdateError(assessmentID, fmt.Sprintf("CV document not found: %v", err))
		return fmt.Errorf("failed to get CV document: %w", err)
	}

	log.Println("📄 Extracting CV text...")
	bioText, err := s.cvParser.ExtractText(doc.FilePath)
	if err != nil {
		s.assessmentRepo.UpdateError(assessmentID, fmt.Sprintf("Failed to parse CV: %v", err))
		return fmt.Errorf("failed to parse CV: %w", err)
	}

	log.Println("🤖 Assessing bio with LLM...")
	result, err := s.onboarding.AssessBio(ctx, bioText, assessment.Track)
	if err != nil {
		s.assessmentRepo.UpdateError(assessmentID, fmt.Sprintf("Failed to assess bio: %v", err))
		return fmt.Errorf("failed to assess bio: %w", err)
	}

	log.Println("💾 Saving assessment result...")
	updateData := &repositories.AssessmentUpdateData{
		ResponseText:  &result.ResponseText,
		AssessedLevel: &result.AssessedLevel,
		Reasoning:     &result.Reasoning,
		WarmupMode:    &result.WarmupMode,
	}

	if err := s.assessmentRepo.UpdateResult(assessmentID, updateData); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Assessment completed successfully for job ID: %s\n", assessmentID)
	return nil
}
