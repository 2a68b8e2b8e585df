package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wdclabs/ai-office/internal/models"
)

type AssessmentRepository interface {
	Create(assessment *models.Assessment) error
	FindByID(id uuid.UUID) (*models.Assessment, error)
	UpdateStatus(id uuid.UUID, status models.AssessmentStatus) error
	UpdateResult(id uuid.UUID, result *AssessmentUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Assessment, error)
}

type AssessmentUpdateData struct {
	ResponseText  *string
	AssessedLevel *string
	Reasoning     *string
	WarmupMode    *bool
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *models.Assessment) error {
	if err := r.db.Create(assessment).Error; err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepository) FindByID(id uuid.UUID) (*models.Assessment, error) {
	var assessment models.Assessment
	if err := r.db.Where("id = ?", id).First(&assessment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("assessment not found")
		}
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) UpdateStatus(id uuid.UUID, status models.AssessmentStatus) error {
	result := r.db.Model(&models.Assessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("assessment not found")
	}

	return nil
}

func (r *assessmentRepository) UpdateResult(id uuid.UUID, data *AssessmentUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.ResponseText != nil {
		updates["response_text"] = *data.ResponseText
	}
	if data.AssessedLevel != nil {
		updates["assessed_level"] = *data.AssessedLevel
	}
	if data.Reasoning != nil {
		updates["reasoning"] = *data.Reasoning
	}
	if data.WarmupMode != nil {
		updates["warmup_mode"] = *data.WarmupMode
	}

	result := r.db.Model(&models.Assessment{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("assessment not found")
	}

	return nil
}

func (r *assessmentRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Assessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("assessment not found")
	}

	return nil
}

func (r *assessmentRepository) FindPendingJobs(limit int) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&assessments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return assessments, nil
}
