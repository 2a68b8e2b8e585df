package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"wdclabs/ai-office/internal/models"
)

type InteractionRepository interface {
	Create(interaction *models.Interaction) error
	FindRecentByUser(userID string, limit int) ([]models.Interaction, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(interaction *models.Interaction) error {
	if err := r.db.Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to create interaction: %w", err)
	}
	return nil
}

// FindRecentByUser returns the newest interactions first, capped at limit.
func (r *interactionRepository) FindRecentByUser(userID string, limit int) ([]models.Interaction, error) {
	var interactions []models.Interaction
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&interactions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find interactions: %w", err)
	}

	return interactions, nil
}
