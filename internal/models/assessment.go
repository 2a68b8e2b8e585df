package models

import (
	"time"

	"github.com/google/uuid"
)

type AssessmentStatus string

const (
	StatusQueued     AssessmentStatus = "queued"
	StatusProcessing AssessmentStatus = "processing"
	StatusCompleted  AssessmentStatus = "completed"
	StatusFailed     AssessmentStatus = "failed"
)

// Assessment is an async bio/CV review job handled by Tolu. Jobs created from
// an uploaded document are picked up by the worker; inline bio text is
// assessed synchronously and never stored here.
type Assessment struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        string           `gorm:"type:text;not null" json:"user_id"`
	Track         string           `gorm:"type:text" json:"track"`
	DocumentID    uuid.UUID        `gorm:"type:uuid;not null" json:"document_id"`
	Status        AssessmentStatus `gorm:"not null;default:'queued'" json:"status"`
	ResponseText  *string          `gorm:"type:text" json:"response_text,omitempty"`
	AssessedLevel *string          `gorm:"type:text" json:"assessed_level,omitempty"`
	Reasoning     *string          `gorm:"type:text" json:"reasoning,omitempty"`
	WarmupMode    *bool            `json:"warmup_mode,omitempty"`
	ErrorMessage  string           `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Assessment) TableName() string {
	return "assessments"
}
