package models

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one user message / agent response pair. The log feeds Kemi's
// soft-skills feedback, which looks at a recent window of exchanges.
type Interaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        string    `gorm:"type:text;not null;index" json:"user_id"`
	Agent         string    `gorm:"type:text;not null" json:"agent"`
	Method        string    `gorm:"type:text" json:"method"`
	UserMessage   string    `gorm:"type:text" json:"user_message"`
	AgentResponse string    `gorm:"type:text" json:"agent_response"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}
