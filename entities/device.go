package entities

import (
	"github.com/google/uuid"
)

type Device struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PushToken string    `json:"push_token"`
	ProjectID string    `json:"project_id"`
	Platform  string    `json:"platform,omitempty"`

	Timestamp
}
