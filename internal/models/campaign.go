package models

import (
	"time"

	"github.com/google/uuid"
)

type Campaign struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	Description         *string   `json:"description,omitempty"`
	AudienceDescription *string   `json:"audience_description,omitempty"`
	SenderName          *string   `json:"sender_name,omitempty"`
	SenderEmail         *string   `json:"sender_email,omitempty"`
	DefaultLanguage     *string   `json:"default_language,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
