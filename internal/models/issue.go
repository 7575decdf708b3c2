package models

import (
	"time"

	"github.com/google/uuid"
)

// Issue belongs to exactly one campaign. UserID is a denormalized copy of
// the campaign owner, set at creation time; status is free-form text and
// never interpreted by the server.
type Issue struct {
	ID            uuid.UUID  `json:"id"`
	CampaignID    uuid.UUID  `json:"campaign_id"`
	UserID        uuid.UUID  `json:"user_id"`
	IssueNumber   *int       `json:"issue_number,omitempty"`
	SubjectLine   string     `json:"subject_line"`
	PreheaderText *string    `json:"preheader_text,omitempty"`
	Status        *string    `json:"status,omitempty"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	SentAt        *time.Time `json:"sent_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
