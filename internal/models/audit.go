package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions
const (
	AuditCampaignCreated = "campaign_created"
	AuditCampaignUpdated = "campaign_updated"
	AuditCampaignDeleted = "campaign_deleted"
	AuditIssueCreated    = "issue_created"
	AuditIssueUpdated    = "issue_updated"
	AuditIssueDeleted    = "issue_deleted"
	AuditBlockCreated    = "block_created"
	AuditBlockUpdated    = "block_updated"
	AuditBlockDeleted    = "block_deleted"
)

type AuditLog struct {
	ID          uuid.UUID  `json:"id"`
	ActorUserID *uuid.UUID `json:"actor_user_id,omitempty"`
	Action      string     `json:"action"`
	EntityType  string     `json:"entity_type"`
	EntityID    *uuid.UUID `json:"entity_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
