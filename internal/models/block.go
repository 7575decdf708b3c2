package models

import (
	"time"

	"github.com/google/uuid"
)

// Block is one ordered content unit inside an issue. OrderIndex is
// caller-assigned and not enforced unique or contiguous. MetaJSON is an
// opaque string, JSON by convention only. Blocks carry no updated_at.
type Block struct {
	ID         uuid.UUID `json:"id"`
	IssueID    uuid.UUID `json:"issue_id"`
	OrderIndex int       `json:"order_index"`
	BlockType  *string   `json:"block_type,omitempty"`
	Heading    *string   `json:"heading,omitempty"`
	Body       *string   `json:"body,omitempty"`
	CTALabel   *string   `json:"cta_label,omitempty"`
	CTAURL     *string   `json:"cta_url,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	MetaJSON   *string   `json:"meta_json,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
