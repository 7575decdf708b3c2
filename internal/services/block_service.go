package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/events"
	"github.com/newsletter-studio/backend/internal/htmlx"
	"github.com/newsletter-studio/backend/internal/models"
	"go.uber.org/zap"
)

type BlockPatch struct {
	OrderIndex *int
	BlockType  *string
	Heading    *string
	Body       *string
	CTALabel   *string
	CTAURL     *string
	ImageURL   *string
	MetaJSON   *string
}

func (p BlockPatch) IsEmpty() bool {
	return p.OrderIndex == nil && p.BlockType == nil && p.Heading == nil &&
		p.Body == nil && p.CTALabel == nil && p.CTAURL == nil &&
		p.ImageURL == nil && p.MetaJSON == nil
}

func (p BlockPatch) apply(b *models.Block) {
	if p.OrderIndex != nil {
		b.OrderIndex = *p.OrderIndex
	}
	if p.BlockType != nil {
		b.BlockType = p.BlockType
	}
	if p.Heading != nil {
		b.Heading = p.Heading
	}
	if p.Body != nil {
		b.Body = p.Body
	}
	if p.CTALabel != nil {
		b.CTALabel = p.CTALabel
	}
	if p.CTAURL != nil {
		b.CTAURL = p.CTAURL
	}
	if p.ImageURL != nil {
		b.ImageURL = p.ImageURL
	}
	if p.MetaJSON != nil {
		b.MetaJSON = p.MetaJSON
	}
}

// BlockLinks lists every outbound link found in one block: anchors parsed
// out of the body HTML plus the cta_url and image_url columns.
type BlockLinks struct {
	BlockID    uuid.UUID `json:"block_id"`
	OrderIndex int       `json:"order_index"`
	Links      []string  `json:"links"`
}

type BlockService struct {
	blocks    BlockStore
	issues    IssueStore
	campaigns CampaignStore
	audit     AuditStore
	publisher events.Publisher
	log       *zap.Logger
}

func NewBlockService(blocks BlockStore, issues IssueStore, campaigns CampaignStore, audit AuditStore, publisher events.Publisher, log *zap.Logger) *BlockService {
	return &BlockService{blocks: blocks, issues: issues, campaigns: campaigns, audit: audit, publisher: publisher, log: log}
}

// resolveChain verifies issue ownership and walks up to the campaign. The
// issue row already carries the owner, the campaign lookup re-confirms the
// full chain.
func (s *BlockService) resolveChain(ctx context.Context, issueID, userID uuid.UUID) (*models.Issue, error) {
	issue, err := s.issues.GetOwned(ctx, issueID, userID)
	if err != nil {
		return nil, maskNoRows(err, "issue not found")
	}
	if _, err := s.campaigns.GetOwned(ctx, issue.CampaignID, userID); err != nil {
		return nil, maskNoRows(err, "issue not found")
	}
	return issue, nil
}

func (s *BlockService) Create(ctx context.Context, issueID, userID uuid.UUID, b *models.Block) error {
	issue, err := s.resolveChain(ctx, issueID, userID)
	if err != nil {
		return err
	}

	b.IssueID = issue.ID
	if err := s.blocks.Create(ctx, b); err != nil {
		return err
	}

	s.record(ctx, userID, models.AuditBlockCreated, b.ID)
	return nil
}

func (s *BlockService) List(ctx context.Context, issueID, userID uuid.UUID) ([]models.Block, error) {
	if _, err := s.resolveChain(ctx, issueID, userID); err != nil {
		return nil, err
	}
	return s.blocks.ListByIssue(ctx, issueID)
}

func (s *BlockService) Update(ctx context.Context, id, issueID, userID uuid.UUID, patch BlockPatch) (*models.Block, error) {
	if patch.IsEmpty() {
		return nil, apperrors.Validation("at least one field must be provided")
	}

	if _, err := s.resolveChain(ctx, issueID, userID); err != nil {
		return nil, err
	}

	b, err := s.blocks.GetInIssue(ctx, id, issueID)
	if err != nil {
		return nil, maskNoRows(err, "block not found")
	}

	patch.apply(b)
	if err := s.blocks.Update(ctx, b); err != nil {
		return nil, err
	}

	s.record(ctx, userID, models.AuditBlockUpdated, b.ID)
	return b, nil
}

func (s *BlockService) Delete(ctx context.Context, id, issueID, userID uuid.UUID) error {
	if _, err := s.resolveChain(ctx, issueID, userID); err != nil {
		return err
	}

	affected, err := s.blocks.Delete(ctx, id, issueID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NotFound("block not found")
	}

	s.record(ctx, userID, models.AuditBlockDeleted, id)
	return nil
}

// LinkReport collects outbound links per block for an owned issue.
func (s *BlockService) LinkReport(ctx context.Context, issueID, userID uuid.UUID) ([]BlockLinks, error) {
	blocks, err := s.List(ctx, issueID, userID)
	if err != nil {
		return nil, err
	}

	report := make([]BlockLinks, 0, len(blocks))
	for _, b := range blocks {
		entry := BlockLinks{BlockID: b.ID, OrderIndex: b.OrderIndex}
		if b.Body != nil {
			links, err := htmlx.ExtractLinks(*b.Body)
			if err != nil {
				s.log.Warn("body parse failed", zap.String("block_id", b.ID.String()), zap.Error(err))
			} else {
				entry.Links = links
			}
		}
		if b.CTAURL != nil && *b.CTAURL != "" {
			entry.Links = append(entry.Links, *b.CTAURL)
		}
		if b.ImageURL != nil && *b.ImageURL != "" {
			entry.Links = append(entry.Links, *b.ImageURL)
		}
		report = append(report, entry)
	}
	return report, nil
}

func (s *BlockService) record(ctx context.Context, userID uuid.UUID, action string, blockID uuid.UUID) {
	if err := s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		Action:      action,
		EntityType:  "block",
		EntityID:    &blockID,
	}); err != nil {
		s.log.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.StreamContent, events.Event{
		Type: events.EventBlockChanged,
		Payload: map[string]any{
			"action":   action,
			"block_id": blockID.String(),
			"user_id":  userID.String(),
		},
	}); err != nil {
		s.log.Warn("event publish failed", zap.String("action", action), zap.Error(err))
	}
}
