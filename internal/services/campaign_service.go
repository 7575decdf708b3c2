package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/events"
	"github.com/newsletter-studio/backend/internal/models"
	"go.uber.org/zap"
)

// CampaignPatch carries the mutable campaign fields. A nil field means
// "leave untouched"; a present pointer is written as given.
type CampaignPatch struct {
	Name                *string
	Description         *string
	AudienceDescription *string
	SenderName          *string
	SenderEmail         *string
	DefaultLanguage     *string
}

func (p CampaignPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.AudienceDescription == nil &&
		p.SenderName == nil && p.SenderEmail == nil && p.DefaultLanguage == nil
}

func (p CampaignPatch) apply(c *models.Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = p.Description
	}
	if p.AudienceDescription != nil {
		c.AudienceDescription = p.AudienceDescription
	}
	if p.SenderName != nil {
		c.SenderName = p.SenderName
	}
	if p.SenderEmail != nil {
		c.SenderEmail = p.SenderEmail
	}
	if p.DefaultLanguage != nil {
		c.DefaultLanguage = p.DefaultLanguage
	}
}

type CampaignService struct {
	campaigns CampaignStore
	audit     AuditStore
	publisher events.Publisher
	log       *zap.Logger
}

func NewCampaignService(campaigns CampaignStore, audit AuditStore, publisher events.Publisher, log *zap.Logger) *CampaignService {
	return &CampaignService{campaigns: campaigns, audit: audit, publisher: publisher, log: log}
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, c *models.Campaign) error {
	if c.Name == "" {
		return apperrors.Validation("name is required")
	}

	c.UserID = userID
	if err := s.campaigns.Create(ctx, c); err != nil {
		return err
	}

	s.record(ctx, userID, models.AuditCampaignCreated, c.ID)
	return nil
}

func (s *CampaignService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaigns.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, maskNoRows(err, "campaign not found")
	}
	return c, nil
}

func (s *CampaignService) List(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	return s.campaigns.ListByUser(ctx, userID)
}

func (s *CampaignService) Update(ctx context.Context, id, userID uuid.UUID, patch CampaignPatch) (*models.Campaign, error) {
	if patch.IsEmpty() {
		return nil, apperrors.Validation("at least one field must be provided")
	}

	c, err := s.campaigns.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, maskNoRows(err, "campaign not found")
	}

	patch.apply(c)
	if err := s.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}

	s.record(ctx, userID, models.AuditCampaignUpdated, c.ID)
	return c, nil
}

func (s *CampaignService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.campaigns.GetOwned(ctx, id, userID); err != nil {
		return maskNoRows(err, "campaign not found")
	}

	if err := s.campaigns.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, userID, models.AuditCampaignDeleted, id)
	return nil
}

// record writes the audit entry and pushes the change event, both
// best-effort after the mutation has already committed.
func (s *CampaignService) record(ctx context.Context, userID uuid.UUID, action string, campaignID uuid.UUID) {
	if err := s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		Action:      action,
		EntityType:  "campaign",
		EntityID:    &campaignID,
	}); err != nil {
		s.log.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.StreamContent, events.Event{
		Type: events.EventCampaignChanged,
		Payload: map[string]any{
			"action":      action,
			"campaign_id": campaignID.String(),
			"user_id":     userID.String(),
		},
	}); err != nil {
		s.log.Warn("event publish failed", zap.String("action", action), zap.Error(err))
	}
}
