package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/events"
	"github.com/newsletter-studio/backend/internal/models"
	"go.uber.org/zap"
)

type IssuePatch struct {
	IssueNumber   *int
	SubjectLine   *string
	PreheaderText *string
	Status        *string
	ScheduledAt   *time.Time
	SentAt        *time.Time
}

func (p IssuePatch) IsEmpty() bool {
	return p.IssueNumber == nil && p.SubjectLine == nil && p.PreheaderText == nil &&
		p.Status == nil && p.ScheduledAt == nil && p.SentAt == nil
}

func (p IssuePatch) apply(i *models.Issue) {
	if p.IssueNumber != nil {
		i.IssueNumber = p.IssueNumber
	}
	if p.SubjectLine != nil {
		i.SubjectLine = *p.SubjectLine
	}
	if p.PreheaderText != nil {
		i.PreheaderText = p.PreheaderText
	}
	if p.Status != nil {
		i.Status = p.Status
	}
	if p.ScheduledAt != nil {
		i.ScheduledAt = p.ScheduledAt
	}
	if p.SentAt != nil {
		i.SentAt = p.SentAt
	}
}

type IssueService struct {
	issues    IssueStore
	campaigns CampaignStore
	audit     AuditStore
	publisher events.Publisher
	log       *zap.Logger
}

func NewIssueService(issues IssueStore, campaigns CampaignStore, audit AuditStore, publisher events.Publisher, log *zap.Logger) *IssueService {
	return &IssueService{issues: issues, campaigns: campaigns, audit: audit, publisher: publisher, log: log}
}

// Create inserts an issue under an owned campaign. The owner id is copied
// from the resolved campaign, keeping issue.user_id consistent with the
// parent chain.
func (s *IssueService) Create(ctx context.Context, campaignID, userID uuid.UUID, i *models.Issue) error {
	if i.SubjectLine == "" {
		return apperrors.Validation("subject_line is required")
	}

	campaign, err := s.campaigns.GetOwned(ctx, campaignID, userID)
	if err != nil {
		return maskNoRows(err, "campaign not found")
	}

	i.CampaignID = campaign.ID
	i.UserID = campaign.UserID
	if err := s.issues.Create(ctx, i); err != nil {
		return err
	}

	s.record(ctx, userID, models.AuditIssueCreated, i.ID)
	return nil
}

func (s *IssueService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Issue, error) {
	i, err := s.issues.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, maskNoRows(err, "issue not found")
	}
	return i, nil
}

func (s *IssueService) List(ctx context.Context, campaignID, userID uuid.UUID) ([]models.Issue, error) {
	if _, err := s.campaigns.GetOwned(ctx, campaignID, userID); err != nil {
		return nil, maskNoRows(err, "campaign not found")
	}
	return s.issues.ListByCampaign(ctx, campaignID, userID)
}

func (s *IssueService) Update(ctx context.Context, id, campaignID, userID uuid.UUID, patch IssuePatch) (*models.Issue, error) {
	if patch.IsEmpty() {
		return nil, apperrors.Validation("at least one field must be provided")
	}

	if _, err := s.campaigns.GetOwned(ctx, campaignID, userID); err != nil {
		return nil, maskNoRows(err, "campaign not found")
	}

	i, err := s.issues.GetInCampaign(ctx, id, campaignID, userID)
	if err != nil {
		return nil, maskNoRows(err, "issue not found")
	}

	patch.apply(i)
	if err := s.issues.Update(ctx, i); err != nil {
		return nil, err
	}

	s.record(ctx, userID, models.AuditIssueUpdated, i.ID)
	return i, nil
}

func (s *IssueService) Delete(ctx context.Context, id, campaignID, userID uuid.UUID) error {
	if _, err := s.campaigns.GetOwned(ctx, campaignID, userID); err != nil {
		return maskNoRows(err, "campaign not found")
	}
	if _, err := s.issues.GetInCampaign(ctx, id, campaignID, userID); err != nil {
		return maskNoRows(err, "issue not found")
	}

	if err := s.issues.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, userID, models.AuditIssueDeleted, id)
	return nil
}

func (s *IssueService) record(ctx context.Context, userID uuid.UUID, action string, issueID uuid.UUID) {
	if err := s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		Action:      action,
		EntityType:  "issue",
		EntityID:    &issueID,
	}); err != nil {
		s.log.Warn("audit log failed", zap.String("action", action), zap.Error(err))
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.StreamContent, events.Event{
		Type: events.EventIssueChanged,
		Payload: map[string]any{
			"action":   action,
			"issue_id": issueID.String(),
			"user_id":  userID.String(),
		},
	}); err != nil {
		s.log.Warn("event publish failed", zap.String("action", action), zap.Error(err))
	}
}
