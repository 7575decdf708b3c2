package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/models"
)

// Store interfaces cover exactly what the services need from the
// repositories, so ownership logic tests run against in-memory fakes.

type CampaignStore interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.Campaign, error)
	Update(ctx context.Context, c *models.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error)
}

type IssueStore interface {
	Create(ctx context.Context, i *models.Issue) error
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.Issue, error)
	GetInCampaign(ctx context.Context, id, campaignID, userID uuid.UUID) (*models.Issue, error)
	Update(ctx context.Context, i *models.Issue) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByCampaign(ctx context.Context, campaignID, userID uuid.UUID) ([]models.Issue, error)
}

type BlockStore interface {
	Create(ctx context.Context, b *models.Block) error
	GetInIssue(ctx context.Context, id, issueID uuid.UUID) (*models.Block, error)
	Update(ctx context.Context, b *models.Block) error
	Delete(ctx context.Context, id, issueID uuid.UUID) (int64, error)
	ListByIssue(ctx context.Context, issueID uuid.UUID) ([]models.Block, error)
}

type AuditStore interface {
	Log(ctx context.Context, entry models.AuditLog) error
}

// maskNoRows collapses "row absent" and "row owned by someone else" into
// the same NOT_FOUND, so existence never leaks across users.
func maskNoRows(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound(msg)
	}
	return err
}
