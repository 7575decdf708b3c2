package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newsletter-studio/backend/internal/models"
)

type IssueRepo struct {
	pool *pgxpool.Pool
}

func NewIssueRepo(pool *pgxpool.Pool) *IssueRepo {
	return &IssueRepo{pool: pool}
}

const issueColumns = `id, campaign_id, user_id, issue_number, subject_line,
	preheader_text, status, scheduled_at, sent_at, created_at, updated_at`

func scanIssue(row interface{ Scan(...any) error }, i *models.Issue) error {
	return row.Scan(&i.ID, &i.CampaignID, &i.UserID, &i.IssueNumber,
		&i.SubjectLine, &i.PreheaderText, &i.Status,
		&i.ScheduledAt, &i.SentAt, &i.CreatedAt, &i.UpdatedAt)
}

func (r *IssueRepo) Create(ctx context.Context, i *models.Issue) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO issues (campaign_id, user_id, issue_number, subject_line, preheader_text, status, scheduled_at, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, i.CampaignID, i.UserID, i.IssueNumber, i.SubjectLine,
		i.PreheaderText, i.Status, i.ScheduledAt, i.SentAt,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func (r *IssueRepo) GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.Issue, error) {
	var i models.Issue
	err := scanIssue(r.pool.QueryRow(ctx, `
		SELECT `+issueColumns+` FROM issues WHERE id = $1 AND user_id = $2
	`, id, userID), &i)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// GetInCampaign fetches an issue only if it sits under the given campaign
// and owner, confirming the exact parent chain.
func (r *IssueRepo) GetInCampaign(ctx context.Context, id, campaignID, userID uuid.UUID) (*models.Issue, error) {
	var i models.Issue
	err := scanIssue(r.pool.QueryRow(ctx, `
		SELECT `+issueColumns+` FROM issues WHERE id = $1 AND campaign_id = $2 AND user_id = $3
	`, id, campaignID, userID), &i)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *IssueRepo) Update(ctx context.Context, i *models.Issue) error {
	return r.pool.QueryRow(ctx, `
		UPDATE issues SET issue_number = $1, subject_line = $2, preheader_text = $3,
		       status = $4, scheduled_at = $5, sent_at = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`, i.IssueNumber, i.SubjectLine, i.PreheaderText,
		i.Status, i.ScheduledAt, i.SentAt, i.ID,
	).Scan(&i.UpdatedAt)
}

func (r *IssueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM issues WHERE id = $1`, id)
	return err
}

func (r *IssueRepo) ListByCampaign(ctx context.Context, campaignID, userID uuid.UUID) ([]models.Issue, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+issueColumns+` FROM issues
		WHERE campaign_id = $1 AND user_id = $2
		ORDER BY created_at DESC
	`, campaignID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		var i models.Issue
		if err := scanIssue(rows, &i); err != nil {
			return nil, err
		}
		issues = append(issues, i)
	}
	return issues, rows.Err()
}
