package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newsletter-studio/backend/internal/models"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (user_id, name, description, audience_description, sender_name, sender_email, default_language)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Name, c.Description, c.AudienceDescription,
		c.SenderName, c.SenderEmail, c.DefaultLanguage,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// GetOwned fetches a campaign by id scoped to its owner. A campaign that
// exists but belongs to someone else scans as pgx.ErrNoRows, same as a
// missing one.
func (r *CampaignRepo) GetOwned(ctx context.Context, id, userID uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, description, audience_description,
		       sender_name, sender_email, default_language, created_at, updated_at
		FROM campaigns WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&c.ID, &c.UserID, &c.Name, &c.Description,
		&c.AudienceDescription, &c.SenderName, &c.SenderEmail,
		&c.DefaultLanguage, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update writes all mutable columns and refreshes updated_at. Ownership is
// checked by the caller beforehand; the statement filters by id only.
func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		UPDATE campaigns SET name = $1, description = $2, audience_description = $3,
		       sender_name = $4, sender_email = $5, default_language = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`, c.Name, c.Description, c.AudienceDescription,
		c.SenderName, c.SenderEmail, c.DefaultLanguage, c.ID,
	).Scan(&c.UpdatedAt)
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

func (r *CampaignRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, description, audience_description,
		       sender_name, sender_email, default_language, created_at, updated_at
		FROM campaigns WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Description,
			&c.AudienceDescription, &c.SenderName, &c.SenderEmail,
			&c.DefaultLanguage, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
