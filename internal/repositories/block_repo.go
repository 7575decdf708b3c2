package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newsletter-studio/backend/internal/models"
)

type BlockRepo struct {
	pool *pgxpool.Pool
}

func NewBlockRepo(pool *pgxpool.Pool) *BlockRepo {
	return &BlockRepo{pool: pool}
}

const blockColumns = `id, issue_id, order_index, block_type, heading, body,
	cta_label, cta_url, image_url, meta_json, created_at`

func scanBlock(row interface{ Scan(...any) error }, b *models.Block) error {
	return row.Scan(&b.ID, &b.IssueID, &b.OrderIndex, &b.BlockType,
		&b.Heading, &b.Body, &b.CTALabel, &b.CTAURL,
		&b.ImageURL, &b.MetaJSON, &b.CreatedAt)
}

func (r *BlockRepo) Create(ctx context.Context, b *models.Block) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO blocks (issue_id, order_index, block_type, heading, body, cta_label, cta_url, image_url, meta_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, b.IssueID, b.OrderIndex, b.BlockType, b.Heading, b.Body,
		b.CTALabel, b.CTAURL, b.ImageURL, b.MetaJSON,
	).Scan(&b.ID, &b.CreatedAt)
}

// GetInIssue fetches a block only if it belongs to the given issue.
func (r *BlockRepo) GetInIssue(ctx context.Context, id, issueID uuid.UUID) (*models.Block, error) {
	var b models.Block
	err := scanBlock(r.pool.QueryRow(ctx, `
		SELECT `+blockColumns+` FROM blocks WHERE id = $1 AND issue_id = $2
	`, id, issueID), &b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlockRepo) Update(ctx context.Context, b *models.Block) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE blocks SET order_index = $1, block_type = $2, heading = $3, body = $4,
		       cta_label = $5, cta_url = $6, image_url = $7, meta_json = $8
		WHERE id = $9
	`, b.OrderIndex, b.BlockType, b.Heading, b.Body,
		b.CTALabel, b.CTAURL, b.ImageURL, b.MetaJSON, b.ID)
	return err
}

// Delete removes the block scoped to its issue and reports how many rows
// went away, so the caller can distinguish a no-op delete.
func (r *BlockRepo) Delete(ctx context.Context, id, issueID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blocks WHERE id = $1 AND issue_id = $2`, id, issueID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *BlockRepo) ListByIssue(ctx context.Context, issueID uuid.UUID) ([]models.Block, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+blockColumns+` FROM blocks
		WHERE issue_id = $1
		ORDER BY order_index ASC, created_at ASC
	`, issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []models.Block
	for rows.Next() {
		var b models.Block
		if err := scanBlock(rows, &b); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}
