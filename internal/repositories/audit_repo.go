package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newsletter-studio/backend/internal/models"
)

type AuditRepo struct {
	pool *pgxpool.Pool
}

func NewAuditRepo(pool *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) Log(ctx context.Context, entry models.AuditLog) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO audit_log (actor_user_id, action, entity_type, entity_id)
		VALUES ($1, $2, $3, $4)
	`, entry.ActorUserID, entry.Action, entry.EntityType, entry.EntityID)
	return err
}
