package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func newCampaignFixture(t *testing.T) (*CampaignService, *fakeCampaignStore, *fakeAuditStore, *fakePublisher) {
	t.Helper()
	store := newFakeCampaignStore()
	audit := &fakeAuditStore{}
	pub := &fakePublisher{}
	return NewCampaignService(store, audit, pub, zap.NewNop()), store, audit, pub
}

func TestCampaignCreate(t *testing.T) {
	svc, store, audit, pub := newCampaignFixture(t)
	userID := uuid.New()

	c := &models.Campaign{Name: "Weekly Dev Tips"}
	require.NoError(t, svc.Create(context.Background(), userID, c))

	require.NotEqual(t, uuid.Nil, c.ID)
	require.Equal(t, userID, c.UserID)
	require.Equal(t, c.CreatedAt, c.UpdatedAt)
	require.Len(t, store.rows, 1)
	require.Len(t, audit.entries, 1)
	require.Equal(t, models.AuditCampaignCreated, audit.entries[0].Action)
	require.Len(t, pub.published, 1)
}

func TestCampaignCreate_MissingName(t *testing.T) {
	svc, store, _, _ := newCampaignFixture(t)

	err := svc.Create(context.Background(), uuid.New(), &models.Campaign{})
	require.Error(t, err)
	require.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	require.Empty(t, store.rows)
}

func TestCampaignGet_ForeignOwnerMasked(t *testing.T) {
	svc, _, _, _ := newCampaignFixture(t)
	owner := uuid.New()

	c := &models.Campaign{Name: "Mine"}
	require.NoError(t, svc.Create(context.Background(), owner, c))

	// nonexistent id and foreign id yield the same NOT_FOUND
	_, err := svc.Get(context.Background(), uuid.New(), owner)
	require.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	_, err = svc.Get(context.Background(), c.ID, uuid.New())
	require.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestCampaignUpdate_PartialPatch(t *testing.T) {
	svc, _, _, _ := newCampaignFixture(t)
	userID := uuid.New()

	c := &models.Campaign{
		Name:        "Original",
		Description: strPtr("keep me"),
		SenderEmail: strPtr("old@example.com"),
	}
	require.NoError(t, svc.Create(context.Background(), userID, c))

	updated, err := svc.Update(context.Background(), c.ID, userID, CampaignPatch{
		Name: strPtr("Renamed"),
	})
	require.NoError(t, err)

	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "keep me", *updated.Description)
	require.Equal(t, "old@example.com", *updated.SenderEmail)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestCampaignUpdate_EmptyPatchRejectedBeforeStore(t *testing.T) {
	svc, store, _, _ := newCampaignFixture(t)
	userID := uuid.New()

	c := &models.Campaign{Name: "Original"}
	require.NoError(t, svc.Create(context.Background(), userID, c))

	_, err := svc.Update(context.Background(), c.ID, userID, CampaignPatch{})
	require.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	require.Zero(t, store.updates)
}

func TestCampaignUpdate_ForeignUserNoMutation(t *testing.T) {
	svc, store, _, _ := newCampaignFixture(t)
	owner := uuid.New()

	c := &models.Campaign{Name: "Owned by A"}
	require.NoError(t, svc.Create(context.Background(), owner, c))

	_, err := svc.Update(context.Background(), c.ID, uuid.New(), CampaignPatch{Name: strPtr("stolen")})
	require.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	require.Zero(t, store.updates)
	require.Equal(t, "Owned by A", store.rows[c.ID].Name)
}

func TestCampaignList_ScopedToCaller(t *testing.T) {
	svc, _, _, _ := newCampaignFixture(t)
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, svc.Create(context.Background(), alice, &models.Campaign{Name: "a1"}))
	require.NoError(t, svc.Create(context.Background(), alice, &models.Campaign{Name: "a2"}))
	require.NoError(t, svc.Create(context.Background(), bob, &models.Campaign{Name: "b1"}))

	campaigns, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
}

func TestCampaignDelete(t *testing.T) {
	svc, store, audit, _ := newCampaignFixture(t)
	userID := uuid.New()

	c := &models.Campaign{Name: "Doomed"}
	require.NoError(t, svc.Create(context.Background(), userID, c))

	require.NoError(t, svc.Delete(context.Background(), c.ID, userID))
	require.Empty(t, store.rows)
	require.Equal(t, models.AuditCampaignDeleted, audit.entries[len(audit.entries)-1].Action)

	// already gone
	err := svc.Delete(context.Background(), c.ID, userID)
	require.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}
