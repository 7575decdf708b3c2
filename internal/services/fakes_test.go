package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/newsletter-studio/backend/internal/events"
	"github.com/newsletter-studio/backend/internal/models"
)

// In-memory stores backing the service tests. Owner filters behave like
// the SQL ones: a mismatch is pgx.ErrNoRows, indistinguishable from a
// missing row.

type fakeCampaignStore struct {
	rows    map[uuid.UUID]*models.Campaign
	updates int
}

func newFakeCampaignStore() *fakeCampaignStore {
	return &fakeCampaignStore{rows: make(map[uuid.UUID]*models.Campaign)}
}

func (f *fakeCampaignStore) Create(_ context.Context, c *models.Campaign) error {
	c.ID = uuid.New()
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCampaignStore) GetOwned(_ context.Context, id, userID uuid.UUID) (*models.Campaign, error) {
	c, ok := f.rows[id]
	if !ok || c.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaignStore) Update(_ context.Context, c *models.Campaign) error {
	f.updates++
	c.UpdatedAt = time.Now()
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCampaignStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeCampaignStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, c := range f.rows {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeIssueStore struct {
	rows    map[uuid.UUID]*models.Issue
	updates int
}

func newFakeIssueStore() *fakeIssueStore {
	return &fakeIssueStore{rows: make(map[uuid.UUID]*models.Issue)}
}

func (f *fakeIssueStore) Create(_ context.Context, i *models.Issue) error {
	i.ID = uuid.New()
	now := time.Now()
	i.CreatedAt = now
	i.UpdatedAt = now
	cp := *i
	f.rows[i.ID] = &cp
	return nil
}

func (f *fakeIssueStore) GetOwned(_ context.Context, id, userID uuid.UUID) (*models.Issue, error) {
	i, ok := f.rows[id]
	if !ok || i.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	cp := *i
	return &cp, nil
}

func (f *fakeIssueStore) GetInCampaign(_ context.Context, id, campaignID, userID uuid.UUID) (*models.Issue, error) {
	i, ok := f.rows[id]
	if !ok || i.CampaignID != campaignID || i.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	cp := *i
	return &cp, nil
}

func (f *fakeIssueStore) Update(_ context.Context, i *models.Issue) error {
	f.updates++
	i.UpdatedAt = time.Now()
	cp := *i
	f.rows[i.ID] = &cp
	return nil
}

func (f *fakeIssueStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

func (f *fakeIssueStore) ListByCampaign(_ context.Context, campaignID, userID uuid.UUID) ([]models.Issue, error) {
	var out []models.Issue
	for _, i := range f.rows {
		if i.CampaignID == campaignID && i.UserID == userID {
			out = append(out, *i)
		}
	}
	return out, nil
}

type fakeBlockStore struct {
	rows    map[uuid.UUID]*models.Block
	updates int
}

func newFakeBlockStore() *fakeBlockStore {
	return &fakeBlockStore{rows: make(map[uuid.UUID]*models.Block)}
}

func (f *fakeBlockStore) Create(_ context.Context, b *models.Block) error {
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBlockStore) GetInIssue(_ context.Context, id, issueID uuid.UUID) (*models.Block, error) {
	b, ok := f.rows[id]
	if !ok || b.IssueID != issueID {
		return nil, pgx.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBlockStore) Update(_ context.Context, b *models.Block) error {
	f.updates++
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBlockStore) Delete(_ context.Context, id, issueID uuid.UUID) (int64, error) {
	b, ok := f.rows[id]
	if !ok || b.IssueID != issueID {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func (f *fakeBlockStore) ListByIssue(_ context.Context, issueID uuid.UUID) ([]models.Block, error) {
	var out []models.Block
	for _, b := range f.rows {
		if b.IssueID == issueID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakeAuditStore struct {
	entries []models.AuditLog
}

func (f *fakeAuditStore) Log(_ context.Context, entry models.AuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakePublisher struct {
	published []events.Event
}

func (f *fakePublisher) Publish(_ context.Context, _ string, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}
