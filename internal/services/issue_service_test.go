package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/newsletter-studio/backend/internal/apperrors"
	"github.com/newsletter-studio/backend/internal/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type issueFixture struct {
	svc       *IssueService
	issues    *fakeIssueStore
	campaigns *fakeCampaignStore
	audit     *fakeAuditStore
	userID    uuid.UUID
	campaign  *models.Campaign
}

func newIssueFixture(t *testing.T) *issueFixture {
	t.Helper()
	campaigns := newFakeCampaignStore()
	issues := newFakeIssueStore()
	audit := &fakeAuditStore{}

	userID := uuid.New()
	campaign := &models.Campaign{UserID: userID, Name: "Weekly Dev Tips"}
	require.NoError(t, campaigns.Create(context.Background(), campaign))

	return &issueFixture{
		svc:       NewIssueService(issues, campaigns, audit, &fakePublisher{}, zap.NewNop()),
		issues:    issues,
		campaigns: campaigns,
		audit:     audit,
		userID:    userID,
		campaign:  campaign,
	}
}

func TestIssueCreate_CopiesOwnerFromCampaign(t *testing.T) {
	f := newIssueFixture(t)

	issue := &models.Issue{SubjectLine: "Issue 1"}
	require.NoError(t, f.svc.Create(context.Background(), f.campaign.ID, f.userID, issue))

	require.Equal(t, f.campaign.UserID, issue.UserID)
	require.Equal(t, f.campaign.ID, issue.CampaignID)
	require.NotEqual(t, uuid.Nil, issue.ID)
}

func TestIssueCreate_MissingSubjectLine(t *testing.T) {
	f := newIssueFixture(t)

	err := f.svc.Create(context.Background(), f.campaign.ID, f.userID, &models.Issue{})
	require.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	require.Empty(t, f.issues.rows)
}

func TestIssueCreate_ForeignCampaign(t *testing.T) {
	f := newIssueFixture(t)

	err := f.svc.Create(context.Background(), f.campaign.ID, uuid.New(), &models.Issue{SubjectLine: "x"})
	require.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	require.Empty(t, f.issues.rows)
}

func TestIssueUpdate_PartialPatch(t *testing.T) {
	f := newIssueFixture(t)

	issue := &models.Issue{
		SubjectLine:   "Issue 1",
		PreheaderText: strPtr("keep"),
		Status:        strPtr("draft"),
	}
	require.NoError(t, f.svc.Create(context.Background(), f.campaign.ID, f.userID, issue))

	sentAt := time.Now()
	updated, err := f.svc.Update(context.Background(), issue.ID, f.campaign.ID, f.userID, IssuePatch{
		Status: strPtr("sent"),
		SentAt: &sentAt,
	})
	require.NoError(t, err)

	require.Equal(t, "sent", *updated.Status)
	require.Equal(t, "Issue 1", updated.SubjectLine)
	require.Equal(t, "keep", *updated.PreheaderText)
	require.NotNil(t, updated.SentAt)
}

func TestIssueUpdate_WrongCampaignParent(t *testing.T) {
	f := newIssueFixture(t)

	issue := &models.Issue{SubjectLine: "Issue 1"}
	require.NoError(t, f.svc.Create(context.Background(), f.campaign.ID, f.userID, issue))

	other := &models.Campaign{UserID: f.userID, Name: "Other"}
	require.NoError(t, f.campaigns.Create(context.Background(), other))

	// issue exists and is owned, but not under this campaign
	_, err := f.svc.Update(context.Background(), issue.ID, other.ID, f.userID, IssuePatch{Status: strPtr("x")})
	require.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	require.Zero(t, f.issues.updates)
}

func TestIssueUpdate_EmptyPatch(t *testing.T) {
	f := newIssueFixture(t)

	issue := &models.Issue{SubjectLine: "Issue 1"}
	require.NoError(t, f.svc.Create(context.Background(), f.campaign.ID, f.userID, issue))

	_, err := f.svc.Update(context.Background(), issue.ID, f.campaign.ID, f.userID, IssuePatch{})
	require.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	require.Zero(t, f.issues.updates)
}

func TestIssueList_RequiresOwnedCampaign(t *testing.T) {
	f := newIssueFixture(t)

	require.NoError(t, f.svc.Create(context.Background(), f.campaign.ID, f.userID, &models.Issue{SubjectLine: "Issue 1"}))
	require.NoError(t, f.svc.Create(context.Background(), f.campaign.ID, f.userID, &models.Issue{SubjectLine: "Issue 2"}))

	issues, err := f.svc.List(context.Background(), f.campaign.ID, f.userID)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	_, err = f.svc.List(context.Background(), f.campaign.ID, uuid.New())
	require.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestIssueDelete(t *testing.T) {
	f := newIssueFixture(t)

	issue := &models.Issue{SubjectLine: "Issue 1"}
	require.NoError(t, f.svc.Create(context.Background(), f.campaign.ID, f.userID, issue))

	require.NoError(t, f.svc.Delete(context.Background(), issue.ID, f.campaign.ID, f.userID))
	require.Empty(t, f.issues.rows)

	err := f.svc.Delete(context.Background(), issue.ID, f.campaign.ID, f.userID)
	require.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}
