package services

import (
	"context"
	"testing"

	"inflo_backend/internal/dto"
	"inflo_backend/internal/fixtures"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
	"inflo_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCampaignService(seed int64) (*CampaignServiceImpl, repositories.CampaignRepository) {
	repo := repositories.NewCampaignRepository(fixtures.Campaigns())
	return NewCampaignService(repo, seed, 0), repo
}

func TestList_StatusFilter(t *testing.T) {
	svc, repo := newCampaignService(1)

	draft := models.Campaign{
		ID:      "draft-1",
		BrandID: "brand-x",
		Title:   "Unpublished",
		Status:  models.CampaignStatusDraft,
	}
	require.NoError(t, repo.Create(&draft))

	active, err := svc.List(context.Background(), CampaignFilters{Status: models.CampaignStatusActive})
	require.NoError(t, err)
	require.NotEmpty(t, active)
	for _, c := range active {
		assert.Equal(t, models.CampaignStatusActive, c.Status)
	}

	all, err := svc.List(context.Background(), CampaignFilters{})
	require.NoError(t, err)
	assert.Len(t, all, len(active)+1)
}

func TestList_CreatorRelevantShufflePreservesMembers(t *testing.T) {
	svc, _ := newCampaignService(99)

	plain, err := svc.List(context.Background(), CampaignFilters{})
	require.NoError(t, err)
	shuffled, err := svc.List(context.Background(), CampaignFilters{CreatorRelevant: true})
	require.NoError(t, err)

	require.Equal(t, len(plain), len(shuffled))
	seen := make(map[string]bool)
	for _, c := range shuffled {
		seen[c.ID] = true
	}
	for _, c := range plain {
		assert.True(t, seen[c.ID], "campaign %s lost in shuffle", c.ID)
	}
}

func TestCreate_DefaultsToActive(t *testing.T) {
	svc, _ := newCampaignService(1)

	campaign, err := svc.Create(context.Background(), "brand-7", &dto.CreateCampaignRequest{
		Title:        "Launch Week",
		Description:  "A week-long launch push",
		Deliverables: []string{"Reel"},
		Budget:       1000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, "brand-7", campaign.BrandID)
	assert.Equal(t, models.CampaignStatusActive, campaign.Status)
	assert.NotNil(t, campaign.Applicants)
	assert.Empty(t, campaign.Applicants)
}

func TestApply_RecordsOnce(t *testing.T) {
	svc, repo := newCampaignService(1)

	require.NoError(t, svc.Apply(context.Background(), "1", "creator-a"))
	require.NoError(t, svc.Apply(context.Background(), "1", "creator-a"))

	campaign, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"creator-a"}, campaign.Applicants)
}

func TestApply_UnknownCampaignSilentlyIgnored(t *testing.T) {
	svc, _ := newCampaignService(1)

	assert.NoError(t, svc.Apply(context.Background(), "no-such-campaign", "creator-a"))
}

func TestApprove_BuildsAffiliateLink(t *testing.T) {
	svc, repo := newCampaignService(1)

	// Approval without a prior application still succeeds.
	link, err := svc.Approve(context.Background(), "2", "creator-9")
	require.NoError(t, err)
	assert.Equal(t, "https://inflo.app/ref/2/creator-9", link)

	campaign, err := repo.FindByID("2")
	require.NoError(t, err)
	assert.Contains(t, campaign.ApprovedCreators, "creator-9")

	// Approving again keeps the list deduplicated.
	_, err = svc.Approve(context.Background(), "2", "creator-9")
	require.NoError(t, err)
	campaign, err = repo.FindByID("2")
	require.NoError(t, err)
	assert.Equal(t, 1, countOf(campaign.ApprovedCreators, "creator-9"))
}

func TestApprove_UnknownCampaign(t *testing.T) {
	svc, _ := newCampaignService(1)

	_, err := svc.Approve(context.Background(), "no-such-campaign", "creator-1")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newCampaignService(1)

	campaign, err := svc.UpdateStatus(context.Background(), "5", models.CampaignStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusCompleted, campaign.Status)

	_, err = svc.UpdateStatus(context.Background(), "no-such-campaign", models.CampaignStatusPaused)
	assert.Error(t, err)
}

func countOf(list []string, want string) int {
	n := 0
	for _, v := range list {
		if v == want {
			n++
		}
	}
	return n
}
