package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"inflo_backend/internal/models"
	"inflo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createCampaignResponse struct {
	Success  bool             `json:"success"`
	Campaign *models.Campaign `json:"campaign"`
}

func listCampaigns(t *testing.T, ts *helpers.TestServer, query string) []models.Campaign {
	t.Helper()

	res, body := ts.SendRequest(t, "GET", "/api/v1/campaigns"+query, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var campaigns []models.Campaign
	require.NoError(t, json.Unmarshal([]byte(body), &campaigns))
	return campaigns
}

func TestListCampaigns_Fixtures(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	campaigns := listCampaigns(t, ts, "")

	require.GreaterOrEqual(t, len(campaigns), 6)
	titles := make(map[string]bool)
	for _, c := range campaigns {
		titles[c.Title] = true
	}
	assert.True(t, titles["Summer Fashion Collection"])
	assert.True(t, titles["Tech Gadget Review"])
}

func TestListCampaigns_StatusFilter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	campaigns := listCampaigns(t, ts, "?status=active")

	require.NotEmpty(t, campaigns)
	for _, c := range campaigns {
		assert.Equal(t, models.CampaignStatusActive, c.Status)
	}
}

func TestListCampaigns_CategoryMatchesTitle(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	campaigns := listCampaigns(t, ts, "?category=fashion")

	require.NotEmpty(t, campaigns)
	for _, c := range campaigns {
		assert.Contains(t, c.Title, "Fashion")
	}
}

func TestListCampaigns_MinBudget(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	campaigns := listCampaigns(t, ts, "?minBudget=5000")

	require.NotEmpty(t, campaigns)
	for _, c := range campaigns {
		assert.GreaterOrEqual(t, c.Budget, 5000.0)
	}
}

func TestListCampaigns_CreatorRelevantPreservesSet(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	// A dedicated brand keeps this set stable under parallel tests.
	brandToken, brand := helpers.CreateAndLoginBrand(t, ts, "+77020002100")
	for _, title := range []string{"Shuffle A", "Shuffle B", "Shuffle C"} {
		res, body := ts.SendRequest(t, "POST", "/api/v1/campaigns", brandToken, map[string]interface{}{
			"title":        title,
			"description":  "Shuffle membership check",
			"deliverables": []string{"Post"},
			"budget":       100,
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	plain := listCampaigns(t, ts, "?brandId="+brand.ID)
	shuffled := listCampaigns(t, ts, "?brandId="+brand.ID+"&creatorRelevant=true")

	// Shuffling reorders but never adds, drops or duplicates.
	require.Equal(t, len(plain), len(shuffled))
	ids := make(map[string]int)
	for _, c := range plain {
		ids[c.ID]++
	}
	for _, c := range shuffled {
		ids[c.ID]--
	}
	for id, n := range ids {
		assert.Zero(t, n, "campaign %s count mismatch", id)
	}
}

func TestCreateCampaign_BrandOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	brandToken, brand := helpers.CreateAndLoginBrand(t, ts, "+77020002001")
	creatorToken, _ := helpers.CreateAndLoginCreator(t, ts, "+77020002002")

	campaignBody := map[string]interface{}{
		"title":               "Integration Launch",
		"description":         "Launch campaign created from a test",
		"deliverables":        []string{"Instagram Post"},
		"affiliatePercentage": 10,
		"budget":              1500,
		"minFollowers":        1000,
	}

	// Creators cannot create campaigns.
	res, _ := ts.SendRequest(t, "POST", "/api/v1/campaigns", creatorToken, campaignBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, "POST", "/api/v1/campaigns", brandToken, campaignBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created createCampaignResponse
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotNil(t, created.Campaign)
	assert.NotEmpty(t, created.Campaign.ID)
	assert.Equal(t, brand.ID, created.Campaign.BrandID)
	assert.Equal(t, models.CampaignStatusActive, created.Campaign.Status)
	assert.Empty(t, created.Campaign.Applicants)
}

func TestApplyCampaign_Idempotent(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	creatorToken, creator := helpers.CreateAndLoginCreator(t, ts, "+77020002003")

	applyBody := map[string]interface{}{"creatorId": creator.ID}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/campaigns/3/apply", creatorToken, applyBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, "POST", "/api/v1/campaigns/3/apply", creatorToken, applyBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	campaign, err := ts.Repos.Campaigns.FindByID("3")
	require.NoError(t, err)

	count := 0
	for _, id := range campaign.Applicants {
		if id == creator.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestApplyCampaign_UnknownIDSilentlyIgnored(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	creatorToken, creator := helpers.CreateAndLoginCreator(t, ts, "+77020002004")

	res, body := ts.SendRequest(t, "POST", "/api/v1/campaigns/no-such-campaign/apply", creatorToken, map[string]interface{}{
		"creatorId": creator.ID,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"success":true`)
}

func TestApproveApplication_WithoutPriorApply(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	brandToken, _ := helpers.CreateAndLoginBrand(t, ts, "+77020002005")

	// Approval does not require a prior application.
	res, body := ts.SendRequest(t, "POST", "/api/v1/campaigns/4/approve", brandToken, map[string]interface{}{
		"creatorId": "creator-9",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "https://inflo.app/ref/4/creator-9")

	campaign, err := ts.Repos.Campaigns.FindByID("4")
	require.NoError(t, err)
	assert.Contains(t, campaign.ApprovedCreators, "creator-9")
}

func TestApproveApplication_UnknownCampaign(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	brandToken, _ := helpers.CreateAndLoginBrand(t, ts, "+77020002006")

	res, body := ts.SendRequest(t, "POST", "/api/v1/campaigns/no-such-campaign/approve", brandToken, map[string]interface{}{
		"creatorId": "creator-1",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "NOT_FOUND")
}

func TestUpdateCampaignStatus(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	brandToken, _ := helpers.CreateAndLoginBrand(t, ts, "+77020002007")

	res, body := ts.SendRequest(t, "POST", "/api/v1/campaigns", brandToken, map[string]interface{}{
		"title":        "Pausable Campaign",
		"description":  "Campaign that will be paused",
		"deliverables": []string{"Story"},
		"budget":       500,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created createCampaignResponse
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotNil(t, created.Campaign)

	res, body = ts.SendRequest(t, "PATCH", "/api/v1/campaigns/"+created.Campaign.ID+"/status", brandToken, map[string]interface{}{
		"status": "paused",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Campaign
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, models.CampaignStatusPaused, updated.Status)
}
