package integration_test

import (
	"net/http"
	"testing"

	"inflo_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImage(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginCreator(t, ts, "+77040004001")

	res, body := ts.SendRequest(t, "POST", "/api/v1/content/upload", token, map[string]interface{}{
		"fileName": "deliverable.jpg",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "https://mock-cdn.inflo.app/uploads/")
}

func TestSubmitContent_CreatorOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	creatorToken, creator := helpers.CreateAndLoginCreator(t, ts, "+77040004002")
	brandToken, _ := helpers.CreateAndLoginBrand(t, ts, "+77040004003")

	submitBody := map[string]interface{}{
		"campaignId":  "5",
		"imageUrl":    "https://mock-cdn.inflo.app/uploads/1.jpg",
		"description": "First deliverable",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/content/submit", brandToken, submitBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, "POST", "/api/v1/content/submit", creatorToken, submitBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, `"status":"pending"`)
	assert.Contains(t, body, creator.ID)
}
