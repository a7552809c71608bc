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

func TestNotifications_WelcomeSeeded(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginCreator(t, ts, "+77050005001")

	res, body := ts.SendRequest(t, "GET", "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var notifications []models.Notification
	require.NoError(t, json.Unmarshal([]byte(body), &notifications))
	require.NotEmpty(t, notifications)

	found := false
	for _, n := range notifications {
		assert.Equal(t, user.ID, n.UserID)
		if n.ID == "notif-welcome-"+user.ID {
			found = true
			assert.False(t, n.Read)
		}
	}
	assert.True(t, found, "welcome notification missing")
}

func TestNotifications_MarkRead(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginCreator(t, ts, "+77050005002")

	notifID := "notif-welcome-" + user.ID

	res, _ := ts.SendRequest(t, "POST", "/api/v1/notifications/"+notifID+"/read", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Marking twice stays OK.
	res, _ = ts.SendRequest(t, "POST", "/api/v1/notifications/"+notifID+"/read", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, "GET", "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var notifications []models.Notification
	require.NoError(t, json.Unmarshal([]byte(body), &notifications))
	for _, n := range notifications {
		if n.ID == notifID {
			assert.True(t, n.Read)
		}
	}
}

func TestNotifications_MarkReadUnknownID(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginCreator(t, ts, "+77050005003")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/notifications/no-such-id/read", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
