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

func TestPurchaseSubscription_Monthly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginCreator(t, ts, "+77030003001")

	res, body := ts.SendRequest(t, "POST", "/api/v1/billing/subscribe", token, map[string]interface{}{
		"plan":            "monthly",
		"paymentMethodId": "pm-test-001",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "subscriptionId")

	// Plan and expiry moved together on the user record.
	updated, err := ts.Repos.Users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PlanMonthly, updated.SubscriptionPlan)
	require.NotNil(t, updated.SubscriptionExpiry)
	assert.True(t, updated.SubscriptionExpiry.After(*user.SubscriptionExpiry))
}

func TestPurchaseSubscription_InvalidPlan(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginCreator(t, ts, "+77030003002")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/billing/subscribe", token, map[string]interface{}{
		"plan":            "lifetime",
		"paymentMethodId": "pm-test-002",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPaymentHistory_SeededAndGrowing(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginCreator(t, ts, "+77030003003")

	res, body := ts.SendRequest(t, "GET", "/api/v1/billing/payments", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var before []models.Payment
	require.NoError(t, json.Unmarshal([]byte(body), &before))
	require.NotEmpty(t, before, "new users get a seeded payment history")

	res, _ = ts.SendRequest(t, "POST", "/api/v1/billing/subscribe", token, map[string]interface{}{
		"plan":            "yearly",
		"paymentMethodId": "pm-test-003",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, "GET", "/api/v1/billing/payments", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var after []models.Payment
	require.NoError(t, json.Unmarshal([]byte(body), &after))
	assert.Len(t, after, len(before)+1)
}

func TestBillingRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/billing/payments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
