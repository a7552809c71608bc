package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"inflo_backend/internal/models"
)

type createUserResponse struct {
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

// CreateAndLoginCreator registers a creator through the real onboarding
// endpoints and returns a usable bearer token plus the created user.
func CreateAndLoginCreator(t *testing.T, ts *TestServer, phone string) (string, *models.User) {
	return createUser(t, ts, phone, map[string]interface{}{
		"role":          "creator",
		"phoneNumber":   phone,
		"name":          "Test Creator",
		"category":      "Fashion",
		"instagramLink": "https://instagram.com/testcreator",
	})
}

// CreateAndLoginBrand registers a brand user.
func CreateAndLoginBrand(t *testing.T, ts *TestServer, phone string) (string, *models.User) {
	return createUser(t, ts, phone, map[string]interface{}{
		"role":        "brand",
		"phoneNumber": phone,
		"name":        "Test Brand Owner",
		"brandName":   "Test Brand",
	})
}

func createUser(t *testing.T, ts *TestServer, phone string, body map[string]interface{}) (string, *models.User) {
	t.Helper()

	// OTP round-trip first, same as the mobile flow.
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/send-otp", "", map[string]interface{}{"phoneNumber": phone})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("send-otp returned %d", res.StatusCode)
	}
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/verify-otp", "", map[string]interface{}{"phoneNumber": phone, "otp": "1234"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("verify-otp returned %d", res.StatusCode)
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/users", "", body)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create user returned %d: %s", res.StatusCode, bodyStr)
	}

	var parsed createUserResponse
	if err := json.Unmarshal([]byte(bodyStr), &parsed); err != nil {
		t.Fatalf("Failed to parse create user response: %v", err)
	}
	if parsed.User == nil || parsed.Token == "" {
		t.Fatalf("create user response missing user or token: %s", bodyStr)
	}
	return parsed.Token, parsed.User
}
