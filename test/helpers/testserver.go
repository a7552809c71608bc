package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inflo_backend/internal/app"
	"inflo_backend/internal/config"
	"inflo_backend/internal/logger"
	"inflo_backend/internal/repositories"
)

// TestServer wraps an httptest server around the full gin router with the
// in-memory repositories exposed for direct assertions.
type TestServer struct {
	Server *httptest.Server
	Repos  *repositories.Repositories
}

// NewTestServer builds a server from the current environment. Callers set
// SERVER_ENV=test (and friends) before the first call.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	router, repos := app.SetupRouter(cfg)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		Repos:  repos,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
}

// SendRequest performs one JSON request against the test server and returns
// the response together with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
