package integration_test

import (
	"os"
	"sync"
	"testing"

	"inflo_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, built on first use. Fixture
// campaigns are shared across tests, so tests that mutate them use distinct
// campaign IDs or assert idempotent operations only.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		os.Setenv("SERVER_PORT", "4001")
		os.Setenv("JWT_SECRET", "test-secret-key-12345")
		os.Setenv("MOCK_OTP_CODE", "1234")
		os.Setenv("MOCK_LATENCY_MS", "0")

		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
