package directory_test

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	directoryhttp "github.com/farrierlabs/accountd/internal/directory/http"
	"github.com/farrierlabs/accountd/internal/directory/service"
	"github.com/farrierlabs/accountd/internal/directory/store/drivers/memory"
	"github.com/farrierlabs/accountd/pkg/cryptox"
	"github.com/farrierlabs/accountd/pkg/dirsdk"
	"github.com/farrierlabs/accountd/pkg/httpx"
	"github.com/farrierlabs/accountd/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common constants and helper functions for directory service end-to-end
 * tests. Each test spins up a full in-process HTTP server over a fresh
 * in-memory store and talks to it through the dirsdk client.
 */

const (
	testPassword = "Sup3rSecret!"
	adminRole    = "admin"
	userRole     = "user"
)

// TestMain raises the rate limits for the whole run. Tests make many rapid
// requests from a single loopback address, which would otherwise trip the
// strict production profiles.
func TestMain(m *testing.M) {
	relaxed := httpx.RateLimitConfig{
		RequestsPerWindow: 1000,
		Window:            time.Minute,
		Burst:             1000,
	}
	httpx.StrictLimit = relaxed
	httpx.ModerateLimit = relaxed
	httpx.LenientLimit = relaxed

	pepperPath := filepath.Join(os.TempDir(), "accountd-e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// setupServer starts the full HTTP stack over a fresh in-memory store and
// returns an anonymous client pointed at it.
func setupServer(t *testing.T) *dirsdk.Client {
	t.Helper()

	st := memory.NewStore()
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "accountd",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "json",
	})

	router := directoryhttp.NewRouter("test", st, logger)
	router.Directory = &service.DirectoryService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		_ = st.Close()
	})

	return dirsdk.NewClient(server.URL)
}

// mustSignup creates an account and asserts the sanitized response shape.
func mustSignup(t *testing.T, client *dirsdk.Client, email, name, role string) dirsdk.AccountInfo {
	t.Helper()

	account, err := client.Signup(context.Background(), dirsdk.SignupRequest{
		Email:    email,
		Password: testPassword,
		Name:     name,
		Role:     role,
	})
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	require.Equal(t, strings.ToLower(strings.TrimSpace(email)), account.Email)
	return account
}

// asAdmin returns a client acting as the given admin account.
func asAdmin(client *dirsdk.Client, adminID string) *dirsdk.Client {
	return client.WithIdentity(adminID, adminRole)
}

// asUser returns a client acting as the given regular account.
func asUser(client *dirsdk.Client, userID string) *dirsdk.Client {
	return client.WithIdentity(userID, userRole)
}

// requireAPIError asserts err is an *dirsdk.APIError with the given status
// whose message contains the fragment.
func requireAPIError(t *testing.T, err error, status int, fragment string) *dirsdk.APIError {
	t.Helper()

	var apiErr *dirsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Contains(t, apiErr.Message, fragment)
	return apiErr
}

func strPtr(s string) *string { return &s }
