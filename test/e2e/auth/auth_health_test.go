package auth_test

import (
	"testing"

	"github.com/S13G/nestwash/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	baseURL, _ := setupAuthServer(t)

	client := authsdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Uptime)
}

// TestReadyzEndpoint verifies the readiness check endpoint reports the
// database as reachable.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, _ := setupAuthServer(t)

	client := authsdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
