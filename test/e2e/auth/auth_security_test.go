package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/S13G/nestwash/pkg/authsdk"
	"github.com/S13G/nestwash/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// TestMeWithoutToken verifies the profile endpoint is gated.
func TestMeWithoutToken(t *testing.T) {
	baseURL, _ := setupAuthServer(t)
	ctx := t.Context()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/v1/me", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, resp.Header.Get("WWW-Authenticate"), "invalid_token")
}

// TestMeWithGarbageToken verifies unparseable tokens are rejected.
func TestMeWithGarbageToken(t *testing.T) {
	baseURL, _ := setupAuthServer(t)
	ctx := t.Context()
	client := authsdk.NewSDKClient(baseURL)

	session := client.NewSessionFromToken("definitely-not-a-jwt")
	_, err := session.Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized)
}

// TestMeWithForeignSignature verifies tokens signed under a different
// secret are rejected even when their claims look right.
func TestMeWithForeignSignature(t *testing.T) {
	baseURL, sink := setupAuthServer(t)
	ctx := t.Context()
	client := authsdk.NewSDKClient(baseURL)

	session := signupAccount(t, baseURL, sink, "victim@example.com", "Sudsy123!", "customer")
	profile, err := session.Me(ctx)
	require.NoError(t, err)

	forger, err := jwtx.NewHS256([]byte("attacker-controlled-secret"), testIssuer)
	require.NoError(t, err)
	forged, err := forger.Sign(jwtx.NewSessionClaims(profile.ID, testIssuer, time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = client.NewSessionFromToken(forged).Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized)
}

// TestMeWithExpiredToken verifies expired tokens are rejected.
func TestMeWithExpiredToken(t *testing.T) {
	baseURL, sink := setupAuthServer(t)
	ctx := t.Context()
	client := authsdk.NewSDKClient(baseURL)

	session := signupAccount(t, baseURL, sink, "stale@example.com", "Sudsy123!", "customer")
	profile, err := session.Me(ctx)
	require.NoError(t, err)

	// Same secret, same issuer, but the lifetime ran out long ago.
	signer, err := jwtx.NewHS256([]byte(testSecret), testIssuer)
	require.NoError(t, err)
	expired, err := signer.Sign(jwtx.NewSessionClaims(
		profile.ID, testIssuer, time.Minute, time.Now().UTC().Add(-time.Hour),
	))
	require.NoError(t, err)

	_, err = client.NewSessionFromToken(expired).Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized)
}

// TestMeWithOrphanedSubject verifies a well-signed token whose subject no
// longer resolves to an account is treated as unauthorized.
func TestMeWithOrphanedSubject(t *testing.T) {
	baseURL, _ := setupAuthServer(t)
	ctx := t.Context()
	client := authsdk.NewSDKClient(baseURL)

	signer, err := jwtx.NewHS256([]byte(testSecret), testIssuer)
	require.NoError(t, err)
	orphan, err := signer.Sign(jwtx.NewSessionClaims(
		"01JGONE00000000000000GONE0", testIssuer, time.Hour, time.Now().UTC(),
	))
	require.NoError(t, err)

	_, err = client.NewSessionFromToken(orphan).Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized)
}
