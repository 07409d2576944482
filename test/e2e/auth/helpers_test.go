package auth_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	httpapi "github.com/S13G/nestwash/internal/auth/http"
	"github.com/S13G/nestwash/internal/auth/service"
	"github.com/S13G/nestwash/internal/auth/store/drivers/sqlite"
	"github.com/S13G/nestwash/pkg/authsdk"
	"github.com/S13G/nestwash/pkg/cryptox"
	"github.com/S13G/nestwash/pkg/jwtx"
	"github.com/S13G/nestwash/pkg/slogx"
	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for auth service end-to-end tests. The full service is
 * assembled in-process and exercised over HTTP through the SDK, with the
 * outbound mailer replaced by a capture sink so tests can read the codes
 * that would have been emailed.
 */

const (
	testIssuer = "nestwash-auth-test"
	testSecret = "e2e-test-signing-secret"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper file so tests never touch a real one
	pepperPath := filepath.Join(os.TempDir(), "nestwash-e2e-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// otpSink captures codes instead of emailing them.
type otpSink struct {
	mu    sync.Mutex
	codes map[string]string // email -> latest code
}

func newOtpSink() *otpSink {
	return &otpSink{codes: make(map[string]string)}
}

func (s *otpSink) EnqueueOtp(emailAddress, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[emailAddress] = code
}

func (s *otpSink) codeFor(t *testing.T, emailAddress string) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[emailAddress]
	require.True(t, ok, "no otp was issued for %s", emailAddress)
	return code
}

// setupAuthServer assembles the service on a real listener and returns its
// base URL plus the captured-OTP sink.
func setupAuthServer(t *testing.T) (string, *otpSink) {
	t.Helper()

	logger := slogx.New(slogx.Config{
		Service: "nestwash-auth",
		Version: "test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	dbFile := filepath.Join(t.TempDir(), "auth.db")
	st, err := sqlite.NewStore("file:" + dbFile + "?_busy_timeout=5000&_journal_mode=WAL")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte(testSecret), testIssuer)
	require.NoError(t, err)

	sink := newOtpSink()

	router := httpapi.NewRouter(signer, "test", st, logger)
	router.OtpService = &service.OtpService{Store: st, Notifier: sink}
	router.AccountService = &service.AccountService{Store: st}
	router.TokenService = &service.TokenService{
		Signer:   signer,
		Verifier: signer,
		Issuer:   testIssuer,
	}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server.URL, sink
}

// signupAccount drives the whole flow for an address and returns a live
// session. Used by tests that need an authenticated starting point.
func signupAccount(t *testing.T, baseURL string, sink *otpSink, email, password, role string) *authsdk.Session {
	t.Helper()
	ctx := t.Context()
	client := authsdk.NewSDKClient(baseURL)

	require.NoError(t, client.RequestOtp(ctx, email))
	require.NoError(t, client.VerifyOtp(ctx, email, sink.codeFor(t, email)))

	_, err := client.Register(ctx, authsdk.RegisterRequest{
		Email:    email,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, email, password)
	require.NoError(t, err)
	return session
}

// requireAPIError asserts err is an *APIError with the given status code.
func requireAPIError(t *testing.T, err error, statusCode int) {
	t.Helper()
	require.Error(t, err)
	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, statusCode, apiErr.StatusCode)
}
