package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/S13G/nestwash/internal/auth/domain"
	"github.com/S13G/nestwash/internal/auth/store"
	"github.com/S13G/nestwash/internal/auth/store/drivers/sqlite"
	"github.com/S13G/nestwash/pkg/cryptox"
	"github.com/S13G/nestwash/pkg/idx"
	"github.com/stretchr/testify/require"
)

// captureNotifier records enqueued codes instead of sending email.
type captureNotifier struct {
	mu     sync.Mutex
	emails []string
	codes  []string
}

func (n *captureNotifier) EnqueueOtp(emailAddress, code string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, emailAddress)
	n.codes = append(n.codes, code)
}

func (n *captureNotifier) lastCode(t *testing.T) string {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.codes, "no code was enqueued")
	return n.codes[len(n.codes)-1]
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newOtpService(t *testing.T) (*OtpService, *captureNotifier) {
	t.Helper()
	sink := &captureNotifier{}
	return &OtpService{Store: newTestStore(t), Notifier: sink}, sink
}

func seedIdentityOnlyAccount(t *testing.T, st store.Store, email string) domain.Account {
	t.Helper()
	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New().String(),
		EmailAddress: email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Accounts().CreateAccount(context.Background(), account))
	return account
}

func seedChallenge(t *testing.T, st store.Store, code string, expiresAt time.Time) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, st.OtpChallenges().CreateChallenge(context.Background(), domain.OtpChallenge{
		ID:         idx.New().String(),
		CodeDigest: cryptox.FingerprintToken(code),
		ExpiresAt:  expiresAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}))
}

func TestRequestOtpRequiresEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOtpService(t)

	require.ErrorIs(t, svc.RequestOtp(ctx, ""), ErrEmailRequired)
	require.ErrorIs(t, svc.RequestOtp(ctx, "   "), ErrEmailRequired)
}

func TestRequestOtpRejectsExistingAccount(t *testing.T) {
	ctx := context.Background()
	svc, sink := newOtpService(t)

	seedIdentityOnlyAccount(t, svc.Store, "taken@example.com")

	require.ErrorIs(t, svc.RequestOtp(ctx, "taken@example.com"), ErrAccountExists)
	require.Empty(t, sink.codes, "no code should be issued for an existing account")
}

func TestRequestOtpIssuesDistinctChallenges(t *testing.T) {
	ctx := context.Background()
	svc, sink := newOtpService(t)

	require.NoError(t, svc.RequestOtp(ctx, "a@b.com"))
	require.NoError(t, svc.RequestOtp(ctx, "a@b.com"))

	require.Len(t, sink.codes, 2)
	// The digest unique constraint guarantees the two stored challenges
	// differ, so the delivered codes must differ too.
	require.NotEqual(t, sink.codes[0], sink.codes[1])
}

func TestRequestOtpRetriesOnCollision(t *testing.T) {
	ctx := context.Background()
	svc, sink := newOtpService(t)

	seedChallenge(t, svc.Store, "111111", time.Now().UTC().Add(domain.OtpChallengeTTL))

	// First two draws collide with the seeded challenge, third succeeds.
	draws := []string{"111111", "111111", "222222"}
	var calls int
	svc.GenerateCode = func() (string, error) {
		code := draws[calls]
		calls++
		return code, nil
	}

	require.NoError(t, svc.RequestOtp(ctx, "retry@example.com"))
	require.Equal(t, 3, calls)
	require.Equal(t, "222222", sink.lastCode(t))
}

func TestRequestOtpExhaustsAfterFiveCollisions(t *testing.T) {
	ctx := context.Background()
	svc, sink := newOtpService(t)

	seedChallenge(t, svc.Store, "424242", time.Now().UTC().Add(domain.OtpChallengeTTL))

	var calls int
	svc.GenerateCode = func() (string, error) {
		calls++
		return "424242", nil // always collides
	}

	require.ErrorIs(t, svc.RequestOtp(ctx, "unlucky@example.com"), ErrGenerationExhausted)
	require.Equal(t, maxGenerationAttempts, calls)
	require.Empty(t, sink.codes, "no notification for a failed issuance")

	// The colliding attempts left no rows behind: the seeded challenge is
	// still the only one, and it consumes exactly once.
	require.NoError(t, svc.VerifyOtp(ctx, "unlucky@example.com", "424242"))
	require.ErrorIs(t, svc.VerifyOtp(ctx, "other@example.com", "424242"), ErrInvalidOtp)
}

func TestVerifyOtpHappyPath(t *testing.T) {
	ctx := context.Background()
	svc, sink := newOtpService(t)

	require.NoError(t, svc.RequestOtp(ctx, "new@example.com"))
	code := sink.lastCode(t)

	require.NoError(t, svc.VerifyOtp(ctx, "new@example.com", code))

	account, err := svc.Store.Accounts().GetAccountByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	require.False(t, account.Registered(), "verification creates an identity-only account")
	require.Empty(t, account.PasswordHash)
	require.Empty(t, account.Role)
}

func TestVerifyOtpIsSingleUse(t *testing.T) {
	ctx := context.Background()
	svc, sink := newOtpService(t)

	require.NoError(t, svc.RequestOtp(ctx, "once@example.com"))
	code := sink.lastCode(t)

	require.NoError(t, svc.VerifyOtp(ctx, "once@example.com", code))
	require.ErrorIs(t, svc.VerifyOtp(ctx, "twice@example.com", code), ErrInvalidOtp)
}

func TestVerifyOtpRejectsExpiredChallenge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOtpService(t)

	seedChallenge(t, svc.Store, "987654", time.Now().UTC().Add(-time.Second))

	require.ErrorIs(t, svc.VerifyOtp(ctx, "late@example.com", "987654"), ErrInvalidOtp)
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	ctx := context.Background()
	svc, sink := newOtpService(t)

	require.NoError(t, svc.RequestOtp(ctx, "guess@example.com"))
	right := sink.lastCode(t)

	wrong := "000000"
	if wrong == right {
		wrong = "000001"
	}

	require.ErrorIs(t, svc.VerifyOtp(ctx, "guess@example.com", wrong), ErrInvalidOtp)
	require.ErrorIs(t, svc.VerifyOtp(ctx, "guess@example.com", ""), ErrInvalidOtp)
}

func TestVerifyOtpDuplicateEmailRollsBackConsumption(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOtpService(t)

	seedIdentityOnlyAccount(t, svc.Store, "already@example.com")
	seedChallenge(t, svc.Store, "314159", time.Now().UTC().Add(domain.OtpChallengeTTL))

	// A valid code claimed for an email that raced into existence: the
	// account insert conflicts and the whole transaction, including the
	// consumed-flag flip, rolls back.
	require.ErrorIs(t, svc.VerifyOtp(ctx, "already@example.com", "314159"), ErrAccountExists)

	// The challenge survived and still verifies for a fresh email.
	require.NoError(t, svc.VerifyOtp(ctx, "fresh@example.com", "314159"))
}
