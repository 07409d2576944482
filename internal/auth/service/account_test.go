package service

import (
	"context"
	"testing"

	"github.com/S13G/nestwash/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	return &AccountService{Store: newTestStore(t)}
}

func TestRegisterCompletesIdentityOnlyAccount(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	seeded := seedIdentityOnlyAccount(t, svc.Store, "reg@example.com")

	account, err := svc.Register(ctx, "reg@example.com", "hunter2!", "Ada Lovelace", "12 Analytical Way", "customer")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, account.ID)
	require.True(t, account.Registered())
	require.Equal(t, domain.RoleCustomer, account.Role)
	require.Equal(t, "Ada Lovelace", account.FullName)
	require.Equal(t, "12 Analytical Way", account.Address)
	require.NotEqual(t, "hunter2!", account.PasswordHash, "password must be stored hashed")
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	seedIdentityOnlyAccount(t, svc.Store, "val@example.com")

	_, err := svc.Register(ctx, "", "pw", "", "", "customer")
	require.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Register(ctx, "val@example.com", "", "", "", "customer")
	require.ErrorIs(t, err, ErrPasswordRequired)

	_, err = svc.Register(ctx, "val@example.com", "pw", "", "", "admin")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterRequiresVerifiedEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	_, err := svc.Register(ctx, "nobody@example.com", "pw", "", "", "driver")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRegisterHappensExactlyOnce(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	seedIdentityOnlyAccount(t, svc.Store, "once@example.com")

	_, err := svc.Register(ctx, "once@example.com", "first-pw", "", "", "driver")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "once@example.com", "second-pw", "", "", "customer")
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	// The first registration's credentials still stand.
	account, err := svc.Login(ctx, "once@example.com", "first-pw")
	require.NoError(t, err)
	require.Equal(t, domain.RoleDriver, account.Role)
}

func TestLoginHappyPath(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	seedIdentityOnlyAccount(t, svc.Store, "login@example.com")
	_, err := svc.Register(ctx, "login@example.com", "s3cret", "", "", "service_provider")
	require.NoError(t, err)

	account, err := svc.Login(ctx, "login@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "login@example.com", account.EmailAddress)
	require.Equal(t, domain.RoleServiceProvider, account.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	seedIdentityOnlyAccount(t, svc.Store, "bad@example.com")
	_, err := svc.Register(ctx, "bad@example.com", "right-pw", "", "", "customer")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "bad@example.com", "wrong-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "bad@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "missing@example.com", "right-pw")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLoginRejectsIdentityOnlyAccount(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	// Verified but never registered: no password to check against.
	seedIdentityOnlyAccount(t, svc.Store, "half@example.com")

	_, err := svc.Login(ctx, "half@example.com", "anything")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetAccountByID(t *testing.T) {
	ctx := context.Background()
	svc := newAccountService(t)

	seeded := seedIdentityOnlyAccount(t, svc.Store, "byid@example.com")

	account, err := svc.GetAccountByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.Equal(t, seeded.EmailAddress, account.EmailAddress)

	_, err = svc.GetAccountByID(ctx, "01JUNK0000000000000000JUNK")
	require.ErrorIs(t, err, ErrAccountNotFound)
}
