package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/S13G/nestwash/internal/auth/domain"
	"github.com/S13G/nestwash/internal/auth/store"
	"github.com/S13G/nestwash/pkg/cryptox"
	"github.com/S13G/nestwash/pkg/slogx"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAlreadyRegistered  = errors.New("account already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountService struct {
	Store store.Store
}

// Register completes an identity-only account with credentials, profile and
// role. The account must already exist (created by OTP verification); the
// completing update happens exactly once.
func (s *AccountService) Register(
	ctx context.Context,
	emailAddress, password, fullName, address, roleName string,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	emailAddress = strings.TrimSpace(emailAddress)
	if emailAddress == "" {
		return domain.Account{}, ErrEmailRequired
	}
	if password == "" {
		return domain.Account{}, ErrPasswordRequired
	}

	role, err := domain.ParseRole(roleName)
	if err != nil {
		log.Warn("registration with unknown role", slog.String("role", roleName))
		return domain.Account{}, ErrInvalidRole
	}

	// 2. The email must belong to an identity-only account
	account, err := s.Store.Accounts().GetAccountByEmail(ctx, emailAddress)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("registration for unverified email")
			return domain.Account{}, ErrAccountNotFound
		}
		log.Error("failed to fetch account", slog.Any("error", err))
		return domain.Account{}, err
	}
	if account.Registered() {
		log.Warn("repeat registration attempt", slog.String("account_id", account.ID))
		return domain.Account{}, ErrAlreadyRegistered
	}

	// 3. Hash the password and apply the single completing update
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, err
	}

	if err := s.Store.Accounts().CompleteRegistration(
		ctx, account.ID, passwordHash, fullName, address, role,
	); err != nil {
		log.Error("failed to complete registration",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return domain.Account{}, err
	}

	log.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("role", role.String()),
	)

	return s.Store.Accounts().GetAccountByID(ctx, account.ID)
}

// Login checks an email/password pair and returns the account on success.
// Password mismatch and incomplete registration both answer with the same
// generic credential error so callers can't probe which factor failed.
func (s *AccountService) Login(
	ctx context.Context,
	emailAddress, password string,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, strings.TrimSpace(emailAddress))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login for unknown email")
			return domain.Account{}, ErrAccountNotFound
		}
		log.Error("failed to fetch account", slog.Any("error", err))
		return domain.Account{}, err
	}

	if !account.Registered() {
		log.Warn("login before registration completed", slog.String("account_id", account.ID))
		return domain.Account{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		log.Warn("login password mismatch", slog.String("account_id", account.ID))
		return domain.Account{}, ErrInvalidCredentials
	}

	log.Info("login succeeded", slog.String("account_id", account.ID))
	return account, nil
}

// GetAccountByID fetches an account by id; used by the auth gate to resolve
// the current principal.
func (s *AccountService) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	return account, nil
}
