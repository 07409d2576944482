package store

import (
	"context"
	"errors"
	"time"

	"github.com/S13G/nestwash/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and it is the single place the atomicity guarantees the services
// rely on are enforced: unique email, unique code digest, and the
// consumed-flag compare-and-set.
type Store interface {
	Accounts() Accounts
	OtpChallenges() OtpChallenges

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step operations that must be atomic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetAccountByID returns an account by id.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail is used during login and registration.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// ExistsByEmail reports whether any account holds the email address.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// CreateAccount inserts a new identity-only account (id provided by the
	// app via ULID). A duplicate email surfaces as ErrAlreadyExists, never a
	// silent overwrite.
	CreateAccount(ctx context.Context, a domain.Account) error

	// CompleteRegistration sets the password hash, profile fields and role
	// in one update and bumps updated_at.
	CompleteRegistration(
		ctx context.Context,
		accountID string,
		passwordHash, fullName, address string,
		role domain.Role,
	) error
}

type OtpChallenges interface {
	// CreateChallenge inserts a new challenge. The code_digest column is
	// unique; a collision surfaces as ErrAlreadyExists so the generator can
	// retry. Insert-or-conflict, never check-then-insert.
	CreateChallenge(ctx context.Context, c domain.OtpChallenge) error

	// ConsumeChallenge atomically flips consumed=false to true for the
	// challenge matching digest, provided it has not expired at `now`.
	// Returns ErrNotFound when no live challenge matches, which covers
	// unknown, expired and already-consumed codes alike. This is a single
	// compare-and-set so two concurrent verifications can never both win.
	ConsumeChallenge(ctx context.Context, digest string, now time.Time) error

	// DeleteExpiredChallenges is housekeeping, not part of the core flow.
	DeleteExpiredChallenges(ctx context.Context) error
}
