package sqlite

import (
	"context"
	"time"

	"github.com/S13G/nestwash/internal/auth/domain"
	"github.com/S13G/nestwash/internal/auth/store"
)

type otpChallengesRepo struct {
	db dbtx
}

func (r *otpChallengesRepo) CreateChallenge(ctx context.Context, c domain.OtpChallenge) error {
	// Relies on the UNIQUE constraint on code_digest: a colliding insert
	// fails atomically instead of racing a separate existence check.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO otp_challenges (id, code_digest, expires_at, consumed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.CodeDigest,
		c.ExpiresAt,
		c.Consumed,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *otpChallengesRepo) ConsumeChallenge(ctx context.Context, digest string, now time.Time) error {
	// Single compare-and-set: only an unconsumed, unexpired challenge
	// matching the digest flips. RowsAffected==0 means wrong, expired or
	// already-consumed, which all look identical to the caller.
	res, err := r.db.ExecContext(ctx,
		`UPDATE otp_challenges
		    SET consumed = 1, updated_at = ?
		  WHERE code_digest = ? AND consumed = 0 AND expires_at > ?`,
		now, digest, now)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *otpChallengesRepo) DeleteExpiredChallenges(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM otp_challenges WHERE expires_at <= ?`, time.Now().UTC())
	return err
}
