package domain

import "time"

// OtpChallengeTTL is how long a freshly issued challenge stays redeemable.
const OtpChallengeTTL = 10 * time.Minute

// OtpChallenge records an issued one-time passcode. Only the SHA-256
// fingerprint of the 6-digit code is ever stored; the raw code is handed to
// the notifier once and then forgotten. A challenge is consumed at most once
// and is immutable apart from that single transition.
type OtpChallenge struct {
	ID         string
	CodeDigest string // unique among stored challenges
	ExpiresAt  time.Time
	Consumed   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expired reports whether the challenge is past its expiry at the given time.
func (c OtpChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
