package domain

import "time"

// Account is a NestWash user account. It is created identity-only (email
// address and nothing else) the moment OTP verification succeeds, then
// completed exactly once with credentials, profile and role.
type Account struct {
	ID           string
	EmailAddress string
	PasswordHash string // argon2 encoded; empty until registration completes
	FullName     string
	Address      string
	Role         Role // empty until registration completes
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Registered reports whether the account has completed registration.
func (a Account) Registered() bool {
	return a.PasswordHash != "" && a.Role != ""
}
