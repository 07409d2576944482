package service

import (
	"errors"
	"time"

	"github.com/S13G/nestwash/pkg/jwtx"
)

// ErrInvalidToken covers every way a session token can fail validation.
var ErrInvalidToken = errors.New("invalid session token")

// TokenService issues and validates stateless session tokens. Both paths are
// pure computation over the signing secret; no store access, trivially safe
// under concurrency.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier

	Issuer     string
	SessionTTL time.Duration
}

// Issue mints a signed session token carrying the account id as subject.
// The expiry claim is always set; a token without one never validates.
func (s *TokenService) Issue(accountID string) (string, error) {
	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(accountID, s.Issuer, ttl, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Validate checks signature, issuer, subject and expiry, and returns the
// subject account id. Malformed, tampered and expired tokens all map to
// ErrInvalidToken.
func (s *TokenService) Validate(token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	if err := claims.ValidateExpiry(); err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
