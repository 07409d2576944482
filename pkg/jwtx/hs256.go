package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
// Expiry is checked separately via Claims.ValidateExpiry so callers can
// decide how strict to be about clock skew.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")

	ErrEmptySecret = errors.New("jwtx: empty signing secret")
)

// HS256 signs and verifies tokens with a single server-held HMAC secret.
// It implements both Signer and Verifier.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 creates an HMAC-SHA256 signer/verifier. The issuer, when
// non-empty, is stamped on signed tokens and enforced during verification.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

func (h *HS256) Alg() string { return "HS256" }

// Sign produces a compact serialized token for the given claims.
func (h *HS256) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(h.secret)
}

// Verify parses the token, checks the HMAC signature and the issuer claim.
// It deliberately skips time-based validation; use Claims.ValidateExpiry.
func (h *HS256) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		switch {
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}
