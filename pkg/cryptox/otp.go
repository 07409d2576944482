package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/big"
)

// OtpCodeDigits is the length of generated one-time passcodes.
const OtpCodeDigits = 6

var otpCodeSpace = big.NewInt(1_000_000)

// GenerateOtpCode draws a uniformly random zero-padded 6-digit code
// ("000000".."999999") from the system CSPRNG.
func GenerateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeSpace)
	if err != nil {
		return "", fmt.Errorf("cryptox: failed to generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// FingerprintToken returns a deterministic SHA-256 fingerprint of a secret,
// base64url-encoded (43 chars). Stored in place of the raw value so the
// database can enforce uniqueness and look entries up without ever holding
// the secret itself.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
