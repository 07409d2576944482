package cryptox

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateOtpCode(t *testing.T) {
	seen := make(map[string]struct{})

	for range 200 {
		code, err := GenerateOtpCode()
		require.NoError(t, err)
		require.Len(t, code, OtpCodeDigits, "codes are zero-padded to 6 digits")

		n, err := strconv.Atoi(code)
		require.NoError(t, err, "codes are purely numeric")
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 1_000_000)

		seen[code] = struct{}{}
	}

	// 200 draws from a 1e6 space should essentially never all collide.
	require.Greater(t, len(seen), 150, "codes should be well distributed")
}

func TestFingerprintToken(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, FingerprintToken("123456"), FingerprintToken("123456"))
	})

	t.Run("distinct inputs produce distinct digests", func(t *testing.T) {
		require.NotEqual(t, FingerprintToken("123456"), FingerprintToken("123457"))
	})

	t.Run("digest never contains the raw value", func(t *testing.T) {
		require.NotContains(t, FingerprintToken("734159"), "734159")
	})

	t.Run("fixed length", func(t *testing.T) {
		require.Len(t, FingerprintToken("000000"), 43)
		require.Len(t, FingerprintToken("a much longer secret value"), 43)
	})
}
