package app

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/S13G/nestwash/pkg/jwtx"
)

const tokenSecretBytes = 32

// InitTokenSigner loads the HS256 signing secret from cfg.TokenSecretFile,
// generating and persisting a fresh one on first boot. Losing the file
// invalidates every outstanding session, which is acceptable: tokens are
// short-lived and clients just log in again.
func InitTokenSigner(cfg Config, logger *slog.Logger) (*jwtx.HS256, error) {
	secret, err := loadOrGenerateSecret(cfg.TokenSecretFile, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load token secret: %w", err)
	}

	return jwtx.NewHS256(secret, cfg.Issuer)
}

func loadOrGenerateSecret(path string, logger *slog.Logger) ([]byte, error) {
	if data, err := os.ReadFile(path); err == nil {
		trimmed := strings.TrimSpace(string(data))
		if trimmed == "" {
			return nil, fmt.Errorf("token secret file %s is empty", path)
		}
		return []byte(trimmed), nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// First boot: generate and persist
	raw := make([]byte, tokenSecretBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	secret := base64.RawURLEncoding.EncodeToString(raw)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	if err := os.WriteFile(path, []byte(secret+"\n"), 0o600); err != nil {
		return nil, err
	}

	logger.Info("generated new token signing secret", "path", path)
	return []byte(secret), nil
}
