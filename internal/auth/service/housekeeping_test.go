package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeepingDeletesExpiredChallenges(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seedChallenge(t, st, "101010", time.Now().UTC().Add(-time.Minute))
	seedChallenge(t, st, "202020", time.Now().UTC().Add(10*time.Minute))

	hk := NewHousekeepingService(st, slog.Default(), time.Hour)
	hk.Start()
	hk.Stop()

	// The expired challenge is gone: consuming it reports not-found even
	// though its row would otherwise still match by digest.
	svc := &OtpService{Store: st, Notifier: &captureNotifier{}}
	require.ErrorIs(t, svc.VerifyOtp(ctx, "gc@example.com", "101010"), ErrInvalidOtp)

	// The live one survived.
	require.NoError(t, svc.VerifyOtp(ctx, "live@example.com", "202020"))
}

func TestHousekeepingIntervalDefault(t *testing.T) {
	hk := NewHousekeepingService(newTestStore(t), slog.Default(), 0)
	require.Equal(t, time.Hour, hk.Interval)
}
