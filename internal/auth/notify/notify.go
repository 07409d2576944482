// Package notify is the outbound email sink for one-time passcodes. Delivery
// is fire-and-forget: the OTP issuance path enqueues and moves on, and a slow
// or failing mail server never blocks or fails the request.
package notify

import (
	"log/slog"
)

// Notifier hands an issued passcode off for delivery. Implementations must
// not block the caller.
type Notifier interface {
	EnqueueOtp(emailAddress, code string)
}

// LogNotifier is the sink used when no SMTP server is configured (dev and
// test environments). It logs that a code was issued without ever logging
// the code itself.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) EnqueueOtp(emailAddress, code string) {
	n.Logger.Info("otp notification skipped, no smtp configured",
		slog.String("email", emailAddress),
	)
}
