package httpx

import "context"

type ctxKey string

const (
	// CtxKeyAccountID carries the validated token subject (account id).
	CtxKeyAccountID ctxKey = "account_id"
	// CtxKeyClaims carries the full jwtx.Claims if a handler wants them.
	CtxKeyClaims ctxKey = "claims"
)

// AccountIDFromContext returns the authenticated subject, if any.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyAccountID).(string)
	return v, ok && v != ""
}
