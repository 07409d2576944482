package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/S13G/nestwash/pkg/jwtx"
	"github.com/S13G/nestwash/pkg/slogx"
)

// AuthnMiddleware extracts a bearer token from the Authorization header
// ("<scheme> <token>", the token segment is what counts), verifies it, and
// injects the subject into the request context. Requests without a valid
// token are rejected before any handler logic runs.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			fields := strings.Fields(r.Header.Get("Authorization"))
			if len(fields) != 2 {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := fields[1]

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("token verify failed", "err", err)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "token expired")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyAccountID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth, wrapped in the
// service's uniform envelope.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]any{
		"status":  "error",
		"message": "Invalid token",
		"data":    map[string]any{},
	})
}
