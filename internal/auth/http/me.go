package http

import (
	"errors"
	"net/http"

	"github.com/S13G/nestwash/internal/auth/service"
	"github.com/S13G/nestwash/pkg/httpx"
	"github.com/S13G/nestwash/pkg/slogx"
)

type MeHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Current Account Endpoint
//	@Description	Return the profile of the account the bearer token belongs to
//	@Tags			Accounts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	authsdk.Envelope	"status, message, data (account)"
//	@Failure		401	{object}	authsdk.Envelope	"missing, invalid or orphaned token"
//	@Failure		500	{object}	authsdk.Envelope	"status, message, data"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID, ok := httpx.AccountIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	account, err := h.AccountService.GetAccountByID(ctx, accountID)
	switch {
	case err == nil:
		writeSuccess(w, http.StatusOK, "Account retrieved successfully", accountData(account))
	case errors.Is(err, service.ErrAccountNotFound):
		// Valid signature over a subject that no longer exists.
		writeError(w, http.StatusUnauthorized, "Invalid token")
	default:
		log.Error("failed to fetch current account", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch account")
	}
}
