package http

import (
	"errors"
	"net/http"

	"github.com/S13G/nestwash/internal/auth/service"
	"github.com/S13G/nestwash/pkg/authsdk"
	"github.com/S13G/nestwash/pkg/slogx"
)

type AccountLoginHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a signed session token
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Email and password"
//	@Success		200		{object}	authsdk.Envelope		"status, message, data (token)"
//	@Failure		401		{object}	authsdk.Envelope		"wrong credentials"
//	@Failure		404		{object}	authsdk.Envelope		"unknown email"
//	@Failure		500		{object}	authsdk.Envelope		"status, message, data"
//	@Router			/v1/accounts/login [post].
func (h *AccountLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	account, err := h.AccountService.Login(ctx, req.Email, req.Password)
	switch {
	case err == nil:
		// fall through to token issuance below
	case errors.Is(err, service.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "Account not found")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	default:
		log.Error("failed to log in", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.TokenService.Issue(account.ID)
	if err != nil {
		log.Error("failed to issue session token", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeSuccess(w, http.StatusOK, "Logged in successfully", authsdk.TokenData{Token: token})
}
