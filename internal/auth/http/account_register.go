package http

import (
	"errors"
	"net/http"

	"github.com/S13G/nestwash/internal/auth/service"
	"github.com/S13G/nestwash/pkg/authsdk"
	"github.com/S13G/nestwash/pkg/slogx"
)

type AccountRegisterHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Complete Registration Endpoint
//	@Description	Attach credentials, profile details and a role to an OTP-verified account
//	@Description	The email must have passed OTP verification first; registration happens exactly once
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest	true	"Credentials, profile and role"
//	@Success		200		{object}	authsdk.Envelope		"status, message, data (account)"
//	@Failure		404		{object}	authsdk.Envelope		"email never verified"
//	@Failure		409		{object}	authsdk.Envelope		"already registered"
//	@Failure		422		{object}	authsdk.Envelope		"missing or invalid fields"
//	@Failure		500		{object}	authsdk.Envelope		"status, message, data"
//	@Router			/v1/accounts/register [post].
func (h *AccountRegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	account, err := h.AccountService.Register(
		ctx, req.Email, req.Password, req.FullName, req.Address, req.Role,
	)
	switch {
	case err == nil:
		writeSuccess(w, http.StatusOK, "Account registered successfully", accountData(account))
	case errors.Is(err, service.ErrEmailRequired):
		writeError(w, http.StatusUnprocessableEntity, "Email is required")
	case errors.Is(err, service.ErrPasswordRequired):
		writeError(w, http.StatusUnprocessableEntity, "Password is required")
	case errors.Is(err, service.ErrInvalidRole):
		writeError(w, http.StatusUnprocessableEntity, "Role must be one of customer, driver, service_provider")
	case errors.Is(err, service.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "Email has not been verified")
	case errors.Is(err, service.ErrAlreadyRegistered):
		writeError(w, http.StatusConflict, "Account already registered, please log in")
	default:
		log.Error("failed to register account", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to register account")
	}
}
