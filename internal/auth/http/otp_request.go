package http

import (
	"errors"
	"net/http"

	"github.com/S13G/nestwash/internal/auth/service"
	"github.com/S13G/nestwash/pkg/authsdk"
	"github.com/S13G/nestwash/pkg/slogx"
)

type OtpRequestHandler struct {
	OtpService *service.OtpService
}

// ServeHTTP godoc
//
//	@Summary		Request OTP Endpoint
//	@Description	Email a one-time passcode to an address that has no account yet
//	@Description	The code expires after 10 minutes and can be used exactly once
//	@Tags			OTP
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RequestOtpRequest	true	"Email address to send the code to"
//	@Success		200		{object}	authsdk.Envelope			"status, message, data"
//	@Failure		409		{object}	authsdk.Envelope			"account already exists"
//	@Failure		422		{object}	authsdk.Envelope			"missing or invalid email"
//	@Failure		500		{object}	authsdk.Envelope			"status, message, data"
//	@Router			/v1/otp/request [post].
func (h *OtpRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RequestOtpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	err := h.OtpService.RequestOtp(ctx, req.Email)
	switch {
	case err == nil:
		writeSuccess(w, http.StatusOK, "OTP sent successfully", nil)
	case errors.Is(err, service.ErrEmailRequired):
		writeError(w, http.StatusUnprocessableEntity, "Email is required")
	case errors.Is(err, service.ErrAccountExists):
		writeError(w, http.StatusConflict, "Account already exists, please log in")
	default:
		log.Error("failed to issue otp", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to send OTP")
	}
}
