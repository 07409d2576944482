package http

import (
	"errors"
	"net/http"

	"github.com/S13G/nestwash/internal/auth/service"
	"github.com/S13G/nestwash/pkg/authsdk"
	"github.com/S13G/nestwash/pkg/slogx"
)

type OtpVerifyHandler struct {
	OtpService *service.OtpService
}

// ServeHTTP godoc
//
//	@Summary		Verify OTP Endpoint
//	@Description	Consume an emailed one-time passcode and create the account shell for the address
//	@Description	Wrong, expired and already-used codes all produce the same rejection
//	@Tags			OTP
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.VerifyOtpRequest	true	"Email address and the emailed code"
//	@Success		200		{object}	authsdk.Envelope			"status, message, data"
//	@Failure		401		{object}	authsdk.Envelope			"invalid or expired code"
//	@Failure		409		{object}	authsdk.Envelope			"account already exists"
//	@Failure		422		{object}	authsdk.Envelope			"missing or invalid email"
//	@Failure		500		{object}	authsdk.Envelope			"status, message, data"
//	@Router			/v1/otp/verify [post].
func (h *OtpVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.VerifyOtpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	err := h.OtpService.VerifyOtp(ctx, req.Email, req.Otp)
	switch {
	case err == nil:
		writeSuccess(w, http.StatusOK, "OTP verified successfully", nil)
	case errors.Is(err, service.ErrEmailRequired):
		writeError(w, http.StatusUnprocessableEntity, "Email is required")
	case errors.Is(err, service.ErrInvalidOtp):
		writeError(w, http.StatusUnauthorized, "Invalid or expired OTP")
	case errors.Is(err, service.ErrAccountExists):
		writeError(w, http.StatusConflict, "Account already exists, please log in")
	default:
		log.Error("failed to verify otp", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to verify OTP")
	}
}
