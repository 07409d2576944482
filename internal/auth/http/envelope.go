package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/S13G/nestwash/internal/auth/domain"
	"github.com/S13G/nestwash/pkg/authsdk"
	"github.com/S13G/nestwash/pkg/httpx"
)

// maxBodyBytes caps request bodies. Every endpoint takes a small JSON
// document; anything larger is hostile.
const maxBodyBytes = 1 << 16

// envelope is the uniform response shape: {status, message, data}. Data is
// always present, an empty object when there is nothing to say.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeSuccess(w http.ResponseWriter, code int, message string, data any) {
	if data == nil {
		data = map[string]any{}
	}
	httpx.WriteJSON(w, code, envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, envelope{
		Status:  "error",
		Message: message,
		Data:    map[string]any{},
	})
}

// errMalformedBody reports an unparseable or oversized request body.
var errMalformedBody = errors.New("malformed request body")

// decodeJSON reads a JSON request body into target, enforcing the size cap.
func decodeJSON(r *http.Request, target any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(body) > maxBodyBytes {
		return errMalformedBody
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errMalformedBody
	}
	return nil
}

// accountData maps a domain account onto its API representation.
func accountData(a domain.Account) authsdk.AccountData {
	return authsdk.AccountData{
		ID:        a.ID,
		Email:     a.EmailAddress,
		FullName:  a.FullName,
		Address:   a.Address,
		Role:      a.Role.String(),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
