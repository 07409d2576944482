package authsdk

import "encoding/json"

// ============================================================================
// Response Envelope
// ============================================================================

// Envelope is the uniform response shape for every API endpoint. Status is
// "success" or "error"; Data carries the endpoint-specific payload and is an
// empty object on error responses.
type Envelope struct {
	// Status is "success" for 2xx responses and "error" otherwise
	Status string `json:"status"`

	// Message is a human-readable summary of the outcome
	Message string `json:"message"`

	// Data is the endpoint-specific payload, decoded lazily by callers
	Data json.RawMessage `json:"data"`
}

// ============================================================================
// Request Types
// ============================================================================

// RequestOtpRequest asks the service to email a one-time passcode to an
// address that has no account yet.
type RequestOtpRequest struct {
	Email string `json:"email"`
}

// VerifyOtpRequest submits the emailed passcode alongside the address it
// should be bound to.
type VerifyOtpRequest struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

// RegisterRequest completes a verified account with credentials and profile.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ============================================================================
// Response Payloads
// ============================================================================

// TokenData is the payload of a successful login.
type TokenData struct {
	// Token is the signed JWT session token
	Token string `json:"token"`
}

// AccountData describes an account as returned by the profile endpoint.
type AccountData struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	Address   string `json:"address,omitempty"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is the body of the /livez and /readyz probes. These two
// endpoints sit outside the envelope convention, matching what monitoring
// systems expect.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
