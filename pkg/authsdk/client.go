package authsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the NestWash authentication service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new auth service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RequestOtp asks the service to email a one-time passcode to the address.
// The address must not already have an account.
func (c *SDKClient) RequestOtp(ctx context.Context, email string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/v1/otp/request",
		RequestOtpRequest{Email: email}, "", http.StatusOK)
	return err
}

// VerifyOtp submits the emailed passcode. On success the service has created
// an identity-only account for the address, ready for Register.
func (c *SDKClient) VerifyOtp(ctx context.Context, email, otp string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/v1/otp/verify",
		VerifyOtpRequest{Email: email, Otp: otp}, "", http.StatusOK)
	return err
}

// Register completes a verified account with credentials, profile and role.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (AccountData, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/v1/accounts/register",
		req, "", http.StatusOK)
	if err != nil {
		return AccountData{}, err
	}

	var account AccountData
	if err := decodeData(env, &account); err != nil {
		return AccountData{}, err
	}
	return account, nil
}

// Login exchanges credentials for an authenticated Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/v1/accounts/login",
		LoginRequest{Email: email, Password: password}, "", http.StatusOK)
	if err != nil {
		return nil, err
	}

	var data TokenData
	if err := decodeData(env, &data); err != nil {
		return nil, err
	}
	return &Session{client: c, token: data.Token}, nil
}

// NewSessionFromToken creates a Session from an existing session token, e.g.
// one stored from an earlier Login.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// GetLiveness checks the /livez probe.
func (c *SDKClient) GetLiveness(ctx context.Context) (HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

// GetReadiness checks the /readyz probe. A degraded service answers with
// HTTP 503, surfaced as *APIError.
func (c *SDKClient) GetReadiness(ctx context.Context) (HealthResponse, error) {
	return c.getHealth(ctx, "/readyz")
}

func (c *SDKClient) getHealth(ctx context.Context, path string) (HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return HealthResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return HealthResponse{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return HealthResponse{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return HealthResponse{}, parseErrorResponse(resp, raw)
	}

	var health HealthResponse
	if err := json.Unmarshal(raw, &health); err != nil {
		return HealthResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return health, nil
}
