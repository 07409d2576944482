package authsdk

import (
	"context"
	"net/http"
)

// Session is an authenticated handle on the auth service. Tokens are
// stateless and short-lived; when one expires, Login again for a fresh
// Session.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the raw session token, e.g. for storage or for calling
// other services that accept the same tokens.
func (s *Session) Token() string {
	return s.token
}

// Me fetches the profile of the account the session belongs to.
func (s *Session) Me(ctx context.Context) (AccountData, error) {
	env, err := s.client.doJSON(ctx, http.MethodGet, "/v1/me",
		nil, s.token, http.StatusOK)
	if err != nil {
		return AccountData{}, err
	}

	var account AccountData
	if err := decodeData(env, &account); err != nil {
		return AccountData{}, err
	}
	return account, nil
}
