/*
Package authsdk provides a client SDK for the NestWash authentication
service.

# Overview

The package is organized around two types:

  - SDKClient: unauthenticated operations and the login flow
  - Session: authenticated operations carrying a session token

Create an SDKClient to drive the signup flow:

	client := authsdk.NewSDKClient("https://auth.example.com")

	// 1. Request a one-time passcode (delivered by email)
	err := client.RequestOtp(ctx, "me@example.com")

	// 2. Verify the emailed code; this creates the account shell
	err = client.VerifyOtp(ctx, "me@example.com", "123456")

	// 3. Complete registration with credentials and a role
	account, err := client.Register(ctx, authsdk.RegisterRequest{
		Email:    "me@example.com",
		Password: "a-strong-password",
		FullName: "Jordan Doe",
		Role:     "customer",
	})

	// 4. Log in for an authenticated session
	session, err := client.Login(ctx, "me@example.com", "a-strong-password")

Use the Session for authenticated operations:

	profile, err := session.Me(ctx)

# Error Handling

Every non-2xx response is returned as *APIError carrying the HTTP status
code and the service's error message:

	if err := client.RequestOtp(ctx, email); err != nil {
		var apiErr *authsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			// the address already has an account; log in instead
		}
	}

# Tokens

Session tokens are stateless JWTs with a short lifetime. The SDK does not
refresh them; call Login again when a token expires. An existing token can
be wrapped with NewSessionFromToken.
*/
package authsdk
