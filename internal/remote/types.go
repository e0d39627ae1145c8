package remote

import (
	"errors"
	"fmt"
	"time"
)

// AuthError indicates that authentication has failed or expired at the
// remote provider. It is returned when a 401 response is received.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error: %s", e.Message)
}

// IsAuthError reports whether err (or any error in its chain) is an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// Session is the identity established with the remote provider. The
// state layer only needs the resulting identity, not how the session
// was negotiated.
type Session struct {
	// AccessToken is the bearer token for subsequent requests.
	AccessToken string `json:"access_token"`

	// UserID is the provider-side identifier of the signed-in user.
	UserID string `json:"user_id"`

	// Email is the signed-in user's address.
	Email string `json:"email"`

	// Name is the signed-in user's display name, when the provider
	// exposes one.
	Name string `json:"name"`

	// ExpiresAt is when the access token stops being valid.
	ExpiresAt time.Time `json:"expires_at"`
}

// errorResponse is the provider's JSON error body.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func (e errorResponse) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
