package remote

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/teampulse/internal/credential"
)

// sessionTokenKey is the keyring entry holding the provider session token.
const sessionTokenKey = "remote-session-token"

// SessionHandler is invoked whenever the session changes. A nil
// session means signed out.
type SessionHandler func(*Session)

// Auth exposes the provider's session API: current session lookup,
// change subscription, and sign-out. Establishing a session (magic
// link, OTP exchange) happens outside this layer; Auth only consumes
// the resulting token.
type Auth struct {
	client   *Client
	logger   *zap.Logger
	handlers []SessionHandler
}

// NewAuth creates an Auth over the given client. A nil logger is
// replaced with a no-op logger.
func NewAuth(client *Client, logger *zap.Logger) *Auth {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auth{client: client, logger: logger}
}

// OnSessionChange registers a handler called on every session change.
func (a *Auth) OnSessionChange(handler SessionHandler) {
	a.handlers = append(a.handlers, handler)
}

// CurrentSession returns the active session, or (nil, nil) when no
// token is stored. A stored token that the provider rejects is
// reported as an error (an AuthError for expired credentials).
func (a *Auth) CurrentSession(ctx context.Context) (*Session, error) {
	token, err := credential.Get(sessionTokenKey)
	if err != nil {
		// No stored token is the normal signed-out state.
		return nil, nil
	}

	a.client.SetToken(token)

	var session Session
	if err := a.client.Get(ctx, "/auth/v1/user", &session); err != nil {
		return nil, fmt.Errorf("fetching current session: %w", err)
	}
	session.AccessToken = token
	return &session, nil
}

// AcceptSession stores a newly established session token and notifies
// subscribers. Callers invoke this after the excluded auth transport
// (magic link / OTP) hands them a session.
func (a *Auth) AcceptSession(session *Session) error {
	if err := credential.Set(sessionTokenKey, session.AccessToken); err != nil {
		return fmt.Errorf("storing session token: %w", err)
	}
	a.client.SetToken(session.AccessToken)
	a.dispatch(session)
	return nil
}

// SignOut revokes the session at the provider, forgets the stored
// token, and notifies subscribers. The local forget happens even when
// the revoke call fails.
func (a *Auth) SignOut(ctx context.Context) error {
	revokeErr := a.client.Post(ctx, "/auth/v1/logout", nil, nil)
	if revokeErr != nil {
		a.logger.Warn("revoking remote session", zap.Error(revokeErr))
	}

	if err := credential.Delete(sessionTokenKey); err != nil {
		a.logger.Warn("forgetting session token", zap.Error(err))
	}
	a.client.SetToken("")
	a.dispatch(nil)
	return revokeErr
}

func (a *Auth) dispatch(session *Session) {
	for _, handler := range a.handlers {
		handler(session)
	}
}
