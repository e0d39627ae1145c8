package store

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/teampulse/internal/model"
	"github.com/nhle/teampulse/internal/storage"
)

// LoginProfile is the identity information needed to establish a
// session. How it was obtained (magic link, seeded demo user, remote
// provider) is not this layer's concern.
type LoginProfile struct {
	Name       string
	Email      string
	Department model.Department
	Avatar     string
}

// authDocument is the persisted shape of the session state.
type authDocument struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
}

// SessionStore holds the current actor. The entity stores read it for
// attribution (who created, sent, or assigned what).
type SessionStore struct {
	persister
	user          *model.User
	authenticated bool
}

func newSessionStore(adapter storage.Adapter, logger *zap.Logger) *SessionStore {
	s := &SessionStore{
		persister: persister{adapter: adapter, logger: logger, key: storage.KeyAuth},
	}
	var doc authDocument
	if s.hydrate(&doc) {
		s.user = doc.User
		s.authenticated = doc.IsAuthenticated && doc.User != nil
	}
	return s
}

// Login establishes a session for the given profile. A fresh user id
// is assigned and the availability flag starts on.
func (s *SessionStore) Login(profile LoginProfile) model.User {
	user := model.User{
		ID:          uuid.New().String(),
		Name:        profile.Name,
		Email:       profile.Email,
		Department:  profile.Department,
		Avatar:      profile.Avatar,
		IsAvailable: true,
	}
	s.user = &user
	s.authenticated = true
	s.persist(authDocument{User: s.user, IsAuthenticated: true})
	return user
}

// Logout clears the session.
func (s *SessionStore) Logout() {
	s.user = nil
	s.authenticated = false
	s.persist(authDocument{})
}

// UpdateUser merges the patch into the current user's profile.
// Returns ErrNotFound when nobody is logged in.
func (s *SessionStore) UpdateUser(patch model.UserPatch) error {
	if s.user == nil {
		return ErrNotFound
	}
	patch.Apply(s.user)
	s.persist(authDocument{User: s.user, IsAuthenticated: s.authenticated})
	return nil
}

// Current returns the logged-in user.
func (s *SessionStore) Current() (model.User, bool) {
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a session is active.
func (s *SessionStore) IsAuthenticated() bool {
	return s.authenticated
}
