// Package store implements the application's state layer: one store
// per entity collection plus the session store, bundled in a State
// container that is constructed once at startup and passed to
// consumers.
//
// The stores make no concurrency promises: they expect a single logical
// thread of control, matching the one-active-session ownership model of
// the application. Mutations apply to the in-memory collections
// immediately; writing through the storage adapter is a best-effort
// side effect, never a transaction.
package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/nhle/teampulse/internal/storage"
)

// Option configures a State.
type Option func(*options)

type options struct {
	now  func() time.Time
	seed bool
}

// WithClock replaces the time source, mainly for tests that pin "now".
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithoutSeed disables demo data for stores that load with no prior
// persisted state.
func WithoutSeed() Option {
	return func(o *options) { o.seed = false }
}

// State bundles every store over a shared storage adapter.
type State struct {
	Session       *SessionStore
	Users         *UserStore
	Tasks         *TaskStore
	Notifications *NotificationStore
	Messages      *MessageStore

	adapter storage.Adapter
	logger  *zap.Logger
	opts    options
}

// NewState hydrates all stores from the adapter. A nil logger is
// replaced with a no-op logger.
func NewState(adapter storage.Adapter, logger *zap.Logger, opts ...Option) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{now: time.Now, seed: true}
	for _, opt := range opts {
		opt(&o)
	}

	return &State{
		Session:       newSessionStore(adapter, logger),
		Users:         newUserStore(adapter, logger, o.now, o.seed),
		Tasks:         newTaskStore(adapter, logger, o.now),
		Notifications: newNotificationStore(adapter, logger, o.now, o.seed),
		Messages:      newMessageStore(adapter, logger, o.now, o.seed),
		adapter:       adapter,
		logger:        logger,
		opts:          o,
	}
}

// Reset discards all in-memory state and rehydrates from the adapter,
// re-seeding where nothing was persisted. Intended for tests.
func (s *State) Reset() {
	s.Session = newSessionStore(s.adapter, s.logger)
	s.Users = newUserStore(s.adapter, s.logger, s.opts.now, s.opts.seed)
	s.Tasks = newTaskStore(s.adapter, s.logger, s.opts.now)
	s.Notifications = newNotificationStore(s.adapter, s.logger, s.opts.now, s.opts.seed)
	s.Messages = newMessageStore(s.adapter, s.logger, s.opts.now, s.opts.seed)
}
