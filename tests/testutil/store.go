package testutil

import (
	"testing"
	"time"

	"github.com/nhle/teampulse/internal/storage"
	"github.com/nhle/teampulse/internal/store"
)

// FixedNow is the pinned clock used by states built with NewTestState.
var FixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// NewTestState creates a State over a fresh in-memory adapter with a
// pinned clock and seeding disabled.
func NewTestState(t *testing.T) *store.State {
	t.Helper()

	return store.NewState(
		storage.NewMemory(),
		nil,
		store.WithClock(func() time.Time { return FixedNow }),
		store.WithoutSeed(),
	)
}

// NewSeededState creates a State over a fresh in-memory adapter with a
// pinned clock and the demo seed data installed.
func NewSeededState(t *testing.T) *store.State {
	t.Helper()

	return store.NewState(
		storage.NewMemory(),
		nil,
		store.WithClock(func() time.Time { return FixedNow }),
	)
}
