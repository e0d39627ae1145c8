package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/nhle/teampulse/internal/model"
	"github.com/nhle/teampulse/internal/storage"
)

// UserStore owns the user collection. Insertion order is the storage
// order and survives persistence round trips.
type UserStore struct {
	persister
	now   func() time.Time
	users []model.User
}

// newUserStore hydrates the store from the adapter, falling back to
// seed data when nothing was persisted and seeding is enabled.
func newUserStore(
	adapter storage.Adapter,
	logger *zap.Logger,
	now func() time.Time,
	seed bool,
) *UserStore {
	s := &UserStore{
		persister: persister{adapter: adapter, logger: logger, key: storage.KeyUsers},
		now:       now,
	}
	if !s.hydrate(&s.users) && seed {
		s.users = seedUsers()
		s.persist(s.users)
	}
	return s
}

// Add inserts a fully formed user. ID uniqueness is the caller's
// responsibility; the store performs no dedup.
func (s *UserStore) Add(user model.User) {
	s.users = append(s.users, user)
	s.persist(s.users)
}

// Update merges the patch into the user with the given id.
// Returns ErrNotFound if no such user exists.
func (s *UserStore) Update(id string, patch model.UserPatch) error {
	for i := range s.users {
		if s.users[i].ID == id {
			patch.Apply(&s.users[i])
			s.persist(s.users)
			return nil
		}
	}
	return ErrNotFound
}

// SetAvailabilitySchedule sets or clears the user's availability
// window. Setting a non-nil schedule also forces the availability flag
// on as a baseline; clearing leaves the flag as it was.
func (s *UserStore) SetAvailabilitySchedule(
	id string,
	schedule *model.AvailabilitySchedule,
) error {
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		s.users[i].AvailabilitySchedule = schedule
		if schedule != nil {
			s.users[i].IsAvailable = true
		}
		s.persist(s.users)
		return nil
	}
	return ErrNotFound
}

// All returns every user in insertion order.
func (s *UserStore) All() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// ByID returns the user with the given id.
func (s *UserStore) ByID(id string) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// ByDepartment returns the users belonging to dept, in insertion order.
func (s *UserStore) ByDepartment(dept model.Department) []model.User {
	var out []model.User
	for _, u := range s.users {
		if u.Department == dept {
			out = append(out, u)
		}
	}
	return out
}

// AvailableNow returns the users available at the current instant. The
// result depends on the clock and is recomputed on every call.
func (s *UserStore) AvailableNow() []model.User {
	now := s.now()
	var out []model.User
	for _, u := range s.users {
		if u.AvailableAt(now) {
			out = append(out, u)
		}
	}
	return out
}
