package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/teampulse/internal/model"
	"github.com/nhle/teampulse/internal/storage"
	"github.com/nhle/teampulse/internal/store"
	"github.com/nhle/teampulse/tests/testutil"
)

func TestUserAddAndLookups(t *testing.T) {
	st := testutil.NewTestState(t)

	st.Users.Add(model.User{
		ID: "u1", Name: "Ana", Department: model.DepartmentDesign, IsAvailable: true,
	})
	st.Users.Add(model.User{
		ID: "u2", Name: "Ben", Department: model.DepartmentSales, IsAvailable: true,
	})

	got, ok := st.Users.ByID("u1")
	require.True(t, ok)
	assert.Equal(t, "Ana", got.Name)

	_, ok = st.Users.ByID("ghost")
	assert.False(t, ok)

	design := st.Users.ByDepartment(model.DepartmentDesign)
	require.Len(t, design, 1)
	assert.Equal(t, "u1", design[0].ID)

	assert.Len(t, st.Users.All(), 2)
}

func TestUserUpdateMergesPartialFields(t *testing.T) {
	st := testutil.NewTestState(t)
	st.Users.Add(model.User{
		ID: "u1", Name: "Ana", Email: "ana@epack.com",
		Department: model.DepartmentDesign,
	})

	dept := model.DepartmentManagement
	require.NoError(t, st.Users.Update("u1", model.UserPatch{Department: &dept}))

	got, ok := st.Users.ByID("u1")
	require.True(t, ok)
	assert.Equal(t, model.DepartmentManagement, got.Department)
	assert.Equal(t, "Ana", got.Name, "unset patch fields stay untouched")

	err := st.Users.Update("ghost", model.UserPatch{Department: &dept})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetAvailabilityScheduleForcesFlagOn(t *testing.T) {
	st := testutil.NewTestState(t)
	st.Users.Add(model.User{ID: "u1", IsAvailable: false})

	window := &model.AvailabilitySchedule{
		StartTime: testutil.FixedNow.Add(-time.Hour),
		EndTime:   testutil.FixedNow.Add(time.Hour),
	}
	require.NoError(t, st.Users.SetAvailabilitySchedule("u1", window))

	got, ok := st.Users.ByID("u1")
	require.True(t, ok)
	assert.True(t, got.IsAvailable)
	require.NotNil(t, got.AvailabilitySchedule)
}

func TestClearingScheduleRetainsFlag(t *testing.T) {
	st := testutil.NewTestState(t)
	st.Users.Add(model.User{
		ID:          "u1",
		IsAvailable: false,
		AvailabilitySchedule: &model.AvailabilitySchedule{
			StartTime: testutil.FixedNow,
			EndTime:   testutil.FixedNow.Add(time.Hour),
		},
	})

	avail := false
	require.NoError(t, st.Users.Update("u1", model.UserPatch{IsAvailable: &avail}))
	require.NoError(t, st.Users.SetAvailabilitySchedule("u1", nil))

	got, ok := st.Users.ByID("u1")
	require.True(t, ok)
	assert.Nil(t, got.AvailabilitySchedule)
	assert.False(t, got.IsAvailable, "clearing keeps the prior flag value")
}

// Walks the spec scenario: an unavailable user with no schedule is
// excluded, then a schedule covering "now" includes them without the
// flag ever being flipped.
func TestAvailableNowScheduleOverride(t *testing.T) {
	st := testutil.NewTestState(t)
	st.Users.Add(model.User{ID: "u1", Name: "Ana", IsAvailable: false})

	assert.Empty(t, st.Users.AvailableNow())

	window := &model.AvailabilitySchedule{
		StartTime: testutil.FixedNow.Add(-time.Hour),
		EndTime:   testutil.FixedNow.Add(time.Hour),
	}
	require.NoError(t, st.Users.SetAvailabilitySchedule("u1", window))

	// SetAvailabilitySchedule forces the flag on; undo that to prove
	// the schedule alone makes the user available.
	avail := false
	require.NoError(t, st.Users.Update("u1", model.UserPatch{IsAvailable: &avail}))

	got := st.Users.AvailableNow()
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].ID)
}

// AvailableNow is time dependent and must be recomputed per call,
// never cached.
func TestAvailableNowTracksTheClock(t *testing.T) {
	current := testutil.FixedNow
	st := store.NewState(
		storage.NewMemory(),
		nil,
		store.WithClock(func() time.Time { return current }),
		store.WithoutSeed(),
	)

	st.Users.Add(model.User{
		ID:          "u1",
		IsAvailable: false,
		AvailabilitySchedule: &model.AvailabilitySchedule{
			StartTime: testutil.FixedNow,
			EndTime:   testutil.FixedNow.Add(time.Hour),
		},
	})

	require.Len(t, st.Users.AvailableNow(), 1)

	current = testutil.FixedNow.Add(2 * time.Hour)
	assert.Empty(t, st.Users.AvailableNow())
}

func TestSeededStateShipsDemoUsers(t *testing.T) {
	st := testutil.NewSeededState(t)

	users := st.Users.All()
	require.Len(t, users, 8)
	assert.Equal(t, "John Doe", users[0].Name)

	dev := st.Users.ByDepartment(model.DepartmentDevelopment)
	assert.Len(t, dev, 2)
}
