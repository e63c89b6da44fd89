package stor

import (
	"fmt"
	"testing"

	"github.com/mergington-edu/mhs/pkg/mhsdb/mhsmodel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory() []mhsmodel.Activity {
	return []mhsmodel.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in school plays",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{},
		},
	}
}

func TestInMemoryActivityStor_ListActivities(t *testing.T) {
	s := NewInMemoryActivityStor(newTestDirectory())

	activities := s.ListActivities()
	require.Len(t, activities, 3)

	t.Run("seed order is preserved", func(t *testing.T) {
		assert.Equal(t, "Chess Club", activities[0].Name)
		assert.Equal(t, "Programming Class", activities[1].Name)
		assert.Equal(t, "Drama Club", activities[2].Name)
	})

	t.Run("listing is a snapshot", func(t *testing.T) {
		activities[0].Participants[0] = "changed@mergington.edu"
		activities[0].Description = "changed"

		fresh, err := s.GetActivityByName("Chess Club")
		require.NoError(t, err)
		assert.Equal(t, "michael@mergington.edu", fresh.Participants[0])
		assert.Equal(t, "Learn strategies and compete in chess tournaments", fresh.Description)
	})
}

func TestInMemoryActivityStor_GetActivityByName(t *testing.T) {
	s := NewInMemoryActivityStor(newTestDirectory())

	activity, err := s.GetActivityByName("Chess Club")
	require.NoErrorf(t, err, "lookup failed: %s", err)
	assert.Equal(t, 12, activity.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, activity.Participants)

	t.Run("match is case sensitive", func(t *testing.T) {
		_, err := s.GetActivityByName("chess club")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrActivityNotFound))
	})

	t.Run("unknown activity", func(t *testing.T) {
		_, err := s.GetActivityByName("Nonexistent Club")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrActivityNotFound))
	})
}

func TestInMemoryActivityStor_SignupForActivity(t *testing.T) {
	t.Run("appends in signup order", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		activity, err := s.SignupForActivity("Chess Club", "test@mergington.edu")
		require.NoErrorf(t, err, "signup failed: %s", err)
		assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "test@mergington.edu"},
			activity.Participants)
	})

	t.Run("unknown activity", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		_, err := s.SignupForActivity("Nonexistent Club", "test@mergington.edu")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrActivityNotFound))
	})

	t.Run("duplicate signup", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		_, err := s.SignupForActivity("Chess Club", "michael@mergington.edu")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAlreadySignedUp))

		// Failure leaves the directory untouched.
		activity, err := s.GetActivityByName("Chess Club")
		require.NoError(t, err)
		assert.Len(t, activity.Participants, 2)
	})

	t.Run("no capacity enforcement", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		// Drama Club holds 2, sign up 4.
		for i := 0; i < 4; i++ {
			_, err := s.SignupForActivity("Drama Club", fmt.Sprintf("student%d@mergington.edu", i))
			require.NoErrorf(t, err, "signup %d failed: %s", i, err)
		}

		activity, err := s.GetActivityByName("Drama Club")
		require.NoError(t, err)
		assert.Len(t, activity.Participants, 4)
	})

	t.Run("membership in multiple activities", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		_, err := s.SignupForActivity("Chess Club", "alice@mergington.edu")
		require.NoError(t, err)
		_, err = s.SignupForActivity("Programming Class", "alice@mergington.edu")
		require.NoError(t, err)

		chess, err := s.GetActivityByName("Chess Club")
		require.NoError(t, err)
		programming, err := s.GetActivityByName("Programming Class")
		require.NoError(t, err)
		assert.True(t, chess.IsSignedUp("alice@mergington.edu"))
		assert.True(t, programming.IsSignedUp("alice@mergington.edu"))
	})
}

func TestInMemoryActivityStor_UnregisterFromActivity(t *testing.T) {
	t.Run("removes only the given email", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		activity, err := s.UnregisterFromActivity("Chess Club", "michael@mergington.edu")
		require.NoErrorf(t, err, "unregister failed: %s", err)
		assert.Equal(t, []string{"daniel@mergington.edu"}, activity.Participants)
	})

	t.Run("unknown activity", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		_, err := s.UnregisterFromActivity("Nonexistent Club", "michael@mergington.edu")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrActivityNotFound))
	})

	t.Run("not signed up", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		_, err := s.UnregisterFromActivity("Chess Club", "notregistered@mergington.edu")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotSignedUp))
	})

	t.Run("second unregister fails", func(t *testing.T) {
		s := NewInMemoryActivityStor(newTestDirectory())

		_, err := s.UnregisterFromActivity("Chess Club", "michael@mergington.edu")
		require.NoError(t, err)

		_, err = s.UnregisterFromActivity("Chess Club", "michael@mergington.edu")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotSignedUp))
	})
}

func TestInMemoryActivityStor_SignupRoundTrip(t *testing.T) {
	s := NewInMemoryActivityStor(newTestDirectory())

	// Signing up twice conflicts until the email unregisters, then signup
	// works again.
	_, err := s.SignupForActivity("Chess Club", "round@mergington.edu")
	require.NoError(t, err)

	_, err = s.SignupForActivity("Chess Club", "round@mergington.edu")
	assert.True(t, errors.Is(err, ErrAlreadySignedUp))

	_, err = s.UnregisterFromActivity("Chess Club", "round@mergington.edu")
	require.NoError(t, err)

	activity, err := s.SignupForActivity("Chess Club", "round@mergington.edu")
	require.NoError(t, err)
	assert.True(t, activity.IsSignedUp("round@mergington.edu"))
}

func TestInMemoryActivityStor_SnapshotRestore(t *testing.T) {
	s := NewInMemoryActivityStor(newTestDirectory())
	snapshot := s.Snapshot()

	_, err := s.SignupForActivity("Chess Club", "extra@mergington.edu")
	require.NoError(t, err)
	_, err = s.UnregisterFromActivity("Programming Class", "emma@mergington.edu")
	require.NoError(t, err)

	s.Restore(snapshot)

	chess, err := s.GetActivityByName("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	programming, err := s.GetActivityByName("Programming Class")
	require.NoError(t, err)
	assert.Equal(t, []string{"emma@mergington.edu"}, programming.Participants)

	t.Run("snapshot is isolated from later mutation", func(t *testing.T) {
		snapshot[0].Participants[0] = "changed@mergington.edu"
		activity, err := s.GetActivityByName("Chess Club")
		require.NoError(t, err)
		assert.Equal(t, "michael@mergington.edu", activity.Participants[0])
	})
}

func TestNewInMemoryStors(t *testing.T) {
	stors := NewInMemoryStors(newTestDirectory())
	require.NotNil(t, stors.ActivityStor)
	assert.Len(t, stors.ActivityStor.ListActivities(), 3)
}
