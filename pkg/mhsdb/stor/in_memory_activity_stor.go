package stor

import (
	"sync"

	"github.com/mergington-edu/mhs/pkg/mhsdb/mhsmodel"
	"github.com/pkg/errors"
)

// InMemoryActivityStor holds the activity directory in memory. A single mutex
// serializes every read and mutation, so requests may be handled concurrently
// while the directory only ever changes one operation at a time.
type InMemoryActivityStor struct {
	mu     sync.Mutex
	byName map[string]*mhsmodel.Activity

	// order holds the activity names in seed order so listings are stable.
	order []string
}

func NewInMemoryActivityStor(seed []mhsmodel.Activity) *InMemoryActivityStor {
	s := &InMemoryActivityStor{}
	s.load(seed)
	return s
}

// ListActivities returns a deep-copied snapshot of every activity in seed
// order. Callers can mutate the result without affecting the directory.
func (s *InMemoryActivityStor) ListActivities() []*mhsmodel.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	activities := make([]*mhsmodel.Activity, 0, len(s.order))
	for _, name := range s.order {
		activities = append(activities, s.byName[name].Clone())
	}

	return activities
}

// GetActivityByName looks up an activity by its exact, case-sensitive name.
func (s *InMemoryActivityStor) GetActivityByName(name string) (*mhsmodel.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrActivityNotFound, "no such activity: %s", name)
	}

	return activity.Clone(), nil
}

// SignupForActivity appends email to the activity's participants. It fails
// with ErrActivityNotFound for an unknown activity and ErrAlreadySignedUp for
// a duplicate email. There is no capacity check against MaxParticipants.
func (s *InMemoryActivityStor) SignupForActivity(name, email string) (*mhsmodel.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrActivityNotFound, "no such activity: %s", name)
	}

	if activity.IsSignedUp(email) {
		return nil, errors.Wrapf(ErrAlreadySignedUp, "%s is already signed up for %s", email, name)
	}

	activity.Participants = append(activity.Participants, email)

	return activity.Clone(), nil
}

// UnregisterFromActivity removes email from the activity's participants. It
// fails with ErrActivityNotFound for an unknown activity and ErrNotSignedUp
// when the email isn't registered.
func (s *InMemoryActivityStor) UnregisterFromActivity(name, email string) (*mhsmodel.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrActivityNotFound, "no such activity: %s", name)
	}

	if !activity.IsSignedUp(email) {
		return nil, errors.Wrapf(ErrNotSignedUp, "%s is not signed up for %s", email, name)
	}

	participants := make([]string, 0, len(activity.Participants)-1)
	for _, participant := range activity.Participants {
		if participant != email {
			participants = append(participants, participant)
		}
	}
	activity.Participants = participants

	return activity.Clone(), nil
}

// Snapshot returns a deep copy of the directory that can later be handed to
// Restore. Tests use this pair to put the directory back after mutating it.
func (s *InMemoryActivityStor) Snapshot() []mhsmodel.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]mhsmodel.Activity, 0, len(s.order))
	for _, name := range s.order {
		snapshot = append(snapshot, *s.byName[name].Clone())
	}

	return snapshot
}

// Restore replaces the directory contents with the given activities.
func (s *InMemoryActivityStor) Restore(activities []mhsmodel.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(activities)
}

// load resets the directory from a seed. The first activity wins when a name
// appears twice, keeping names unique within the directory.
func (s *InMemoryActivityStor) load(seed []mhsmodel.Activity) {
	s.byName = make(map[string]*mhsmodel.Activity, len(seed))
	s.order = make([]string, 0, len(seed))

	for _, activity := range seed {
		if _, ok := s.byName[activity.Name]; ok {
			continue
		}

		s.byName[activity.Name] = activity.Clone()
		s.order = append(s.order, activity.Name)
	}
}
