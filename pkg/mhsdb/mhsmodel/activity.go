package mhsmodel

// Activity is a single extracurricular activity. The activity name is the
// directory key, so it is left out of the JSON representation.
type Activity struct {
	Name            string   `json:"-" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// IsSignedUp returns true when email is in the activity's participant list.
func (a *Activity) IsSignedUp(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the activity. The participants slice on the
// copy is always non-nil so an empty list marshals as [] rather than null.
func (a *Activity) Clone() *Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	clone := *a
	clone.Participants = participants

	return &clone
}
