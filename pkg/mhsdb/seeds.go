package mhsdb

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/mergington-edu/mhs/pkg/config"
	"github.com/mergington-edu/mhs/pkg/mhsdb/mhsmodel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultDirectory returns the built-in activity directory the server seeds
// itself with when no seed file is configured.
func DefaultDirectory() []mhsmodel.Activity {
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
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Join the competitive basketball team and compete in interscholastic games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Swimming Team",
			Description:     "Competitive swimming with training and meets throughout the season",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"marcus@mergington.edu", "jasmine@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in school plays and develop acting and theatrical skills",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"lucy@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore various art mediums and create collaborative art projects",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"nina@mergington.edu", "david@mergington.edu"},
		},
		{
			Name:            "Debate Club",
			Description:     "Develop public speaking and argumentation skills through competitive debate",
			Schedule:        "Mondays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"ryan@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts through hands-on projects",
			Schedule:        "Tuesdays, 4:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"priya@mergington.edu", "chris@mergington.edu"},
		},
	}
}

// LoadDirectoryFromFile reads an activity directory from a YAML file. The file
// is a list of activities with the fields name, description, schedule,
// max_participants and participants.
func LoadDirectoryFromFile(path string) ([]mhsmodel.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var activities []mhsmodel.Activity
	if err := yaml.NewDecoder(f).Decode(&activities); err != nil {
		return nil, errors.Wrapf(err, "failed decoding activities file %s", path)
	}

	if err := validateDirectory(activities); err != nil {
		return nil, errors.Wrapf(err, "invalid activities file %s", path)
	}

	return activities, nil
}

func validateDirectory(activities []mhsmodel.Activity) error {
	seenNames := make(map[string]bool)

	for _, activity := range activities {
		switch {
		case activity.Name == "":
			return fmt.Errorf("activity with blank name")
		case seenNames[activity.Name]:
			return fmt.Errorf("duplicate activity name: %s", activity.Name)
		case activity.MaxParticipants <= 0:
			return fmt.Errorf("activity %q: max_participants must be positive", activity.Name)
		}
		seenNames[activity.Name] = true

		seenParticipants := make(map[string]bool)
		for _, email := range activity.Participants {
			if seenParticipants[email] {
				return fmt.Errorf("activity %q: duplicate participant %s", activity.Name, email)
			}
			seenParticipants[email] = true
		}
	}

	return nil
}

// MustLoadDirectory returns the directory named by the MHS_SEED_FILE config
// key, or the built-in default when the key isn't set. A seed file that can't
// be loaded causes the server to exit.
func MustLoadDirectory(c config.Configer) []mhsmodel.Activity {
	seedFile := c.GetKey("MHS_SEED_FILE")
	if seedFile == "" {
		return DefaultDirectory()
	}

	activities, err := LoadDirectoryFromFile(seedFile)
	if err != nil {
		log.Fatalf("Failed to load activities from %s: %s", seedFile, err)
	}

	return activities
}
