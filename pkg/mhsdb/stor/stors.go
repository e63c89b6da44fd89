package stor

import (
	"github.com/mergington-edu/mhs/pkg/mhsdb/mhsmodel"
)

type ActivityStor interface {
	ListActivities() []*mhsmodel.Activity
	GetActivityByName(name string) (*mhsmodel.Activity, error)
	SignupForActivity(name, email string) (*mhsmodel.Activity, error)
	UnregisterFromActivity(name, email string) (*mhsmodel.Activity, error)
	Snapshot() []mhsmodel.Activity
	Restore(activities []mhsmodel.Activity)
}

type Stors struct {
	ActivityStor ActivityStor
}

func NewInMemoryStors(seed []mhsmodel.Activity) *Stors {
	return &Stors{
		ActivityStor: NewInMemoryActivityStor(seed),
	}
}
