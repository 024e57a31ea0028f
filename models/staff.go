package models

// WorkingDay describes one weekday in a staff member's schedule. Start
// and End are "HH:mm" clock times and are meaningful only when
// IsWorking is set.
type WorkingDay struct {
	Start     string `bson:"start" json:"start"`
	End       string `bson:"end" json:"end"`
	IsWorking bool   `bson:"is_working" json:"isWorking"`
}

// Staff is a bookable staff member. WorkingHours is keyed by weekday
// name ("Monday" through "Sunday"); a missing day counts as a day off.
type Staff struct {
	ID             string                `bson:"id" json:"id"`
	Name           string                `bson:"name" json:"name"`
	Email          string                `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string                `bson:"phone,omitempty" json:"phone,omitempty"`
	Photo          string                `bson:"photo,omitempty" json:"photo,omitempty"`
	Specialization string                `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Branches       []string              `bson:"branches,omitempty" json:"branches,omitempty"`
	Services       []string              `bson:"services,omitempty" json:"services,omitempty"`
	WorkingHours   map[string]WorkingDay `bson:"working_hours,omitempty" json:"workingHours,omitempty"`
}

// WorksAtBranch reports whether the staff member is assigned to the
// branch.
func (s *Staff) WorksAtBranch(branchID string) bool {
	for _, id := range s.Branches {
		if id == branchID {
			return true
		}
	}
	return false
}

// ProvidesService reports whether the staff member performs the
// service.
func (s *Staff) ProvidesService(serviceID string) bool {
	for _, id := range s.Services {
		if id == serviceID {
			return true
		}
	}
	return false
}
