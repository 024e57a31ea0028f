package models

// DefaultServiceDuration is used when a service record has no duration
// recorded, in minutes.
const DefaultServiceDuration = 60

// Service is a bookable offering. Available and Visible are pointers so
// that records predating those flags read as true rather than false.
type Service struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int      `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Price       float64  `bson:"price,omitempty" json:"price,omitempty"`
	Image       string   `bson:"image,omitempty" json:"image,omitempty"`
	Branches    []string `bson:"branches,omitempty" json:"branches,omitempty"`
	StaffIDs    []string `bson:"staff_ids,omitempty" json:"staffIds,omitempty"`
	Available   *bool    `bson:"available,omitempty" json:"available,omitempty"`
	Visible     *bool    `bson:"visible,omitempty" json:"visible,omitempty"`
}

// EffectiveDuration returns the service duration in minutes, falling
// back to DefaultServiceDuration when none is recorded.
func (s *Service) EffectiveDuration() int {
	if s.Duration <= 0 {
		return DefaultServiceDuration
	}
	return s.Duration
}

// IsBookable reports whether customers may book the service online.
func (s *Service) IsBookable() bool {
	available := s.Available == nil || *s.Available
	visible := s.Visible == nil || *s.Visible
	return available && visible
}
