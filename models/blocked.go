package models

import "time"

// BlockedTime is a global closure period for a given date (holiday,
// maintenance). It is not staff-specific: it removes availability for
// everyone. Either AllDay is set, or StartTime/EndTime bound the block.
type BlockedTime struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	StartTime string    `bson:"start_time,omitempty" json:"startTime,omitempty"` // "HH:mm"
	EndTime   string    `bson:"end_time,omitempty" json:"endTime,omitempty"`     // "HH:mm"
	AllDay    bool      `bson:"all_day" json:"allDay"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
