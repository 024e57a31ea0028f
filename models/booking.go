package models

import "time"

// Booking statuses. Only confirmed and pending bookings occupy time on
// the calendar; completed and cancelled ones do not block new slots.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a committed reservation.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	BranchID    string `bson:"branch_id" json:"branchId"`
	BranchName  string `bson:"branch_name,omitempty" json:"branchName,omitempty"`
	ServiceID   string `bson:"service_id" json:"serviceId"`
	ServiceName string `bson:"service_name,omitempty" json:"serviceName,omitempty"`
	StaffID     string `bson:"staff_id" json:"staffId"`
	StaffName   string `bson:"staff_name,omitempty" json:"staffName,omitempty"`
	Date        string `bson:"date" json:"date"` // "YYYY-MM-DD"
	// StartTime is stored as "HH:mm"; legacy records may carry the older
	// "h:mm AM/PM" form instead.
	StartTime     string    `bson:"start_time" json:"startTime"`
	Duration      int       `bson:"duration,omitempty" json:"duration,omitempty"` // minutes; 0 means "use service duration"
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	CustomerEmail string    `bson:"customer_email" json:"customerEmail"`
	CustomerPhone string    `bson:"customer_phone" json:"customerPhone"`
	CustomerNotes string    `bson:"customer_notes,omitempty" json:"customerNotes,omitempty"`
	BookingCode   string    `bson:"booking_code" json:"bookingCode"`
	Status        string    `bson:"status" json:"status"`
	Channel       string    `bson:"channel" json:"channel"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// OccupiesTime reports whether the booking blocks other bookings from
// taking its interval.
func (b *Booking) OccupiesTime() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusPending
}
