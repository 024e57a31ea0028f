package models

// AvailabilityRequest is the slot-query payload sent by the booking UI
// after the customer picks a staff member, service and date. BranchID is
// informational only and does not affect the computation.
type AvailabilityRequest struct {
	StaffID   string `json:"staffId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	BranchID  string `json:"branchId"`
	Date      string `json:"date" binding:"required"` // "YYYY-MM-DD"
}

// AvailabilityResponse is the slot-query result. Message is set only
// when the staff member does not work the requested day, so the UI can
// tell a day off apart from a fully booked day (both have empty Slots).
type AvailabilityResponse struct {
	Success      bool           `json:"success"`
	Slots        []Slot         `json:"slots"`
	WorkingHours *WorkingWindow `json:"workingHours,omitempty"`
	Message      string         `json:"message,omitempty"`
}

// BookingInput is the booking-creation payload from the wizard's final
// step: the chosen slot plus customer contact details.
type BookingInput struct {
	BranchID      string `json:"branchId" binding:"required"`
	BranchName    string `json:"branchName"`
	ServiceID     string `json:"serviceId" binding:"required"`
	ServiceName   string `json:"serviceName"`
	StaffID       string `json:"staffId" binding:"required"`
	StaffName     string `json:"staffName"`
	Date          string `json:"date" binding:"required"`      // "YYYY-MM-DD"
	StartTime     string `json:"startTime" binding:"required"` // "HH:mm"
	Duration      int    `json:"duration"`                     // minutes; 0 means "use service duration"
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerNotes string `json:"customerNotes"`
}

// BookingConfirmation is returned to the customer after a successful
// booking, carrying the short code quoted at the front desk.
type BookingConfirmation struct {
	Success     bool   `json:"success"`
	BookingID   string `json:"bookingId"`
	BookingCode string `json:"bookingCode"`
	Message     string `json:"message"`
}
