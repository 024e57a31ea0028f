package models

// Slot is a candidate appointment start time produced by the
// availability engine. Slots are computed per request and never stored.
type Slot struct {
	Time       string `json:"time"`       // 24-hour "HH:mm"
	Display    string `json:"display"`    // 12-hour "h:mm AM/PM"
	DateTimeID string `json:"dateTimeId"` // "<date>T<HH:mm>"
}

// WorkingWindow is the staff member's open/close window for the queried
// day, echoed back to the booking UI alongside the slots.
type WorkingWindow struct {
	Start string `json:"start"` // "HH:mm"
	End   string `json:"end"`   // "HH:mm"
}
