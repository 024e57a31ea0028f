package availability

import (
	"fmt"

	"go.uber.org/zap"

	"bookeasy/models"
)

// DefaultGranularity is the step between candidate start times.
const DefaultGranularity = 15

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Engine generates bookable slots. It is stateless: identical inputs
// always yield identical output.
type Engine struct {
	Granularity int // minutes between candidate starts
	Buffer      int // extra gap enforced around occupied intervals
	Logger      *zap.Logger
}

// NewEngine returns an engine with the default 15-minute granularity and
// no inter-appointment buffer.
func NewEngine() *Engine {
	return &Engine{Granularity: DefaultGranularity}
}

func (e *Engine) log() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.L()
}

func (e *Engine) granularity() int {
	if e.Granularity <= 0 {
		return DefaultGranularity
	}
	return e.Granularity
}

// Result is the outcome of a slot computation. NotWorking distinguishes
// "staff has the day off" from a genuinely fully booked day; both have
// empty Slots but the UI renders them differently.
type Result struct {
	Slots      []models.Slot
	Window     *models.WorkingWindow
	NotWorking bool
	Message    string
}

// ComputeSlots returns the ordered candidate start times on date that
// fit the service duration inside the staff member's working hours and
// overlap no confirmed/pending booking or blocked interval. Bookings and
// blocked intervals must already be filtered to the staff member and
// date by the caller.
func (e *Engine) ComputeSlots(
	staff *models.Staff,
	service *models.Service,
	date string,
	bookings []models.Booking,
	blocked []models.BlockedTime,
) (Result, error) {
	dayName, err := DayName(date)
	if err != nil {
		return Result{}, err
	}
	if service.Duration < 0 {
		return Result{}, fmt.Errorf("service %s has negative duration %d", service.ID, service.Duration)
	}
	duration := service.EffectiveDuration()

	day, ok := staff.WorkingHours[dayName]
	if !ok || !day.IsWorking {
		return Result{
			NotWorking: true,
			Message:    fmt.Sprintf("%s is not a working day", dayName),
		}, nil
	}

	workStart, err := ParseClock(day.Start)
	if err != nil {
		return Result{}, fmt.Errorf("staff %s working hours for %s: %w", staff.ID, dayName, err)
	}
	workEnd, err := ParseClock(day.End)
	if err != nil {
		return Result{}, fmt.Errorf("staff %s working hours for %s: %w", staff.ID, dayName, err)
	}

	occupied := e.OccupiedIntervals(bookings, blocked, duration)

	var slots []models.Slot
	for start := workStart; start+duration <= workEnd; start += e.granularity() {
		if e.conflicts(Interval{Start: start, End: start + duration}, occupied) {
			continue
		}
		slots = append(slots, models.Slot{
			Time:       FormatClock(start),
			Display:    FormatDisplay(start),
			DateTimeID: fmt.Sprintf("%sT%s", date, FormatClock(start)),
		})
	}

	return Result{
		Slots:  slots,
		Window: &models.WorkingWindow{Start: day.Start, End: day.End},
	}, nil
}

// OccupiedIntervals builds the occupied set from same-day bookings and
// blocked intervals. Bookings whose start time matches neither known
// encoding are skipped rather than failing the computation; the skip is
// logged so operators can repair the record. fallbackDuration fills in
// for bookings stored without one. The result is unmerged: overlapping
// entries are harmless under pairwise testing.
func (e *Engine) OccupiedIntervals(
	bookings []models.Booking,
	blocked []models.BlockedTime,
	fallbackDuration int,
) []Interval {
	intervals := make([]Interval, 0, len(bookings)+len(blocked))

	for _, b := range bookings {
		if !b.OccupiesTime() {
			continue
		}
		start, ok := ParseBookingTime(b.StartTime)
		if !ok {
			e.log().Warn("skipping booking with unparseable start time",
				zap.String("bookingId", b.ID),
				zap.String("startTime", b.StartTime))
			continue
		}
		dur := b.Duration
		if dur <= 0 {
			dur = fallbackDuration
		}
		intervals = append(intervals, Interval{Start: start, End: start + dur})
	}

	for _, bt := range blocked {
		if bt.AllDay {
			intervals = append(intervals, Interval{Start: 0, End: MinutesPerDay})
			continue
		}
		start := 0
		if bt.StartTime != "" {
			if m, err := ParseClock(bt.StartTime); err == nil {
				start = m
			}
		}
		end := MinutesPerDay - 1 // "23:59"
		if bt.EndTime != "" {
			if m, err := ParseClock(bt.EndTime); err == nil {
				end = m
			}
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}

	return intervals
}

func (e *Engine) conflicts(candidate Interval, occupied []Interval) bool {
	padded := Interval{Start: candidate.Start - e.Buffer, End: candidate.End + e.Buffer}
	for _, occ := range occupied {
		if padded.Overlaps(occ) {
			return true
		}
	}
	return false
}
