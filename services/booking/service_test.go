package booking

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookeasy/models"
)

// 2025-06-02 is a Monday.
const monday = "2025-06-02"

type stubStaffRepo struct {
	staff map[string]*models.Staff
}

func (s *stubStaffRepo) GetByID(id string) (*models.Staff, error) {
	return s.staff[id], nil
}
func (s *stubStaffRepo) GetByService(string) ([]models.Staff, error) { return nil, nil }
func (s *stubStaffRepo) GetAll() ([]models.Staff, error)             { return nil, nil }

type stubServiceRepo struct {
	services map[string]*models.Service
}

func (s *stubServiceRepo) GetByID(id string) (*models.Service, error) {
	return s.services[id], nil
}
func (s *stubServiceRepo) GetByBranch(string) ([]models.Service, error) { return nil, nil }

type stubBookingRepo struct {
	existing []models.Booking
	created  *models.Booking
}

func (s *stubBookingRepo) Create(b *models.Booking) error {
	s.created = b
	return nil
}
func (s *stubBookingRepo) GetActiveByStaffAndDate(string, string) ([]models.Booking, error) {
	return s.existing, nil
}

type stubBlockedRepo struct {
	blocked []models.BlockedTime
}

func (s *stubBlockedRepo) GetByDate(string) ([]models.BlockedTime, error) {
	return s.blocked, nil
}

func testStaff() *models.Staff {
	return &models.Staff{
		ID:   "staff-1",
		Name: "Sarah Johnson",
		WorkingHours: map[string]models.WorkingDay{
			"Monday": {Start: "09:00", End: "17:00", IsWorking: true},
		},
	}
}

func newTestService(existing []models.Booking, blocked []models.BlockedTime) (*DefaultBookingService, *stubBookingRepo) {
	bookings := &stubBookingRepo{existing: existing}
	svc := &DefaultBookingService{
		StaffRepo:   &stubStaffRepo{staff: map[string]*models.Staff{"staff-1": testStaff()}},
		ServiceRepo: &stubServiceRepo{services: map[string]*models.Service{"svc-1": {ID: "svc-1", Name: "Haircut", Duration: 60}}},
		BookingRepo: bookings,
		BlockedRepo: &stubBlockedRepo{blocked: blocked},
	}
	return svc, bookings
}

func TestGetAvailabilityOpenDay(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	resp, err := svc.GetAvailability(context.Background(), models.AvailabilityRequest{
		StaffID: "staff-1", ServiceID: "svc-1", Date: monday,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Slots, 29)
	assert.Empty(t, resp.Message)
	require.NotNil(t, resp.WorkingHours)
	assert.Equal(t, "09:00", resp.WorkingHours.Start)
	assert.Equal(t, "17:00", resp.WorkingHours.End)
}

func TestGetAvailabilityDayOffMessage(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	// 2025-06-01 is a Sunday with no working-hours entry.
	resp, err := svc.GetAvailability(context.Background(), models.AvailabilityRequest{
		StaffID: "staff-1", ServiceID: "svc-1", Date: "2025-06-01",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, "Sunday is not a working day", resp.Message)
}

func TestGetAvailabilityFullyBlockedHasNoMessage(t *testing.T) {
	blocked := []models.BlockedTime{{ID: "bt1", Date: monday, AllDay: true}}
	svc, _ := newTestService(nil, blocked)

	resp, err := svc.GetAvailability(context.Background(), models.AvailabilityRequest{
		StaffID: "staff-1", ServiceID: "svc-1", Date: monday,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Message, "a fully blocked working day must not carry the day-off message")
}

func TestGetAvailabilityUnknownStaff(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.GetAvailability(context.Background(), models.AvailabilityRequest{
		StaffID: "ghost", ServiceID: "svc-1", Date: monday,
	})
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.GetAvailability(context.Background(), models.AvailabilityRequest{
		StaffID: "staff-1", ServiceID: "ghost", Date: monday,
	})
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestGetAvailabilityRejectsBadDate(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.GetAvailability(context.Background(), models.AvailabilityRequest{
		StaffID: "staff-1", ServiceID: "svc-1", Date: "not-a-date",
	})
	require.Error(t, err)
	assert.Equal(t, CodeValidation, ErrorCode(err))
}

func validInput() models.BookingInput {
	return models.BookingInput{
		BranchID:      "branch-1",
		ServiceID:     "svc-1",
		StaffID:       "staff-1",
		Date:          monday,
		StartTime:     "10:00",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+1 (555) 123-4567",
	}
}

func TestCreateBookingPersistsConfirmed(t *testing.T) {
	svc, repo := newTestService(nil, nil)

	conf, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)
	assert.True(t, conf.Success)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), conf.BookingCode)

	require.NotNil(t, repo.created)
	assert.Equal(t, models.BookingStatusConfirmed, repo.created.Status)
	assert.Equal(t, "web", repo.created.Channel)
	assert.Equal(t, 60, repo.created.Duration, "duration falls back to the service's")
	assert.Equal(t, conf.BookingID, repo.created.ID)
	assert.Equal(t, conf.BookingCode, repo.created.BookingCode)
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	existing := []models.Booking{
		{ID: "b1", StartTime: "10:30", Duration: 60, Status: models.BookingStatusConfirmed},
	}
	svc, repo := newTestService(existing, nil)

	_, err := svc.CreateBooking(context.Background(), validInput()) // 10:00+60 overlaps [10:30, 11:30)
	require.Error(t, err)
	assert.Equal(t, CodeConflict, ErrorCode(err))
	assert.Nil(t, repo.created)
}

func TestCreateBookingIgnoresCancelledOverlap(t *testing.T) {
	existing := []models.Booking{
		{ID: "b1", StartTime: "10:00", Duration: 60, Status: models.BookingStatusCancelled},
	}
	svc, repo := newTestService(existing, nil)

	_, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotNil(t, repo.created)
}

func TestCreateBookingRejectsBlockedInterval(t *testing.T) {
	blocked := []models.BlockedTime{{ID: "bt1", Date: monday, StartTime: "10:00", EndTime: "12:00"}}
	svc, _ := newTestService(nil, blocked)

	_, err := svc.CreateBooking(context.Background(), validInput())
	require.Error(t, err)
	assert.Equal(t, CodeConflict, ErrorCode(err))
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	cases := map[string]func(*models.BookingInput){
		"missing staff":  func(in *models.BookingInput) { in.StaffID = "" },
		"bad email":      func(in *models.BookingInput) { in.CustomerEmail = "not-an-email" },
		"bad phone":      func(in *models.BookingInput) { in.CustomerPhone = "call me maybe" },
		"bad date":       func(in *models.BookingInput) { in.Date = "06/02/2025" },
		"bad start time": func(in *models.BookingInput) { in.StartTime = "noonish" },
	}
	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		_, err := svc.CreateBooking(context.Background(), in)
		require.Error(t, err, name)
		assert.Equal(t, CodeValidation, ErrorCode(err), name)
	}
}

func TestCreateBookingLegacyStartTime(t *testing.T) {
	svc, repo := newTestService(nil, nil)

	in := validInput()
	in.StartTime = "2:00 PM"
	_, err := svc.CreateBooking(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "2:00 PM", repo.created.StartTime)
}
