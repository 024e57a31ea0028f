package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	blockedRepo "bookeasy/database/repository/blocked"
	bookingRepo "bookeasy/database/repository/booking"
	serviceRepo "bookeasy/database/repository/service"
	staffRepo "bookeasy/database/repository/staff"
	"bookeasy/models"
	"bookeasy/services/availability"
	"bookeasy/utils"
)

// DefaultBookingService wires the availability engine to the Mongo
// repositories and the Redis response cache.
type DefaultBookingService struct {
	StaffRepo   staffRepo.StaffRepository
	ServiceRepo serviceRepo.ServiceRepository
	BookingRepo bookingRepo.BookingRepository
	BlockedRepo blockedRepo.BlockedRepository
	Engine      *availability.Engine
	Cache       *redis.Client // optional; nil disables response caching
	CacheTTL    time.Duration
}

func (s *DefaultBookingService) engine() *availability.Engine {
	if s.Engine == nil {
		s.Engine = availability.NewEngine()
	}
	return s.Engine
}

func availabilityCacheKey(staffID, serviceID, date string) string {
	return fmt.Sprintf("availability:%s:%s:%s", staffID, serviceID, date)
}

// GetAvailability computes the bookable slots for a staff member,
// service and date. Results are cached briefly; the cache is invalidated
// when a booking lands on the same staff/date.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error) {
	logger := utils.GetLogger()

	if req.StaffID == "" || req.ServiceID == "" || req.Date == "" {
		return nil, NewValidationError("staffId, serviceId and date are required")
	}
	if _, err := availability.DayName(req.Date); err != nil {
		return nil, NewValidationError(err.Error())
	}

	cacheKey := availabilityCacheKey(req.StaffID, req.ServiceID, req.Date)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp models.AvailabilityResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	staff, err := s.StaffRepo.GetByID(req.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	if staff == nil {
		return nil, NewNotFoundError(fmt.Sprintf("staff %s not found", req.StaffID))
	}

	service, err := s.ServiceRepo.GetByID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil {
		return nil, NewNotFoundError(fmt.Sprintf("service %s not found", req.ServiceID))
	}

	bookings, err := s.BookingRepo.GetActiveByStaffAndDate(req.StaffID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	blocked, err := s.BlockedRepo.GetByDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times: %w", err)
	}

	result, err := s.engine().ComputeSlots(staff, service, req.Date, bookings, blocked)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	slots := result.Slots
	if slots == nil {
		slots = []models.Slot{}
	}
	resp := &models.AvailabilityResponse{
		Success:      true,
		Slots:        slots,
		WorkingHours: result.Window,
		Message:      result.Message,
	}

	if s.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, s.cacheTTL()).Err(); err != nil {
				logger.Warn("failed to cache availability response", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *DefaultBookingService) cacheTTL() time.Duration {
	if s.CacheTTL <= 0 {
		return 30 * time.Second
	}
	return s.CacheTTL
}

// CreateBooking validates the chosen slot plus customer details and
// persists a confirmed booking. Unlike the first version of the system,
// the requested interval is re-checked against current bookings and
// blocked times before the insert; without multi-document transactions
// this narrows the read-to-write race rather than eliminating it, and a
// partial unique index on (staff, date, start) catches exact duplicates.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	if input.BranchID == "" || input.ServiceID == "" || input.StaffID == "" ||
		input.Date == "" || input.StartTime == "" {
		return nil, NewValidationError("branchId, serviceId, staffId, date and startTime are required")
	}
	if err := validateCustomer(input.CustomerName, input.CustomerEmail, input.CustomerPhone); err != nil {
		return nil, err
	}
	if _, err := availability.DayName(input.Date); err != nil {
		return nil, NewValidationError(err.Error())
	}
	start, ok := availability.ParseBookingTime(input.StartTime)
	if !ok {
		return nil, NewValidationError(fmt.Sprintf("invalid start time %q", input.StartTime))
	}
	if input.Duration < 0 {
		return nil, NewValidationError("duration must not be negative")
	}

	staff, err := s.StaffRepo.GetByID(input.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	if staff == nil {
		return nil, NewNotFoundError(fmt.Sprintf("staff %s not found", input.StaffID))
	}

	service, err := s.ServiceRepo.GetByID(input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if service == nil {
		return nil, NewNotFoundError(fmt.Sprintf("service %s not found", input.ServiceID))
	}

	duration := input.Duration
	if duration == 0 {
		duration = service.EffectiveDuration()
	}

	bookings, err := s.BookingRepo.GetActiveByStaffAndDate(input.StaffID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	blocked, err := s.BlockedRepo.GetByDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked times: %w", err)
	}

	requested := availability.Interval{Start: start, End: start + duration}
	for _, occ := range s.engine().OccupiedIntervals(bookings, blocked, service.EffectiveDuration()) {
		if requested.Overlaps(occ) {
			return nil, NewConflictError(fmt.Sprintf("slot %s on %s is no longer available", input.StartTime, input.Date))
		}
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		BranchID:      input.BranchID,
		BranchName:    input.BranchName,
		ServiceID:     input.ServiceID,
		ServiceName:   input.ServiceName,
		StaffID:       input.StaffID,
		StaffName:     input.StaffName,
		Date:          input.Date,
		StartTime:     input.StartTime,
		Duration:      duration,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		CustomerNotes: input.CustomerNotes,
		BookingCode:   generateBookingCode(),
		Status:        models.BookingStatusConfirmed,
		Channel:       "web",
	}

	if err := s.BookingRepo.Create(booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, NewConflictError(fmt.Sprintf("slot %s on %s is no longer available", input.StartTime, input.Date))
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.invalidateAvailability(ctx, input.StaffID, input.Date)

	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("staffId", booking.StaffID),
		zap.String("date", booking.Date),
		zap.String("startTime", booking.StartTime))

	return &models.BookingConfirmation{
		Success:     true,
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode,
		Message:     "Booking created successfully",
	}, nil
}

// invalidateAvailability drops cached slot responses for the staff/date
// of a new booking, whatever service they were computed for.
func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, staffID, date string) {
	if s.Cache == nil {
		return
	}
	logger := utils.GetLogger()
	pattern := fmt.Sprintf("availability:%s:*:%s", staffID, date)

	var cursor uint64
	for {
		keys, next, err := s.Cache.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logger.Warn("failed to scan availability cache", zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
				logger.Warn("failed to invalidate availability cache", zap.Error(err))
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
