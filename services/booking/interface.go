package booking

import (
	"context"

	"bookeasy/models"
)

// BookingService answers slot queries and persists confirmed bookings.
type BookingService interface {
	GetAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error)
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.BookingConfirmation, error)
}
