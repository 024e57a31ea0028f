package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookeasy/database"
	"bookeasy/models"
)

// ErrDuplicateSlot is returned when an insert collides with an existing
// confirmed/pending booking for the same staff, date and start time.
var ErrDuplicateSlot = errors.New("slot already booked")

// BookingRepository defines access to booking documents.
type BookingRepository interface {
	Create(booking *models.Booking) error
	// GetActiveByStaffAndDate returns the bookings occupying time for the
	// staff member on the date: status confirmed or pending only.
	GetActiveByStaffAndDate(staffID, date string) ([]models.Booking, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "date", Value: 1}}},
		// Backstop against two writers landing the exact same slot; the
		// overlap check in the booking service narrows the race, this
		// index closes it for identical start times.
		{
			Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "date", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": bson.A{models.BookingStatusConfirmed, models.BookingStatusPending}},
			}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("staff %s on %s at %s: %w",
				booking.StaffID, booking.Date, booking.StartTime, ErrDuplicateSlot)
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetActiveByStaffAndDate retrieves confirmed and pending bookings for a
// staff member on a date.
func (r *MongoBookingRepo) GetActiveByStaffAndDate(staffID, date string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"staff_id": staffID,
		"date":     date,
		"status":   bson.M{"$in": bson.A{models.BookingStatusConfirmed, models.BookingStatusPending}},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for staff %s on %s: %w", staffID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
