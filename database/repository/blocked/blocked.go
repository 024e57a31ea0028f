package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookeasy/database"
	"bookeasy/models"
)

// BlockedRepository defines read access to global blocked intervals.
// Blocked times are date-matched only; they apply to every staff member.
type BlockedRepository interface {
	GetByDate(date string) ([]models.BlockedTime, error)
}

// MongoBlockedRepo implements BlockedRepository using MongoDB.
type MongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo creates a new instance of BlockedRepository using MongoDB.
func NewMongoBlockedRepo() BlockedRepository {
	coll := database.Collection("blocked_times")
	repo := &MongoBlockedRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create blocked_times indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBlockedRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByDate retrieves all blocked intervals for a date.
func (r *MongoBlockedRepo) GetByDate(date string) ([]models.BlockedTime, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blocked times for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var blocked []models.BlockedTime
	for cursor.Next(ctx) {
		var bt models.BlockedTime
		if err := cursor.Decode(&bt); err != nil {
			return nil, fmt.Errorf("failed to decode blocked time: %w", err)
		}
		blocked = append(blocked, bt)
	}
	return blocked, nil
}
