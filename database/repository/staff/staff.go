package staffRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookeasy/database"
	"bookeasy/models"
)

// StaffRepository defines read access to staff documents.
type StaffRepository interface {
	GetByID(id string) (*models.Staff, error)
	GetByService(serviceID string) ([]models.Staff, error)
	GetAll() ([]models.Staff, error)
}

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.Collection("staff")
	repo := &MongoStaffRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create staff indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoStaffRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "services", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a staff member by their unique ID. Returns (nil, nil)
// when no staff member matches.
func (r *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &staff, nil
}

// GetByService retrieves staff members assigned to the given service.
func (r *MongoStaffRepo) GetByService(serviceID string) ([]models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"services": serviceID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	return decodeStaff(ctx, cursor)
}

// GetAll retrieves all staff members.
func (r *MongoStaffRepo) GetAll() ([]models.Staff, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeStaff(ctx, cursor)
}

func decodeStaff(ctx context.Context, cursor *mongo.Cursor) ([]models.Staff, error) {
	var staff []models.Staff
	for cursor.Next(ctx) {
		var s models.Staff
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode staff: %w", err)
		}
		staff = append(staff, s)
	}
	return staff, nil
}
