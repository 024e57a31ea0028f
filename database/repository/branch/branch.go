package branchRepo

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

// BranchRepository defines read access to branch documents.
type BranchRepository interface {
	GetByID(id string) (*models.Branch, error)
	GetAllVisible() ([]models.Branch, error)
}

// MongoBranchRepo implements BranchRepository using MongoDB.
type MongoBranchRepo struct {
	coll *mongo.Collection
}

// NewMongoBranchRepo creates a new instance of BranchRepository using MongoDB.
func NewMongoBranchRepo() BranchRepository {
	coll := database.Collection("branches")
	repo := &MongoBranchRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create branch indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBranchRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a branch by its unique ID. Returns (nil, nil) when no
// branch matches.
func (r *MongoBranchRepo) GetByID(id string) (*models.Branch, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var branch models.Branch
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&branch); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch branch with id %s: %w", id, err)
	}
	return &branch, nil
}

// GetAllVisible retrieves branches shown in the booking wizard: those
// both accepting online bookings and marked visible.
func (r *MongoBranchRepo) GetAllVisible() ([]models.Branch, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"online": true, "visible": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve branches: %w", err)
	}
	defer cursor.Close(ctx)

	var branches []models.Branch
	for cursor.Next(ctx) {
		var b models.Branch
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode branch: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, nil
}
