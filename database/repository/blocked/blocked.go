// File: database/repository/blocked/blocked.go
package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"tutorbase/database"
	"tutorbase/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// BlockedRepository stores declared blackout intervals.
type BlockedRepository interface {
	Create(ctx context.Context, block *models.Blocked) error
	ListByTrainer(ctx context.Context, trainerID string) ([]models.Blocked, error)
	Delete(ctx context.Context, blockID string) error
}

type mongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo constructs a MongoDB BlockedRepository.
func NewMongoBlockedRepo() BlockedRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoBlockedRepo{
		coll: db.Collection("blocked"),
	}
}

func (r *mongoBlockedRepo) Create(ctx context.Context, block *models.Blocked) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if block.BlockID == "" {
		block.BlockID = uuid.New().String()
	}
	block.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("error creating block: %w", err)
	}
	return nil
}

func (r *mongoBlockedRepo) ListByTrainer(ctx context.Context, trainerID string) ([]models.Blocked, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"trainer_id": trainerID})
	if err != nil {
		return nil, fmt.Errorf("error listing blocks for trainer %s: %w", trainerID, err)
	}
	defer cursor.Close(ctx)

	var blocks []models.Blocked
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocks: %w", err)
	}
	return blocks, nil
}

func (r *mongoBlockedRepo) Delete(ctx context.Context, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"block_id": blockID})
	if err != nil {
		return fmt.Errorf("error deleting block %s: %w", blockID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
