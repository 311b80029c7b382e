// File: database/repository/trainer/interface.go
package trainerRepo

import (
	"context"
	"errors"

	"tutorbase/database"
	"tutorbase/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a referenced trainer id is absent.
var ErrNotFound = errors.New("trainer not found")

type TrainerRepository interface {
	Create(ctx context.Context, trainer *models.Trainer) error
	GetByID(ctx context.Context, id string) (*models.Trainer, error)
	GetByEmail(ctx context.Context, email string) (*models.Trainer, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Trainer, error)
	List(ctx context.Context) ([]models.Trainer, error)
	UpdateTimeSlots(ctx context.Context, id string, slots []models.TimeSlot) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	Delete(ctx context.Context, id string) error
}

type mongoTrainerRepo struct {
	coll *mongo.Collection
}

// NewMongoTrainerRepo constructs a MongoDB TrainerRepository.
func NewMongoTrainerRepo() TrainerRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoTrainerRepo{
		coll: db.Collection("trainers"),
	}
}
