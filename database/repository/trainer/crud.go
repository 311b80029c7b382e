// File: database/repository/trainer/crud.go
package trainerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorbase/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoTrainerRepo) Create(ctx context.Context, trainer *models.Trainer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if trainer.ID == "" {
		trainer.ID = uuid.New().String()
	}
	trainer.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, trainer); err != nil {
		return fmt.Errorf("error creating trainer: %w", err)
	}
	return nil
}

func (r *mongoTrainerRepo) GetByID(ctx context.Context, id string) (*models.Trainer, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoTrainerRepo) GetByEmail(ctx context.Context, email string) (*models.Trainer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoTrainerRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Trainer, error) {
	return r.findOne(ctx, bson.M{"token_hash": tokenHash})
}

func (r *mongoTrainerRepo) findOne(ctx context.Context, filter bson.M) (*models.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var trainer models.Trainer
	err := r.coll.FindOne(ctx, filter).Decode(&trainer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching trainer: %w", err)
	}
	return &trainer, nil
}

func (r *mongoTrainerRepo) List(ctx context.Context) ([]models.Trainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, fmt.Errorf("error decoding trainers: %w", err)
	}
	return trainers, nil
}

// UpdateTimeSlots replaces a trainer's weekly availability wholesale.
func (r *mongoTrainerRepo) UpdateTimeSlots(ctx context.Context, id string, slots []models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"timeSlots": slots}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating trainer %s timeslots: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTrainerRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"token_hash": tokenHash}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating trainer %s token hash: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoTrainerRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting trainer %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
