// File: database/repository/session/crud.go
package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorbase/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new session document, assigning its id and creation
// timestamp.
func (r *mongoSessionRepo) Create(ctx context.Context, session *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if session.ID == "" {
		session.ID = r.newID()
	}
	session.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	return nil
}

// GetByID retrieves a session by its id.
func (r *mongoSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching session %s: %w", id, err)
	}
	return &session, nil
}

// UpdateStatus sets a session's status and returns the updated record.
func (r *mongoSessionRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("error updating session %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a session document.
func (r *mongoSessionRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting session %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}
