// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"errors"
	"log"
	"time"

	"tutorbase/database"
	"tutorbase/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a referenced session id is absent.
var ErrNotFound = errors.New("session not found")

// IDGenerator produces record identifiers. Injected so that repositories
// never depend on process-wide mutable state for identity.
type IDGenerator func() string

// UUIDGenerator is the production IDGenerator.
func UUIDGenerator() string {
	return uuid.New().String()
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	List(ctx context.Context) ([]models.Session, error)
	ListByDate(ctx context.Context, day time.Time) ([]models.Session, error)
	ListByTrainerAndDate(ctx context.Context, trainerID string, day time.Time) ([]models.Session, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Session, error)
	CountByKind(ctx context.Context, day time.Time) (map[string]int, error)
	Delete(ctx context.Context, id string) error
}

type mongoSessionRepo struct {
	coll  *mongo.Collection
	newID IDGenerator
}

// NewMongoSessionRepo constructs a MongoDB SessionRepository. A nil idGen
// falls back to uuid generation.
func NewMongoSessionRepo(idGen IDGenerator) SessionRepository {
	if idGen == nil {
		idGen = UUIDGenerator
	}
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoSessionRepo{
		coll:  db.Collection("sessions"),
		newID: idGen,
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("warning: %v", err)
	}
	return repo
}
