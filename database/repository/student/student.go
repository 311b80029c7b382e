// File: database/repository/student/student.go
package studentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorbase/database"
	"tutorbase/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a referenced student id is absent.
var ErrNotFound = errors.New("student not found")

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Delete(ctx context.Context, id string) error
}

type mongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo constructs a MongoDB StudentRepository.
func NewMongoStudentRepo() StudentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoStudentRepo{
		coll: db.Collection("students"),
	}
}

func (r *mongoStudentRepo) Create(ctx context.Context, student *models.Student) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	student.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

func (r *mongoStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var student models.Student
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching student %s: %w", id, err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("error decoding students: %w", err)
	}
	return students, nil
}

func (r *mongoStudentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting student %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
