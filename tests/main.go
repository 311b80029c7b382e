// Demo-data seeder: populates trainers, students, and a week of generated
// sessions for local and staging environments.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"tutorbase/config"
	"tutorbase/database"
	sessionRepoPkg "tutorbase/database/repository/session"
	studentRepoPkg "tutorbase/database/repository/student"
	trainerRepoPkg "tutorbase/database/repository/trainer"
	"tutorbase/models"
	"tutorbase/services/schedule"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database(database.DatabaseName)

	// Clear existing demo data.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, coll := range []string{"sessions", "trainers", "students", "blocked"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	trainerRepo := trainerRepoPkg.NewMongoTrainerRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo(nil)

	// Seed trainers with varying certifications.
	trainerSpecs := []struct {
		name  string
		certs []string
	}{
		{"Amara Osei", []string{"tabletop", "assessor"}},
		{"Jonas Lindqvist", []string{"tabletop"}},
		{"Priya Raman", []string{"assessor"}},
		{"Marco Beltrán", []string{"tabletop"}},
		{"Elif Kaya", nil},
	}
	var trainers []models.Trainer
	for i, spec := range trainerSpecs {
		hash, err := bcrypt.GenerateFromPassword([]byte(fmt.Sprintf("trainer-pass-%d", i+1)), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash trainer password: %v", err)
		}
		trainer := models.Trainer{
			Name:           spec.name,
			Email:          fmt.Sprintf("trainer%d@tutorbase.test", i+1),
			PasswordHash:   string(hash),
			Certifications: spec.certs,
			TimeSlots: []models.TimeSlot{
				{DayOfWeek: 1, StartTime: "08:00", EndTime: "17:00"},
				{DayOfWeek: 2, StartTime: "08:00", EndTime: "17:00"},
				{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00"},
				{DayOfWeek: 4, StartTime: "08:00", EndTime: "17:00"},
				{DayOfWeek: 5, StartTime: "08:00", EndTime: "14:00"},
			},
		}
		if err := trainerRepo.Create(ctx, &trainer); err != nil {
			log.Fatalf("Failed to create trainer: %v", err)
		}
		trainers = append(trainers, trainer)
	}

	// Seed students.
	var students []models.Student
	for i := 1; i <= 30; i++ {
		student := models.Student{
			Name:  fmt.Sprintf("Student %02d", i),
			Email: fmt.Sprintf("student%02d@tutorbase.test", i),
		}
		if err := studentRepo.Create(ctx, &student); err != nil {
			log.Fatalf("Failed to create student: %v", err)
		}
		students = append(students, student)
	}

	// Generate a week of schedules. A fixed seed makes reruns comparable.
	engine := &schedule.DefaultScheduleEngine{
		Rand:      rand.New(rand.NewSource(42)),
		Blackouts: schedule.DemoBlackouts(),
	}
	configs := schedule.DemoKindConfigs()

	total := 0
	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		day := time.Now().AddDate(0, 0, dayOffset)
		generated, err := engine.Generate(day, configs, trainers, students, nil)
		if err != nil {
			log.Fatalf("Failed to generate schedule for %s: %v", day.Format("2006-01-02"), err)
		}
		for i := range generated {
			if err := sessionRepo.Create(ctx, &generated[i]); err != nil {
				log.Fatalf("Failed to insert session: %v", err)
			}
		}
		total += len(generated)
	}

	log.Printf("Seeded %d trainers, %d students, %d sessions", len(trainers), len(students), total)
}
