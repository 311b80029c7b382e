package availability

import (
	"context"
	"time"

	blockedRepo "tutorbase/database/repository/blocked"
	sessionRepo "tutorbase/database/repository/session"
	trainerRepo "tutorbase/database/repository/trainer"
	"tutorbase/models"
	"tutorbase/services/schedule"
)

// AvailabilityService manages trainers' recurring weekly availability and
// concrete blackout declarations.
type AvailabilityService interface {
	// SetWeeklySlots validates and replaces a trainer's weekly windows.
	SetWeeklySlots(ctx context.Context, trainerID string, slots []models.TimeSlot) error

	// DeclareBlock records a blackout interval for a trainer and cancels
	// every scheduled session caught inside it. It returns the persisted
	// block and the sessions that were cancelled.
	DeclareBlock(ctx context.Context, trainerID string, start, end time.Time, reason string) (*models.Blocked, []models.Session, error)
}

// DefaultAvailabilityService is our production implementation.
type DefaultAvailabilityService struct {
	TrainerRepo trainerRepo.TrainerRepository
	SessionRepo sessionRepo.SessionRepository
	BlockedRepo blockedRepo.BlockedRepository
	Engine      schedule.ScheduleEngine
}
