package schedule

import (
	"context"
	"math/rand"
	"time"

	sessionRepo "tutorbase/database/repository/session"
	"tutorbase/models"
)

// ScheduleEngine owns the interval logic of the booking system: it cancels
// sessions caught inside a declared blackout and generates dense demo
// schedules across each kind's rooms.
type ScheduleEngine interface {
	// CancelOverlapping transitions every scheduled session whose concrete
	// interval intersects the block to cancelled, persisting each change
	// through the session repository. It returns the sessions it cancelled.
	CancelOverlapping(ctx context.Context, block models.Blocked, sessions []models.Session) ([]models.Session, error)

	// Generate produces candidate session records for one calendar day.
	// It never touches persisted state; callers decide what to store.
	Generate(day time.Time, configs []models.SessionKindConfig, trainers []models.Trainer, students []models.Student, existingCounts map[string]int) ([]models.Session, error)
}

// DefaultScheduleEngine is our production implementation.
type DefaultScheduleEngine struct {
	Repo sessionRepo.SessionRepository

	// Rand is the source of randomness for generation; leave nil for a
	// time-seeded source, or inject a seeded one for reproducible runs.
	// An injected source is used as-is and must not be shared across
	// concurrent Generate calls (rand.Rand is not concurrency-safe).
	Rand *rand.Rand

	// StrictEligibility turns the trainer eligibility preference into a
	// hard requirement: generation fails when no trainer qualifies for a
	// kind instead of falling back to the full pool.
	StrictEligibility bool

	// Business-day bounds in minutes from midnight. A zero value means
	// "use the default" (08:00 and 20:00 respectively), so a day starting
	// exactly at midnight cannot be expressed; the earliest configurable
	// start is 00:01 (DayStart of 1).
	DayStart int
	DayEnd   int

	// Blackouts are reserved sub-windows (e.g. the lunch break) that no
	// generated placement may intersect, even partially.
	Blackouts []models.MinuteRange

	// SeatCount is the default number of seats per room when a kind config
	// does not set its own.
	SeatCount int
}

const (
	defaultDayStart  = 8 * 60
	defaultDayEnd    = 20 * 60
	defaultSeatCount = 6
)

// rng returns the injected source when set, otherwise a fresh time-seeded
// one. The engine never stores the fallback, so a shared engine with a nil
// Rand stays safe for concurrent Generate calls.
func (se *DefaultScheduleEngine) rng() *rand.Rand {
	if se.Rand != nil {
		return se.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (se *DefaultScheduleEngine) dayBounds() (int, int) {
	start, end := se.DayStart, se.DayEnd
	if start == 0 {
		start = defaultDayStart
	}
	if end == 0 {
		end = defaultDayEnd
	}
	return start, end
}
