package models

import "time"

// Session status values. The scheduling engine only ever performs the
// scheduled -> cancelled transition; completed is set by the front-desk
// workflow when a session actually took place.
const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// Session represents a single booked training session on a concrete day.
// Start and end are wall-clock "HH:MM" strings; combined with Date they
// form the session's concrete interval. No session spans midnight.
type Session struct {
	ID           string    `bson:"id" json:"id"`
	SessionType  string    `bson:"sessionType" json:"sessionType"` // e.g. "tabletop", "assessment"
	StudentID    string    `bson:"studentId" json:"studentId"`
	TrainerID    string    `bson:"trainerId" json:"trainerId"`
	Date         time.Time `bson:"date" json:"date"` // calendar day, midnight in its location
	StartTime    string    `bson:"startTime" json:"startTime"`
	EndTime      string    `bson:"endTime" json:"endTime"`
	Status       string    `bson:"status" json:"status"`
	Lane         int       `bson:"lane" json:"lane"`                 // per-kind room index assigned by the generator
	AssignedSeat int       `bson:"assignedSeat" json:"assignedSeat"` // seat within the room, 1-based
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Progress     string    `bson:"progress,omitempty" json:"progress,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DayStart returns midnight of the session's calendar day.
func (s Session) DayStart() time.Time {
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, s.Date.Location())
}
