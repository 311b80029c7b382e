package models

import "time"

// Blocked is a concrete, date-anchored interval during which a trainer
// is unavailable and no session may run. Unlike a weekly TimeSlot it is
// not recurring: Start and End are absolute instants on one calendar day.
type Blocked struct {
	BlockID   string    `bson:"block_id" json:"block_id"`
	TrainerID string    `bson:"trainer_id" json:"trainer_id"`
	Start     time.Time `bson:"start" json:"start"`
	End       time.Time `bson:"end" json:"end"`
	Reason    string    `bson:"reason" json:"reason"` // e.g. "sick leave", "facility maintenance"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
