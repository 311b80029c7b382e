package models

// TimeSlot is a trainer's recurring weekly availability window.
// Times are wall-clock "HH:MM" strings on the nominal day; a slot never
// crosses midnight, so StartTime < EndTime always holds.
type TimeSlot struct {
	DayOfWeek int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// SetupTimeslotsRequest defines the payload for replacing a trainer's
// weekly availability.
type SetupTimeslotsRequest struct {
	TimeSlots []TimeSlot `json:"timeSlots" binding:"required"`
}
