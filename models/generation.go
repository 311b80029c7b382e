package models

// GenerationWindow is a candidate placement window for one session kind.
// Probability is the chance that a free lane actually takes a placement
// at any given scan offset, which leaves organic gaps in the schedule
// instead of packing every lane solid.
type GenerationWindow struct {
	StartTime   string  `json:"startTime"` // "HH:MM"
	EndTime     string  `json:"endTime"`
	Probability float64 `json:"probability"` // 0..1
}

// SessionKindConfig drives schedule generation for one session kind.
// Lanes are the kind's own parallel rooms; two different kinds may
// overlap in time because their lanes are separate resources.
type SessionKindConfig struct {
	Kind      string             `json:"kind"`
	LaneCount int                `json:"laneCount"`
	Windows   []GenerationWindow `json:"windows"`   // processed in declaration order
	Durations []int              `json:"durations"` // allowed session lengths in minutes; repeats weight the draw
	Gaps      []int              `json:"gaps"`      // allowed idle minutes after a session; repeats weight the draw
	Cap       int                `json:"cap"`       // absolute placement cap for the kind; 0 means uncapped
	SeatCount int                `json:"seatCount"` // seats per room; 0 falls back to the engine default

	// Eligibility is a soft preference over the trainer pool, typically a
	// certification check. Nil means every trainer qualifies.
	Eligibility func(Trainer) bool `json:"-"`
}
