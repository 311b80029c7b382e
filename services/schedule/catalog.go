package schedule

import "tutorbase/models"

// DemoKindConfigs is the catalog used to populate demo and staging
// environments. Durations and gaps are weighted by repetition: a value
// listed twice is drawn twice as often.
func DemoKindConfigs() []models.SessionKindConfig {
	return []models.SessionKindConfig{
		{
			Kind:      "tabletop",
			LaneCount: 3,
			Windows: []models.GenerationWindow{
				{StartTime: "09:00", EndTime: "12:30", Probability: 0.7},
				{StartTime: "13:30", EndTime: "18:00", Probability: 0.6},
			},
			Durations: []int{45, 60, 60, 90},
			Gaps:      []int{0, 15, 15, 30},
			Cap:       24,
			Eligibility: func(t models.Trainer) bool {
				return t.HasCertification("tabletop")
			},
		},
		{
			Kind:      "assessment",
			LaneCount: 2,
			Windows: []models.GenerationWindow{
				{StartTime: "10:00", EndTime: "12:30", Probability: 0.5},
				{StartTime: "14:00", EndTime: "17:00", Probability: 0.5},
			},
			Durations: []int{30, 45, 45},
			Gaps:      []int{15, 15, 30},
			Cap:       10,
			SeatCount: 2,
			Eligibility: func(t models.Trainer) bool {
				return t.HasCertification("assessor")
			},
		},
		{
			Kind:      "workshop",
			LaneCount: 1,
			Windows: []models.GenerationWindow{
				{StartTime: "15:00", EndTime: "19:00", Probability: 0.4},
			},
			Durations: []int{90, 120},
			Gaps:      []int{30},
			Cap:       3,
			SeatCount: 12,
		},
	}
}

// DemoBlackouts returns the reserved sub-windows for demo generation,
// currently just the lunch break.
func DemoBlackouts() []models.MinuteRange {
	return []models.MinuteRange{
		{Start: 12*60 + 30, End: 13*60 + 30},
	}
}
