package schedule

import (
	"fmt"
	"math/rand"
	"time"

	"tutorbase/models"
)

// scanStep is the fixed increment, in minutes, at which the generator
// walks the business day looking for free lanes.
const scanStep = 15

// Generate builds a dense, non-overlapping demo schedule for one calendar
// day. Each kind is processed independently against its own array of room
// "free-at" offsets, so two kinds may legitimately run at the same time in
// their own rooms. existingCounts carries how many sessions of each kind
// already exist for the day, so per-kind caps hold across repeated runs.
//
// Repeated calls with the same inputs produce different schedules unless a
// seeded Rand is injected.
func (se *DefaultScheduleEngine) Generate(day time.Time, configs []models.SessionKindConfig, trainers []models.Trainer, students []models.Student, existingCounts map[string]int) ([]models.Session, error) {
	if len(configs) == 0 {
		return nil, nil
	}
	if len(trainers) == 0 {
		return nil, NewExhaustedInputError("trainer pool is empty")
	}
	if len(students) == 0 {
		return nil, NewExhaustedInputError("student pool is empty")
	}

	rng := se.rng()
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	var out []models.Session
	for _, cfg := range configs {
		placed, err := se.generateKind(rng, midnight, cfg, trainers, students, existingCounts[cfg.Kind])
		if err != nil {
			return nil, err
		}
		out = append(out, placed...)
	}
	return out, nil
}

func (se *DefaultScheduleEngine) generateKind(rng *rand.Rand, midnight time.Time, cfg models.SessionKindConfig, trainers []models.Trainer, students []models.Student, existing int) ([]models.Session, error) {
	if len(cfg.Durations) == 0 {
		return nil, fmt.Errorf("kind %q has no durations configured", cfg.Kind)
	}

	// remaining < 0 means the kind is uncapped.
	remaining := -1
	if cfg.Cap > 0 {
		remaining = cfg.Cap - existing
		if remaining <= 0 {
			return nil, nil
		}
	}

	lanes := cfg.LaneCount
	if lanes <= 0 {
		lanes = 1
	}
	seats := cfg.SeatCount
	if seats <= 0 {
		seats = se.SeatCount
	}
	if seats <= 0 {
		seats = defaultSeatCount
	}
	dayStart, dayEnd := se.dayBounds()

	// Per-room offsets at which each lane becomes free again. Lane state
	// lives only for this pass and is never shared across kinds.
	freeAt := make([]int, lanes)

	var out []models.Session
	for _, w := range cfg.Windows {
		winStart, err := ToMinutes(w.StartTime)
		if err != nil {
			return out, fmt.Errorf("kind %q window: %w", cfg.Kind, err)
		}
		winEnd, err := ToMinutes(w.EndTime)
		if err != nil {
			return out, fmt.Errorf("kind %q window: %w", cfg.Kind, err)
		}
		if winStart < dayStart {
			winStart = dayStart
		}
		if winEnd > dayEnd {
			winEnd = dayEnd
		}

		for offset := winStart; offset < winEnd; offset += scanStep {
			for lane := 0; lane < lanes; lane++ {
				if remaining == 0 {
					return out, nil
				}
				if freeAt[lane] > offset {
					continue
				}
				// The probability draw is what leaves organic gaps in the
				// schedule instead of packing every room solid.
				if rng.Float64() >= w.Probability {
					continue
				}

				duration := cfg.Durations[rng.Intn(len(cfg.Durations))]
				end := offset + duration
				if end > winEnd || end > dayEnd {
					continue
				}
				if se.intersectsBlackout(offset, end) {
					continue
				}

				trainer, err := se.pickTrainer(rng, cfg, trainers)
				if err != nil {
					return out, err
				}
				student := students[rng.Intn(len(students))]

				out = append(out, models.Session{
					SessionType:  cfg.Kind,
					StudentID:    student.ID,
					TrainerID:    trainer.ID,
					Date:         midnight,
					StartTime:    ToClock(offset),
					EndTime:      ToClock(end),
					Status:       models.SessionScheduled,
					Lane:         lane,
					AssignedSeat: rng.Intn(seats) + 1,
				})

				gap := 0
				if len(cfg.Gaps) > 0 {
					gap = cfg.Gaps[rng.Intn(len(cfg.Gaps))]
				}
				freeAt[lane] = end + gap
				if remaining > 0 {
					remaining--
				}
			}
		}
	}
	return out, nil
}

// intersectsBlackout reports whether [start, end) intrudes into any
// reserved sub-window. Placements must not straddle a blackout even
// partially.
func (se *DefaultScheduleEngine) intersectsBlackout(start, end int) bool {
	for _, b := range se.Blackouts {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

// pickTrainer selects a trainer for one placement. The kind's eligibility
// predicate is a preference, not a filter: when nobody qualifies the whole
// pool is used, unless StrictEligibility makes that a hard failure.
func (se *DefaultScheduleEngine) pickTrainer(rng *rand.Rand, cfg models.SessionKindConfig, trainers []models.Trainer) (models.Trainer, error) {
	if cfg.Eligibility == nil {
		return trainers[rng.Intn(len(trainers))], nil
	}
	var eligible []models.Trainer
	for _, t := range trainers {
		if cfg.Eligibility(t) {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) > 0 {
		return eligible[rng.Intn(len(eligible))], nil
	}
	if se.StrictEligibility {
		return models.Trainer{}, NewExhaustedInputError(fmt.Sprintf("no eligible trainer for kind %q", cfg.Kind))
	}
	return trainers[rng.Intn(len(trainers))], nil
}
