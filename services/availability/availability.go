package availability

import (
	"context"
	"fmt"
	"time"

	"tutorbase/models"
	"tutorbase/services/schedule"
	"tutorbase/utils"

	"go.uber.org/zap"
)

// SetWeeklySlots validates each window and replaces the trainer's weekly
// availability wholesale.
func (s *DefaultAvailabilityService) SetWeeklySlots(ctx context.Context, trainerID string, slots []models.TimeSlot) error {
	for i, slot := range slots {
		if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
			return fmt.Errorf("slot %d: dayOfWeek %d out of range", i+1, slot.DayOfWeek)
		}
		start, err := schedule.ToMinutes(slot.StartTime)
		if err != nil {
			return fmt.Errorf("slot %d: %w", i+1, err)
		}
		end, err := schedule.ToMinutes(slot.EndTime)
		if err != nil {
			return fmt.Errorf("slot %d: %w", i+1, err)
		}
		if start >= end {
			return fmt.Errorf("slot %d: start must be before end", i+1)
		}
	}
	if err := s.TrainerRepo.UpdateTimeSlots(ctx, trainerID, slots); err != nil {
		return fmt.Errorf("failed to update timeslots for trainer %s: %w", trainerID, err)
	}
	return nil
}

// DeclareBlock persists the blackout and runs the conflict resolver over
// the trainer's sessions on the blocked day.
func (s *DefaultAvailabilityService) DeclareBlock(ctx context.Context, trainerID string, start, end time.Time, reason string) (*models.Blocked, []models.Session, error) {
	if !start.Before(end) {
		return nil, nil, fmt.Errorf("block start must be before end")
	}
	if _, err := s.TrainerRepo.GetByID(ctx, trainerID); err != nil {
		return nil, nil, fmt.Errorf("trainer %s: %w", trainerID, err)
	}

	block := &models.Blocked{
		TrainerID: trainerID,
		Start:     start,
		End:       end,
		Reason:    reason,
	}
	if err := s.BlockedRepo.Create(ctx, block); err != nil {
		return nil, nil, err
	}

	sessions, err := s.SessionRepo.ListByTrainerAndDate(ctx, trainerID, start)
	if err != nil {
		return nil, nil, err
	}

	cancelled, err := s.Engine.CancelOverlapping(ctx, *block, sessions)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve conflicts for block %s: %w", block.BlockID, err)
	}

	utils.GetLogger().Info("blackout declared",
		zap.String("trainerId", trainerID),
		zap.Time("start", start),
		zap.Time("end", end),
		zap.Int("cancelledSessions", len(cancelled)),
	)
	return block, cancelled, nil
}
