package schedule

import (
	"context"
	"fmt"
	"time"

	"tutorbase/models"
)

// CancelOverlapping walks the supplied sessions and cancels every scheduled
// one whose concrete interval intersects [block.Start, block.End). Sessions
// already cancelled or completed are left untouched, so re-applying the
// same block is a no-op. No session's transition affects another's overlap
// test, so evaluation order does not matter.
//
// A malformed start or end time on any session aborts the whole pass with
// a FormatError; sessions are never silently skipped.
func (se *DefaultScheduleEngine) CancelOverlapping(ctx context.Context, block models.Blocked, sessions []models.Session) ([]models.Session, error) {
	if !block.Start.Before(block.End) {
		return nil, fmt.Errorf("block %s has an empty interval", block.BlockID)
	}

	var cancelled []models.Session
	for i := range sessions {
		s := &sessions[i]
		if s.Status != models.SessionScheduled {
			continue
		}

		start, end, err := sessionInterval(*s)
		if err != nil {
			return cancelled, fmt.Errorf("session %s: %w", s.ID, err)
		}
		if !start.Before(block.End) || !block.Start.Before(end) {
			continue
		}

		if se.Repo != nil {
			updated, err := se.Repo.UpdateStatus(ctx, s.ID, models.SessionCancelled)
			if err != nil {
				return cancelled, fmt.Errorf("failed to cancel session %s: %w", s.ID, err)
			}
			*s = *updated
		} else {
			s.Status = models.SessionCancelled
		}
		cancelled = append(cancelled, *s)
	}
	return cancelled, nil
}

// sessionInterval resolves a session's clock strings against its calendar
// day into absolute start and end instants.
func sessionInterval(s models.Session) (time.Time, time.Time, error) {
	startMin, err := ToMinutes(s.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endMin, err := ToMinutes(s.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	midnight := s.DayStart()
	return midnight.Add(time.Duration(startMin) * time.Minute),
		midnight.Add(time.Duration(endMin) * time.Minute), nil
}
