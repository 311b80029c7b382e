package availability

import (
	"context"
	"testing"
	"time"

	blockedRepo "tutorbase/database/repository/blocked"
	sessionRepo "tutorbase/database/repository/session"
	trainerRepo "tutorbase/database/repository/trainer"
	"tutorbase/models"
	"tutorbase/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrainerRepo struct {
	trainerRepo.TrainerRepository
	trainers map[string]*models.Trainer
	updated  map[string][]models.TimeSlot
}

func (f *fakeTrainerRepo) GetByID(_ context.Context, id string) (*models.Trainer, error) {
	t, ok := f.trainers[id]
	if !ok {
		return nil, trainerRepo.ErrNotFound
	}
	return t, nil
}

func (f *fakeTrainerRepo) UpdateTimeSlots(_ context.Context, id string, slots []models.TimeSlot) error {
	if _, ok := f.trainers[id]; !ok {
		return trainerRepo.ErrNotFound
	}
	if f.updated == nil {
		f.updated = make(map[string][]models.TimeSlot)
	}
	f.updated[id] = slots
	return nil
}

type fakeBlockedRepo struct {
	blockedRepo.BlockedRepository
	created []*models.Blocked
}

func (f *fakeBlockedRepo) Create(_ context.Context, block *models.Blocked) error {
	block.BlockID = "blk-test"
	block.CreatedAt = time.Now()
	f.created = append(f.created, block)
	return nil
}

type fakeSessionRepo struct {
	sessionRepo.SessionRepository
	sessions []models.Session
	updated  map[string]string
}

func (f *fakeSessionRepo) ListByTrainerAndDate(_ context.Context, trainerID string, _ time.Time) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.TrainerID == trainerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) UpdateStatus(_ context.Context, id, status string) (*models.Session, error) {
	if f.updated == nil {
		f.updated = make(map[string]string)
	}
	for i := range f.sessions {
		if f.sessions[i].ID == id {
			f.sessions[i].Status = status
			f.updated[id] = status
			out := f.sessions[i]
			return &out, nil
		}
	}
	return nil, sessionRepo.ErrNotFound
}

func newService(sessions ...models.Session) (*DefaultAvailabilityService, *fakeSessionRepo, *fakeBlockedRepo) {
	sr := &fakeSessionRepo{sessions: sessions}
	br := &fakeBlockedRepo{}
	tr := &fakeTrainerRepo{trainers: map[string]*models.Trainer{
		"t1": {ID: "t1", Name: "Amara"},
	}}
	svc := &DefaultAvailabilityService{
		TrainerRepo: tr,
		SessionRepo: sr,
		BlockedRepo: br,
		Engine:      &schedule.DefaultScheduleEngine{Repo: sr},
	}
	return svc, sr, br
}

func TestSetWeeklySlotsValidation(t *testing.T) {
	svc, _, _ := newService()

	cases := []struct {
		name string
		slot models.TimeSlot
	}{
		{"day out of range", models.TimeSlot{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"}},
		{"malformed start", models.TimeSlot{DayOfWeek: 1, StartTime: "9am", EndTime: "10:00"}},
		{"malformed end", models.TimeSlot{DayOfWeek: 1, StartTime: "09:00", EndTime: "25:00"}},
		{"inverted interval", models.TimeSlot{DayOfWeek: 1, StartTime: "10:00", EndTime: "09:00"}},
	}
	for _, tc := range cases {
		err := svc.SetWeeklySlots(context.Background(), "t1", []models.TimeSlot{tc.slot})
		assert.Error(t, err, tc.name)
	}
}

func TestSetWeeklySlotsPersistsValidSlots(t *testing.T) {
	svc, _, _ := newService()
	tr := svc.TrainerRepo.(*fakeTrainerRepo)

	slots := []models.TimeSlot{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00"},
		{DayOfWeek: 3, StartTime: "13:00", EndTime: "17:00"},
	}
	require.NoError(t, svc.SetWeeklySlots(context.Background(), "t1", slots))
	assert.Equal(t, slots, tr.updated["t1"])
}

func TestDeclareBlockCancelsCaughtSessions(t *testing.T) {
	date := time.Date(2025, time.August, 9, 0, 0, 0, 0, time.UTC)
	inside := models.Session{
		ID: "s1", TrainerID: "t1", Date: date,
		StartTime: "11:30", EndTime: "12:15", Status: models.SessionScheduled,
	}
	outside := models.Session{
		ID: "s2", TrainerID: "t1", Date: date,
		StartTime: "14:00", EndTime: "15:00", Status: models.SessionScheduled,
	}
	svc, sr, br := newService(inside, outside)

	start := time.Date(2025, time.August, 9, 11, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.August, 9, 12, 0, 0, 0, time.UTC)
	block, cancelled, err := svc.DeclareBlock(context.Background(), "t1", start, end, "sick leave")
	require.NoError(t, err)

	require.Len(t, br.created, 1)
	assert.Equal(t, "blk-test", block.BlockID)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "s1", cancelled[0].ID)
	assert.Equal(t, models.SessionCancelled, sr.updated["s1"])
	_, touched := sr.updated["s2"]
	assert.False(t, touched)
}

func TestDeclareBlockRejectsEmptyInterval(t *testing.T) {
	svc, _, _ := newService()
	at := time.Date(2025, time.August, 9, 11, 0, 0, 0, time.UTC)
	_, _, err := svc.DeclareBlock(context.Background(), "t1", at, at, "noop")
	assert.Error(t, err)
}

func TestDeclareBlockUnknownTrainer(t *testing.T) {
	svc, _, _ := newService()
	start := time.Date(2025, time.August, 9, 11, 0, 0, 0, time.UTC)
	_, _, err := svc.DeclareBlock(context.Background(), "ghost", start, start.Add(time.Hour), "")
	assert.ErrorIs(t, err, trainerRepo.ErrNotFound)
}
