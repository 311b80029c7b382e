package schedule

import (
	"context"
	"testing"
	"time"

	sessionRepo "tutorbase/database/repository/session"
	"tutorbase/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionRepo records status updates in memory. Only the methods the
// resolver touches are implemented; the rest panic via the embedded nil
// interface.
type fakeSessionRepo struct {
	sessionRepo.SessionRepository
	sessions map[string]*models.Session
	updated  []string
}

func newFakeSessionRepo(sessions ...*models.Session) *fakeSessionRepo {
	f := &fakeSessionRepo{sessions: make(map[string]*models.Session)}
	for _, s := range sessions {
		f.sessions[s.ID] = s
	}
	return f
}

func (f *fakeSessionRepo) UpdateStatus(_ context.Context, id, status string) (*models.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	f.updated = append(f.updated, id)
	out := *s
	return &out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func instant(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func testSession(id, start, end, status string) models.Session {
	return models.Session{
		ID:          id,
		SessionType: "tabletop",
		Date:        day(2025, time.August, 9),
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}
}

func testBlock() models.Blocked {
	return models.Blocked{
		BlockID: "blk-1",
		Start:   instant(2025, time.August, 9, 11, 0),
		End:     instant(2025, time.August, 9, 12, 0),
	}
}

func TestCancelOverlappingCancelsIntersectingSession(t *testing.T) {
	s := testSession("s1", "11:30", "12:15", models.SessionScheduled)
	repo := newFakeSessionRepo(&s)
	engine := &DefaultScheduleEngine{Repo: repo}

	sessions := []models.Session{s}
	cancelled, err := engine.CancelOverlapping(context.Background(), testBlock(), sessions)
	require.NoError(t, err)

	require.Len(t, cancelled, 1)
	assert.Equal(t, "s1", cancelled[0].ID)
	assert.Equal(t, models.SessionCancelled, cancelled[0].Status)
	assert.Equal(t, models.SessionCancelled, sessions[0].Status)
	assert.Equal(t, []string{"s1"}, repo.updated)
}

func TestCancelOverlappingLeavesTouchingSessionAlone(t *testing.T) {
	// [12:00,12:30) touches [11:00,12:00) at a single endpoint.
	s := testSession("s1", "12:00", "12:30", models.SessionScheduled)
	repo := newFakeSessionRepo(&s)
	engine := &DefaultScheduleEngine{Repo: repo}

	cancelled, err := engine.CancelOverlapping(context.Background(), testBlock(), []models.Session{s})
	require.NoError(t, err)

	assert.Empty(t, cancelled)
	assert.Empty(t, repo.updated)
	assert.Equal(t, models.SessionScheduled, repo.sessions["s1"].Status)
}

func TestCancelOverlappingSelectivity(t *testing.T) {
	completed := testSession("done", "11:00", "11:45", models.SessionCompleted)
	alreadyCancelled := testSession("gone", "11:00", "11:45", models.SessionCancelled)
	outside := testSession("out", "14:00", "15:00", models.SessionScheduled)
	otherDay := testSession("other", "11:30", "12:15", models.SessionScheduled)
	otherDay.Date = day(2025, time.August, 10)

	repo := newFakeSessionRepo(&completed, &alreadyCancelled, &outside, &otherDay)
	engine := &DefaultScheduleEngine{Repo: repo}

	sessions := []models.Session{completed, alreadyCancelled, outside, otherDay}
	cancelled, err := engine.CancelOverlapping(context.Background(), testBlock(), sessions)
	require.NoError(t, err)

	assert.Empty(t, cancelled)
	assert.Empty(t, repo.updated)
	assert.Equal(t, models.SessionCompleted, repo.sessions["done"].Status)
	assert.Equal(t, models.SessionScheduled, repo.sessions["out"].Status)
	assert.Equal(t, models.SessionScheduled, repo.sessions["other"].Status)
}

func TestCancelOverlappingIsIdempotent(t *testing.T) {
	s := testSession("s1", "11:30", "12:15", models.SessionScheduled)
	repo := newFakeSessionRepo(&s)
	engine := &DefaultScheduleEngine{Repo: repo}

	sessions := []models.Session{s}
	first, err := engine.CancelOverlapping(context.Background(), testBlock(), sessions)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := engine.CancelOverlapping(context.Background(), testBlock(), sessions)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, []string{"s1"}, repo.updated)
}

func TestCancelOverlappingFailsFastOnMalformedTime(t *testing.T) {
	good := testSession("ok", "09:00", "10:00", models.SessionScheduled)
	bad := testSession("bad", "25:00", "26:00", models.SessionScheduled)

	repo := newFakeSessionRepo(&good, &bad)
	engine := &DefaultScheduleEngine{Repo: repo}

	_, err := engine.CancelOverlapping(context.Background(), testBlock(), []models.Session{good, bad})
	require.Error(t, err)

	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestCancelOverlappingRejectsEmptyBlock(t *testing.T) {
	engine := &DefaultScheduleEngine{}
	block := models.Blocked{
		BlockID: "blk-empty",
		Start:   instant(2025, time.August, 9, 12, 0),
		End:     instant(2025, time.August, 9, 12, 0),
	}
	_, err := engine.CancelOverlapping(context.Background(), block, nil)
	assert.Error(t, err)
}

func TestCancelOverlappingAbortsWhenSessionMissing(t *testing.T) {
	missing := testSession("ghost", "11:15", "12:00", models.SessionScheduled)
	after := testSession("later", "11:30", "12:15", models.SessionScheduled)

	// "ghost" is in the caller's slice but not in the store, as if it was
	// deleted between listing and cancelling.
	repo := newFakeSessionRepo(&after)
	engine := &DefaultScheduleEngine{Repo: repo}

	cancelled, err := engine.CancelOverlapping(context.Background(), testBlock(), []models.Session{missing, after})
	require.Error(t, err)
	assert.ErrorIs(t, err, sessionRepo.ErrNotFound)

	assert.Empty(t, cancelled, "the pass stops at the first failed update")
	assert.Empty(t, repo.updated)
	assert.Equal(t, models.SessionScheduled, repo.sessions["later"].Status)
}
