package schedule

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"tutorbase/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededEngine(seed int64) *DefaultScheduleEngine {
	return &DefaultScheduleEngine{
		Rand:      rand.New(rand.NewSource(seed)),
		Blackouts: []models.MinuteRange{{Start: 12*60 + 30, End: 13*60 + 30}},
	}
}

func testTrainers() []models.Trainer {
	return []models.Trainer{
		{ID: "t1", Certifications: []string{"tabletop"}},
		{ID: "t2", Certifications: []string{"tabletop", "assessor"}},
		{ID: "t3"},
	}
}

func testStudents() []models.Student {
	return []models.Student{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}, {ID: "u4"}}
}

func denseConfig(kind string, lanes, cap int) models.SessionKindConfig {
	return models.SessionKindConfig{
		Kind:      kind,
		LaneCount: lanes,
		Windows: []models.GenerationWindow{
			{StartTime: "09:00", EndTime: "18:00", Probability: 1.0},
		},
		Durations: []int{45, 60},
		Gaps:      []int{0, 15},
		Cap:       cap,
	}
}

func TestGenerateRespectsCap(t *testing.T) {
	engine := seededEngine(1)
	cfg := denseConfig("tabletop", 3, 8)

	sessions, err := engine.Generate(day(2025, time.September, 1), []models.SessionKindConfig{cfg}, testTrainers(), testStudents(), map[string]int{"tabletop": 3})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(sessions), 5, "cap 8 with 3 existing allows at most 5 placements")
	assert.NotEmpty(t, sessions, "probability 1.0 over a full day should place something")
}

func TestGenerateEmitsNothingWhenCapExhausted(t *testing.T) {
	engine := seededEngine(2)
	cfg := denseConfig("tabletop", 3, 4)

	sessions, err := engine.Generate(day(2025, time.September, 1), []models.SessionKindConfig{cfg}, testTrainers(), testStudents(), map[string]int{"tabletop": 9})
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestGenerateNoOverlapPerLane(t *testing.T) {
	engine := seededEngine(3)
	configs := []models.SessionKindConfig{
		denseConfig("tabletop", 3, 0),
		denseConfig("assessment", 2, 0),
	}

	sessions, err := engine.Generate(day(2025, time.September, 1), configs, testTrainers(), testStudents(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, sessions)

	type laneKey struct {
		kind string
		lane int
	}
	byLane := make(map[laneKey][]models.Session)
	for _, s := range sessions {
		k := laneKey{s.SessionType, s.Lane}
		byLane[k] = append(byLane[k], s)
	}

	for key, lane := range byLane {
		sort.Slice(lane, func(i, j int) bool { return lane[i].StartTime < lane[j].StartTime })
		for i := 0; i < len(lane)-1; i++ {
			aStart, err := ToMinutes(lane[i].StartTime)
			require.NoError(t, err)
			aEnd, err := ToMinutes(lane[i].EndTime)
			require.NoError(t, err)
			bStart, err := ToMinutes(lane[i+1].StartTime)
			require.NoError(t, err)
			bEnd, err := ToMinutes(lane[i+1].EndTime)
			require.NoError(t, err)
			assert.False(t, Overlaps(aStart, aEnd, bStart, bEnd),
				"lane %v: %s-%s overlaps %s-%s", key,
				lane[i].StartTime, lane[i].EndTime, lane[i+1].StartTime, lane[i+1].EndTime)
		}
	}
}

func TestGenerateAvoidsBlackouts(t *testing.T) {
	engine := seededEngine(4)
	cfg := denseConfig("tabletop", 3, 0)

	sessions, err := engine.Generate(day(2025, time.September, 1), []models.SessionKindConfig{cfg}, testTrainers(), testStudents(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, sessions)

	lunch := engine.Blackouts[0]
	for _, s := range sessions {
		start, err := ToMinutes(s.StartTime)
		require.NoError(t, err)
		end, err := ToMinutes(s.EndTime)
		require.NoError(t, err)
		assert.False(t, Overlaps(start, end, lunch.Start, lunch.End),
			"session %s-%s intrudes into the lunch break", s.StartTime, s.EndTime)
	}
}

func TestGenerateStaysWithinWindowAndDay(t *testing.T) {
	engine := seededEngine(5)
	cfg := models.SessionKindConfig{
		Kind:      "workshop",
		LaneCount: 2,
		Windows: []models.GenerationWindow{
			{StartTime: "15:00", EndTime: "19:00", Probability: 1.0},
		},
		Durations: []int{90, 120},
		Gaps:      []int{30},
	}

	sessions, err := engine.Generate(day(2025, time.September, 1), []models.SessionKindConfig{cfg}, testTrainers(), testStudents(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, sessions)

	for _, s := range sessions {
		start, err := ToMinutes(s.StartTime)
		require.NoError(t, err)
		end, err := ToMinutes(s.EndTime)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, start, 15*60)
		assert.LessOrEqual(t, end, 19*60)
		assert.Less(t, start, end)
	}
}

func TestGenerateFailsFastOnEmptyPools(t *testing.T) {
	engine := seededEngine(6)
	configs := []models.SessionKindConfig{denseConfig("tabletop", 1, 0)}

	_, err := engine.Generate(day(2025, time.September, 1), configs, nil, testStudents(), nil)
	var exhausted *ExhaustedInputError
	require.ErrorAs(t, err, &exhausted)

	_, err = engine.Generate(day(2025, time.September, 1), configs, testTrainers(), nil, nil)
	require.ErrorAs(t, err, &exhausted)
}

func TestGenerateEligibilityIsSoftByDefault(t *testing.T) {
	engine := seededEngine(7)
	cfg := denseConfig("rescue", 1, 0)
	cfg.Eligibility = func(tr models.Trainer) bool { return tr.HasCertification("nonexistent") }

	sessions, err := engine.Generate(day(2025, time.September, 1), []models.SessionKindConfig{cfg}, testTrainers(), testStudents(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, sessions, "with no eligible trainer the full pool is used")
}

func TestGenerateStrictEligibilityFailsFast(t *testing.T) {
	engine := seededEngine(8)
	engine.StrictEligibility = true
	cfg := denseConfig("rescue", 1, 0)
	cfg.Eligibility = func(tr models.Trainer) bool { return tr.HasCertification("nonexistent") }

	_, err := engine.Generate(day(2025, time.September, 1), []models.SessionKindConfig{cfg}, testTrainers(), testStudents(), nil)
	var exhausted *ExhaustedInputError
	require.ErrorAs(t, err, &exhausted)
}

func TestGeneratePrefersEligibleTrainers(t *testing.T) {
	engine := seededEngine(9)
	cfg := denseConfig("assessment", 2, 0)
	cfg.Eligibility = func(tr models.Trainer) bool { return tr.HasCertification("assessor") }

	sessions, err := engine.Generate(day(2025, time.September, 1), []models.SessionKindConfig{cfg}, testTrainers(), testStudents(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, sessions)

	for _, s := range sessions {
		assert.Equal(t, "t2", s.TrainerID, "only t2 holds the assessor certification")
	}
}

func TestGenerateIsDeterministicWithSeededSource(t *testing.T) {
	configs := []models.SessionKindConfig{denseConfig("tabletop", 3, 20)}
	d := day(2025, time.September, 1)

	a, err := seededEngine(42).Generate(d, configs, testTrainers(), testStudents(), nil)
	require.NoError(t, err)
	b, err := seededEngine(42).Generate(d, configs, testTrainers(), testStudents(), nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateSetsPlacementFields(t *testing.T) {
	engine := seededEngine(10)
	cfg := denseConfig("tabletop", 2, 6)

	sessions, err := engine.Generate(day(2025, time.September, 1), []models.SessionKindConfig{cfg}, testTrainers(), testStudents(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, sessions)

	for _, s := range sessions {
		assert.Equal(t, "tabletop", s.SessionType)
		assert.Equal(t, models.SessionScheduled, s.Status)
		assert.NotEmpty(t, s.TrainerID)
		assert.NotEmpty(t, s.StudentID)
		assert.GreaterOrEqual(t, s.AssignedSeat, 1)
		assert.LessOrEqual(t, s.AssignedSeat, defaultSeatCount)
		assert.True(t, s.Date.Equal(day(2025, time.September, 1)))
	}
}

func TestGenerateConcurrentWithDefaultSource(t *testing.T) {
	engine := &DefaultScheduleEngine{}
	configs := []models.SessionKindConfig{denseConfig("tabletop", 3, 20)}
	d := day(2025, time.September, 1)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Generate(d, configs, testTrainers(), testStudents(), nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Nil(t, engine.Rand, "the fallback source is never stored on the engine")
}
