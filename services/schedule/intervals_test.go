package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"07:00", 420},
		{"13:30", 810},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.clock)
		require.NoError(t, err, tc.clock)
		assert.Equal(t, tc.want, got, tc.clock)
	}
}

func TestToMinutesRejectsMalformedInput(t *testing.T) {
	bad := []string{"", "9:0:0", "24:00", "12:60", "ab:cd", "-1:30", "12.30"}
	for _, clock := range bad {
		_, err := ToMinutes(clock)
		require.Error(t, err, clock)

		var fe *FormatError
		assert.ErrorAs(t, err, &fe, clock)
	}
}

func TestToClock(t *testing.T) {
	assert.Equal(t, "08:00", ToClock(480))
	assert.Equal(t, "13:45", ToClock(825))
	assert.Equal(t, "00:05", ToClock(5))
}

func TestOverlapsSymmetry(t *testing.T) {
	intervals := [][2]int{
		{540, 600}, {600, 660}, {570, 630}, {0, 1440}, {615, 616},
	}
	for _, a := range intervals {
		for _, b := range intervals {
			assert.Equal(t,
				Overlaps(a[0], a[1], b[0], b[1]),
				Overlaps(b[0], b[1], a[0], a[1]),
				"overlap must be symmetric for %v and %v", a, b,
			)
		}
	}
}

func TestTouchingIntervalsDoNotOverlap(t *testing.T) {
	// [9:00,10:00) and [10:00,11:00) share an endpoint only.
	assert.False(t, Overlaps(540, 600, 600, 660))
	assert.False(t, Overlaps(600, 660, 540, 600))
}

func TestOverlapsContainmentAndPartial(t *testing.T) {
	assert.True(t, Overlaps(540, 660, 570, 600))  // containment
	assert.True(t, Overlaps(540, 600, 570, 660))  // partial
	assert.False(t, Overlaps(540, 600, 660, 720)) // disjoint
}
