package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ToMinutes parses a wall-clock "HH:MM" string into minutes from midnight.
// Hours must be within [0,23] and minutes within [0,59]; anything else
// fails with a FormatError.
func ToMinutes(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, NewFormatError(fmt.Sprintf("invalid time %q: expected HH:MM", clock))
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, NewFormatError(fmt.Sprintf("invalid time %q: non-numeric hours", clock))
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, NewFormatError(fmt.Sprintf("invalid time %q: non-numeric minutes", clock))
	}
	if hours < 0 || hours > 23 {
		return 0, NewFormatError(fmt.Sprintf("invalid time %q: hours out of range", clock))
	}
	if minutes < 0 || minutes > 59 {
		return 0, NewFormatError(fmt.Sprintf("invalid time %q: minutes out of range", clock))
	}
	return hours*60 + minutes, nil
}

// ToClock formats minutes from midnight back into an "HH:MM" string.
func ToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not count: a session
// ending at 10:00 does not conflict with one starting at 10:00.
// Both intervals must be on the same calendar day; callers filter by
// date before comparing, this layer has no notion of dates.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
