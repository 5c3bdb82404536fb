package scheduling_test

import (
	"testing"
	"time"

	"clinic-portal-backend/internal/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a        scheduling.Interval
		b        scheduling.Interval
		expected bool
	}{
		{
			name:     "Disjoint intervals",
			a:        scheduling.NewInterval(8*60, 9*60),
			b:        scheduling.NewInterval(10*60, 11*60),
			expected: false,
		},
		{
			name:     "Back to back intervals do not overlap",
			a:        scheduling.NewInterval(10*60, 10*60+30),
			b:        scheduling.NewInterval(10*60+30, 11*60),
			expected: false,
		},
		{
			name:     "Partial overlap",
			a:        scheduling.NewInterval(10*60, 11*60),
			b:        scheduling.NewInterval(10*60+30, 11*60+30),
			expected: true,
		},
		{
			name:     "Contained interval",
			a:        scheduling.NewInterval(9*60, 12*60),
			b:        scheduling.NewInterval(10*60, 11*60),
			expected: true,
		},
		{
			name:     "Identical intervals",
			a:        scheduling.NewInterval(10*60, 11*60),
			b:        scheduling.NewInterval(10*60, 11*60),
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			// Overlap is symmetric
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a))
		})
	}
}

func TestIntervalExpand(t *testing.T) {
	// [10:00, 10:30) with a 5 minute buffer becomes [09:55, 10:35),
	// which overlaps an existing [10:30, 11:00) booking.
	candidate := scheduling.NewInterval(10*60, 10*60+30).Expand(5)
	existing := scheduling.NewInterval(10*60+30, 11*60)

	assert.Equal(t, scheduling.NewInterval(9*60+55, 10*60+35), candidate)
	assert.True(t, candidate.Overlaps(existing))

	// Without a buffer the same pair is back to back and legal.
	assert.False(t, scheduling.NewInterval(10*60, 10*60+30).Overlaps(existing))
}

func TestIntervalExpandClampsToDay(t *testing.T) {
	early := scheduling.NewInterval(0, 30).Expand(10)
	assert.Equal(t, 0, early.Start)

	late := scheduling.NewInterval(23*60+30, 24*60).Expand(10)
	assert.Equal(t, 24*60, late.End)
}

func TestIntervalContains(t *testing.T) {
	window := scheduling.NewInterval(8*60, 12*60)

	assert.True(t, window.Contains(scheduling.NewInterval(8*60, 8*60+30)))
	assert.True(t, window.Contains(scheduling.NewInterval(11*60+30, 12*60)))
	assert.True(t, window.Contains(window))
	assert.False(t, window.Contains(scheduling.NewInterval(7*60+30, 8*60+30)))
	assert.False(t, window.Contains(scheduling.NewInterval(11*60+45, 12*60+15)))
}

func TestSteps(t *testing.T) {
	// Mon 08:00-12:00 with 30 minute slots yields exactly 8 candidates.
	slots := scheduling.Steps(scheduling.NewInterval(8*60, 12*60), 30)
	require.Len(t, slots, 8)
	assert.Equal(t, scheduling.NewInterval(8*60, 8*60+30), slots[0])
	assert.Equal(t, scheduling.NewInterval(11*60+30, 12*60), slots[7])

	// A trailing remainder shorter than the step is dropped.
	slots = scheduling.Steps(scheduling.NewInterval(8*60, 8*60+50), 30)
	require.Len(t, slots, 1)
	assert.Equal(t, scheduling.NewInterval(8*60, 8*60+30), slots[0])

	assert.Nil(t, scheduling.Steps(scheduling.NewInterval(8*60, 12*60), 0))
	assert.Nil(t, scheduling.Steps(scheduling.NewInterval(12*60, 8*60), 30))
}

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    int
		expectError bool
	}{
		{name: "HH:MM", input: "08:30", expected: 8*60 + 30},
		{name: "HH:MM:SS", input: "14:05:00", expected: 14*60 + 5},
		{name: "Midnight", input: "00:00", expected: 0},
		{name: "End of day", input: "23:59", expected: 23*60 + 59},
		{name: "Hour out of range", input: "24:00", expectError: true},
		{name: "Minute out of range", input: "10:60", expectError: true},
		{name: "Nonzero seconds", input: "10:00:30", expectError: true},
		{name: "Garbage", input: "morning", expectError: true},
		{name: "Empty", input: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scheduling.ParseTimeOfDay(tc.input)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	assert.Equal(t, "08:00:00", scheduling.FormatTimeOfDay(8*60))
	assert.Equal(t, "11:30:00", scheduling.FormatTimeOfDay(11*60+30))
	assert.Equal(t, "00:05:00", scheduling.FormatTimeOfDay(5))
}

func TestDateRangeContainsDate(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	closed := scheduling.DateRange{Start: start, End: &end}
	assert.True(t, closed.ContainsDate(start))
	assert.True(t, closed.ContainsDate(time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)))
	// End date is exclusive
	assert.False(t, closed.ContainsDate(end))
	assert.False(t, closed.ContainsDate(start.AddDate(0, 0, -1)))

	open := scheduling.DateRange{Start: start}
	assert.True(t, open.ContainsDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, open.ContainsDate(start.AddDate(0, 0, -1)))
}

func TestDateRangeOverlapsRange(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	ptr := func(t time.Time) *time.Time { return &t }

	testCases := []struct {
		name     string
		a        scheduling.DateRange
		b        scheduling.DateRange
		expected bool
	}{
		{
			name:     "Disjoint closed ranges",
			a:        scheduling.DateRange{Start: date(2024, 1, 1), End: ptr(date(2024, 2, 1))},
			b:        scheduling.DateRange{Start: date(2024, 3, 1), End: ptr(date(2024, 4, 1))},
			expected: false,
		},
		{
			name:     "Adjacent ranges do not overlap",
			a:        scheduling.DateRange{Start: date(2024, 1, 1), End: ptr(date(2024, 2, 1))},
			b:        scheduling.DateRange{Start: date(2024, 2, 1), End: ptr(date(2024, 3, 1))},
			expected: false,
		},
		{
			name:     "Overlapping closed ranges",
			a:        scheduling.DateRange{Start: date(2024, 1, 1), End: ptr(date(2024, 3, 1))},
			b:        scheduling.DateRange{Start: date(2024, 2, 1), End: ptr(date(2024, 4, 1))},
			expected: true,
		},
		{
			name:     "Open-ended range overlaps any later start",
			a:        scheduling.DateRange{Start: date(2024, 1, 1)},
			b:        scheduling.DateRange{Start: date(2030, 1, 1), End: ptr(date(2031, 1, 1))},
			expected: true,
		},
		{
			name:     "Two open-ended ranges always overlap",
			a:        scheduling.DateRange{Start: date(2024, 1, 1)},
			b:        scheduling.DateRange{Start: date(2026, 1, 1)},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.OverlapsRange(tc.b))
			assert.Equal(t, tc.expected, tc.b.OverlapsRange(tc.a))
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	// 2024-06-10 is a Monday, 2024-06-09 a Sunday.
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, scheduling.DayOfWeek(monday))
	assert.Equal(t, 6, scheduling.DayOfWeek(saturday))
	assert.Equal(t, 0, scheduling.DayOfWeek(sunday))
	assert.True(t, scheduling.IsSunday(sunday))
	assert.False(t, scheduling.IsSunday(monday))
}
