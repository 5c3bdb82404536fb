package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Interval is a half-open [Start, End) range of minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds an interval from minute-of-day bounds.
func NewInterval(start, end int) Interval {
	return Interval{Start: start, End: end}
}

// IsValid reports whether the interval has positive length and stays within a day.
func (i Interval) IsValid() bool {
	return i.Start >= 0 && i.End <= 24*60 && i.Start < i.End
}

// Duration returns the interval length in minutes.
func (i Interval) Duration() int {
	return i.End - i.Start
}

// Overlaps reports whether two half-open intervals intersect:
// [a,b) and [c,d) overlap iff a < d && c < b.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether other lies fully inside i.
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

// Expand widens the interval symmetrically by buffer minutes on both ends,
// clamped to the day.
func (i Interval) Expand(buffer int) Interval {
	if buffer <= 0 {
		return i
	}
	start := i.Start - buffer
	if start < 0 {
		start = 0
	}
	end := i.End + buffer
	if end > 24*60 {
		end = 24 * 60
	}
	return Interval{Start: start, End: end}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", FormatTimeOfDay(i.Start), FormatTimeOfDay(i.End))
}

// Steps walks window from its start in increments of step minutes and returns
// every candidate [t, t+step) that still fits inside the window.
func Steps(window Interval, step int) []Interval {
	if step <= 0 || !window.IsValid() {
		return nil
	}
	var out []Interval
	for t := window.Start; t+step <= window.End; t += step {
		out = append(out, Interval{Start: t, End: t + step})
	}
	return out
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are accepted for compatibility with stored times but must be zero.
func ParseTimeOfDay(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec != 0 {
			return 0, fmt.Errorf("invalid seconds in %q", s)
		}
	}
	return hour*60 + minute, nil
}

// FormatTimeOfDay renders minutes since midnight as "HH:MM:SS".
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

// DateRange is a closed-open calendar date window. A nil End means open-ended.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

// ContainsDate reports whether date falls inside the range. Only the calendar
// date is considered; time-of-day components are truncated.
func (r DateRange) ContainsDate(date time.Time) bool {
	d := Midnight(date)
	if d.Before(Midnight(r.Start)) {
		return false
	}
	if r.End == nil {
		return true
	}
	return d.Before(Midnight(*r.End))
}

// OverlapsRange reports whether two date windows intersect, treating nil ends
// as extending forever.
func (r DateRange) OverlapsRange(other DateRange) bool {
	if other.End != nil && !Midnight(r.Start).Before(Midnight(*other.End)) {
		return false
	}
	if r.End != nil && !Midnight(other.Start).Before(Midnight(*r.End)) {
		return false
	}
	return true
}

// Midnight truncates a timestamp to its calendar date in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayOfWeek maps a date to the clinic weekday numbering: 1=Monday .. 6=Saturday,
// 0=Sunday. Sunday is never bookable.
func DayOfWeek(date time.Time) int {
	return int(date.Weekday())
}

// IsSunday reports whether the date falls on a Sunday.
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}
