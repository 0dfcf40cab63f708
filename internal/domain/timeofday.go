package domain

import (
	"encoding/json"
	"fmt"
)

// Lunch break boundaries in minutes since midnight.
// The break window opens at 11:30; the break itself is always 13:00-14:00.
const (
	lunchWindowOpenMinutes = 690
	lunchStartMinutes      = 780
)

var (
	LunchStart = TimeOfDay{Hour: 13}
	LunchEnd   = TimeOfDay{Hour: 14}
)

// TimeOfDay is a wall-clock time without a date.
//
// Schedule arithmetic never crosses midnight: the assembler rejects any
// segment ending after the trip's daily end time, so FromMinutes clamps
// out-of-range values to the same day instead of wrapping.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// FromMinutes converts minutes since midnight to a TimeOfDay,
// clamping to [00:00, 23:59].
func FromMinutes(m int) TimeOfDay {
	if m < 0 {
		m = 0
	}
	if m > 1439 {
		m = 1439
	}
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

// Add returns the time advanced by n minutes, clamped per FromMinutes.
func (t TimeOfDay) Add(n int) TimeOfDay {
	return FromMinutes(t.Minutes() + n)
}

// After reports whether t is strictly later than o.
func (t TimeOfDay) After(o TimeOfDay) bool {
	return t.Minutes() > o.Minutes()
}

// InLunchWindow reports whether a lunch break should be taken at time t,
// i.e. t falls in [11:30, 13:00).
func InLunchWindow(t TimeOfDay) bool {
	m := t.Minutes()
	return m >= lunchWindowOpenMinutes && m < lunchStartMinutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: out of range", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
