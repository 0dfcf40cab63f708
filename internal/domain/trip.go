package domain

import (
	"errors"
	"fmt"
	"time"
)

// Trip holds the parameters of a single planning run. It is immutable for
// the duration of schedule generation.
type Trip struct {
	ID                   int64
	Title                string
	StartName            string
	Start                Coordinate
	StartDate            time.Time
	StartTime            TimeOfDay
	EndTime              TimeOfDay
	NumDays              int
	AvailableHoursPerDay int
	CreatedAt            time.Time
}

// DailyBudgetMinutes is the usable time between the configured daily start
// and end. AvailableHoursPerDay is informational only and does not feed the
// budget.
func (t Trip) DailyBudgetMinutes() int {
	return t.EndTime.Minutes() - t.StartTime.Minutes()
}

// Validate checks the trip-level invariants.
func (t Trip) Validate() error {
	if t.Title == "" {
		return errors.New("validate trip: title must be non-empty")
	}
	if t.NumDays < 1 {
		return fmt.Errorf("validate trip: num_days must be >= 1, got %d", t.NumDays)
	}
	if !t.EndTime.After(t.StartTime) {
		return fmt.Errorf("validate trip: end_time %s must be after start_time %s", t.EndTime, t.StartTime)
	}
	return nil
}

// DateForDay returns the calendar date of a 1-based day number.
func (t Trip) DateForDay(dayNumber int) time.Time {
	return t.StartDate.AddDate(0, 0, dayNumber-1)
}
