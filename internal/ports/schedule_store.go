package ports

import (
	"context"
	"itinerary-planner-service/internal/domain"
)

// Port: persistence for generated schedules.
//
// Regeneration is a full replace: the store discards any previously saved
// schedule for the trip and writes the new one in a single transaction.
type ScheduleStore interface {
	ReplaceSchedule(ctx context.Context, tripID int64, days []domain.DaySchedule) error
	GetSchedule(ctx context.Context, tripID int64) ([]domain.DaySchedule, error)
}
