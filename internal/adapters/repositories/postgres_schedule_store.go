package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner-service/internal/domain"
)

// Postgres-backed implementation of the ScheduleStore port.
type PostgresScheduleStore struct{ DB *sql.DB }

func NewPostgresScheduleStore(db *sql.DB) *PostgresScheduleStore {
	return &PostgresScheduleStore{DB: db}
}

// ReplaceSchedule deletes any stored schedule for the trip and writes the
// new one in a single transaction. Deleting trip_days cascades to segments.
func (s *PostgresScheduleStore) ReplaceSchedule(ctx context.Context, tripID int64, days []domain.DaySchedule) error {
	if s.DB == nil {
		return errors.New("schedule store: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace schedule: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trip_days WHERE trip_id = $1;`, tripID); err != nil {
		return fmt.Errorf("replace schedule: clear previous schedule: %w", err)
	}

	insertDay, err := tx.PrepareContext(ctx, `
	INSERT INTO trip_days (trip_id, day_number, day_date)
	VALUES ($1, $2, $3)
	RETURNING trip_day_id;
	`)
	if err != nil {
		return fmt.Errorf("replace schedule: prepare day insert: %w", err)
	}
	defer insertDay.Close()

	insertSegment, err := tx.PrepareContext(ctx, `
	INSERT INTO schedule_segments (trip_day_id, position, segment_type, start_time, end_time, duration_minutes, distance_km, label, location_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`)
	if err != nil {
		return fmt.Errorf("replace schedule: prepare segment insert: %w", err)
	}
	defer insertSegment.Close()

	for _, day := range days {
		var dayID int64
		if err := insertDay.QueryRowContext(ctx, tripID, day.DayNumber, day.Date).Scan(&dayID); err != nil {
			return fmt.Errorf("replace schedule: insert day %d: %w", day.DayNumber, err)
		}

		for pos, seg := range day.Segments {
			var distance sql.NullFloat64
			if seg.Type == domain.SegmentTravel {
				distance = sql.NullFloat64{Float64: seg.DistanceKm, Valid: true}
			}

			var locationID sql.NullInt64
			if seg.Type == domain.SegmentVisit && seg.Stop != nil {
				locationID = sql.NullInt64{Int64: seg.Stop.ID, Valid: true}
			}

			_, err := insertSegment.ExecContext(ctx,
				dayID, pos+1, string(seg.Type),
				seg.StartTime.String(), seg.EndTime.String(),
				seg.DurationMin, distance, seg.Label, locationID,
			)
			if err != nil {
				return fmt.Errorf("replace schedule: insert segment day=%d pos=%d: %w", day.DayNumber, pos+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace schedule: commit tx: %w", err)
	}

	return nil
}

// GetSchedule returns the stored schedule for a trip, days and segments in
// order. A trip with no generated schedule yields ErrNotFound.
func (s *PostgresScheduleStore) GetSchedule(ctx context.Context, tripID int64) ([]domain.DaySchedule, error) {
	if s.DB == nil {
		return nil, errors.New("schedule store: DB is nil")
	}

	query := `
	SELECT
		d.day_number,
		d.day_date,
		seg.segment_type,
		seg.start_time,
		seg.end_time,
		seg.duration_minutes,
		seg.distance_km,
		seg.label,
		l.location_id,
		l.kind,
		l.name,
		l.lat,
		l.lon,
		l.visit_minutes,
		l.description,
		l.image_url,
		l.service_category
	FROM trip_days d
	LEFT JOIN schedule_segments seg ON seg.trip_day_id = d.trip_day_id
	LEFT JOIN locations l ON l.location_id = seg.location_id
	WHERE d.trip_id = $1
	ORDER BY d.day_number, seg.position;
	`

	rows, err := s.DB.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: query: %w", err)
	}
	defer rows.Close()

	days := make([]domain.DaySchedule, 0, 8)
	for rows.Next() {
		var (
			dayNumber   int
			dayDate     sql.NullTime
			segType     sql.NullString
			startTime   sql.NullString
			endTime     sql.NullString
			duration    sql.NullInt64
			distance    sql.NullFloat64
			label       sql.NullString
			locID       sql.NullInt64
			locKind     sql.NullString
			locName     sql.NullString
			locLat      sql.NullFloat64
			locLon      sql.NullFloat64
			locVisitMin sql.NullInt64
			locDesc     sql.NullString
			locImage    sql.NullString
			locCategory sql.NullString
		)

		err := rows.Scan(
			&dayNumber, &dayDate,
			&segType, &startTime, &endTime, &duration, &distance, &label,
			&locID, &locKind, &locName, &locLat, &locLon,
			&locVisitMin, &locDesc, &locImage, &locCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("get schedule: scan row: %w", err)
		}

		if len(days) == 0 || days[len(days)-1].DayNumber != dayNumber {
			days = append(days, domain.DaySchedule{
				DayNumber: dayNumber,
				Date:      dayDate.Time,
				Segments:  []domain.ScheduleSegment{},
			})
		}

		// LEFT JOIN emits one NULL-segment row for an empty day.
		if !segType.Valid {
			continue
		}

		seg := domain.ScheduleSegment{
			Type:        domain.SegmentType(segType.String),
			DurationMin: int(duration.Int64),
			DistanceKm:  distance.Float64,
			Label:       label.String,
		}
		if seg.StartTime, err = domain.ParseTimeOfDay(startTime.String); err != nil {
			return nil, fmt.Errorf("get schedule: stored start_time: %w", err)
		}
		if seg.EndTime, err = domain.ParseTimeOfDay(endTime.String); err != nil {
			return nil, fmt.Errorf("get schedule: stored end_time: %w", err)
		}

		if seg.Type == domain.SegmentVisit && locID.Valid {
			seg.Stop = &domain.RouteOrderedStop{Stop: domain.Stop{
				ID:              locID.Int64,
				Kind:            domain.StopKind(locKind.String),
				Position:        domain.Coordinate{Lat: locLat.Float64, Lon: locLon.Float64},
				Name:            locName.String,
				VisitMinutes:    int(locVisitMin.Int64),
				Description:     locDesc.String,
				ImageURL:        locImage.String,
				ServiceCategory: locCategory.String,
			}}
		}

		last := len(days) - 1
		days[last].Segments = append(days[last].Segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get schedule: row iteration: %w", err)
	}

	if len(days) == 0 {
		return nil, fmt.Errorf("get schedule: trip %d: %w", tripID, domain.ErrNotFound)
	}

	return days, nil
}
