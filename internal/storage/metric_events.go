package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/planforge/internal/telemetry"
)

// PersistMetric stores one metric event. This is the telemetry sink: the
// caller fires it from a goroutine and only logs failures, so errors here
// never reach the generation path.
func (db *DB) PersistMetric(ctx context.Context, store string, rec telemetry.Record) error {
	level, _ := rec.Context[telemetry.KeyActivityLevel].(string)
	dayType, _ := rec.Context[telemetry.KeyDayType].(string)
	muscle, _ := rec.Context[telemetry.KeyMuscle].(string)

	var bag []byte
	if len(rec.Context) > 0 {
		var err error
		bag, err = json.Marshal(rec.Context)
		if err != nil {
			return fmt.Errorf("encoding context: %w", err)
		}
	}

	_, err := db.Pool.Exec(ctx,
		`INSERT INTO metric_events (store, reason, activity_level, day_type, muscle, context, recorded_at)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7)`,
		store, rec.Reason, level, dayType, muscle, bag, rec.Time)
	if err != nil {
		return fmt.Errorf("inserting metric event: %w", err)
	}
	return nil
}

// MetricEventRow is a persisted metric event.
type MetricEventRow struct {
	ID         int64          `json:"id"`
	Store      string         `json:"store"`
	Reason     string         `json:"reason"`
	Context    map[string]any `json:"context,omitempty"`
	RecordedAt time.Time      `json:"recordedAt"`
}

// QueryMetricEvents retrieves persisted events for one store in a time
// range, newest first.
func (db *DB) QueryMetricEvents(ctx context.Context, store string, start, end time.Time, limit int) ([]MetricEventRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, store, reason, context, recorded_at
		 FROM metric_events
		 WHERE store = $1 AND recorded_at >= $2 AND recorded_at < $3
		 ORDER BY recorded_at DESC
		 LIMIT $4`,
		store, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("querying metric events: %w", err)
	}
	defer rows.Close()

	var result []MetricEventRow
	for rows.Next() {
		var m MetricEventRow
		var bag []byte
		if err := rows.Scan(&m.ID, &m.Store, &m.Reason, &bag, &m.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning metric event: %w", err)
		}
		if len(bag) > 0 {
			if err := json.Unmarshal(bag, &m.Context); err != nil {
				return nil, fmt.Errorf("decoding context: %w", err)
			}
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
