package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/planforge/internal/models"
	"github.com/google/uuid"
)

// PlanRow is a persisted, accepted plan.
type PlanRow struct {
	ID           uuid.UUID            `json:"id"`
	UserID       int                  `json:"userId"`
	Request      models.PlanRequest   `json:"request"`
	Plan         models.TrainingPlan  `json:"plan"`
	QualityScore int                  `json:"qualityScore"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// SavePlan inserts an accepted plan and returns its ID.
func (db *DB) SavePlan(ctx context.Context, req models.PlanRequest, plan *models.TrainingPlan, qualityScore int) (uuid.UUID, error) {
	id := uuid.New()
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding request: %w", err)
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding plan: %w", err)
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO plans (id, user_id, request, plan, quality_score)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, req.UserID, reqJSON, planJSON, qualityScore)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting plan: %w", err)
	}
	return id, nil
}

// GetPlan retrieves one plan by ID.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*PlanRow, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, request, plan, quality_score, created_at
		 FROM plans WHERE id = $1`, id)

	var p PlanRow
	var reqJSON, planJSON []byte
	if err := row.Scan(&p.ID, &p.UserID, &reqJSON, &planJSON, &p.QualityScore, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("querying plan: %w", err)
	}
	if err := json.Unmarshal(reqJSON, &p.Request); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	if err := json.Unmarshal(planJSON, &p.Plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &p, nil
}

// QueryPlans retrieves a user's plans in a time range, newest first.
func (db *DB) QueryPlans(ctx context.Context, userID int, start, end time.Time) ([]PlanRow, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, request, plan, quality_score, created_at
		 FROM plans
		 WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
		 ORDER BY created_at DESC`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var result []PlanRow
	for rows.Next() {
		var p PlanRow
		var reqJSON, planJSON []byte
		if err := rows.Scan(&p.ID, &p.UserID, &reqJSON, &planJSON, &p.QualityScore, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		if err := json.Unmarshal(reqJSON, &p.Request); err != nil {
			return nil, fmt.Errorf("decoding request: %w", err)
		}
		if err := json.Unmarshal(planJSON, &p.Plan); err != nil {
			return nil, fmt.Errorf("decoding plan: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
