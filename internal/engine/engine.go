// Package engine wires the generation pipeline: generate, validate,
// correct, re-validate, audit, score. One invocation is a single-threaded
// call chain over an independent plan object; the only shared state is the
// metrics service, which is safe under concurrent calls.
package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/claude/planforge/internal/audit"
	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/classify"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/planner"
	"github.com/claude/planforge/internal/telemetry"
	"github.com/claude/planforge/internal/validate"
	"github.com/google/uuid"
)

// ErrPlanRejected is returned when a generated plan fails validation even
// after correction. Callers retry or fall back to a pre-authored template.
var ErrPlanRejected = errors.New("generated plan failed validation")

// PlanStore persists accepted plans. Persistence is best-effort: a failure
// is logged and the plan is still served.
type PlanStore interface {
	SavePlan(ctx context.Context, req models.PlanRequest, plan *models.TrainingPlan, qualityScore int) (uuid.UUID, error)
}

// Engine owns one catalog, one metrics service, and the pipeline stages.
type Engine struct {
	gen     *planner.Generator
	val     *validate.Validator
	aud     *audit.Auditor
	metrics *telemetry.Service
	plans   PlanStore
	log     *slog.Logger
}

// New assembles an engine. plans may be nil for storage-free operation.
func New(cat *catalog.Catalog, metrics *telemetry.Service, plans PlanStore, log *slog.Logger) *Engine {
	return &Engine{
		gen:     planner.New(cat),
		val:     validate.New(cat, metrics.Rejections),
		aud:     audit.New(cat, metrics.Rejections),
		metrics: metrics,
		plans:   plans,
		log:     log,
	}
}

// Result is an accepted plan plus its quality outcome.
type Result struct {
	PlanID       uuid.UUID            `json:"planId,omitempty"`
	Plan         *models.TrainingPlan `json:"plan"`
	QualityScore int                  `json:"qualityScore"`
	Corrected    bool                 `json:"corrected"`
}

// GeneratePlan runs the full pipeline for one request. Malformed input
// fails fast; a plan that cannot be validated even after correction
// returns ErrPlanRejected with the rejection already recorded.
func (e *Engine) GeneratePlan(ctx context.Context, req models.PlanRequest) (*Result, error) {
	req.Division = classify.Split(string(req.Division))
	if req.TrainingLocation != "" {
		req.TrainingLocation = classify.Environment(string(req.TrainingLocation))
	}

	qa := telemetry.NewQualityAccumulator()
	plan, err := e.gen.Generate(req, qa)
	if err != nil {
		return nil, err
	}

	corrected := false
	if !e.usable(plan, req) {
		fixed := validate.CorrectSameTypeDays(plan, e.metrics.Corrections)
		if !e.usable(fixed, req) {
			e.log.Info("plan rejected", "user", req.UserID, "level", req.ActivityLevel, "division", req.Division)
			return nil, ErrPlanRejected
		}
		plan = fixed
		corrected = true
	}

	// Side-channel only: the audit and the quality score never affect
	// whether the plan is served.
	e.aud.Audit(plan, audit.Context{ActivityLevel: req.ActivityLevel})
	score := qa.Flush(e.metrics.Quality, map[string]any{
		telemetry.KeyActivityLevel: req.ActivityLevel,
	})

	res := &Result{Plan: plan, QualityScore: score, Corrected: corrected}
	if e.plans != nil {
		id, err := e.plans.SavePlan(ctx, req, plan, score)
		if err != nil {
			e.log.Warn("plan persistence failed", "user", req.UserID, "error", err)
		} else {
			res.PlanID = id
		}
	}
	return res, nil
}

func (e *Engine) usable(plan *models.TrainingPlan, req models.PlanRequest) bool {
	return e.val.IsUsable(plan, req.TrainingDays, req.ActivityLevel) &&
		e.val.WithinTimeBudget(plan, req.AvailableMinutes, req.ActivityLevel)
}

// Metrics exposes the metrics service for the reporting surface.
func (e *Engine) Metrics() *telemetry.Service {
	return e.metrics
}
