// Package audit re-checks generated plans against the muscle-group
// contracts purely for telemetry. The audit runs after the pass/fail gate,
// returns nothing, and must never be given a way to block a plan from
// being served — it exists to measure silent quality drift.
package audit

import (
	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/classify"
	"github.com/claude/planforge/internal/contract"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/telemetry"
)

// ReasonContractViolation tags the rejection-shaped records the auditor
// emits on the rejections store.
const ReasonContractViolation = "contract_violation"

// Context narrows an audit to a caller-supplied muscle subset. An empty
// MuscleGroups audits defaultAudit.
type Context struct {
	ActivityLevel string
	MuscleGroups  []models.MuscleGroup
}

// defaultAudit is the muscle set checked when the caller does not narrow
// the audit. Glutes are excluded: only Lower/Legs days plan glute-primary
// work, so a whole-plan glute floor would flag every accepted Full Body
// and Upper-heavy plan. The glute contract still applies to Lower-day
// generation and to explicitly narrowed audits.
var defaultAudit = []models.MuscleGroup{
	models.Quadriceps, models.Hamstrings,
	models.Chest, models.Back, models.Shoulders,
}

// Auditor checks plans against contracts and emits telemetry.
type Auditor struct {
	cat        *catalog.Catalog
	rejections *telemetry.Store
}

// New creates an auditor writing to the rejections store.
func New(cat *catalog.Catalog, rejections *telemetry.Store) *Auditor {
	return &Auditor{cat: cat, rejections: rejections}
}

// Audit counts each contracted group's structural volume across the whole
// plan and records a contract_violation per unsatisfied contract. It never
// returns a value and never mutates the plan.
func (a *Auditor) Audit(plan *models.TrainingPlan, auditCtx Context) {
	if plan == nil {
		return
	}
	tier := classify.Tier(auditCtx.ActivityLevel)
	groups := auditCtx.MuscleGroups
	if len(groups) == 0 {
		groups = defaultAudit
	}

	for _, group := range groups {
		c, ok := contract.For(group)
		if !ok {
			continue
		}
		structural, patterns := a.countStructural(plan, group, c)
		minimum := c.MinStructural[tier]

		var missing []string
		// A zero-minimum contract with no structural work in-plan has
		// nothing to say about patterns.
		if minimum > 0 || structural > 0 {
			for _, p := range c.RequiredPatterns {
				if !patterns[p] {
					missing = append(missing, string(p))
				}
			}
		}

		if structural >= minimum && len(missing) == 0 {
			continue
		}
		a.rejections.Record(ReasonContractViolation, map[string]any{
			telemetry.KeyActivityLevel: auditCtx.ActivityLevel,
			telemetry.KeyMuscle:        string(group),
			"structural_count":         structural,
			"minimum":                  minimum,
			"missing_patterns":         missing,
		})
	}
}

// countStructural counts plan exercises that resolve to a structural
// template of the group, plus the set of movement patterns detected.
// Unilateral structural work only counts when the contract allows it.
func (a *Auditor) countStructural(plan *models.TrainingPlan, group models.MuscleGroup, c models.MuscleGroupContract) (int, map[models.MovementPattern]bool) {
	count := 0
	patterns := make(map[models.MovementPattern]bool)
	for _, day := range plan.WeeklySchedule {
		for _, ex := range day.Exercises {
			if ex.PrimaryMuscle != group {
				continue
			}
			t, ok := a.cat.Lookup(ex.Name, ex.PrimaryMuscle)
			if !ok || t.Role != models.RoleStructural || t.Pattern == models.PatternNone {
				continue
			}
			if t.Unilateral && !c.AllowUnilateralAsStructural {
				patterns[t.Pattern] = true
				continue
			}
			count++
			patterns[t.Pattern] = true
		}
	}
	return count, patterns
}
