// Package validate holds the strict pass/fail gate over finished plans and
// the corrector that repairs divergent same-type days. Every rejection path
// records exactly one metric naming the violated rule before returning
// false; the passing path records nothing.
package validate

import (
	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/classify"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/split"
	"github.com/claude/planforge/internal/telemetry"
)

// Structural limits beyond the per-level ceiling.
const (
	minExercisesPerDay  = 3
	maxPerPrimaryMuscle = 4
	maxSecondaryOverlap = 3
)

// Validator is a pure predicate over plans, with a telemetry side effect on
// every failing branch.
type Validator struct {
	cat        *catalog.Catalog
	rejections *telemetry.Store
}

// New creates a validator. rejections may be nil when telemetry is not
// wanted (tests exercising only the predicate).
func New(cat *catalog.Catalog, rejections *telemetry.Store) *Validator {
	return &Validator{cat: cat, rejections: rejections}
}

func (v *Validator) reject(reason string, bag map[string]any) bool {
	if v.rejections != nil {
		v.rejections.Record(reason, bag)
	}
	return false
}

// IsUsable reports whether a finished plan satisfies every hard invariant
// for the requested frequency and activity level. A nil plan is never
// usable.
func (v *Validator) IsUsable(plan *models.TrainingPlan, trainingDays int, activityLevel string) bool {
	if plan == nil || len(plan.WeeklySchedule) == 0 {
		return v.reject(ReasonInvalidSchedule, map[string]any{
			telemetry.KeyActivityLevel: activityLevel,
		})
	}
	if len(plan.WeeklySchedule) != trainingDays {
		return v.reject(ReasonDayCountMismatch, map[string]any{
			telemetry.KeyActivityLevel: activityLevel,
			"expected_days":            trainingDays,
			"actual_days":              len(plan.WeeklySchedule),
		})
	}

	division, ok := split.Infer(plan.WeeklySchedule)
	if ok {
		layout, compatible := split.Layout(division, trainingDays)
		if compatible {
			compatible = sameTypeCounts(layout, plan.WeeklySchedule)
		}
		if !compatible {
			return v.reject(ReasonSplitIncompatible, map[string]any{
				telemetry.KeyActivityLevel: activityLevel,
				"division":                 string(division),
				"training_days":            trainingDays,
			})
		}
	} else {
		return v.reject(ReasonSplitIncompatible, map[string]any{
			telemetry.KeyActivityLevel: activityLevel,
			"training_days":            trainingDays,
		})
	}

	ceiling := classify.DayCeiling(activityLevel)
	for _, day := range plan.WeeklySchedule {
		if !v.checkDay(day, ceiling, activityLevel) {
			return false
		}
	}
	return true
}

// WithinTimeBudget reports whether every day fits the available session
// time. Kept separate from IsUsable because the budget comes from the
// request, not the plan.
func (v *Validator) WithinTimeBudget(plan *models.TrainingPlan, availableMinutes int, activityLevel string) bool {
	if plan == nil {
		return true
	}
	for _, day := range plan.WeeklySchedule {
		est := v.cat.EstimateDayMinutes(day)
		if est > availableMinutes {
			return v.reject(ReasonTimeBudget, map[string]any{
				telemetry.KeyActivityLevel: activityLevel,
				telemetry.KeyDayType:       string(day.Type),
				"estimated_minutes":        est,
				"available_minutes":        availableMinutes,
			})
		}
	}
	return true
}

func (v *Validator) checkDay(day models.TrainingDay, ceiling int, activityLevel string) bool {
	bag := func(extra map[string]any) map[string]any {
		out := map[string]any{
			telemetry.KeyActivityLevel: activityLevel,
			telemetry.KeyDayType:       string(day.Type),
		}
		for k, val := range extra {
			out[k] = val
		}
		return out
	}

	if len(day.Exercises) < minExercisesPerDay {
		return v.reject(ReasonEmptyDay, bag(map[string]any{"count": len(day.Exercises)}))
	}
	if len(day.Exercises) > ceiling {
		return v.reject(ReasonTooManyForLevel, bag(map[string]any{
			"count": len(day.Exercises), "ceiling": ceiling,
		}))
	}

	seen := make(map[string]bool)
	primaryCount := make(map[models.MuscleGroup]int)
	secondaryCount := make(map[models.MuscleGroup]int)
	present := make(map[models.MuscleGroup]bool)
	for _, ex := range day.Exercises {
		if ex.PrimaryMuscle == "" {
			return v.reject(ReasonMissingPrimaryMuscle, bag(map[string]any{"exercise": ex.Name}))
		}
		if seen[ex.Name] {
			return v.reject(ReasonDuplicateExercise, bag(map[string]any{"exercise": ex.Name}))
		}
		seen[ex.Name] = true
		primaryCount[ex.PrimaryMuscle]++
		present[ex.PrimaryMuscle] = true
		for _, sec := range ex.SecondaryMuscles {
			secondaryCount[sec]++
		}
	}

	for _, g := range split.ForbiddenGroups(day.Type) {
		if present[g] {
			return v.reject(ReasonForbiddenMuscle, bag(map[string]any{
				telemetry.KeyMuscle: string(g),
			}))
		}
	}

	if !v.checkRequiredGroups(day, present, bag) {
		return false
	}
	if !v.checkOrdering(day, bag) {
		return false
	}

	for g, n := range primaryCount {
		if n > maxPerPrimaryMuscle {
			return v.reject(ReasonTooManyPrimary, bag(map[string]any{
				telemetry.KeyMuscle: string(g), "count": n,
			}))
		}
	}

	// Intelligent distribution: with four or more exercises, no single
	// primary muscle may take more than half the day.
	if len(day.Exercises) >= 4 {
		for g, n := range primaryCount {
			if n*2 > len(day.Exercises) {
				return v.reject(ReasonBadDistribution, bag(map[string]any{
					telemetry.KeyMuscle: string(g), "count": n, "total": len(day.Exercises),
				}))
			}
		}
	}

	for g, n := range secondaryCount {
		if n > maxSecondaryOverlap {
			return v.reject(ReasonSecondaryOverflow, bag(map[string]any{
				telemetry.KeyMuscle: string(g), "count": n,
			}))
		}
	}
	return true
}

func (v *Validator) checkRequiredGroups(day models.TrainingDay, present map[models.MuscleGroup]bool, bag func(map[string]any) map[string]any) bool {
	required, anyOf := split.RequiredGroups(day.Type)
	if anyOf {
		for _, g := range required {
			if present[g] {
				return true
			}
		}
		return v.reject(ReasonLowerMissingGroups, bag(nil))
	}
	for _, g := range required {
		if !present[g] {
			if day.Type == models.DayFullBody {
				return v.reject(ReasonFullBodyMissingGroups, bag(map[string]any{
					telemetry.KeyMuscle: string(g),
				}))
			}
			return v.reject(ReasonRequiredGroupMissing, bag(map[string]any{
				telemetry.KeyMuscle: string(g),
			}))
		}
	}
	if day.Type == models.DayFullBody {
		hasLegs := false
		for _, g := range split.FullBodyNeedsLegs() {
			if present[g] {
				hasLegs = true
				break
			}
		}
		if !hasLegs {
			return v.reject(ReasonFullBodyMissingGroups, bag(map[string]any{"missing": "legs"}))
		}
	}
	return true
}

// checkOrdering enforces structural work before isolated work. Roles come
// from the catalog; exercises without a template are treated as isolated.
func (v *Validator) checkOrdering(day models.TrainingDay, bag func(map[string]any) map[string]any) bool {
	sawIsolated := false
	for _, ex := range day.Exercises {
		role := models.RoleIsolated
		if t, ok := v.cat.Lookup(ex.Name, ex.PrimaryMuscle); ok {
			role = t.Role
		}
		if role == models.RoleIsolated {
			sawIsolated = true
		} else if sawIsolated {
			return v.reject(ReasonInvalidOrdering, bag(map[string]any{"exercise": ex.Name}))
		}
	}
	return true
}

func sameTypeCounts(layout []models.DayType, days []models.TrainingDay) bool {
	want := make(map[models.DayType]int)
	for _, dt := range layout {
		want[dt]++
	}
	got := make(map[models.DayType]int)
	for _, d := range days {
		got[d.Type]++
	}
	if len(want) != len(got) {
		return false
	}
	for dt, n := range want {
		if got[dt] != n {
			return false
		}
	}
	return true
}
