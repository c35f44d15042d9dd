package validate

import (
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/telemetry"
)

// CorrectSameTypeDays repairs days that share a split type but carry
// divergent exercise sets: the first occurrence of each type becomes the
// canonical list and is applied to every later day of that type. Day labels
// are preserved. The input plan is not mutated; a correction metric is
// recorded per repaired day.
func CorrectSameTypeDays(plan *models.TrainingPlan, corrections *telemetry.Store) *models.TrainingPlan {
	if plan == nil {
		return nil
	}

	canonical := make(map[models.DayType][]models.Exercise)
	out := &models.TrainingPlan{
		Overview:       plan.Overview,
		Progression:    plan.Progression,
		WeeklySchedule: make([]models.TrainingDay, len(plan.WeeklySchedule)),
	}

	for i, day := range plan.WeeklySchedule {
		fixed := day
		if ref, ok := canonical[day.Type]; ok {
			if !sameExerciseNames(ref, day.Exercises) {
				fixed.Exercises = cloneExercises(ref)
				if corrections != nil {
					corrections.Record("dias_mesmo_tipo_reconciliados", map[string]any{
						telemetry.KeyDayType: string(day.Type),
						"day":                day.Day,
					})
				}
			}
		} else {
			canonical[day.Type] = day.Exercises
		}
		out.WeeklySchedule[i] = fixed
	}
	return out
}

func sameExerciseNames(a, b []models.Exercise) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
	}
	return true
}

func cloneExercises(src []models.Exercise) []models.Exercise {
	out := make([]models.Exercise, len(src))
	copy(out, src)
	for i := range out {
		if len(src[i].SecondaryMuscles) > 0 {
			out[i].SecondaryMuscles = append([]models.MuscleGroup(nil), src[i].SecondaryMuscles...)
		}
	}
	return out
}
