package validate

import (
	"log/slog"
	"testing"

	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/telemetry"
)

// TestCorrectSameTypeDays verifies divergent same-type days are replaced by
// the first occurrence's list, with a correction metric per repaired day.
func TestCorrectSameTypeDays(t *testing.T) {
	corrections := telemetry.NewStore("corrections", nil, slog.Default())

	pushA := []models.Exercise{
		ex("Supino Reto", models.Chest, models.Triceps, models.Shoulders),
		ex("Desenvolvimento com Halteres", models.Shoulders, models.Triceps),
		ex("Triceps Corda", models.Triceps),
	}
	pushB := []models.Exercise{
		ex("Supino Inclinado", models.Chest, models.Triceps, models.Shoulders),
		ex("Elevacao Lateral", models.Shoulders),
		ex("Triceps Testa", models.Triceps),
	}
	plan := &models.TrainingPlan{
		Overview: "Plano PPL de 6 dias.",
		WeeklySchedule: []models.TrainingDay{
			{Day: "Dia 1", Type: models.DayPush, Exercises: pushA},
			{Day: "Dia 2", Type: models.DayPull, Exercises: []models.Exercise{ex("Remada Curvada", models.Back, models.Biceps)}},
			{Day: "Dia 3", Type: models.DayLegs, Exercises: []models.Exercise{ex("Agachamento Livre", models.Quadriceps, models.Glutes)}},
			{Day: "Dia 4", Type: models.DayPush, Exercises: pushB},
			{Day: "Dia 5", Type: models.DayPull, Exercises: []models.Exercise{ex("Remada Curvada", models.Back, models.Biceps)}},
			{Day: "Dia 6", Type: models.DayLegs, Exercises: []models.Exercise{ex("Agachamento Livre", models.Quadriceps, models.Glutes)}},
		},
	}

	fixed := CorrectSameTypeDays(plan, corrections)

	// Day 4 now mirrors Day 1; label preserved.
	if fixed.WeeklySchedule[3].Day != "Dia 4" {
		t.Errorf("label = %q, want Dia 4", fixed.WeeklySchedule[3].Day)
	}
	got := fixed.WeeklySchedule[3].Exercises
	if len(got) != len(pushA) {
		t.Fatalf("repaired day has %d exercises, want %d", len(got), len(pushA))
	}
	for i := range pushA {
		if got[i].Name != pushA[i].Name {
			t.Errorf("repaired[%d] = %q, want %q", i, got[i].Name, pushA[i].Name)
		}
	}

	// Matching Pull/Legs pairs untouched; exactly one correction recorded.
	stats := corrections.Statistics(5)
	if stats.Total != 1 {
		t.Errorf("corrections recorded = %d, want 1", stats.Total)
	}
	if stats.ByReason["dias_mesmo_tipo_reconciliados"] != 1 {
		t.Errorf("ByReason = %v", stats.ByReason)
	}

	// The input plan is not mutated.
	if plan.WeeklySchedule[3].Exercises[0].Name != "Supino Inclinado" {
		t.Error("input plan was mutated")
	}
}

// TestCorrectSameTypeDaysNoChange verifies an already-consistent plan
// records nothing.
func TestCorrectSameTypeDaysNoChange(t *testing.T) {
	corrections := telemetry.NewStore("corrections", nil, slog.Default())

	upper := []models.Exercise{
		ex("Supino Reto", models.Chest, models.Triceps, models.Shoulders),
		ex("Remada Curvada", models.Back, models.Biceps),
	}
	plan := &models.TrainingPlan{
		WeeklySchedule: []models.TrainingDay{
			{Day: "Dia 1", Type: models.DayUpper, Exercises: upper},
			{Day: "Dia 2", Type: models.DayUpper, Exercises: upper},
		},
	}

	fixed := CorrectSameTypeDays(plan, corrections)
	if corrections.Len() != 0 {
		t.Errorf("consistent plan recorded %d corrections", corrections.Len())
	}
	if len(fixed.WeeklySchedule) != 2 {
		t.Errorf("schedule length changed: %d", len(fixed.WeeklySchedule))
	}
}

// TestCorrectSameTypeDaysNil verifies nil passthrough.
func TestCorrectSameTypeDaysNil(t *testing.T) {
	if got := CorrectSameTypeDays(nil, nil); got != nil {
		t.Errorf("CorrectSameTypeDays(nil) = %v, want nil", got)
	}
}
