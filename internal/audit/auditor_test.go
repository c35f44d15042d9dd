package audit

import (
	"log/slog"
	"testing"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/telemetry"
)

func newTestAuditor() (*Auditor, *telemetry.Store) {
	store := telemetry.NewStore("rejections", nil, slog.Default())
	return New(catalog.Default(), store), store
}

func planWith(days ...models.TrainingDay) *models.TrainingPlan {
	return &models.TrainingPlan{WeeklySchedule: days}
}

func ex(name string, muscle models.MuscleGroup) models.Exercise {
	return models.Exercise{Name: name, PrimaryMuscle: muscle, Sets: 3, Reps: "10", Rest: "60s"}
}

// TestAuditCleanPlan verifies a plan meeting every contract records
// nothing.
func TestAuditCleanPlan(t *testing.T) {
	a, store := newTestAuditor()

	plan := planWith(
		models.TrainingDay{Type: models.DayUpper, Exercises: []models.Exercise{
			ex("Supino Reto", models.Chest),
			ex("Remada Curvada", models.Back),
			ex("Desenvolvimento Militar", models.Shoulders),
		}},
		models.TrainingDay{Type: models.DayLower, Exercises: []models.Exercise{
			ex("Agachamento Livre", models.Quadriceps),
			ex("Stiff com Halteres", models.Hamstrings),
			ex("Elevacao Pelvica", models.Glutes),
		}},
	)
	a.Audit(plan, Context{ActivityLevel: "moderado"})

	if store.Len() != 0 {
		t.Errorf("clean plan recorded %d violations: %v", store.Len(), store.Statistics(10).Recent)
	}
}

// TestAuditDefaultSetSkipsGlutes verifies the default audit does not flag
// plans whose layout never targets glute-primary work, while a narrowed
// audit still can.
func TestAuditDefaultSetSkipsGlutes(t *testing.T) {
	a, store := newTestAuditor()

	// A Full Body day: glutes appear only as secondary volume.
	day := models.TrainingDay{Type: models.DayFullBody, Exercises: []models.Exercise{
		ex("Agachamento Livre", models.Quadriceps),
		ex("Stiff com Halteres", models.Hamstrings),
		ex("Supino Reto", models.Chest),
		ex("Remada Curvada", models.Back),
		ex("Desenvolvimento Militar", models.Shoulders),
	}}
	plan := planWith(day, day, day)

	a.Audit(plan, Context{ActivityLevel: "moderado"})
	if store.Len() != 0 {
		t.Errorf("default audit flagged %d violations: %v", store.Len(), store.Statistics(10).Recent)
	}

	a2, store2 := newTestAuditor()
	a2.Audit(plan, Context{
		ActivityLevel: "moderado",
		MuscleGroups:  []models.MuscleGroup{models.Glutes},
	})
	if store2.Statistics(1).ByReason[ReasonContractViolation] != 1 {
		t.Error("a glute-narrowed audit should still enforce the glute contract")
	}
}

// TestAuditMissingStructural verifies a plan below a group's structural
// floor records a contract violation naming the group.
func TestAuditMissingStructural(t *testing.T) {
	a, store := newTestAuditor()

	// Quadriceps only has isolated work.
	plan := planWith(
		models.TrainingDay{Type: models.DayLower, Exercises: []models.Exercise{
			ex("Cadeira Extensora", models.Quadriceps),
			ex("Stiff com Halteres", models.Hamstrings),
			ex("Elevacao Pelvica", models.Glutes),
		}},
	)
	a.Audit(plan, Context{
		ActivityLevel: "moderado",
		MuscleGroups:  []models.MuscleGroup{models.Quadriceps},
	})

	stats := store.Statistics(1)
	if stats.Total != 1 || stats.ByReason[ReasonContractViolation] != 1 {
		t.Fatalf("want one %s, got %v", ReasonContractViolation, stats.ByReason)
	}
	rec := stats.Recent[0]
	if rec.Context[telemetry.KeyMuscle] != string(models.Quadriceps) {
		t.Errorf("muscle = %v, want quadriceps", rec.Context[telemetry.KeyMuscle])
	}
	if rec.Context["structural_count"] != 0 {
		t.Errorf("structural_count = %v, want 0", rec.Context["structural_count"])
	}
	if rec.Context["minimum"] != 1 {
		t.Errorf("minimum = %v, want 1", rec.Context["minimum"])
	}
}

// TestAuditUnilateralDiscount verifies unilateral structural work does not
// count toward floors unless the contract allows it.
func TestAuditUnilateralDiscount(t *testing.T) {
	a, store := newTestAuditor()

	// Afundo is unilateral; the quadriceps contract does not accept it as
	// structural, so the floor of 1 is unmet.
	plan := planWith(
		models.TrainingDay{Type: models.DayLower, Exercises: []models.Exercise{
			ex("Afundo", models.Quadriceps),
		}},
	)
	a.Audit(plan, Context{
		ActivityLevel: "moderado",
		MuscleGroups:  []models.MuscleGroup{models.Quadriceps},
	})
	if store.Statistics(1).ByReason[ReasonContractViolation] != 1 {
		t.Error("unilateral-only quadriceps work should violate the contract")
	}

	// The glute contract allows unilateral structural work.
	store2 := telemetry.NewStore("rejections", nil, slog.Default())
	a2 := New(catalog.Default(), store2)
	plan2 := planWith(
		models.TrainingDay{Type: models.DayLower, Exercises: []models.Exercise{
			ex("Afundo Caminhando", models.Glutes),
		}},
	)
	a2.Audit(plan2, Context{
		ActivityLevel: "moderado",
		MuscleGroups:  []models.MuscleGroup{models.Glutes},
	})
	if store2.Len() != 0 {
		t.Errorf("unilateral glute work should satisfy the contract: %v", store2.Statistics(1).Recent)
	}
}

// TestAuditTierFloors verifies the same plan can satisfy a sedentary user
// and violate an advanced one.
func TestAuditTierFloors(t *testing.T) {
	plan := planWith(
		models.TrainingDay{Type: models.DayLower, Exercises: []models.Exercise{
			ex("Agachamento Livre", models.Quadriceps),
		}},
	)

	a, store := newTestAuditor()
	a.Audit(plan, Context{ActivityLevel: "sedentario", MuscleGroups: []models.MuscleGroup{models.Quadriceps}})
	if store.Len() != 0 {
		t.Errorf("one squat satisfies the sedentary floor: %v", store.Statistics(1).Recent)
	}

	a2, store2 := newTestAuditor()
	a2.Audit(plan, Context{ActivityLevel: "avancado", MuscleGroups: []models.MuscleGroup{models.Quadriceps}})
	if store2.Statistics(1).ByReason[ReasonContractViolation] != 1 {
		t.Error("one squat should miss the advanced floor of 2")
	}
}

// TestAuditNilPlan verifies a nil plan is a no-op.
func TestAuditNilPlan(t *testing.T) {
	a, store := newTestAuditor()
	a.Audit(nil, Context{ActivityLevel: "moderado"})
	if store.Len() != 0 {
		t.Errorf("nil plan recorded %d violations", store.Len())
	}
}
