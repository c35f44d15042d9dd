package classify

import (
	"testing"

	"github.com/claude/planforge/internal/models"
)

// TestNormalize verifies diacritics stripping, case folding, and separator
// collapsing all land on the same key.
func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Posterior de Coxa", "posterior de coxa"},
		{"posterior-de-coxa", "posterior de coxa"},
		{"POSTERIOR_DE_COXA", "posterior de coxa"},
		{"  Glúteos  ", "gluteos"},
		{"Quadríceps", "quadriceps"},
		{"ar_livre", "ar livre"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestMuscleGroup verifies free-text muscle names resolve to canonical
// groups, including accented and synonym forms.
func TestMuscleGroup(t *testing.T) {
	cases := []struct {
		in   string
		want models.MuscleGroup
	}{
		{"quadriceps", models.Quadriceps},
		{"Quadríceps", models.Quadriceps},
		{"posterior de coxa", models.Hamstrings},
		{"isquiotibiais", models.Hamstrings},
		{"Glúteos", models.Glutes},
		{"peito", models.Chest},
		{"dorsais", models.Back},
		{"deltoides", models.Shoulders},
		{"abdominal", models.Core},
	}
	for _, c := range cases {
		got, ok := MuscleGroup(c.in)
		if !ok || got != c.want {
			t.Errorf("MuscleGroup(%q) = (%q, %v), want (%q, true)", c.in, got, ok, c.want)
		}
	}

	if _, ok := MuscleGroup("antebraco"); ok {
		t.Error("MuscleGroup(antebraco) recognized, want unknown")
	}
}

// TestTierAndCeiling verifies the activity-level table and the Moderado
// fallback for unknown levels.
func TestTierAndCeiling(t *testing.T) {
	cases := []struct {
		level   string
		tier    models.Tier
		ceiling int
	}{
		{"idoso", models.TierSedentary, 5},
		{"sedentario", models.TierSedentary, 5},
		{"Sedentário", models.TierSedentary, 5},
		{"iniciante", models.TierModerate, 6},
		{"moderado", models.TierModerate, 8},
		{"intermediario", models.TierModerate, 8},
		{"avancado", models.TierAdvanced, 9},
		{"atleta", models.TierAthlete, 10},
		{"alto rendimento", models.TierAdvanced, 12},
		{"alto_rendimento", models.TierAdvanced, 12},
		{"desconhecido", models.TierModerate, 8},
		{"", models.TierModerate, 8},
	}
	for _, c := range cases {
		if got := Tier(c.level); got != c.tier {
			t.Errorf("Tier(%q) = %q, want %q", c.level, got, c.tier)
		}
		if got := DayCeiling(c.level); got != c.ceiling {
			t.Errorf("DayCeiling(%q) = %d, want %d", c.level, got, c.ceiling)
		}
	}
}

// TestSplit verifies division resolution and the Full Body fallback.
func TestSplit(t *testing.T) {
	cases := []struct {
		in   string
		want models.Split
	}{
		{"PPL", models.SplitPPL},
		{"push pull legs", models.SplitPPL},
		{"Upper/Lower", models.SplitUpperLower},
		{"upper lower", models.SplitUpperLower},
		{"Full Body", models.SplitFullBody},
		{"corpo inteiro", models.SplitFullBody},
		{"qualquer coisa", models.SplitFullBody},
		{"", models.SplitFullBody},
	}
	for _, c := range cases {
		if got := Split(c.in); got != c.want {
			t.Errorf("Split(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// TestEnvironment verifies training-location resolution and the academia
// fallback.
func TestEnvironment(t *testing.T) {
	cases := []struct {
		in   string
		want models.Environment
	}{
		{"academia", models.EquipGym},
		{"casa", models.EquipHome},
		{"ambos", models.EquipBoth},
		{"ar_livre", models.EquipOutdoor},
		{"Ar Livre", models.EquipOutdoor},
		{"", models.EquipGym},
		{"espaco", models.EquipGym},
	}
	for _, c := range cases {
		if got := Environment(c.in); got != c.want {
			t.Errorf("Environment(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
