package split

import (
	"testing"

	"github.com/claude/planforge/internal/models"
)

// TestLayoutFullBody verifies Full Body accepts any frequency from 1 to 7.
func TestLayoutFullBody(t *testing.T) {
	for days := 1; days <= 7; days++ {
		layout, ok := Layout(models.SplitFullBody, days)
		if !ok {
			t.Errorf("Full Body with %d days should be valid", days)
			continue
		}
		if len(layout) != days {
			t.Errorf("Full Body %d days: layout has %d entries", days, len(layout))
		}
		for _, dt := range layout {
			if dt != models.DayFullBody {
				t.Errorf("Full Body layout contains %q", dt)
			}
		}
	}

	if _, ok := Layout(models.SplitFullBody, 0); ok {
		t.Error("0 days should be invalid")
	}
	if _, ok := Layout(models.SplitFullBody, 8); ok {
		t.Error("8 days should be invalid")
	}
}

// TestLayoutUpperLower verifies the alternating pattern and the 2-6 day
// frequency bounds.
func TestLayoutUpperLower(t *testing.T) {
	layout, ok := Layout(models.SplitUpperLower, 4)
	if !ok {
		t.Fatal("Upper/Lower with 4 days should be valid")
	}
	want := []models.DayType{models.DayUpper, models.DayLower, models.DayUpper, models.DayLower}
	for i := range want {
		if layout[i] != want[i] {
			t.Errorf("layout[%d] = %q, want %q", i, layout[i], want[i])
		}
	}

	if _, ok := Layout(models.SplitUpperLower, 1); ok {
		t.Error("Upper/Lower with 1 day should be invalid")
	}
	if _, ok := Layout(models.SplitUpperLower, 7); ok {
		t.Error("Upper/Lower with 7 days should be invalid")
	}
}

// TestLayoutPPL verifies PPL only supports 3 or 6 days.
func TestLayoutPPL(t *testing.T) {
	layout, ok := Layout(models.SplitPPL, 3)
	if !ok {
		t.Fatal("PPL with 3 days should be valid")
	}
	want := []models.DayType{models.DayPush, models.DayPull, models.DayLegs}
	for i := range want {
		if layout[i] != want[i] {
			t.Errorf("layout[%d] = %q, want %q", i, layout[i], want[i])
		}
	}

	layout, ok = Layout(models.SplitPPL, 6)
	if !ok || len(layout) != 6 {
		t.Fatalf("PPL with 6 days should yield 6 entries, got %d (ok=%v)", len(layout), ok)
	}
	if layout[3] != models.DayPush || layout[5] != models.DayLegs {
		t.Errorf("PPL 6-day second cycle wrong: %v", layout[3:])
	}

	for _, days := range []int{1, 2, 4, 5, 7} {
		if _, ok := Layout(models.SplitPPL, days); ok {
			t.Errorf("PPL with %d days should be invalid", days)
		}
	}
}

// TestInfer verifies day types map back to their division and mixed
// schedules are rejected.
func TestInfer(t *testing.T) {
	days := func(types ...models.DayType) []models.TrainingDay {
		out := make([]models.TrainingDay, len(types))
		for i, dt := range types {
			out[i] = models.TrainingDay{Type: dt}
		}
		return out
	}

	if got, ok := Infer(days(models.DayPush, models.DayPull, models.DayLegs)); !ok || got != models.SplitPPL {
		t.Errorf("Infer(PPL days) = (%q, %v)", got, ok)
	}
	if got, ok := Infer(days(models.DayUpper, models.DayLower)); !ok || got != models.SplitUpperLower {
		t.Errorf("Infer(UL days) = (%q, %v)", got, ok)
	}
	if got, ok := Infer(days(models.DayFullBody, models.DayFullBody)); !ok || got != models.SplitFullBody {
		t.Errorf("Infer(FB days) = (%q, %v)", got, ok)
	}
	if _, ok := Infer(days(models.DayUpper, models.DayFullBody)); ok {
		t.Error("mixed day types should not infer a division")
	}
	if _, ok := Infer(days(models.DayType("Estranho"))); ok {
		t.Error("unknown day type should not infer a division")
	}
}

// TestRequiredGroups verifies the per-day-type requirements and the anyOf
// semantics for lower-body days.
func TestRequiredGroups(t *testing.T) {
	groups, anyOf := RequiredGroups(models.DayLower)
	if !anyOf || len(groups) != 3 {
		t.Errorf("Lower = (%v, anyOf=%v), want leg trio anyOf", groups, anyOf)
	}

	groups, anyOf = RequiredGroups(models.DayUpper)
	if anyOf || len(groups) != 2 {
		t.Errorf("Upper = (%v, anyOf=%v), want [chest back] all-of", groups, anyOf)
	}

	groups, anyOf = RequiredGroups(models.DayFullBody)
	if anyOf || len(groups) != 3 {
		t.Errorf("Full Body = (%v, anyOf=%v), want [chest back shoulders] all-of", groups, anyOf)
	}

	if legs := FullBodyNeedsLegs(); len(legs) != 3 {
		t.Errorf("FullBodyNeedsLegs = %v, want leg trio", legs)
	}
}

// TestForbiddenGroups verifies upper days forbid legs, lower days forbid
// upper-body groups, and Full Body forbids nothing.
func TestForbiddenGroups(t *testing.T) {
	upper := ForbiddenGroups(models.DayUpper)
	found := false
	for _, g := range upper {
		if g == models.Quadriceps {
			found = true
		}
		if g == models.Chest {
			t.Error("Upper day must not forbid chest")
		}
	}
	if !found {
		t.Error("Upper day should forbid quadriceps")
	}

	lower := ForbiddenGroups(models.DayLower)
	found = false
	for _, g := range lower {
		if g == models.Chest {
			found = true
		}
	}
	if !found {
		t.Error("Lower day should forbid chest")
	}

	if fb := ForbiddenGroups(models.DayFullBody); len(fb) != 0 {
		t.Errorf("Full Body forbids %v, want none", fb)
	}
}
