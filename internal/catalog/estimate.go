package catalog

import (
	"github.com/claude/planforge/internal/models"
)

// Flat session-time model shared by the generator's fill loop and the
// validator's time-budget rule. Both sides must agree or generated plans
// would fail their own budget check.
const (
	WarmupMinutes     = 5
	StructuralMinutes = 9
	IsolatedMinutes   = 6
)

// ExerciseMinutes returns the estimated minutes one exercise occupies.
func ExerciseMinutes(role models.Role) int {
	if role == models.RoleStructural {
		return StructuralMinutes
	}
	return IsolatedMinutes
}

// EstimateDayMinutes estimates a day's total duration. Exercises that
// cannot be resolved to a template are costed as isolated work.
func (c *Catalog) EstimateDayMinutes(day models.TrainingDay) int {
	total := WarmupMinutes
	for _, ex := range day.Exercises {
		role := models.RoleIsolated
		if t, ok := c.Lookup(ex.Name, ex.PrimaryMuscle); ok {
			role = t.Role
		}
		total += ExerciseMinutes(role)
	}
	return total
}
