// Package contract declares the per-muscle-group structural minimums and
// movement-pattern requirements, keyed by contract tier.
package contract

import (
	"github.com/claude/planforge/internal/models"
)

// table is initialized once and never mutated.
var table = map[models.MuscleGroup]models.MuscleGroupContract{
	models.Quadriceps: {
		Muscle: models.Quadriceps,
		MinStructural: map[models.Tier]int{
			models.TierSedentary: 1, models.TierModerate: 1,
			models.TierAthlete: 2, models.TierAdvanced: 2,
		},
		RequiredPatterns: []models.MovementPattern{models.KneeDominant},
	},
	models.Hamstrings: {
		Muscle: models.Hamstrings,
		MinStructural: map[models.Tier]int{
			models.TierSedentary: 1, models.TierModerate: 1,
			models.TierAthlete: 2, models.TierAdvanced: 2,
		},
		RequiredPatterns: []models.MovementPattern{models.HipDominant},
	},
	models.Glutes: {
		Muscle: models.Glutes,
		MinStructural: map[models.Tier]int{
			models.TierSedentary: 0, models.TierModerate: 1,
			models.TierAthlete: 1, models.TierAdvanced: 2,
		},
		RequiredPatterns:            []models.MovementPattern{models.HipDominant},
		AllowUnilateralAsStructural: true,
	},
	models.Chest: {
		Muscle: models.Chest,
		MinStructural: map[models.Tier]int{
			models.TierSedentary: 1, models.TierModerate: 1,
			models.TierAthlete: 2, models.TierAdvanced: 2,
		},
		RequiredPatterns: []models.MovementPattern{models.HorizontalPush},
	},
	models.Back: {
		Muscle: models.Back,
		MinStructural: map[models.Tier]int{
			models.TierSedentary: 1, models.TierModerate: 1,
			models.TierAthlete: 2, models.TierAdvanced: 2,
		},
		RequiredPatterns: []models.MovementPattern{models.HorizontalPull},
	},
	models.Shoulders: {
		Muscle: models.Shoulders,
		MinStructural: map[models.Tier]int{
			models.TierSedentary: 0, models.TierModerate: 1,
			models.TierAthlete: 1, models.TierAdvanced: 1,
		},
		RequiredPatterns: []models.MovementPattern{models.VerticalPush},
	},
}

// For returns the contract for a muscle group. The second return is false
// for groups without a declared contract (arms, calves, core).
func For(g models.MuscleGroup) (models.MuscleGroupContract, bool) {
	c, ok := table[g]
	return c, ok
}

// MinStructural returns a group's structural floor for a tier. Groups
// without a contract have no floor.
func MinStructural(g models.MuscleGroup, tier models.Tier) int {
	c, ok := table[g]
	if !ok {
		return 0
	}
	return c.MinStructural[tier]
}

// Contracted returns the muscle groups that carry a contract, in a fixed
// order so callers iterate deterministically.
func Contracted() []models.MuscleGroup {
	return []models.MuscleGroup{
		models.Quadriceps, models.Hamstrings, models.Glutes,
		models.Chest, models.Back, models.Shoulders,
	}
}
