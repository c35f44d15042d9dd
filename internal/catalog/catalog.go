// Package catalog holds the static exercise template table and its lookup
// API. Templates carry role and movement pattern as first-class metadata, so
// the validator and auditor never infer structure from exercise names.
package catalog

import (
	"github.com/claude/planforge/internal/models"
)

// Catalog indexes the template table by muscle group and by (name, muscle).
type Catalog struct {
	byMuscle map[models.MuscleGroup][]models.ExerciseTemplate
	byKey    map[templateKey]models.ExerciseTemplate
}

type templateKey struct {
	name   string
	muscle models.MuscleGroup
}

// New builds a catalog from a template slice. The same exercise name may
// appear under more than one muscle group when that is intentional (e.g. a
// hip hinge listed under both hamstrings and glutes).
func New(templates []models.ExerciseTemplate) *Catalog {
	c := &Catalog{
		byMuscle: make(map[models.MuscleGroup][]models.ExerciseTemplate),
		byKey:    make(map[templateKey]models.ExerciseTemplate),
	}
	for _, t := range templates {
		c.byMuscle[t.PrimaryMuscle] = append(c.byMuscle[t.PrimaryMuscle], t)
		c.byKey[templateKey{t.Name, t.PrimaryMuscle}] = t
	}
	return c
}

// Default returns a catalog over the built-in template table.
func Default() *Catalog {
	return New(defaultTemplates)
}

// Allowed reports whether a template's equipment affinity is reachable from
// the given training environment. Gym and "ambos" locations are
// unrestricted; home and outdoor exclude gym-only equipment.
func Allowed(eq models.Equipment, env models.Environment) bool {
	switch env {
	case models.EquipHome:
		return eq == models.EquipHome || eq == models.EquipBoth
	case models.EquipOutdoor:
		return eq == models.EquipOutdoor || eq == models.EquipBoth
	default:
		return true
	}
}

// ForMuscle returns the templates for a muscle group reachable from the
// given environment, in table order.
func (c *Catalog) ForMuscle(g models.MuscleGroup, env models.Environment) []models.ExerciseTemplate {
	var out []models.ExerciseTemplate
	for _, t := range c.byMuscle[g] {
		if Allowed(t.Equipment, env) {
			out = append(out, t)
		}
	}
	return out
}

// Lookup resolves a plan exercise back to its template.
func (c *Catalog) Lookup(name string, g models.MuscleGroup) (models.ExerciseTemplate, bool) {
	t, ok := c.byKey[templateKey{name, g}]
	return t, ok
}

// Muscles returns every muscle group with at least one template.
func (c *Catalog) Muscles() []models.MuscleGroup {
	out := make([]models.MuscleGroup, 0, len(c.byMuscle))
	for g := range c.byMuscle {
		out = append(out, g)
	}
	return out
}

// All returns the full template table.
func (c *Catalog) All() []models.ExerciseTemplate {
	var out []models.ExerciseTemplate
	for _, ts := range c.byMuscle {
		out = append(out, ts...)
	}
	return out
}
