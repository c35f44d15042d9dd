// Package planner builds candidate weekly schedules from a profile. The
// generator is pure over the catalog and contracts: given the same request
// it produces the same plan (selection order is shuffled with a seed
// derived from the request). Its output is structurally well-formed but is
// not guaranteed to pass validation when the equipment filter and the
// contract minimums squeeze the catalog too hard; the validator and
// corrector downstream own the final gate.
package planner

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/classify"
	"github.com/claude/planforge/internal/contract"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/split"
	"github.com/claude/planforge/internal/telemetry"
)

// Malformed-input errors. These fail fast to the caller; everything past
// input validation degrades instead of erroring.
var (
	ErrInvalidDayCount   = errors.New("training days must be positive")
	ErrInvalidTime       = errors.New("available time must be positive")
	ErrIncompatibleSplit = errors.New("division incompatible with training days")
)

// Soft/flexible warning types registered on the quality accumulator.
const (
	WarnStructuralFloorMissed = "minimo_estrutural_nao_atingido"
	WarnKneeSensitivePick     = "exercicio_sensivel_joelho"
	WarnJointSensitivePick    = "exercicio_sensivel_articulacao"
)

const minExercisesPerDay = 3

// Generator selects and arranges exercises into weekly schedules.
type Generator struct {
	cat *catalog.Catalog
}

// New creates a generator over a catalog.
func New(cat *catalog.Catalog) *Generator {
	return &Generator{cat: cat}
}

// Generate builds a weekly schedule for the request. qa may be nil; when
// present it accumulates the soft and flexible concessions made during
// selection. Days sharing a split type share one exercise list.
func (g *Generator) Generate(req models.PlanRequest, qa *telemetry.QualityAccumulator) (*models.TrainingPlan, error) {
	if req.TrainingDays <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayCount, req.TrainingDays)
	}
	if req.AvailableMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTime, req.AvailableMinutes)
	}
	layout, ok := split.Layout(req.Division, req.TrainingDays)
	if !ok {
		return nil, fmt.Errorf("%w: %s with %d days", ErrIncompatibleSplit, req.Division, req.TrainingDays)
	}

	env := req.TrainingLocation
	if env == "" {
		env = models.EquipGym
	}
	tier := classify.Tier(req.ActivityLevel)
	ceiling := classify.DayCeiling(req.ActivityLevel)
	rng := rand.New(rand.NewSource(seed(req)))

	byType := make(map[models.DayType][]models.Exercise)
	schedule := make([]models.TrainingDay, 0, len(layout))
	for i, dt := range layout {
		exs, built := byType[dt]
		if !built {
			exs = g.buildDay(dt, tier, ceiling, env, req, qa, rng)
			byType[dt] = exs
		}
		schedule = append(schedule, models.TrainingDay{
			Day:       fmt.Sprintf("Dia %d", i+1),
			Type:      dt,
			Exercises: exs,
		})
	}

	return &models.TrainingPlan{
		Overview:       overview(req),
		Progression:    progressionNote(req.Objective),
		WeeklySchedule: schedule,
	}, nil
}

// dayBuilder tracks the per-day invariants the validator will later check,
// so the generator never emits a day it knows to be unusable.
type dayBuilder struct {
	gen       *Generator
	req       models.PlanRequest
	qa        *telemetry.QualityAccumulator
	ceiling   int
	budget    int
	used      int
	names     map[string]bool
	primary   map[models.MuscleGroup]int
	secondary map[models.MuscleGroup]int
	chosen    []models.ExerciseTemplate
}

func (g *Generator) buildDay(dt models.DayType, tier models.Tier, ceiling int, env models.Environment, req models.PlanRequest, qa *telemetry.QualityAccumulator, rng *rand.Rand) []models.Exercise {
	b := &dayBuilder{
		gen:       g,
		req:       req,
		qa:        qa,
		ceiling:   ceiling,
		budget:    req.AvailableMinutes,
		used:      catalog.WarmupMinutes,
		names:     make(map[string]bool),
		primary:   make(map[models.MuscleGroup]int),
		secondary: make(map[models.MuscleGroup]int),
	}

	groups := split.PlannedGroups(dt)

	// Structural minimums first, pattern-aware.
	for _, group := range groups {
		c, ok := contract.For(group)
		if !ok {
			continue
		}
		need := c.MinStructural[tier]
		if need == 0 {
			continue
		}
		structural := b.structuralCandidates(group, env, rng)
		if !c.AllowUnilateralAsStructural {
			structural = bilateralFirst(structural)
		}
		got := 0
		for _, pattern := range c.RequiredPatterns {
			if got >= need {
				break
			}
			if b.pickWithPattern(structural, pattern) {
				got++
			}
		}
		for got < need {
			if !b.pickAny(structural) {
				break
			}
			got++
		}
		if got < need {
			qa.AddSoft(WarnStructuralFloorMissed, string(group))
		}
	}

	// Required coverage: every group the validator demands for this day
	// type must appear, isolated work included.
	required, anyOf := split.RequiredGroups(dt)
	if anyOf {
		covered := false
		for _, group := range required {
			if b.primary[group] > 0 {
				covered = true
				break
			}
		}
		if !covered && len(required) > 0 {
			b.cover(required[0], env, rng)
		}
	} else {
		for _, group := range required {
			if b.primary[group] == 0 {
				b.cover(group, env, rng)
			}
		}
		if dt == models.DayFullBody {
			hasLegs := false
			for _, group := range split.FullBodyNeedsLegs() {
				if b.primary[group] > 0 {
					hasLegs = true
					break
				}
			}
			if !hasLegs {
				b.cover(models.Quadriceps, env, rng)
			}
		}
	}

	// Fill remaining volume with isolated work, round-robin over the day's
	// groups so no single muscle dominates.
	for pass := 0; pass < 2 && len(b.chosen) < b.ceiling; pass++ {
		for _, group := range groups {
			if len(b.chosen) >= b.ceiling {
				break
			}
			b.pickAny(b.isolatedCandidates(group, env, rng))
		}
	}

	// A day below the volume floor is unusable; take anything reachable.
	for len(b.chosen) < minExercisesPerDay {
		added := false
		for _, group := range groups {
			if b.pickAny(b.isolatedCandidates(group, env, rng)) || b.pickAny(b.structuralCandidates(group, env, rng)) {
				added = true
				break
			}
		}
		if !added {
			break
		}
	}

	b.trimDistribution()
	return b.prescribe()
}

// structuralCandidates returns the structural templates for a group with
// limitation-sensitive entries moved to the back, so substitutes are
// preferred when the profile asks for them.
func (b *dayBuilder) structuralCandidates(group models.MuscleGroup, env models.Environment, rng *rand.Rand) []models.ExerciseTemplate {
	var pool []models.ExerciseTemplate
	for _, t := range b.gen.cat.ForMuscle(group, env) {
		if t.Role == models.RoleStructural {
			pool = append(pool, t)
		}
	}
	shuffle(pool, rng)
	return b.deprioritizeSensitive(pool)
}

func (b *dayBuilder) isolatedCandidates(group models.MuscleGroup, env models.Environment, rng *rand.Rand) []models.ExerciseTemplate {
	var pool []models.ExerciseTemplate
	for _, t := range b.gen.cat.ForMuscle(group, env) {
		if t.Role == models.RoleIsolated {
			pool = append(pool, t)
		}
	}
	shuffle(pool, rng)
	return b.deprioritizeSensitive(pool)
}

func (b *dayBuilder) deprioritizeSensitive(pool []models.ExerciseTemplate) []models.ExerciseTemplate {
	if !b.req.KneeLimitations && !b.req.JointLimitations {
		return pool
	}
	safe := make([]models.ExerciseTemplate, 0, len(pool))
	var sensitive []models.ExerciseTemplate
	for _, t := range pool {
		if (b.req.KneeLimitations && t.KneeSensitive) || (b.req.JointLimitations && t.JointSensitive) {
			sensitive = append(sensitive, t)
		} else {
			safe = append(safe, t)
		}
	}
	if len(sensitive) > 0 && len(safe) > 0 {
		b.qa.UseAlternative()
	}
	return append(safe, sensitive...)
}

// cover adds any reachable exercise for a group, preferring isolated work
// since structural minimums were already taken.
func (b *dayBuilder) cover(group models.MuscleGroup, env models.Environment, rng *rand.Rand) {
	if b.pickAny(b.isolatedCandidates(group, env, rng)) {
		return
	}
	b.pickAny(b.structuralCandidates(group, env, rng))
}

func (b *dayBuilder) pickWithPattern(pool []models.ExerciseTemplate, pattern models.MovementPattern) bool {
	for _, t := range pool {
		if t.Pattern == pattern && b.take(t) {
			return true
		}
	}
	return false
}

func (b *dayBuilder) pickAny(pool []models.ExerciseTemplate) bool {
	for _, t := range pool {
		if b.take(t) {
			return true
		}
	}
	return false
}

// take admits a template if it keeps the day inside every validator
// invariant: no duplicate names, per-primary ceiling, secondary-overlap
// limit, per-level ceiling, and the session time budget.
func (b *dayBuilder) take(t models.ExerciseTemplate) bool {
	if b.names[t.Name] {
		return false
	}
	if len(b.chosen) >= b.ceiling {
		return false
	}
	if b.primary[t.PrimaryMuscle] >= 3 {
		return false
	}
	for _, sec := range t.SecondaryMuscles {
		if b.secondary[sec] >= 3 {
			return false
		}
	}
	cost := catalog.ExerciseMinutes(t.Role)
	if b.used+cost > b.budget {
		return false
	}

	if b.req.KneeLimitations && t.KneeSensitive {
		b.qa.AddSoft(WarnKneeSensitivePick, t.Name)
	}
	if b.req.JointLimitations && t.JointSensitive {
		b.qa.AddFlexible(WarnJointSensitivePick, t.Name)
	}

	b.names[t.Name] = true
	b.primary[t.PrimaryMuscle]++
	for _, sec := range t.SecondaryMuscles {
		b.secondary[sec]++
	}
	b.used += cost
	b.chosen = append(b.chosen, t)
	return true
}

// trimDistribution drops trailing isolated picks from any muscle holding
// more than half the day. A short time budget can cut a round-robin fill
// pass mid-way and leave one group over-represented; dropping the newest
// isolated pick restores the balance the validator demands.
func (b *dayBuilder) trimDistribution() {
	for len(b.chosen) >= 4 {
		counts := make(map[models.MuscleGroup]int)
		for _, t := range b.chosen {
			counts[t.PrimaryMuscle]++
		}
		var over models.MuscleGroup
		found := false
		for g, n := range counts {
			if n*2 > len(b.chosen) {
				over, found = g, true
				break
			}
		}
		if !found {
			return
		}
		removed := false
		for i := len(b.chosen) - 1; i >= 0; i-- {
			t := b.chosen[i]
			if t.PrimaryMuscle == over && t.Role == models.RoleIsolated {
				b.chosen = append(b.chosen[:i], b.chosen[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}

// prescribe converts the chosen templates into plan exercises, structural
// work first to satisfy the ordering rule.
func (b *dayBuilder) prescribe() []models.Exercise {
	out := make([]models.Exercise, 0, len(b.chosen))
	for _, role := range []models.Role{models.RoleStructural, models.RoleIsolated} {
		for _, t := range b.chosen {
			if t.Role != role {
				continue
			}
			sets, reps, rest := prescription(b.req.Objective, t.Role, b.req.IMC)
			out = append(out, models.Exercise{
				Name:             t.Name,
				PrimaryMuscle:    t.PrimaryMuscle,
				SecondaryMuscles: t.SecondaryMuscles,
				Sets:             sets,
				Reps:             reps,
				Rest:             rest,
			})
		}
	}
	return out
}

// prescription maps the objective to sets/reps/rest. A high IMC trims one
// set from structural work to keep early sessions manageable.
func prescription(objective string, role models.Role, imc float64) (int, string, string) {
	var sets int
	var reps, rest string
	switch classify.Normalize(objective) {
	case "hipertrofia", "ganho de massa":
		if role == models.RoleStructural {
			sets, reps, rest = 4, "8-12", "90s"
		} else {
			sets, reps, rest = 3, "10-15", "60s"
		}
	case "forca":
		if role == models.RoleStructural {
			sets, reps, rest = 5, "4-6", "120s"
		} else {
			sets, reps, rest = 3, "8-10", "90s"
		}
	case "emagrecimento", "perda de peso":
		if role == models.RoleStructural {
			sets, reps, rest = 3, "12-15", "45s"
		} else {
			sets, reps, rest = 3, "15-20", "30s"
		}
	default:
		if role == models.RoleStructural {
			sets, reps, rest = 4, "10-12", "90s"
		} else {
			sets, reps, rest = 3, "10-12", "60s"
		}
	}
	if imc >= 30 && role == models.RoleStructural && sets > 2 {
		sets--
	}
	return sets, reps, rest
}

func overview(req models.PlanRequest) string {
	return fmt.Sprintf("Plano de %d dias (%s) para nivel %s, objetivo %s.",
		req.TrainingDays, req.Division, req.ActivityLevel, req.Objective)
}

func progressionNote(objective string) string {
	if classify.Normalize(objective) == "forca" {
		return "Aumente a carga em 2,5% quando completar todas as series na faixa alvo por duas sessoes seguidas."
	}
	return "Aumente a carga em 2,5% quando atingir o topo da faixa de repeticoes em todas as series."
}

// seed derives a deterministic shuffle seed from the request so identical
// profiles get identical plans.
func seed(req models.PlanRequest) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%d|%s|%s|%d|%s|%v|%v|%s",
		req.UserID, req.TrainingDays, req.ActivityLevel, req.Division,
		req.AvailableMinutes, req.Objective, req.JointLimitations,
		req.KneeLimitations, req.TrainingLocation)
	return int64(h.Sum64())
}

// bilateralFirst keeps unilateral variants as fallbacks for contracts that
// do not count them toward the structural floor.
func bilateralFirst(pool []models.ExerciseTemplate) []models.ExerciseTemplate {
	out := make([]models.ExerciseTemplate, 0, len(pool))
	var uni []models.ExerciseTemplate
	for _, t := range pool {
		if t.Unilateral {
			uni = append(uni, t)
		} else {
			out = append(out, t)
		}
	}
	return append(out, uni...)
}

func shuffle(pool []models.ExerciseTemplate, rng *rand.Rand) {
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}
