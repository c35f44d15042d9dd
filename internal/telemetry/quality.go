package telemetry

import (
	"sort"
)

// Quality score model: each soft warning costs 5 points, each flexible
// warning 2, floored at 60.
const (
	baseScore   = 100
	softPenalty = 5
	flexPenalty = 2
	minScore    = 60
)

// QualityAccumulator collects the soft and flexible warnings registered
// during a single generation run. It is not safe for concurrent use and is
// not shared between runs; the final score is handed to the shared quality
// store once the plan passes validation.
type QualityAccumulator struct {
	soft     map[string]int
	flexible map[string]int
	affected map[string]struct{}
	altsUsed int
}

// NewQualityAccumulator returns an empty accumulator for one run.
func NewQualityAccumulator() *QualityAccumulator {
	return &QualityAccumulator{
		soft:     make(map[string]int),
		flexible: make(map[string]int),
		affected: make(map[string]struct{}),
	}
}

// AddSoft registers a soft warning of the given type against an exercise.
func (a *QualityAccumulator) AddSoft(warningType, exercise string) {
	if a == nil {
		return
	}
	a.soft[warningType]++
	if exercise != "" {
		a.affected[exercise] = struct{}{}
	}
}

// AddFlexible registers a flexible (lower-impact) warning.
func (a *QualityAccumulator) AddFlexible(warningType, exercise string) {
	if a == nil {
		return
	}
	a.flexible[warningType]++
	if exercise != "" {
		a.affected[exercise] = struct{}{}
	}
}

// UseAlternative notes that a substitute exercise was selected.
func (a *QualityAccumulator) UseAlternative() {
	if a == nil {
		return
	}
	a.altsUsed++
}

// SoftCount returns the total number of soft warnings.
func (a *QualityAccumulator) SoftCount() int {
	n := 0
	for _, c := range a.soft {
		n += c
	}
	return n
}

// FlexibleCount returns the total number of flexible warnings.
func (a *QualityAccumulator) FlexibleCount() int {
	n := 0
	for _, c := range a.flexible {
		n += c
	}
	return n
}

// Score computes the plan quality score, clamped to [60, 100].
func (a *QualityAccumulator) Score() int {
	score := baseScore - softPenalty*a.SoftCount() - flexPenalty*a.FlexibleCount()
	if score < minScore {
		return minScore
	}
	return score
}

// AffectedExercises returns the affected exercise names, sorted.
func (a *QualityAccumulator) AffectedExercises() []string {
	out := make([]string, 0, len(a.affected))
	for name := range a.affected {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Flush records the run's quality outcome on the shared store. bag carries
// run context (activity level, day type) and is extended with the score and
// warning counts.
func (a *QualityAccumulator) Flush(store *Store, bag map[string]any) int {
	score := a.Score()
	if bag == nil {
		bag = make(map[string]any)
	}
	bag[KeyQualityScore] = score
	bag["soft_warnings"] = a.SoftCount()
	bag["flexible_warnings"] = a.FlexibleCount()
	bag["alternatives_used"] = a.altsUsed
	if names := a.AffectedExercises(); len(names) > 0 {
		bag["affected_exercises"] = names
	}
	store.Record("plan_quality", bag)
	return score
}
