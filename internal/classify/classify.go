// Package classify maps free-text, locale-specific profile strings to the
// canonical enums used by the catalog, contracts, and validator. Lookups are
// closed tables over normalized keys; unknown input degrades to a documented
// default instead of failing.
package classify

import (
	"strings"
	"unicode"

	"github.com/claude/planforge/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize strips diacritics, lowercases, and collapses separators so that
// "Posterior de Coxa", "posterior-de-coxa" and "POSTERIOR DE COXA" all map
// to the same lookup key.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(strings.TrimSpace(out))
	out = strings.ReplaceAll(out, "_", " ")
	out = strings.ReplaceAll(out, "-", " ")
	return strings.Join(strings.Fields(out), " ")
}

var muscleByKey = map[string]models.MuscleGroup{
	"quadriceps":        models.Quadriceps,
	"coxa":              models.Quadriceps,
	"posterior de coxa": models.Hamstrings,
	"posterior":         models.Hamstrings,
	"isquiotibiais":     models.Hamstrings,
	"gluteos":           models.Glutes,
	"gluteo":            models.Glutes,
	"panturrilhas":      models.Calves,
	"panturrilha":       models.Calves,
	"peitoral":          models.Chest,
	"peito":             models.Chest,
	"costas":            models.Back,
	"dorsal":            models.Back,
	"dorsais":           models.Back,
	"ombros":            models.Shoulders,
	"ombro":             models.Shoulders,
	"deltoides":         models.Shoulders,
	"biceps":            models.Biceps,
	"triceps":           models.Triceps,
	"abdomen":           models.Core,
	"abdominal":         models.Core,
	"core":              models.Core,
}

// MuscleGroup resolves a free-text muscle name. The second return reports
// whether the name was recognized; callers that need a hard answer treat
// false as "no primary muscle".
func MuscleGroup(s string) (models.MuscleGroup, bool) {
	g, ok := muscleByKey[Normalize(s)]
	return g, ok
}

// levelInfo ties an activity level to its contract tier and per-day
// exercise ceiling.
type levelInfo struct {
	tier    models.Tier
	ceiling int
}

var levelByKey = map[string]levelInfo{
	"idoso":           {models.TierSedentary, 5},
	"sedentario":      {models.TierSedentary, 5},
	"iniciante":       {models.TierModerate, 6},
	"moderado":        {models.TierModerate, 8},
	"intermediario":   {models.TierModerate, 8},
	"avancado":        {models.TierAdvanced, 9},
	"atleta":          {models.TierAthlete, 10},
	"alto rendimento": {models.TierAdvanced, 12},
}

// defaultLevel is the fallback for unrecognized activity levels: Moderado
// semantics, per the documented degradation contract.
var defaultLevel = levelInfo{models.TierModerate, 8}

// Tier maps an activity level to its contract tier. Unknown levels fall
// back to the moderate tier.
func Tier(activityLevel string) models.Tier {
	if info, ok := levelByKey[Normalize(activityLevel)]; ok {
		return info.tier
	}
	return defaultLevel.tier
}

// DayCeiling returns the maximum exercises per day for an activity level.
// Unknown levels fall back to the Moderado ceiling.
func DayCeiling(activityLevel string) int {
	if info, ok := levelByKey[Normalize(activityLevel)]; ok {
		return info.ceiling
	}
	return defaultLevel.ceiling
}

var splitByKey = map[string]models.Split{
	"ppl":               models.SplitPPL,
	"push pull legs":    models.SplitPPL,
	"push/pull/legs":    models.SplitPPL,
	"upper/lower":       models.SplitUpperLower,
	"upper lower":       models.SplitUpperLower,
	"superior inferior": models.SplitUpperLower,
	"full body":         models.SplitFullBody,
	"corpo inteiro":     models.SplitFullBody,
}

// Split resolves a division name. Unknown names fall back to Full Body,
// the only split compatible with every day count.
func Split(s string) models.Split {
	if sp, ok := splitByKey[Normalize(s)]; ok {
		return sp
	}
	return models.SplitFullBody
}

var environmentByKey = map[string]models.Environment{
	"academia": models.EquipGym,
	"casa":     models.EquipHome,
	"ambos":    models.EquipBoth,
	"ar livre": models.EquipOutdoor,
}

// Environment resolves a training location. Empty or unknown input falls
// back to academia, which leaves the catalog unrestricted.
func Environment(s string) models.Environment {
	if env, ok := environmentByKey[Normalize(s)]; ok {
		return env
	}
	return models.EquipGym
}
