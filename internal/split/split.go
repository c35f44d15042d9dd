// Package split encodes the weekly organizational schemes: which day types
// a division produces for a given frequency, and which muscle groups each
// day type requires or forbids. Both the generator and the validator read
// from these tables.
package split

import (
	"github.com/claude/planforge/internal/models"
)

// Layout returns the ordered day types for a division at the given
// frequency. ok is false when the division does not support that frequency.
func Layout(division models.Split, trainingDays int) ([]models.DayType, bool) {
	if trainingDays < 1 || trainingDays > 7 {
		return nil, false
	}
	switch division {
	case models.SplitFullBody:
		out := make([]models.DayType, trainingDays)
		for i := range out {
			out[i] = models.DayFullBody
		}
		return out, true
	case models.SplitUpperLower:
		if trainingDays < 2 || trainingDays > 6 {
			return nil, false
		}
		out := make([]models.DayType, trainingDays)
		for i := range out {
			if i%2 == 0 {
				out[i] = models.DayUpper
			} else {
				out[i] = models.DayLower
			}
		}
		return out, true
	case models.SplitPPL:
		switch trainingDays {
		case 3:
			return []models.DayType{models.DayPush, models.DayPull, models.DayLegs}, true
		case 6:
			return []models.DayType{
				models.DayPush, models.DayPull, models.DayLegs,
				models.DayPush, models.DayPull, models.DayLegs,
			}, true
		}
		return nil, false
	}
	return nil, false
}

// Infer maps a plan's day types back to the division they belong to.
// Mixed or unknown day types yield ok == false.
func Infer(days []models.TrainingDay) (models.Split, bool) {
	var sawPPL, sawUL, sawFB bool
	for _, d := range days {
		switch d.Type {
		case models.DayPush, models.DayPull, models.DayLegs:
			sawPPL = true
		case models.DayUpper, models.DayLower:
			sawUL = true
		case models.DayFullBody:
			sawFB = true
		default:
			return "", false
		}
	}
	switch {
	case sawPPL && !sawUL && !sawFB:
		return models.SplitPPL, true
	case sawUL && !sawPPL && !sawFB:
		return models.SplitUpperLower, true
	case sawFB && !sawPPL && !sawUL:
		return models.SplitFullBody, true
	}
	return "", false
}

// lowerGroups is the leg trio that satisfies a lower-body day.
var lowerGroups = []models.MuscleGroup{models.Quadriceps, models.Hamstrings, models.Glutes}

// RequiredGroups returns the muscle groups a day type must touch. For
// Lower/Legs days the requirement is "at least one of"; AnyOf reports that.
func RequiredGroups(dt models.DayType) (groups []models.MuscleGroup, anyOf bool) {
	switch dt {
	case models.DayLower, models.DayLegs:
		return lowerGroups, true
	case models.DayUpper:
		return []models.MuscleGroup{models.Chest, models.Back}, false
	case models.DayPush:
		return []models.MuscleGroup{models.Chest, models.Shoulders}, false
	case models.DayPull:
		return []models.MuscleGroup{models.Back}, false
	case models.DayFullBody:
		return []models.MuscleGroup{models.Chest, models.Back, models.Shoulders}, false
	}
	return nil, false
}

// FullBodyNeedsLegs: a Full Body day must additionally touch at least one
// leg group on top of its required upper groups.
func FullBodyNeedsLegs() []models.MuscleGroup {
	return lowerGroups
}

// ForbiddenGroups returns the muscle groups that must not appear on a day
// type. Full Body days forbid nothing.
func ForbiddenGroups(dt models.DayType) []models.MuscleGroup {
	switch dt {
	case models.DayUpper, models.DayPush, models.DayPull:
		return []models.MuscleGroup{models.Quadriceps, models.Hamstrings, models.Glutes, models.Calves}
	case models.DayLower, models.DayLegs:
		return []models.MuscleGroup{models.Chest, models.Back, models.Shoulders, models.Biceps, models.Triceps}
	}
	return nil
}

// PlannedGroups returns the muscle groups the generator targets for a day
// type, in selection order: contracted groups first, then accessory work.
func PlannedGroups(dt models.DayType) []models.MuscleGroup {
	switch dt {
	case models.DayUpper:
		return []models.MuscleGroup{models.Chest, models.Back, models.Shoulders, models.Biceps, models.Triceps}
	case models.DayLower, models.DayLegs:
		return []models.MuscleGroup{models.Quadriceps, models.Hamstrings, models.Glutes, models.Calves, models.Core}
	case models.DayPush:
		return []models.MuscleGroup{models.Chest, models.Shoulders, models.Triceps}
	case models.DayPull:
		return []models.MuscleGroup{models.Back, models.Biceps, models.Core}
	case models.DayFullBody:
		return []models.MuscleGroup{models.Quadriceps, models.Hamstrings, models.Chest, models.Back, models.Shoulders, models.Core}
	}
	return nil
}
