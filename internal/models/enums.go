package models

// MuscleGroup is a canonical muscle group tag. Values are the pt-BR wire
// strings used by the exercise catalog and the metrics taxonomy.
type MuscleGroup string

const (
	Quadriceps MuscleGroup = "quadriceps"
	Hamstrings MuscleGroup = "posterior-de-coxa"
	Glutes     MuscleGroup = "gluteos"
	Calves     MuscleGroup = "panturrilhas"
	Chest      MuscleGroup = "peitoral"
	Back       MuscleGroup = "costas"
	Shoulders  MuscleGroup = "ombros"
	Biceps     MuscleGroup = "biceps"
	Triceps    MuscleGroup = "triceps"
	Core       MuscleGroup = "abdomen"
)

// MovementPattern categorizes the biomechanical pattern of an exercise.
// Isolation work carries PatternNone.
type MovementPattern string

const (
	PatternNone           MovementPattern = ""
	KneeDominant          MovementPattern = "dominante-de-joelho"
	HipDominant           MovementPattern = "dominante-de-quadril"
	HorizontalPush        MovementPattern = "empurrar-horizontal"
	VerticalPush          MovementPattern = "empurrar-vertical"
	HorizontalPull        MovementPattern = "puxar-horizontal"
	VerticalPull          MovementPattern = "puxar-vertical"
)

// Equipment is the environment an exercise template can be performed in.
type Equipment string

const (
	EquipGym     Equipment = "academia"
	EquipHome    Equipment = "casa"
	EquipBoth    Equipment = "ambos"
	EquipOutdoor Equipment = "ar_livre"
)

// Environment is the user's training location. It shares wire values with
// Equipment; the catalog filter decides which templates are reachable.
type Environment = Equipment

// Role distinguishes compound volume from accessory volume.
type Role string

const (
	RoleStructural Role = "structural"
	RoleIsolated   Role = "isolated"
)

// Split is the weekly organizational scheme.
type Split string

const (
	SplitPPL        Split = "PPL"
	SplitUpperLower Split = "Upper/Lower"
	SplitFullBody   Split = "Full Body"
)

// DayType labels a single training day within a split.
type DayType string

const (
	DayUpper    DayType = "Upper"
	DayLower    DayType = "Lower"
	DayPush     DayType = "Push"
	DayPull     DayType = "Pull"
	DayLegs     DayType = "Legs"
	DayFullBody DayType = "Full Body"
)

// Tier is the contract tier bucket an activity level maps into. Contracts
// key their structural minimums by tier, not by raw activity-level string.
type Tier string

const (
	TierSedentary Tier = "sedentary"
	TierModerate  Tier = "moderate"
	TierAthlete   Tier = "athlete"
	TierAdvanced  Tier = "advanced"
)
