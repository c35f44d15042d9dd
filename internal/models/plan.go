package models

// ExerciseTemplate is an immutable catalog entry. Templates are loaded once
// at process start and are the single source of truth for an exercise's
// role and movement pattern.
type ExerciseTemplate struct {
	Name             string          `json:"name"`
	PrimaryMuscle    MuscleGroup     `json:"primaryMuscle"`
	SecondaryMuscles []MuscleGroup   `json:"secondaryMuscles,omitempty"`
	Equipment        Equipment       `json:"equipment"`
	Role             Role            `json:"role"`
	Pattern          MovementPattern `json:"pattern,omitempty"`
	Unilateral       bool            `json:"unilateral,omitempty"`
	KneeSensitive    bool            `json:"kneeSensitive,omitempty"`
	JointSensitive   bool            `json:"jointSensitive,omitempty"`
}

// Exercise is a plan-instance prescription referencing a catalog template
// by name and primary muscle.
type Exercise struct {
	Name             string        `json:"name"`
	PrimaryMuscle    MuscleGroup   `json:"primaryMuscle"`
	SecondaryMuscles []MuscleGroup `json:"secondaryMuscles,omitempty"`
	Sets             int           `json:"sets"`
	Reps             string        `json:"reps"`
	Rest             string        `json:"rest"`
	Notes            string        `json:"notes,omitempty"`
}

// TrainingDay is one day of the weekly schedule. No two exercises in the
// same day may share a name.
type TrainingDay struct {
	Day       string     `json:"day"`
	Type      DayType    `json:"type"`
	Exercises []Exercise `json:"exercises"`
}

// TrainingPlan is a full weekly schedule. Its length matches the requested
// training-days count and its day types follow the chosen split.
type TrainingPlan struct {
	Overview       string        `json:"overview"`
	Progression    string        `json:"progression"`
	WeeklySchedule []TrainingDay `json:"weeklySchedule"`
}

// MuscleGroupContract declares the structural floor for one muscle group:
// how many structural exercises each tier must carry and which movement
// patterns are mandatory.
type MuscleGroupContract struct {
	Muscle                      MuscleGroup
	MinStructural               map[Tier]int
	RequiredPatterns            []MovementPattern
	AllowedPatterns             []MovementPattern // nil means unrestricted
	AllowUnilateralAsStructural bool
}

// PlanRequest carries everything the generator needs for one run.
type PlanRequest struct {
	UserID           int         `json:"userId"`
	TrainingDays     int         `json:"trainingDays"`
	ActivityLevel    string      `json:"activityLevel"`
	Division         Split       `json:"division"`
	AvailableMinutes int         `json:"availableTimeMinutes"`
	IMC              float64     `json:"imc"`
	Objective        string      `json:"objective"`
	JointLimitations bool        `json:"jointLimitations"`
	KneeLimitations  bool        `json:"kneeLimitations"`
	TrainingLocation Environment `json:"trainingLocation,omitempty"`
}
