package catalog

import (
	"github.com/claude/planforge/internal/models"
)

// defaultTemplates is the built-in exercise table. Display names are pt-BR.
// Structural entries always declare a movement pattern; isolated entries
// carry PatternNone.
var defaultTemplates = []models.ExerciseTemplate{
	// Quadríceps
	{Name: "Agachamento Livre", PrimaryMuscle: models.Quadriceps, SecondaryMuscles: []models.MuscleGroup{models.Glutes, models.Core}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.KneeDominant, KneeSensitive: true},
	{Name: "Leg Press 45", PrimaryMuscle: models.Quadriceps, SecondaryMuscles: []models.MuscleGroup{models.Glutes}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.KneeDominant, KneeSensitive: true},
	{Name: "Agachamento Goblet", PrimaryMuscle: models.Quadriceps, SecondaryMuscles: []models.MuscleGroup{models.Glutes}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.KneeDominant},
	{Name: "Agachamento com Peso Corporal", PrimaryMuscle: models.Quadriceps, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.KneeDominant},
	{Name: "Agachamento Bulgaro", PrimaryMuscle: models.Quadriceps, SecondaryMuscles: []models.MuscleGroup{models.Glutes}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.KneeDominant, Unilateral: true, KneeSensitive: true},
	{Name: "Afundo", PrimaryMuscle: models.Quadriceps, SecondaryMuscles: []models.MuscleGroup{models.Glutes}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.KneeDominant, Unilateral: true, KneeSensitive: true},
	{Name: "Cadeira Extensora", PrimaryMuscle: models.Quadriceps, Equipment: models.EquipGym, Role: models.RoleIsolated},
	{Name: "Agachamento na Parede", PrimaryMuscle: models.Quadriceps, Equipment: models.EquipHome, Role: models.RoleIsolated},

	// Posterior de coxa
	{Name: "Levantamento Terra Romeno", PrimaryMuscle: models.Hamstrings, SecondaryMuscles: []models.MuscleGroup{models.Glutes, models.Back}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.HipDominant},
	{Name: "Stiff com Halteres", PrimaryMuscle: models.Hamstrings, SecondaryMuscles: []models.MuscleGroup{models.Glutes}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.HipDominant},
	{Name: "Bom Dia", PrimaryMuscle: models.Hamstrings, SecondaryMuscles: []models.MuscleGroup{models.Glutes}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.HipDominant},
	{Name: "Levantamento Terra Unilateral", PrimaryMuscle: models.Hamstrings, SecondaryMuscles: []models.MuscleGroup{models.Glutes}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.HipDominant, Unilateral: true},
	{Name: "Mesa Flexora", PrimaryMuscle: models.Hamstrings, Equipment: models.EquipGym, Role: models.RoleIsolated},
	{Name: "Flexora em Pe", PrimaryMuscle: models.Hamstrings, Equipment: models.EquipGym, Role: models.RoleIsolated},

	// Glúteos
	{Name: "Elevacao Pelvica", PrimaryMuscle: models.Glutes, SecondaryMuscles: []models.MuscleGroup{models.Hamstrings}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.HipDominant},
	{Name: "Agachamento Sumo", PrimaryMuscle: models.Glutes, SecondaryMuscles: []models.MuscleGroup{models.Quadriceps}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.HipDominant},
	{Name: "Afundo Caminhando", PrimaryMuscle: models.Glutes, SecondaryMuscles: []models.MuscleGroup{models.Quadriceps}, Equipment: models.EquipOutdoor, Role: models.RoleStructural, Pattern: models.HipDominant, Unilateral: true, KneeSensitive: true},
	{Name: "Abducao de Quadril", PrimaryMuscle: models.Glutes, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Coice de Gluteo", PrimaryMuscle: models.Glutes, Equipment: models.EquipBoth, Role: models.RoleIsolated},

	// Panturrilhas
	{Name: "Panturrilha em Pe", PrimaryMuscle: models.Calves, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Panturrilha Sentado", PrimaryMuscle: models.Calves, Equipment: models.EquipGym, Role: models.RoleIsolated},
	{Name: "Panturrilha no Degrau", PrimaryMuscle: models.Calves, Equipment: models.EquipOutdoor, Role: models.RoleIsolated, Unilateral: true},

	// Peitoral
	{Name: "Supino Reto", PrimaryMuscle: models.Chest, SecondaryMuscles: []models.MuscleGroup{models.Triceps, models.Shoulders}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.HorizontalPush},
	{Name: "Supino Inclinado", PrimaryMuscle: models.Chest, SecondaryMuscles: []models.MuscleGroup{models.Triceps, models.Shoulders}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.HorizontalPush},
	{Name: "Supino com Halteres", PrimaryMuscle: models.Chest, SecondaryMuscles: []models.MuscleGroup{models.Triceps}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.HorizontalPush},
	{Name: "Flexao de Braco", PrimaryMuscle: models.Chest, SecondaryMuscles: []models.MuscleGroup{models.Triceps, models.Core}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.HorizontalPush},
	{Name: "Flexao Declinada", PrimaryMuscle: models.Chest, SecondaryMuscles: []models.MuscleGroup{models.Shoulders}, Equipment: models.EquipHome, Role: models.RoleStructural, Pattern: models.HorizontalPush},
	{Name: "Mergulho nas Paralelas", PrimaryMuscle: models.Chest, SecondaryMuscles: []models.MuscleGroup{models.Triceps}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.VerticalPush, JointSensitive: true},
	{Name: "Crucifixo", PrimaryMuscle: models.Chest, Equipment: models.EquipGym, Role: models.RoleIsolated},
	{Name: "Crossover", PrimaryMuscle: models.Chest, Equipment: models.EquipGym, Role: models.RoleIsolated},

	// Costas
	{Name: "Remada Curvada", PrimaryMuscle: models.Back, SecondaryMuscles: []models.MuscleGroup{models.Biceps}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.HorizontalPull},
	{Name: "Remada Unilateral com Halter", PrimaryMuscle: models.Back, SecondaryMuscles: []models.MuscleGroup{models.Biceps}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.HorizontalPull, Unilateral: true},
	{Name: "Remada Baixa", PrimaryMuscle: models.Back, SecondaryMuscles: []models.MuscleGroup{models.Biceps}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.HorizontalPull},
	{Name: "Remada Invertida", PrimaryMuscle: models.Back, SecondaryMuscles: []models.MuscleGroup{models.Biceps, models.Core}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.HorizontalPull},
	{Name: "Barra Fixa", PrimaryMuscle: models.Back, SecondaryMuscles: []models.MuscleGroup{models.Biceps}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.VerticalPull},
	{Name: "Puxada Alta", PrimaryMuscle: models.Back, SecondaryMuscles: []models.MuscleGroup{models.Biceps}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.VerticalPull},
	{Name: "Face Pull", PrimaryMuscle: models.Back, SecondaryMuscles: []models.MuscleGroup{models.Shoulders}, Equipment: models.EquipGym, Role: models.RoleIsolated},
	{Name: "Encolhimento", PrimaryMuscle: models.Back, Equipment: models.EquipGym, Role: models.RoleIsolated},

	// Ombros
	{Name: "Desenvolvimento Militar", PrimaryMuscle: models.Shoulders, SecondaryMuscles: []models.MuscleGroup{models.Triceps}, Equipment: models.EquipGym, Role: models.RoleStructural, Pattern: models.VerticalPush, JointSensitive: true},
	{Name: "Desenvolvimento com Halteres", PrimaryMuscle: models.Shoulders, SecondaryMuscles: []models.MuscleGroup{models.Triceps}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.VerticalPush},
	{Name: "Flexao Pique", PrimaryMuscle: models.Shoulders, SecondaryMuscles: []models.MuscleGroup{models.Triceps, models.Core}, Equipment: models.EquipBoth, Role: models.RoleStructural, Pattern: models.VerticalPush},
	{Name: "Elevacao Lateral", PrimaryMuscle: models.Shoulders, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Elevacao Frontal", PrimaryMuscle: models.Shoulders, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Crucifixo Inverso", PrimaryMuscle: models.Shoulders, Equipment: models.EquipGym, Role: models.RoleIsolated},

	// Bíceps
	{Name: "Rosca Direta", PrimaryMuscle: models.Biceps, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Rosca Martelo", PrimaryMuscle: models.Biceps, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Rosca Scott", PrimaryMuscle: models.Biceps, Equipment: models.EquipGym, Role: models.RoleIsolated},

	// Tríceps
	{Name: "Triceps Testa", PrimaryMuscle: models.Triceps, Equipment: models.EquipGym, Role: models.RoleIsolated},
	{Name: "Triceps Corda", PrimaryMuscle: models.Triceps, Equipment: models.EquipGym, Role: models.RoleIsolated},
	{Name: "Mergulho no Banco", PrimaryMuscle: models.Triceps, SecondaryMuscles: []models.MuscleGroup{models.Chest}, Equipment: models.EquipBoth, Role: models.RoleIsolated, JointSensitive: true},
	{Name: "Triceps Frances", PrimaryMuscle: models.Triceps, Equipment: models.EquipBoth, Role: models.RoleIsolated},

	// Abdômen
	{Name: "Prancha", PrimaryMuscle: models.Core, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Prancha Lateral", PrimaryMuscle: models.Core, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Abdominal Infra", PrimaryMuscle: models.Core, Equipment: models.EquipBoth, Role: models.RoleIsolated},
	{Name: "Elevacao de Pernas", PrimaryMuscle: models.Core, Equipment: models.EquipBoth, Role: models.RoleIsolated},
}
