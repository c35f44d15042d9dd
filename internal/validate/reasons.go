package validate

// Rejection reason taxonomy. These are wire values recorded on the
// rejection metrics store and consumed by the reporting surface; renaming
// one breaks downstream aggregation.
const (
	ReasonInvalidSchedule       = "weeklySchedule_invalido"
	ReasonDayCountMismatch      = "numero_dias_incompativel"
	ReasonSplitIncompatible     = "divisao_incompativel_frequencia"
	ReasonEmptyDay              = "dia_sem_exercicios"
	ReasonTooManyForLevel       = "excesso_exercicios_nivel"
	ReasonMissingPrimaryMuscle  = "exercicio_sem_primaryMuscle"
	ReasonDuplicateExercise     = "exercicio_duplicado_no_dia"
	ReasonForbiddenMuscle       = "grupo_muscular_proibido"
	ReasonLowerMissingGroups    = "lower_sem_grupos_obrigatorios"
	ReasonFullBodyMissingGroups = "full_body_sem_grupos_obrigatorios"
	ReasonRequiredGroupMissing  = "grupo_obrigatorio_ausente"
	ReasonInvalidOrdering       = "ordem_exercicios_invalida"
	ReasonTooManyPrimary        = "excesso_exercicios_musculo_primario"
	ReasonBadDistribution       = "distribuicao_inteligente_invalida"
	ReasonSecondaryOverflow     = "secondaryMuscles_excede_limite"
	ReasonTimeBudget            = "tempo_treino_excede_disponivel"
)
