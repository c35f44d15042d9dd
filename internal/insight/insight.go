// Package insight turns aggregated metric windows into threshold-triggered,
// human-readable recommendations. Generation is a pure function over a
// pre-built summary: identical input yields identical insights.
package insight

import (
	"fmt"
	"sort"

	"github.com/claude/planforge/internal/validate"
)

// Insight types and severities.
const (
	TypeProblem = "problem"
	TypeWarning = "warning"
	TypeSuccess = "success"
	TypeInfo    = "info"

	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Trend directions for period-over-period comparison.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// ReasonShare is one entry of the top-rejection-reasons list.
type ReasonShare struct {
	Reason  string  `json:"reason"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// MetricsSummary is the pre-aggregated input to insight generation:
// current-period stats plus optional previous-period comparison.
type MetricsSummary struct {
	Window                string             `json:"window"`
	TotalGenerated        int                `json:"totalGenerated"`
	TotalRejected         int                `json:"totalRejected"`
	TotalCorrected        int                `json:"totalCorrected"`
	ContractViolations    int                `json:"contractViolations"`
	RejectionRate         float64            `json:"rejectionRate"`
	PreviousRejectionRate *float64           `json:"previousRejectionRate,omitempty"`
	RejectionTrend        string             `json:"rejectionTrend"`
	AverageQualityScore   float64            `json:"averageQualityScore"`
	TopReasons            []ReasonShare      `json:"topReasons"`
	RejectionsByLevel     map[string]int     `json:"rejectionsByLevel"`
	RejectionsByDayType   map[string]int     `json:"rejectionsByDayType"`
	RejectionsByMuscle    map[string]int     `json:"rejectionsByMuscle"`
}

// Insight is one actionable recommendation.
type Insight struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// Thresholds for the rule set.
const (
	highRejectionRate    = 0.20
	lowRejectionRate     = 0.05
	rejectionJumpPercent = 0.30
	lowQualityScore      = 70.0
	highQualityScore     = 90.0
	dominantReasonShare  = 0.40
	dominantBucketShare  = 0.50
)

// Generate applies every rule against the summary. Rules are additive;
// several insights can fire at once, in a fixed rule order.
func Generate(s MetricsSummary) []Insight {
	var out []Insight

	if s.RejectionRate > highRejectionRate {
		out = append(out, Insight{
			Type:     TypeProblem,
			Severity: SeverityHigh,
			Title:    "Taxa de rejeicao elevada",
			Description: fmt.Sprintf("%.1f%% dos planos gerados no periodo foram rejeitados (%d de %d).",
				s.RejectionRate*100, s.TotalRejected, s.TotalGenerated),
			Suggestion: "Revise os motivos de rejeicao mais frequentes antes de ajustar o gerador.",
		})
	} else if s.RejectionRate < lowRejectionRate && s.RejectionTrend == TrendDecreasing {
		out = append(out, Insight{
			Type:     TypeSuccess,
			Severity: SeverityLow,
			Title:    "Taxa de rejeicao saudavel",
			Description: fmt.Sprintf("Apenas %.1f%% dos planos foram rejeitados e a tendencia e de queda.",
				s.RejectionRate*100),
		})
	}

	if s.PreviousRejectionRate != nil && *s.PreviousRejectionRate > 0 {
		delta := (s.RejectionRate - *s.PreviousRejectionRate) / *s.PreviousRejectionRate
		if delta > rejectionJumpPercent {
			out = append(out, Insight{
				Type:     TypeWarning,
				Severity: SeverityHigh,
				Title:    "Salto na taxa de rejeicao",
				Description: fmt.Sprintf("A taxa de rejeicao subiu %.0f%% em relacao ao periodo anterior (%.1f%% -> %.1f%%).",
					delta*100, *s.PreviousRejectionRate*100, s.RejectionRate*100),
				Suggestion: "Verifique mudancas recentes no catalogo ou nos contratos de grupo muscular.",
			})
		}
	}

	if s.AverageQualityScore > 0 {
		if s.AverageQualityScore < lowQualityScore {
			out = append(out, Insight{
				Type:     TypeProblem,
				Severity: SeverityMedium,
				Title:    "Qualidade media baixa",
				Description: fmt.Sprintf("O score medio de qualidade dos planos aprovados foi %.0f.",
					s.AverageQualityScore),
				Suggestion: "Muitos avisos de substituicao: amplie as alternativas de exercicio para os filtros ativos.",
			})
		} else if s.AverageQualityScore >= highQualityScore {
			out = append(out, Insight{
				Type:     TypeSuccess,
				Severity: SeverityLow,
				Title:    "Qualidade media alta",
				Description: fmt.Sprintf("O score medio de qualidade dos planos aprovados foi %.0f.",
					s.AverageQualityScore),
			})
		}
	}

	for _, share := range s.TopReasons {
		if share.Percent > dominantReasonShare*100 {
			out = append(out, Insight{
				Type:     TypeWarning,
				Severity: SeverityMedium,
				Title:    fmt.Sprintf("Motivo dominante: %s", share.Reason),
				Description: fmt.Sprintf("O motivo %q responde por %.0f%% das rejeicoes do periodo.",
					share.Reason, share.Percent),
				Suggestion: remediationFor(share.Reason),
			})
		}
	}

	out = append(out, bucketInsights("nivel de atividade", s.RejectionsByLevel)...)
	out = append(out, bucketInsights("tipo de dia", s.RejectionsByDayType)...)
	out = append(out, bucketInsights("grupo muscular", s.RejectionsByMuscle)...)

	return out
}

// bucketInsights flags any dimension bucket holding a disproportionate
// share of rejections. Buckets are visited in sorted key order so output
// is deterministic.
func bucketInsights(dimension string, buckets map[string]int) []Insight {
	total := 0
	for _, n := range buckets {
		total += n
	}
	if total < 5 || len(buckets) < 2 {
		return nil
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []Insight
	for _, k := range keys {
		share := float64(buckets[k]) / float64(total)
		if share > dominantBucketShare {
			out = append(out, Insight{
				Type:     TypeWarning,
				Severity: SeverityMedium,
				Title:    fmt.Sprintf("Rejeicoes concentradas por %s", dimension),
				Description: fmt.Sprintf("O %s %q concentra %.0f%% das rejeicoes do periodo.",
					dimension, k, share*100),
				Suggestion: fmt.Sprintf("Investigue as regras e o catalogo para %s %q.", dimension, k),
			})
		}
	}
	return out
}

// remediationFor maps known rejection reasons to a concrete next step.
func remediationFor(reason string) string {
	switch reason {
	case validate.ReasonTooManyForLevel:
		return "O gerador esta excedendo o teto de exercicios por nivel: revise o preenchimento de volume isolado."
	case validate.ReasonTimeBudget:
		return "Sessoes estimadas acima do tempo disponivel: reveja o modelo de tempo por exercicio ou reduza o teto."
	case validate.ReasonLowerMissingGroups, validate.ReasonFullBodyMissingGroups, validate.ReasonRequiredGroupMissing:
		return "Cobertura de grupos obrigatorios falhando: verifique se o filtro de equipamento nao esvazia o catalogo."
	case validate.ReasonDuplicateExercise:
		return "Exercicios duplicados no mesmo dia: revise a checagem de nomes na selecao."
	case validate.ReasonSecondaryOverflow:
		return "Sobreposicao de musculos secundarios: diversifique os exercicios compostos selecionados."
	case validate.ReasonInvalidOrdering:
		return "Ordem estrutural/isolado invalida: confirme a ordenacao na montagem do dia."
	case validate.ReasonDayCountMismatch, validate.ReasonSplitIncompatible:
		return "Frequencia e divisao incompativeis: valide a entrada antes de gerar."
	default:
		return "Analise os registros recentes deste motivo para identificar o padrao."
	}
}
