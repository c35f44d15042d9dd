package insight

import (
	"strings"
	"testing"

	"github.com/claude/planforge/internal/validate"
)

func hasTitle(insights []Insight, prefix string) bool {
	for _, in := range insights {
		if strings.HasPrefix(in.Title, prefix) {
			return true
		}
	}
	return false
}

// TestGenerateEmptySummary verifies a quiet period produces no insights.
func TestGenerateEmptySummary(t *testing.T) {
	got := Generate(MetricsSummary{Window: WindowDaily, RejectionTrend: TrendStable})
	if len(got) != 0 {
		t.Errorf("empty summary produced %d insights: %v", len(got), got)
	}
}

// TestGenerateHighRejectionRate verifies the 20% threshold fires a
// high-severity problem.
func TestGenerateHighRejectionRate(t *testing.T) {
	s := MetricsSummary{
		TotalGenerated: 10, TotalRejected: 3,
		RejectionRate:  0.3,
		RejectionTrend: TrendStable,
	}
	got := Generate(s)
	if len(got) != 1 {
		t.Fatalf("got %d insights, want 1: %v", len(got), got)
	}
	if got[0].Type != TypeProblem || got[0].Severity != SeverityHigh {
		t.Errorf("insight = %s/%s, want problem/high", got[0].Type, got[0].Severity)
	}
	if !strings.Contains(got[0].Description, "30.0%") {
		t.Errorf("description %q should carry the rate", got[0].Description)
	}
}

// TestGenerateHealthyRate verifies a low and falling rate fires a success,
// and a low but stable rate stays silent.
func TestGenerateHealthyRate(t *testing.T) {
	s := MetricsSummary{
		TotalGenerated: 100, TotalRejected: 2,
		RejectionRate:  0.02,
		RejectionTrend: TrendDecreasing,
	}
	got := Generate(s)
	if len(got) != 1 || got[0].Type != TypeSuccess {
		t.Fatalf("decreasing: got %v, want one success", got)
	}

	s.RejectionTrend = TrendStable
	if got := Generate(s); len(got) != 0 {
		t.Errorf("stable low rate should stay silent, got %v", got)
	}
}

// TestGenerateRejectionJump verifies a >30% period-over-period increase
// fires a warning.
func TestGenerateRejectionJump(t *testing.T) {
	prev := 0.10
	s := MetricsSummary{
		TotalGenerated: 20, TotalRejected: 3,
		RejectionRate:         0.15,
		PreviousRejectionRate: &prev,
		RejectionTrend:        TrendIncreasing,
	}
	got := Generate(s)
	if !hasTitle(got, "Salto na taxa de rejeicao") {
		t.Fatalf("want a jump warning, got %v", got)
	}

	// A 20% bump stays under the threshold.
	prev2 := 0.10
	s.RejectionRate = 0.12
	s.PreviousRejectionRate = &prev2
	if got := Generate(s); hasTitle(got, "Salto na taxa de rejeicao") {
		t.Errorf("12%% over 10%% should not fire, got %v", got)
	}
}

// TestGenerateQualityThresholds verifies the average-quality rules.
func TestGenerateQualityThresholds(t *testing.T) {
	cases := []struct {
		avg      float64
		wantType string
	}{
		{65, TypeProblem},
		{70, ""},
		{89, ""},
		{90, TypeSuccess},
		{0, ""},
	}
	for _, c := range cases {
		s := MetricsSummary{RejectionTrend: TrendStable, AverageQualityScore: c.avg}
		got := Generate(s)
		switch c.wantType {
		case "":
			if len(got) != 0 {
				t.Errorf("avg %.0f: got %v, want none", c.avg, got)
			}
		default:
			if len(got) != 1 || got[0].Type != c.wantType {
				t.Errorf("avg %.0f: got %v, want one %s", c.avg, got, c.wantType)
			}
		}
	}
}

// TestGenerateDominantReason verifies a reason holding over 40% of
// rejections fires with its remediation.
func TestGenerateDominantReason(t *testing.T) {
	s := MetricsSummary{
		TotalGenerated: 20, TotalRejected: 2,
		RejectionRate:  0.1,
		RejectionTrend: TrendStable,
		TopReasons: []ReasonShare{
			{Reason: validate.ReasonTooManyForLevel, Count: 11, Percent: 55},
			{Reason: validate.ReasonTimeBudget, Count: 6, Percent: 30},
		},
	}
	got := Generate(s)
	if len(got) != 1 {
		t.Fatalf("got %d insights, want 1: %v", len(got), got)
	}
	if !strings.Contains(got[0].Title, validate.ReasonTooManyForLevel) {
		t.Errorf("title %q should name the reason", got[0].Title)
	}
	if got[0].Suggestion != remediationFor(validate.ReasonTooManyForLevel) {
		t.Errorf("suggestion %q does not match the remediation table", got[0].Suggestion)
	}
}

// TestBucketInsights verifies the concentration rule and its minimum-sample
// guards.
func TestBucketInsights(t *testing.T) {
	// Under 5 records: silent.
	if got := bucketInsights("nivel de atividade", map[string]int{"a": 3, "b": 1}); got != nil {
		t.Errorf("small sample fired: %v", got)
	}
	// Single bucket: silent regardless of volume.
	if got := bucketInsights("nivel de atividade", map[string]int{"a": 50}); got != nil {
		t.Errorf("single bucket fired: %v", got)
	}
	// Dominant bucket fires and names it.
	got := bucketInsights("tipo de dia", map[string]int{"Lower": 6, "Upper": 1})
	if len(got) != 1 {
		t.Fatalf("got %v, want one warning", got)
	}
	if !strings.Contains(got[0].Description, `"Lower"`) {
		t.Errorf("description %q should name the bucket", got[0].Description)
	}
	// An even split stays silent.
	if got := bucketInsights("tipo de dia", map[string]int{"Lower": 4, "Upper": 4}); got != nil {
		t.Errorf("even split fired: %v", got)
	}
}

// TestGenerateDeterministic verifies identical summaries yield identical
// insight lists.
func TestGenerateDeterministic(t *testing.T) {
	prev := 0.05
	s := MetricsSummary{
		TotalGenerated: 10, TotalRejected: 3,
		RejectionRate:         0.3,
		PreviousRejectionRate: &prev,
		RejectionTrend:        TrendIncreasing,
		AverageQualityScore:   65,
		TopReasons:            []ReasonShare{{Reason: validate.ReasonTimeBudget, Count: 3, Percent: 100}},
		RejectionsByLevel:     map[string]int{"iniciante": 5, "moderado": 1, "avancado": 1},
		RejectionsByDayType:   map[string]int{"Lower": 6, "Upper": 1},
	}
	a, b := Generate(s), Generate(s)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("insight %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	if len(a) < 5 {
		t.Errorf("expected rate, jump, quality, reason, and bucket insights, got %d: %v", len(a), a)
	}
}
