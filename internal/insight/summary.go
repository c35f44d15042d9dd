package insight

import (
	"sort"
	"time"

	"github.com/claude/planforge/internal/audit"
	"github.com/claude/planforge/internal/telemetry"
)

// Window sizes accepted by the reporting surface.
const (
	WindowDaily   = "daily"
	WindowWeekly  = "weekly"
	WindowMonthly = "monthly"
)

// windowDuration maps a window name to its span. Unknown names fall back
// to daily.
func windowDuration(window string) time.Duration {
	switch window {
	case WindowWeekly:
		return 7 * 24 * time.Hour
	case WindowMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// BuildSummary aggregates the current window and the window before it from
// the metric stores. Quality records count as accepted plans, so
// totalGenerated = accepted + rejected-run count approximated by rejection
// records; the reporting surface treats these as eventually consistent.
func BuildSummary(svc *telemetry.Service, window string, now time.Time) MetricsSummary {
	span := windowDuration(window)
	curStart := now.Add(-span)
	prevStart := now.Add(-2 * span)

	cur := svc.Rejections.AggregatePeriod(curStart, now)
	prev := svc.Rejections.AggregatePeriod(prevStart, curStart)
	corrections := svc.Corrections.ByPeriod(curStart, now)
	quality := svc.Quality.ByPeriod(curStart, now)

	// The auditor logs contract drift on the rejections store, but an
	// audited plan was already accepted and served. Keep those records out
	// of the rejection counts or every drift report inflates the rate.
	violations := cur.ByReason[audit.ReasonContractViolation]

	accepted := len(quality)
	rejected := cur.Total - violations
	generated := accepted + rejected

	s := MetricsSummary{
		Window:              window,
		TotalGenerated:      generated,
		TotalRejected:       rejected,
		TotalCorrected:      len(corrections),
		ContractViolations:  violations,
		RejectionsByLevel:   cur.ByActivityLevel,
		RejectionsByDayType: cur.ByDayType,
		RejectionsByMuscle:  cur.ByMuscle,
		RejectionTrend:      TrendStable,
	}
	if generated > 0 {
		s.RejectionRate = float64(rejected) / float64(generated)
	}

	prevQuality := svc.Quality.ByPeriod(prevStart, curStart)
	prevRejected := prev.Total - prev.ByReason[audit.ReasonContractViolation]
	prevGenerated := len(prevQuality) + prevRejected
	if prevGenerated > 0 {
		rate := float64(prevRejected) / float64(prevGenerated)
		s.PreviousRejectionRate = &rate
		switch {
		case s.RejectionRate > rate:
			s.RejectionTrend = TrendIncreasing
		case s.RejectionRate < rate:
			s.RejectionTrend = TrendDecreasing
		}
	}

	if accepted > 0 {
		total := 0
		for _, rec := range quality {
			if v, ok := rec.Context[telemetry.KeyQualityScore].(int); ok {
				total += v
			}
		}
		s.AverageQualityScore = float64(total) / float64(accepted)
	}

	s.TopReasons = topReasons(rejectionReasons(cur.ByReason), rejected, 5)
	return s
}

// rejectionReasons strips auditor records from a reason histogram so the
// top-reasons ranking only covers plans the validator refused.
func rejectionReasons(byReason map[string]int) map[string]int {
	if _, ok := byReason[audit.ReasonContractViolation]; !ok {
		return byReason
	}
	out := make(map[string]int, len(byReason))
	for reason, count := range byReason {
		if reason == audit.ReasonContractViolation {
			continue
		}
		out[reason] = count
	}
	return out
}

// topReasons converts the reason counts to a ranked share list. Ties are
// broken by reason name so the ranking is stable.
func topReasons(byReason map[string]int, total, n int) []ReasonShare {
	if total == 0 {
		return nil
	}
	out := make([]ReasonShare, 0, len(byReason))
	for reason, count := range byReason {
		out = append(out, ReasonShare{
			Reason:  reason,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
