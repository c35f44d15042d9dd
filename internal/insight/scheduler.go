package insight

import (
	"log/slog"
	"time"

	"github.com/claude/planforge/internal/telemetry"
	"github.com/robfig/cron"
)

// Scheduler periodically builds a daily summary and logs the insights that
// fired, so quality drift surfaces without anyone querying the API.
type Scheduler struct {
	svc  *telemetry.Service
	log  *slog.Logger
	cron *cron.Cron
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(svc *telemetry.Service, log *slog.Logger) *Scheduler {
	return &Scheduler{svc: svc, log: log, cron: cron.New()}
}

// Start registers the periodic job and starts the cron loop. spec is a
// cron expression (e.g. "@daily").
func (s *Scheduler) Start(spec string) error {
	if err := s.cron.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run() {
	summary := BuildSummary(s.svc, WindowDaily, time.Now())
	insights := Generate(summary)
	s.log.Info("insight report",
		"window", summary.Window,
		"generated", summary.TotalGenerated,
		"rejected", summary.TotalRejected,
		"rejection_rate", summary.RejectionRate,
		"insights", len(insights),
	)
	for _, in := range insights {
		s.log.Info("insight", "type", in.Type, "severity", in.Severity, "title", in.Title)
	}
}
