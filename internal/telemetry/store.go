// Package telemetry provides the append-only metric stores fed by the
// validator, corrector, and auditor. Stores are bounded in-memory ring
// buffers with best-effort external persistence; recording never fails and
// never blocks the caller's plan-generation request.
package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// maxRecords bounds each store; the oldest record is evicted first.
const maxRecords = 10000

// persistTimeout caps how long a fire-and-forget persistence attempt may run.
const persistTimeout = 5 * time.Second

// Context bag keys shared by producers and the aggregation queries.
const (
	KeyActivityLevel = "activity_level"
	KeyDayType       = "day_type"
	KeyMuscle        = "muscle"
	KeyQualityScore  = "quality_score"
)

// Record is one metric event.
type Record struct {
	Reason  string         `json:"reason"`
	Time    time.Time      `json:"timestamp"`
	Context map[string]any `json:"context,omitempty"`
}

// Sink receives records for external persistence. Failures are logged and
// dropped; the in-memory buffer is the source of truth for aggregation.
type Sink interface {
	PersistMetric(ctx context.Context, store string, rec Record) error
}

// Store is a bounded, concurrency-safe metric buffer.
type Store struct {
	name string
	sink Sink
	log  *slog.Logger

	mu    sync.Mutex
	buf   []Record
	start int
	count int
}

// NewStore creates a store. sink may be nil for in-memory-only operation.
func NewStore(name string, sink Sink, log *slog.Logger) *Store {
	return &Store{name: name, sink: sink, log: log, buf: make([]Record, maxRecords)}
}

// Record appends a metric event. The append is O(1) and always succeeds;
// persistence runs asynchronously and its failure is invisible to callers.
func (s *Store) Record(reason string, bag map[string]any) {
	rec := Record{Reason: reason, Time: time.Now(), Context: bag}

	s.mu.Lock()
	if s.count == len(s.buf) {
		s.buf[s.start] = rec
		s.start = (s.start + 1) % len(s.buf)
	} else {
		s.buf[(s.start+s.count)%len(s.buf)] = rec
		s.count++
	}
	s.mu.Unlock()

	if s.sink != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			defer cancel()
			if err := s.sink.PersistMetric(ctx, s.name, rec); err != nil {
				s.log.Warn("metric persistence failed", "store", s.name, "reason", reason, "error", err)
			}
		}()
	}
}

// snapshot returns the buffered records in chronological order.
func (s *Store) snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = s.buf[(s.start+i)%len(s.buf)]
	}
	return out
}

// Len returns the number of buffered records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Statistics holds aggregate counts over a set of records.
type Statistics struct {
	Total           int            `json:"total"`
	ByReason        map[string]int `json:"byReason"`
	ByActivityLevel map[string]int `json:"byActivityLevel"`
	ByDayType       map[string]int `json:"byDayType"`
	ByMuscle        map[string]int `json:"byMuscle"`
	Recent          []Record       `json:"recent"`
}

// Statistics aggregates the whole buffer and returns the most recent n
// records newest-first.
func (s *Store) Statistics(n int) Statistics {
	return aggregate(s.snapshot(), n)
}

// ByPeriod returns the buffered records within [start, end) in
// chronological order.
func (s *Store) ByPeriod(start, end time.Time) []Record {
	var out []Record
	for _, r := range s.snapshot() {
		if !r.Time.Before(start) && r.Time.Before(end) {
			out = append(out, r)
		}
	}
	return out
}

// Last24Hours aggregates the trailing 24-hour window.
func (s *Store) Last24Hours() Statistics {
	now := time.Now()
	return aggregate(s.ByPeriod(now.Add(-24*time.Hour), now.Add(time.Second)), 10)
}

// AggregatePeriod aggregates a time window.
func (s *Store) AggregatePeriod(start, end time.Time) Statistics {
	return aggregate(s.ByPeriod(start, end), 10)
}

func aggregate(recs []Record, recentN int) Statistics {
	stats := Statistics{
		Total:           len(recs),
		ByReason:        make(map[string]int),
		ByActivityLevel: make(map[string]int),
		ByDayType:       make(map[string]int),
		ByMuscle:        make(map[string]int),
	}
	for _, r := range recs {
		stats.ByReason[r.Reason]++
		if v, ok := r.Context[KeyActivityLevel].(string); ok {
			stats.ByActivityLevel[v]++
		}
		if v, ok := r.Context[KeyDayType].(string); ok {
			stats.ByDayType[v]++
		}
		if v, ok := r.Context[KeyMuscle].(string); ok {
			stats.ByMuscle[v]++
		}
	}
	if recentN > len(recs) {
		recentN = len(recs)
	}
	stats.Recent = make([]Record, 0, recentN)
	for i := len(recs) - 1; i >= len(recs)-recentN; i-- {
		stats.Recent = append(stats.Recent, recs[i])
	}
	return stats
}

// Service owns the three metric stores and is passed by reference into the
// generation pipeline. There is no ambient singleton.
type Service struct {
	Rejections  *Store
	Corrections *Store
	Quality     *Store
}

// NewService creates the rejection, correction, and quality stores sharing
// one persistence sink.
func NewService(sink Sink, log *slog.Logger) *Service {
	return &Service{
		Rejections:  NewStore("rejections", sink, log),
		Corrections: NewStore("corrections", sink, log),
		Quality:     NewStore("quality", sink, log),
	}
}
