package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/planforge/internal/engine"
	"github.com/claude/planforge/internal/gate"
	"github.com/claude/planforge/internal/insight"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req models.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if s.credits != nil {
		decision, err := s.credits.Consume(req.UserID, time.Now())
		if errors.Is(err, gate.ErrNoCredits) {
			writeJSON(w, http.StatusPaymentRequired, map[string]string{"error": "no generation credits"})
			return
		}
		if err != nil {
			s.log.Error("credit check failed", "user", req.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if !decision.Allowed {
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"error":      "package credit on cooldown",
				"retryAfter": decision.RetryAfter.String(),
			})
			return
		}
	}

	result, err := s.engine.GeneratePlan(r.Context(), req)
	if errors.Is(err, engine.ErrPlanRejected) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "plan storage disabled"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan ID"})
		return
	}

	row, err := s.db.GetPlan(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleQueryPlans(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "plan storage disabled"})
		return
	}

	userID, err := strconv.Atoi(r.URL.Query().Get("user"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user parameter required"})
		return
	}

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rows, err := s.db.QueryPlans(r.Context(), userID, start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGrantCredits(w http.ResponseWriter, r *http.Request) {
	if s.credits == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "credit gate disabled"})
		return
	}

	var body struct {
		UserID         int `json:"userId"`
		PackageCredits int `json:"packageCredits"`
		SingleCredits  int `json:"singleCredits"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if err := s.credits.Grant(body.UserID, body.PackageCredits, body.SingleCredits); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreditBalance(w http.ResponseWriter, r *http.Request) {
	if s.credits == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "credit gate disabled"})
		return
	}

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return
	}

	pkg, single, err := s.credits.Balance(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"packageCredits": pkg,
		"singleCredits":  single,
	})
}

func (s *Server) handleRejectionStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.storeStats(r, s.engine.Metrics().Rejections.Statistics, s.engine.Metrics().Rejections.AggregatePeriod))
}

func (s *Server) handleCorrectionStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.storeStats(r, s.engine.Metrics().Corrections.Statistics, s.engine.Metrics().Corrections.AggregatePeriod))
}

func (s *Server) handleQualityStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.storeStats(r, s.engine.Metrics().Quality.Statistics, s.engine.Metrics().Quality.AggregatePeriod))
}

// storeStats aggregates one metric store. Without a start parameter the
// whole buffer is aggregated; with one, only the requested window.
func (s *Server) storeStats(r *http.Request,
	whole func(int) telemetry.Statistics,
	period func(time.Time, time.Time) telemetry.Statistics,
) telemetry.Statistics {
	if r.URL.Query().Get("start") == "" {
		n := 10
		if v, err := strconv.Atoi(r.URL.Query().Get("recent")); err == nil && v > 0 {
			n = v
		}
		return whole(n)
	}
	start, end, err := parseTimeRange(r)
	if err != nil {
		return whole(10)
	}
	return period(start, end)
}

func (s *Server) handleMetricsSummary(w http.ResponseWriter, r *http.Request) {
	window := r.URL.Query().Get("window")
	if window == "" {
		window = insight.WindowDaily
	}
	summary := insight.BuildSummary(s.engine.Metrics(), window, time.Now())
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	window := r.URL.Query().Get("window")
	if window == "" {
		window = insight.WindowDaily
	}
	summary := insight.BuildSummary(s.engine.Metrics(), window, time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"summary":  summary,
		"insights": insight.Generate(summary),
	})
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	if muscle := r.URL.Query().Get("muscle"); muscle != "" {
		g := models.MuscleGroup(muscle)
		env := models.Environment(r.URL.Query().Get("environment"))
		if env == "" {
			env = models.EquipGym
		}
		writeJSON(w, http.StatusOK, s.cat.ForMuscle(g, env))
		return
	}
	writeJSON(w, http.StatusOK, s.cat.All())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 7 days
		end = time.Now()
		start = end.AddDate(0, 0, -7)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
