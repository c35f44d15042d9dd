package mcp

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/claude/planforge/internal/engine"
	"github.com/claude/planforge/internal/insight"
	"github.com/claude/planforge/internal/models"
	"github.com/claude/planforge/internal/telemetry"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a rule-validated weekly training plan. The plan is validated against split, muscle-group, ordering, and time-budget rules before being returned; an unfixable plan is rejected."),
	mcp.WithString("training_days", mcp.Required(), mcp.Description("Number of training days per week (1-7)")),
	mcp.WithString("activity_level", mcp.Required(), mcp.Description("Activity level (e.g. 'sedentario', 'iniciante', 'moderado', 'avancado', 'atleta', 'alto rendimento')")),
	mcp.WithString("division", mcp.Description("Training split. Defaults to Full Body."), mcp.Enum("Push/Pull/Legs", "Upper/Lower", "Full Body")),
	mcp.WithString("available_minutes", mcp.Description("Minutes available per session. Defaults to 60.")),
	mcp.WithString("objective", mcp.Description("Training objective (e.g. 'hipertrofia', 'forca', 'emagrecimento')")),
	mcp.WithString("training_location", mcp.Description("Where the user trains"), mcp.Enum("academia", "casa", "ar_livre")),
	mcp.WithString("imc", mcp.Description("Body mass index, used to moderate volume")),
	mcp.WithString("joint_limitations", mcp.Description("Set to 'true' if the user reports joint limitations")),
	mcp.WithString("knee_limitations", mcp.Description("Set to 'true' if the user reports knee limitations")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List exercise templates, optionally filtered by muscle group and training environment."),
	mcp.WithString("muscle", mcp.Description("Muscle group (e.g. 'quadriceps', 'peitoral', 'costas')")),
	mcp.WithString("environment", mcp.Description("Training environment filter. Defaults to 'academia'."), mcp.Enum("academia", "casa", "ar_livre")),
)

var toolGetRejectionStats = mcp.NewTool("get_rejection_stats",
	mcp.WithDescription("Aggregate plan rejection metrics: totals by reason, activity level, day type, and muscle, plus the most recent events."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Omit to aggregate the whole buffer.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetCorrectionStats = mcp.NewTool("get_correction_stats",
	mcp.WithDescription("Aggregate plan correction metrics: how often generated plans needed same-type-day reconciliation."),
	mcp.WithString("start", mcp.Description("Start date. Omit to aggregate the whole buffer.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetQualityStats = mcp.NewTool("get_quality_stats",
	mcp.WithDescription("Aggregate plan quality metrics: quality score events with soft and flexible constraint-relaxation counts."),
	mcp.WithString("start", mcp.Description("Start date. Omit to aggregate the whole buffer.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetInsights = mcp.NewTool("get_insights",
	mcp.WithDescription("Threshold-driven operational insights over the metric stores: rejection rate, trend, quality, and concentration by level, day type, and muscle."),
	mcp.WithString("window", mcp.Description("Aggregation window. Defaults to 'daily'."), mcp.Enum("daily", "weekly", "monthly")),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	daysStr, err := req.RequireString("training_days")
	if err != nil {
		return mcp.NewToolResultError("training_days parameter is required"), nil
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return mcp.NewToolResultError("training_days must be a number"), nil
	}

	level, err := req.RequireString("activity_level")
	if err != nil {
		return mcp.NewToolResultError("activity_level parameter is required"), nil
	}

	minutes := 60
	if v := req.GetString("available_minutes", ""); v != "" {
		minutes, err = strconv.Atoi(v)
		if err != nil {
			return mcp.NewToolResultError("available_minutes must be a number"), nil
		}
	}

	var imc float64
	if v := req.GetString("imc", ""); v != "" {
		imc, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return mcp.NewToolResultError("imc must be a number"), nil
		}
	}

	planReq := models.PlanRequest{
		UserID:           UserIDFromContext(ctx),
		TrainingDays:     days,
		ActivityLevel:    level,
		Division:         models.Split(req.GetString("division", "")),
		AvailableMinutes: minutes,
		IMC:              imc,
		Objective:        req.GetString("objective", ""),
		JointLimitations: req.GetString("joint_limitations", "") == "true",
		KneeLimitations:  req.GetString("knee_limitations", "") == "true",
		TrainingLocation: models.Environment(req.GetString("training_location", "")),
	}

	res, err := h.eng.GeneratePlan(ctx, planReq)
	if errors.Is(err, engine.ErrPlanRejected) {
		return mcp.NewToolResultError("plan rejected: generated plan failed validation even after correction"), nil
	}
	if err != nil {
		h.log.Error("mcp generate_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(res)
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	env := models.Environment(req.GetString("environment", string(models.EquipGym)))

	if muscle := req.GetString("muscle", ""); muscle != "" {
		result, err := mcp.NewToolResultJSON(h.cat.ForMuscle(models.MuscleGroup(muscle), env))
		if err != nil {
			return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
		}
		return result, nil
	}

	result, err := mcp.NewToolResultJSON(h.cat.All())
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getRejectionStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.storeStats(req, h.eng.Metrics().Rejections)
}

func (h *handlers) getCorrectionStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.storeStats(req, h.eng.Metrics().Corrections)
}

func (h *handlers) getQualityStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.storeStats(req, h.eng.Metrics().Quality)
}

func (h *handlers) storeStats(req mcp.CallToolRequest, store *telemetry.Store) (*mcp.CallToolResult, error) {
	var stats telemetry.Statistics
	if startStr := req.GetString("start", ""); startStr != "" {
		start, err := parseFlexTime(startStr)
		if err != nil {
			return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
		}
		end := time.Now()
		if endStr := req.GetString("end", ""); endStr != "" {
			end, err = parseFlexTime(endStr)
			if err != nil {
				return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
			}
		}
		stats = store.AggregatePeriod(start, end)
	} else {
		stats = store.Statistics(10)
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func (h *handlers) getInsights(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	window := req.GetString("window", insight.WindowDaily)
	summary := insight.BuildSummary(h.eng.Metrics(), window, time.Now())

	result, err := mcp.NewToolResultJSON(map[string]any{
		"summary":  summary,
		"insights": insight.Generate(summary),
	})
	if err != nil {
		return mcp.NewToolResultError("encoding failed: " + err.Error()), nil
	}
	return result, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}
