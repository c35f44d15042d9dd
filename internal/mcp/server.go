package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/engine"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(eng *engine.Engine, cat *catalog.Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PlanForge", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PlanForge workout plan server. Generate rule-validated training plans, inspect the exercise catalog, and query rejection, correction, and quality metrics. All plans are scoped to the authenticated user."),
	)

	h := &handlers{eng: eng, cat: cat, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetRejectionStats, Handler: h.getRejectionStats},
		server.ServerTool{Tool: toolGetCorrectionStats, Handler: h.getCorrectionStats},
		server.ServerTool{Tool: toolGetQualityStats, Handler: h.getQualityStats},
		server.ServerTool{Tool: toolGetInsights, Handler: h.getInsights},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resMetricsToday, Handler: h.metricsToday},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	eng *engine.Engine
	cat *catalog.Catalog
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"planforge://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercise templates with muscle groups, movement patterns, roles, and equipment requirements"),
	mcp.WithMIMEType("application/json"),
)

var resMetricsToday = mcp.NewResource(
	"planforge://metrics_today",
	"Today's Metrics",
	mcp.WithResourceDescription("Rejection, correction, and quality aggregates for the trailing 24 hours"),
	mcp.WithMIMEType("application/json"),
)

// --- Resource handlers ---

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(h.cat.All())
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) metricsToday(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	svc := h.eng.Metrics()
	summary := map[string]any{
		"rejections":  svc.Rejections.Last24Hours(),
		"corrections": svc.Corrections.Last24Hours(),
		"quality":     svc.Quality.Last24Hours(),
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
