package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/postsblog/backend/internal/constants"
	"github.com/postsblog/backend/internal/utils"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// healthResponse is the body returned by the health endpoint.
type healthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// versionResponse is the body returned by the version endpoint.
type versionResponse struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time,omitempty"`
}

// GenericHandler serves the operational endpoints that have no business
// logic of their own.
type GenericHandler struct {
	db        HealthChecker
	version   string
	buildTime string
}

// NewGenericHandler creates a new GenericHandler.
func NewGenericHandler(db HealthChecker, version, buildTime string) *GenericHandler {
	return &GenericHandler{
		db:        db,
		version:   version,
		buildTime: buildTime,
	}
}

// Health handles GET /health. The endpoint answers 200 when the database
// is reachable and 503 otherwise, so load balancers can route around a
// degraded instance.
func (h *GenericHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Database:  "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.db.HealthCheck(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		utils.JSON(w, constants.StatusServiceUnavailable, resp)
		return
	}

	utils.JSON(w, constants.StatusOK, resp)
}

// Version handles GET /version.
func (h *GenericHandler) Version(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, constants.StatusOK, versionResponse{
		Version:   h.version,
		BuildTime: h.buildTime,
	})
}
