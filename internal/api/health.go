// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

// Package api contains the health check handlers for liveness and readiness probes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/rmonteiro/meliponario/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool. Nil when the service runs
	// in permanent offline mode (no DATABASE_URL configured).
	CheckDatabase func() error

	// CheckFallback pings the Redis journal. The journal is what makes
	// offline writes durable, so its failure is a real readiness failure.
	CheckFallback func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// readiness handles GET /ready (Readiness probe).
//
// An unreachable PostgreSQL backend degrades the service but does not
// fail readiness: every read still works from the embedded dataset and
// writes land in the journal. Only a dead journal takes the service out
// of rotation.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	results := make([]checkResult, 0, 2)
	isDegraded := false
	isReady := true

	// Check PostgreSQL (optional backend)
	if handler.dependencies.CheckDatabase != nil {
		result := checkResult{Name: "postgres", IsOK: true}
		if err := handler.dependencies.CheckDatabase(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isDegraded = true
			handler.logger.Warn("readiness_check_degraded", slog.String("dependency", "postgres"), slog.Any("error", err))
		}
		results = append(results, result)
	} else {
		results = append(results, checkResult{Name: "postgres", IsOK: false, Error: "offline mode: no backend configured"})
		isDegraded = true
	}

	// Check Redis journal (required)
	if handler.dependencies.CheckFallback != nil {
		result := checkResult{Name: "redis", IsOK: true}
		if err := handler.dependencies.CheckFallback(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", "redis"), slog.Any("error", err))
		}
		results = append(results, result)
	}

	responseStatus := "ready"
	if isDegraded {
		responseStatus = "degraded"
	}
	if !isReady {
		responseStatus = "not_ready"
		// We set the header manually because respond.OK always sends 200
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		writer.WriteHeader(http.StatusServiceUnavailable)
	}

	respond.OK(writer, map[string]any{
		"status": responseStatus,
		"checks": results,
	})
}
