// Package server exposes the simulation engine over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Vilduis/SimulaCredit-sub000/internal/config"
	"github.com/Vilduis/SimulaCredit-sub000/internal/metrics"
	"github.com/Vilduis/SimulaCredit-sub000/internal/repository"
	"github.com/Vilduis/SimulaCredit-sub000/internal/simulation"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/bonus"
	"github.com/Vilduis/SimulaCredit-sub000/pkg/constants"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	cache       *repository.SimulationCache
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the simulation API.
// cache may be nil to disable result caching.
func NewHandler(logger *zap.Logger, cache *repository.SimulationCache, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = repository.NewSimulationCache(nil)
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, cache: cache, maxBodySize: maxBodySize, version: trimmedVersion}

	router := mux.NewRouter()
	router.HandleFunc("/api/simulate", h.handleSimulate).Methods(http.MethodPost)
	router.HandleFunc("/api/config/simulate", h.handleConfigSimulate).Methods(http.MethodPost)
	router.HandleFunc("/api/bonus/bbp", h.handleBBP).Methods(http.MethodGet)
	router.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleSimulate computes the indicators for one JSON loan configuration.
func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodySize))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err))
		metrics.Simulations.WithLabelValues("error").Inc()
		return
	}

	var loan config.LoanConfiguration
	if err := json.Unmarshal(body, &loan); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid loan configuration: %w", err))
		metrics.Simulations.WithLabelValues("error").Inc()
		return
	}

	if err := loan.Validate(); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		metrics.Simulations.WithLabelValues("invalid").Inc()
		return
	}

	if cached, ok := h.cache.Lookup(&loan); ok {
		metrics.CacheHits.WithLabelValues("hit").Inc()
		metrics.Simulations.WithLabelValues("ok").Inc()
		h.writeJSON(w, http.StatusOK, cached)
		return
	}
	metrics.CacheHits.WithLabelValues("miss").Inc()

	result, err := simulation.Simulate(h.logger, &loan)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		metrics.Simulations.WithLabelValues("invalid").Inc()
		return
	}
	h.observeSolvers(result)

	if err := h.cache.Store(&loan, &result); err != nil {
		h.logger.Warn("failed to cache simulation result",
			zap.String("op", "server.handleSimulate"),
			zap.Error(err),
		)
	}

	metrics.Simulations.WithLabelValues("ok").Inc()
	metrics.SimulationDuration.Observe(time.Since(started).Seconds())
	h.writeJSON(w, http.StatusOK, result)
}

// handleConfigSimulate accepts a full YAML configuration upload and runs
// every simulation it declares.
func (h *handler) handleConfigSimulate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodySize))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	var conf config.Configuration
	if err := yaml.Unmarshal(body, &conf); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid configuration: %w", err))
		return
	}

	if err := conf.Validate(); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		metrics.Simulations.WithLabelValues("invalid").Inc()
		return
	}

	results, err := simulation.Run(h.logger, conf)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		metrics.Simulations.WithLabelValues("invalid").Inc()
		return
	}
	for _, result := range results {
		h.observeSolvers(result)
		metrics.Simulations.WithLabelValues("ok").Inc()
	}
	metrics.SimulationDuration.Observe(time.Since(started).Seconds())

	h.writeJSON(w, http.StatusOK, struct {
		Results  []simulation.Result `json:"results"`
		Warnings []string            `json:"warnings,omitempty"`
		Duration string              `json:"duration"`
	}{
		Results:  results,
		Warnings: conf.ValidateConfiguration(),
		Duration: time.Since(started).String(),
	})
}

// handleBBP serves the bonus band table, or a single lookup when a price
// query parameter is present.
func (h *handler) handleBBP(w http.ResponseWriter, r *http.Request) {
	priceParam := r.URL.Query().Get("price")
	if priceParam == "" {
		h.writeJSON(w, http.StatusOK, struct {
			Bands []bonus.Band `json:"bands"`
		}{Bands: bonus.BBPBands()})
		return
	}

	price, err := strconv.ParseFloat(priceParam, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid price %q", priceParam))
		return
	}
	sustainable := r.URL.Query().Get("sustainable") == "true"

	amount, eligibility := bonus.CalculateBBP(price, sustainable)
	h.writeJSON(w, http.StatusOK, struct {
		Amount      float64           `json:"amount"`
		Eligibility bonus.Eligibility `json:"eligibility"`
	}{Amount: amount, Eligibility: eligibility})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, struct {
		Version string `json:"version"`
	}{Version: h.version})
}

func (h *handler) observeSolvers(result simulation.Result) {
	if !result.Indicators.ClientSolver.Converged {
		metrics.SolverExhaustions.WithLabelValues("client").Inc()
	}
	if !result.Indicators.BankSolver.Converged {
		metrics.SolverExhaustions.WithLabelValues("bank").Inc()
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, err error) {
	h.logger.Debug("request rejected",
		zap.String("op", "server.writeError"),
		zap.Int("status", status),
		zap.Error(err),
	)
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
