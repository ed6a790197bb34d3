// SPDX-License-Identifier: MIT

// Package server exposes the tissue-loading engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/decolab/limits"
	"github.com/katalvlaran/decolab/profile"
	"github.com/katalvlaran/decolab/tissue"
	"github.com/katalvlaran/decolab/walker"
)

// Settings are the server-wide calculation defaults.
// GFLow and GFHigh apply to setups that omit them.
type Settings struct {
	StepSeconds   float64
	StopIncrement float64
	GFLow         float64
	GFHigh        float64
	MaxBodyBytes  int64
}

// Handler serves the decolab API.
type Handler struct {
	logger   *slog.Logger
	settings Settings
}

// NewHandler creates a Handler. Zero settings fall back to the library
// defaults; a nil logger discards.
func NewHandler(logger *slog.Logger, s Settings) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.StepSeconds <= 0 {
		s.StepSeconds = walker.DefaultStep * 60
	}
	if s.StopIncrement <= 0 {
		s.StopIncrement = limits.DefaultStopIncrement
	}
	if s.MaxBodyBytes <= 0 {
		s.MaxBodyBytes = 1 << 20
	}
	return &Handler{logger: logger, settings: s}
}

// RegisterRoutes registers the API routes on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/loading", h.Loading).Methods(http.MethodPost)
	api.HandleFunc("/compartments", h.Compartments).Methods(http.MethodGet)
}

// DiveResult is one dive of a LoadingResponse.
type DiveResult struct {
	Name            string                   `json:"name,omitempty"`
	Result          *walker.Result           `json:"result"`
	Ceilings        []limits.Ceiling         `json:"ceilings"`
	Supersaturation []limits.Supersaturation `json:"supersaturation"`
	Summary         walker.Summary           `json:"summary"`
}

// LoadingResponse is the body of POST /api/v1/loading.
type LoadingResponse struct {
	RequestID string       `json:"requestId"`
	Variant   string       `json:"variant"`
	GFLow     float64      `json:"gfLow"`
	GFHigh    float64      `json:"gfHigh"`
	Dives     []DiveResult `json:"dives"`
}

// CompartmentsResponse is the body of GET /api/v1/compartments.
type CompartmentsResponse struct {
	Variant      string               `json:"variant"`
	Version      uint64               `json:"version"`
	Compartments []tissue.Compartment `json:"compartments"`
}

// Loading calculates every dive of a JSON DiveSetup
// POST /api/v1/loading?variant=B
func (h *Handler) Loading(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r.Context(), h.logger)

	table, err := h.table(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Unknown variant", err)
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.settings.MaxBodyBytes)
	setup, err := profile.DecodeSetupWith(body, "json", profile.DiveSetup{
		GFLow:  h.settings.GFLow,
		GFHigh: h.settings.GFHigh,
	})
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid dive setup", err)
		return
	}

	results, err := walker.CalculateSetup(r.Context(), setup,
		walker.WithTable(table),
		walker.WithStepSeconds(h.settings.StepSeconds),
		walker.WithLogger(logger))
	if errors.Is(err, walker.ErrProfileTooLong) {
		respondError(w, http.StatusBadRequest, "Profile too long", err)
		return
	}
	if err != nil {
		logger.Error("calculation failed", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "Calculation failed", err)
		return
	}

	resp := LoadingResponse{
		RequestID: RequestIDFrom(r.Context()),
		Variant:   table.Variant().String(),
		GFLow:     setup.GFLow,
		GFHigh:    setup.GFHigh,
		Dives:     make([]DiveResult, len(results)),
	}
	for i, res := range results {
		name := setup.Dives[i].Name
		summary, err := walker.Summarize(name, res, setup.GFLow, h.settings.StopIncrement)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Calculation failed", err)
			return
		}
		resp.Dives[i] = DiveResult{
			Name:            name,
			Result:          res,
			Ceilings:        res.Ceilings(setup.GFLow),
			Supersaturation: res.Supersaturation(),
			Summary:         summary,
		}
	}

	logger.Info("loading calculated",
		slog.Int("dives", len(results)),
		slog.String("variant", resp.Variant))
	respondJSON(w, http.StatusOK, resp)
}

// Compartments returns a coefficient table
// GET /api/v1/compartments?variant=A
func (h *Handler) Compartments(w http.ResponseWriter, r *http.Request) {
	table, err := h.table(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Unknown variant", err)
		return
	}

	respondJSON(w, http.StatusOK, CompartmentsResponse{
		Variant:      table.Variant().String(),
		Version:      table.Version(),
		Compartments: table.Compartments(),
	})
}

// Health reports liveness
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"variant": tissue.Active().Variant().String(),
	})
}

// table resolves the variant query parameter; empty means the active table.
func (h *Handler) table(r *http.Request) (*tissue.Table, error) {
	name := strings.TrimSpace(r.URL.Query().Get("variant"))
	if name == "" {
		return tissue.Active(), nil
	}
	v, err := tissue.ParseVariant(name)
	if err != nil {
		return nil, err
	}
	return tissue.NewTable(v)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	respondJSON(w, status, body)
}

func loggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return fallback
}
