// Package handlers exposes the solver and the simulator over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/kelly"
	"github.com/katalvlaran/kelly/simulate"
)

// Handler contains dependencies for HTTP handlers.
type Handler struct {
	solveOpts   kelly.Options
	simRounds   int
	simBankroll float64
	logger      zerolog.Logger
}

// NewHandler creates a new handler with the service-level solver options
// and simulation defaults.
func NewHandler(solveOpts kelly.Options, simRounds int, simBankroll float64, logger zerolog.Logger) *Handler {
	return &Handler{
		solveOpts:   solveOpts,
		simRounds:   simRounds,
		simBankroll: simBankroll,
		logger:      logger,
	}
}

// HealthCheck returns service health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "kellyd",
	})
}

// SolveSingle solves the Kelly fraction for one bet.
func (h *Handler) SolveSingle(w http.ResponseWriter, r *http.Request) {
	var req SingleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	f, err := kelly.Single(req.Returns, req.Probabilities, h.solveOpts)
	if err != nil {
		h.respondSolverError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, fractionResponse(f))
}

// SolveDouble solves the joint Kelly fractions for two independent bets.
func (h *Handler) SolveDouble(w http.ResponseWriter, r *http.Request) {
	var req DoubleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	f1, f2, err := kelly.Double(req.Returns1, req.Returns2, req.Probabilities1, req.Probabilities2, h.solveOpts)
	if err != nil {
		h.respondSolverError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, DoubleResponse{
		Bet1: fractionResponse(f1),
		Bet2: fractionResponse(f2),
	})
}

// Simulate plays a bankroll trajectory at a caller-chosen fraction.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	opts := simulate.Options{
		Rounds:          req.Rounds,
		InitialBankroll: req.InitialBankroll,
		Seed:            req.Seed,
	}
	if opts.Rounds == 0 {
		opts.Rounds = h.simRounds
	}
	if opts.InitialBankroll == 0 {
		opts.InitialBankroll = h.simBankroll
	}

	path, err := simulate.Trajectory(req.Returns, req.Probabilities, req.Fraction, opts)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("simulation error: %v", err))
		return
	}

	h.respondJSON(w, http.StatusOK, SimulateResponse{
		Path:  path,
		Final: path[len(path)-1],
	})
}

// respondSolverError maps solver sentinels onto HTTP status codes:
// malformed input is the caller's fault (400), non-convergence means the
// input was well-formed but numerically intractable (422).
func (h *Handler) respondSolverError(w http.ResponseWriter, err error) {
	if errors.Is(err, kelly.ErrNonConvergence) {
		h.logger.Warn().Err(err).Msg("solver did not converge")
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.respondError(w, http.StatusBadRequest, err.Error())
}

// fractionResponse renders a solved fraction for the wire.
func fractionResponse(f kelly.Fraction) FractionResponse {
	return FractionResponse{
		Fraction: f.Value,
		Bound:    f.Bound.String(),
		Sentinel: f.Sentinel(),
	}
}

// RequestLogger returns a middleware logging one structured line per
// request.
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	}
}

// respondJSON writes a JSON response. The status line is already on the
// wire when encoding runs, so an encode failure can only be logged, not
// reported to the client.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn().Err(err).Msg("response encode failed")
	}
}

// respondError writes an error response.
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{
		"error": message,
	})
}
