// internal/httpserver/routes_sim.go
//
// POST /simulate: run a batch of concurrent solves and return the
// aggregate. Gated behind requireAuth since large batches are compute-heavy.
// The batch size is capped by SIM_MAX_RUNS (default 10000).

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/parridge/wordlebot/internal/history"
	"github.com/parridge/wordlebot/internal/sim"
	"github.com/parridge/wordlebot/internal/solver"
	"github.com/parridge/wordlebot/internal/words"
)

type simulateReq struct {
	Runs int `json:"runs"`
}

// handleSimulate runs the requested batch and persists every run.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.Runs <= 0 {
		http.Error(w, `{"error":"runs must be positive"}`, http.StatusBadRequest)
		return
	}
	maxRuns, _ := strconv.Atoi(getEnv("SIM_MAX_RUNS", "10000"))
	if maxRuns > 0 && req.Runs > maxRuns {
		http.Error(w, `{"error":"runs exceeds SIM_MAX_RUNS"}`, http.StatusBadRequest)
		return
	}

	summary, err := sim.Run(r.Context(), words.Corpus(), words.Frequencies(), sim.Options{
		Runs:   req.Runs,
		Config: s.cfg,
		OnResult: func(res solver.Result) {
			run := history.Run{
				Solution: string(res.Solution),
				Status:   string(res.Status),
				Attempts: res.Attempts,
			}
			if err := s.hist.Insert(r.Context(), run); err != nil {
				log.Warn().Err(err).Msg("persist simulated run")
			}
		},
	})
	if err != nil {
		log.Error().Err(err).Int("runs", req.Runs).Msg("simulation failed")
		http.Error(w, `{"error":"simulation_failed"}`, http.StatusUnprocessableEntity)
		return
	}

	log.Info().
		Int("runs", summary.Runs).
		Int("wins", summary.Wins).
		Dur("elapsed", time.Duration(summary.ElapsedMs)*time.Millisecond).
		Msg("simulation finished")
	_ = json.NewEncoder(w).Encode(summary)
}
