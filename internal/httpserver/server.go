// internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solve endpoint: POST /solve (solve one puzzle, optional fixed answer).
//   - History endpoints: GET /runs/recent, GET /stats.
//   - Simulation endpoint: POST /simulate (JWT-gated; see routes_sim.go).
//   - Token endpoint: POST /auth/token (see auth.go).
//
// Every completed solve is persisted to the run-history store best effort;
// persistence failures are logged, never surfaced to the client.

package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/parridge/wordlebot/internal/game"
	"github.com/parridge/wordlebot/internal/history"
	"github.com/parridge/wordlebot/internal/solver"
	"github.com/parridge/wordlebot/internal/words"
)

// Server bundles the router, puzzle dimensions, and the history store.
type Server struct {
	r    *chi.Mux
	hist *history.Store
	cfg  solver.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(hist *history.Store, cfg solver.Config) *Server {
	if cfg.WordLength <= 0 {
		cfg.WordLength = 5
	}
	if cfg.MaxGuesses <= 0 {
		cfg.MaxGuesses = 6
	}
	s := &Server{r: chi.NewRouter(), hist: hist, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(60 * time.Second)) // simulations can take a while
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordlebot","endpoints":["/health","POST /solve","POST /simulate","GET /runs/recent","GET /stats","POST /auth/token"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"corpus": words.Stats()})
	})

	// Solving + history
	s.r.Post("/solve", s.handleSolve)
	s.r.Get("/runs/recent", s.handleRecent)
	s.r.Get("/stats", s.handleStats)

	// Auth + gated simulation
	s.r.Post("/auth/token", s.handleToken)
	s.r.With(s.requireAuth()).Post("/simulate", s.handleSimulate)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ SOLVE --------------------------------------

// solveReq/solveRes payloads for POST /solve.
type solveReq struct {
	Solution string `json:"solution"` // optional fixed solution (testing)
}
type solveRes struct {
	Solution string        `json:"solution"`
	Status   solver.Status `json:"status"`
	Attempts int           `json:"attempts"`
	Guesses  []guessRow    `json:"guesses"`
}
type guessRow struct {
	Word   string       `json:"word"`
	Colors []game.Color `json:"colors"`
}

// handleSolve runs the solver against a random corpus word (or a supplied
// one) and returns the full guess history.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	// An empty body is fine (random solution); malformed JSON is not.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	solution := words.RandomSolution()
	if req.Solution != "" {
		parsed, err := game.ParseWord(req.Solution, s.cfg.WordLength)
		if err != nil {
			http.Error(w, `{"error":"invalid_solution"}`, http.StatusBadRequest)
			return
		}
		solution = parsed
	}

	start := time.Now()
	res, err := solver.Run(solution, words.Corpus(), words.Frequencies(), s.cfg)
	if err != nil {
		log.Error().Err(err).Str("solution", string(solution)).Msg("solve failed")
		http.Error(w, `{"error":"solve_failed"}`, http.StatusUnprocessableEntity)
		return
	}

	if err := s.hist.Insert(r.Context(), history.Run{
		Solution:  string(solution),
		Status:    string(res.Status),
		Attempts:  res.Attempts,
		ElapsedMs: time.Since(start).Milliseconds(),
	}); err != nil {
		log.Warn().Err(err).Msg("persist run")
	}

	out := solveRes{Solution: string(solution), Status: res.Status, Attempts: res.Attempts}
	for _, g := range res.Guesses {
		row := guessRow{Word: string(g.Word())}
		for _, cl := range g {
			row.Colors = append(row.Colors, cl.Color)
		}
		out.Guesses = append(out.Guesses, row)
	}
	_ = json.NewEncoder(w).Encode(out)
}

// ------------------------------ HISTORY ------------------------------------

// handleRecent returns the most recent persisted runs (?limit=N, default 20).
func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.hist.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(runs)
}

// handleStats returns aggregate statistics over all persisted runs.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.hist.Aggregate(r.Context())
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(st)
}
