package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/vyevs/ansi"

	"github.com/parridge/wordlebot/internal/game"
	"github.com/parridge/wordlebot/internal/history"
	"github.com/parridge/wordlebot/internal/httpserver"
	"github.com/parridge/wordlebot/internal/sim"
	"github.com/parridge/wordlebot/internal/solver"
	"github.com/parridge/wordlebot/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		solveWord string
		simRuns   int
	)
	flag.StringVar(&solveWord, "solve", "", `solve one puzzle in the terminal ("random" or a solution word)`)
	flag.IntVar(&simRuns, "simulate", 0, "run N simulations and print summary statistics")
	flag.Parse()

	cfg := solver.Config{
		WordLength: getEnvInt("WORD_LENGTH", 5),
		MaxGuesses: getEnvInt("MAX_GUESSES", 6),
	}

	if err := words.Init(cfg.WordLength); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	switch {
	case solveWord != "":
		if err := solveOnce(solveWord, cfg); err != nil {
			log.Fatal().Err(err).Msg("solve failed")
		}
	case simRuns > 0:
		if err := simulate(simRuns, cfg); err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
	default:
		serve(cfg)
	}
}

// serve runs the HTTP API until the listener fails.
func serve(cfg solver.Config) {
	hist, err := history.Open(getEnv("DB_PATH", "./data/wordlebot.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open run history")
	}
	defer hist.Close()

	srv := httpserver.New(hist, cfg)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Int("corpus", words.Stats()).Msg("starting wordlebot")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// solveOnce solves a single puzzle and prints each guess with colored
// letters, the way the board looks in the real game.
func solveOnce(answer string, cfg solver.Config) error {
	solution := words.RandomSolution()
	if answer != "random" {
		parsed, err := game.ParseWord(answer, cfg.WordLength)
		if err != nil {
			return err
		}
		solution = parsed
	}
	fmt.Printf("solution: %s\n\n", solution)

	res, err := solver.Run(solution, words.Corpus(), words.Frequencies(), cfg)
	if err != nil {
		return err
	}
	for _, g := range res.Guesses {
		fmt.Println(colorize(g))
	}
	if res.Status == solver.StatusWon {
		fmt.Printf("\nsolved in %d guesses\n", res.Attempts)
	} else {
		fmt.Printf("\nout of guesses after %d attempts\n", res.Attempts)
	}
	return nil
}

// colorize renders one evaluated guess with ANSI foreground colors.
func colorize(g game.Guess) string {
	out := make([]byte, 0, 16*len(g))
	for _, cl := range g {
		out = append(out, ansi.FGColorName(colorName(cl.Color))...)
		out = append(out, cl.Letter)
	}
	out = append(out, ansi.Clear...)
	return string(out)
}

func colorName(c game.Color) string {
	switch c {
	case game.Green:
		return "green"
	case game.Yellow:
		return "yellow"
	default:
		return "light gray"
	}
}

// simulate runs n concurrent solves with a progress bar and prints the
// aggregate statistics.
func simulate(n int, cfg solver.Config) error {
	bar := progressbar.Default(int64(n))
	summary, err := sim.Run(context.Background(), words.Corpus(), words.Frequencies(), sim.Options{
		Runs:     n,
		Config:   cfg,
		OnResult: func(solver.Result) { _ = bar.Add(1) },
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nRan %d simulation(s) in %v.\n", summary.Runs, summary.Elapsed)
	fmt.Printf("Won %d/%d (%.2f%%)\n", summary.Wins, summary.Runs, 100*summary.WinRate())
	if summary.Wins > 0 {
		fmt.Printf("Average number of guesses (for winning games): %.2f\n", summary.MeanWin)
	}
	for attempts, count := range summary.Histogram {
		if count > 0 {
			fmt.Printf("  %d guesses: %d\n", attempts, count)
		}
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the integer value of k or def if unset/invalid.
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
