package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"snake-sim/game"
	"snake-sim/stats"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	runs := flag.Int("runs", 1, "number of runs to simulate")
	seed := flag.Uint64("seed", 0, "placement RNG seed override (0 = clock)")
	dbPath := flag.String("db", "data/snake.db", "score database path (empty disables persistence)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			logger.Fatal("open config", zap.Error(err))
		}
		cfg, err = game.LoadConfig(f)
		f.Close()
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	// A broken score store must never stop a game from being played.
	var store *stats.Store
	if *dbPath != "" {
		store, err = stats.Open(*dbPath)
		if err != nil {
			logger.Warn("score store unavailable", zap.Error(err))
			store = nil
		} else {
			defer store.Close()
		}
	}

	prevHigh := 0
	if store != nil {
		if prevHigh, err = store.HighScore(); err != nil {
			logger.Warn("read high score", zap.Error(err))
		}
	}

	logger.Info("starting batch",
		zap.Int("runs", *runs),
		zap.Int("grid_width", cfg.GridWidth),
		zap.Int("grid_height", cfg.GridHeight),
		zap.String("layout", string(cfg.Layout)),
		zap.String("difficulty", string(cfg.Difficulty)),
		zap.Int("enemies", cfg.EnemyCount),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := NewPool(cfg, *runs, logger).Run(ctx)
	if err != nil {
		logger.Fatal("batch failed", zap.Error(err))
	}

	best := 0
	for _, r := range results {
		if r.Score > best {
			best = r.Score
		}
		if store == nil {
			continue
		}
		rec := stats.RunRecord{
			ID:         r.ID,
			Score:      r.Score,
			Ticks:      r.Ticks,
			Cause:      string(r.Cause),
			Layout:     string(cfg.Layout),
			Difficulty: string(cfg.Difficulty),
			Duration:   r.Duration,
		}
		if err := store.RecordRun(rec); err != nil {
			logger.Warn("record run", zap.Error(err))
		}
	}

	logger.Info("batch complete",
		zap.Int("runs", len(results)),
		zap.Int("best_score", best),
		zap.Int("previous_high", prevHigh),
		zap.Bool("new_high_score", best > prevHigh),
	)
}
