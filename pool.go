package main

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"snake-sim/game"
	"snake-sim/game/manager"
)

// maxRunTicks cuts off runs the agent survives indefinitely.
const maxRunTicks = 200_000

// CauseCutoff marks a run stopped by the tick cap rather than a terminal
// collision.
const CauseCutoff game.Cause = "cutoff"

// RunResult summarizes one finished headless run.
type RunResult struct {
	ID       string
	Score    int
	Ticks    uint64
	Cause    game.Cause
	Duration time.Duration
}

// Pool plays a batch of independent runs concurrently. Every run is its
// own engine instance with its own agent; nothing is shared between them.
type Pool struct {
	cfg    game.Config
	runs   int
	logger *zap.Logger
}

func NewPool(cfg game.Config, runs int, logger *zap.Logger) *Pool {
	return &Pool{cfg: cfg, runs: runs, logger: logger}
}

// Run plays the configured number of runs, at most one per CPU at a time.
// Cancellation lands between ticks, never mid-tick.
func (p *Pool) Run(ctx context.Context) ([]RunResult, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	results := make([]RunResult, p.runs)
	for i := 0; i < p.runs; i++ {
		i := i
		eg.Go(func() error {
			cfg := p.cfg
			if cfg.Seed != 0 {
				// Distinct but reproducible placement per run.
				cfg.Seed += uint64(i)
			}
			res, err := playOne(ctx, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			p.logger.Info("run finished",
				zap.String("id", res.ID),
				zap.Int("score", res.Score),
				zap.Uint64("ticks", res.Ticks),
				zap.String("cause", string(res.Cause)),
				zap.Duration("duration", res.Duration),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func playOne(ctx context.Context, cfg game.Config) (RunResult, error) {
	g, err := game.New(cfg)
	if err != nil {
		return RunResult{}, err
	}
	agent := NewAgent(g.Grid)

	start := time.Now()
	for g.State() == game.Running && g.TickCount < maxRunTicks {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}
		intent := agent.ChooseIntent(g.Snapshot())
		if _, err := g.Tick(intent); err != nil && !errors.Is(err, manager.ErrNoFreeCell) {
			return RunResult{}, err
		}
	}

	cause := g.TerminalCause()
	if g.State() == game.Running {
		cause = CauseCutoff
	}
	return RunResult{
		ID:       g.ID,
		Score:    g.Score,
		Ticks:    g.TickCount,
		Cause:    cause,
		Duration: time.Since(start),
	}, nil
}
