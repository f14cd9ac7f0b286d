package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-sim/game/entity"
	"snake-sim/game/manager"
	"snake-sim/game/types"
)

// ErrTerminated is returned by Tick once the run has ended. The engine
// state does not change; the final score rides along in the TickResult.
var ErrTerminated = errors.New("game already terminated")

// State is the engine's lifecycle phase.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Cause names what ended a run.
type Cause string

const (
	CauseNone     Cause = ""
	CauseWall     Cause = "wall"
	CauseObstacle Cause = "obstacle"
	CauseSelf     Cause = "self"
	CauseEnemy    Cause = "enemy"
	// CauseGridFull ends a run when the snake has filled every free cell
	// and no food can be placed.
	CauseGridFull Cause = "grid-full"
)

// TickResult reports what one tick did.
type TickResult struct {
	Tick       uint64
	ScoreDelta int
	Score      int
	Ate        types.FoodKind // zero when nothing was eaten
	Terminated bool
	Cause      Cause
}

// Game is one simulation run. It owns all state exclusively: a fresh game
// is a new instance, never a reset. Single-threaded by design; the host
// drives Tick at whatever rate the difficulty advises.
type Game struct {
	ID     string
	Config Config
	Grid   types.Grid

	Snake   *entity.Snake
	Food    entity.Food
	Enemies []*entity.Enemy

	Score     int
	TickCount uint64

	state State
	cause Cause

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	enemyMgr     *manager.EnemyManager
}

// New validates the configuration and assembles a run: grid with its
// layout, two-cell snake at the center, first food item, and the enemy
// collection when enabled. Placement exhaustion at this stage is a
// configuration error.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	grid, err := types.NewGrid(cfg.GridWidth, cfg.GridHeight, cfg.Layout)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		ID:           uuid.New().String(),
		Config:       cfg,
		Grid:         grid,
		Snake:        entity.NewSnake(grid.Center()),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		enemyMgr:     manager.NewEnemyManager(grid, rng, collisionMgr),
	}

	g.Food, err = g.foodMgr.Generate(g.Snake, nil)
	if err != nil {
		return nil, err
	}

	if cfg.enemiesActive() {
		g.Enemies, err = g.enemyMgr.Place(cfg.EnemyCount, g.Snake, g.Food.Pos)
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Tick advances the simulation one step with the given directional
// intent (types.None keeps the heading). Order: heading, move, wall and
// self checks, food pickup, enemy pursuit, enemy collision check. Once
// terminated, ticks are rejected with ErrTerminated and change nothing.
func (g *Game) Tick(intent types.Direction) (TickResult, error) {
	if g.state == Terminated {
		return TickResult{
			Tick:       g.TickCount,
			Score:      g.Score,
			Terminated: true,
			Cause:      g.cause,
		}, ErrTerminated
	}

	g.TickCount++
	res := TickResult{Tick: g.TickCount}

	g.Snake.SetDirection(intent)
	g.Snake.Advance()

	head := g.Snake.Head()
	switch {
	case !g.Grid.InBounds(head):
		return g.terminate(res, CauseWall), nil
	case g.Grid.IsObstacle(head):
		return g.terminate(res, CauseObstacle), nil
	case g.collisionMgr.IsSelfCollision(g.Snake):
		return g.terminate(res, CauseSelf), nil
	}

	if head == g.Food.Pos {
		res.Ate = g.Food.Kind
		res.ScoreDelta = g.Food.Kind.Value()
		g.Score += res.ScoreDelta
		g.Snake.RequestGrowth()

		food, err := g.foodMgr.Generate(g.Snake, g.Enemies)
		if err != nil {
			// The snake owns the whole field; nothing left to eat.
			res = g.terminate(res, CauseGridFull)
			return res, err
		}
		g.Food = food
	}

	if g.Config.enemiesActive() {
		g.enemyMgr.Advance(g.Snake, g.Enemies)
		if g.collisionMgr.IsEnemyCollision(head, g.Enemies) {
			return g.terminate(res, CauseEnemy), nil
		}
	}

	res.Score = g.Score
	return res, nil
}

func (g *Game) terminate(res TickResult, cause Cause) TickResult {
	g.state = Terminated
	g.cause = cause
	res.Score = g.Score
	res.Terminated = true
	res.Cause = cause
	return res
}

// State returns the lifecycle phase.
func (g *Game) State() State {
	return g.state
}

// TerminalCause returns what ended the run, or CauseNone while running.
func (g *Game) TerminalCause() Cause {
	return g.cause
}

// ToggleFoodFlash flips the flash flag of non-regular food. The host
// calls this on its own blink interval; regular food never flashes.
func (g *Game) ToggleFoodFlash() {
	if g.Food.Kind != types.FoodRegular {
		g.Food.Flash = !g.Food.Flash
	}
}

// Snapshot is the read-only view the host renders from.
type Snapshot struct {
	ID         string
	Tick       uint64
	Body       []types.Point
	Heading    types.Direction
	Food       entity.Food
	Enemies    []types.Point
	Score      int
	Terminated bool
	Cause      Cause
}

// Snapshot copies the current state for the host. The returned slices are
// detached from engine state.
func (g *Game) Snapshot() Snapshot {
	body := make([]types.Point, len(g.Snake.Body))
	copy(body, g.Snake.Body)

	enemies := make([]types.Point, len(g.Enemies))
	for i, e := range g.Enemies {
		enemies[i] = e.Position()
	}

	return Snapshot{
		ID:         g.ID,
		Tick:       g.TickCount,
		Body:       body,
		Heading:    g.Snake.Direction,
		Food:       g.Food,
		Enemies:    enemies,
		Score:      g.Score,
		Terminated: g.state == Terminated,
		Cause:      g.cause,
	}
}
