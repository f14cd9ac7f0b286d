package manager

import (
	"fmt"

	"golang.org/x/exp/rand"

	"snake-sim/game/entity"
	"snake-sim/game/types"
)

// EnemyManager places the enemy collection at run start and advances it
// every tick. The collection is sized once and never resized mid-run.
type EnemyManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewEnemyManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *EnemyManager {
	return &EnemyManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Place spawns count enemies on random free cells, each avoiding the
// snake, walls, already-placed enemies, and the cells in avoid (the food
// item). Placement is bounded per enemy; a grid without room surfaces
// ErrNoFreeCell as a setup error.
func (em *EnemyManager) Place(count int, snake *entity.Snake, avoid ...types.Point) ([]*entity.Enemy, error) {
	enemies := make([]*entity.Enemy, 0, count)
	for len(enemies) < count {
		placed := false
		for i := 0; i < placementAttempts(em.grid); i++ {
			pos := types.Point{
				X: em.rng.Intn(em.grid.Width),
				Y: em.rng.Intn(em.grid.Height),
			}
			if !em.collisionMgr.ValidateSpawnPosition(pos, snake, enemies, avoid...) {
				continue
			}
			enemies = append(enemies, entity.NewEnemy(pos, types.DefaultEnemyMoveDelay))
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("enemy %d of %d: %w", len(enemies)+1, count, ErrNoFreeCell)
		}
	}
	return enemies, nil
}

// Advance runs one pursuit tick for every enemy.
func (em *EnemyManager) Advance(snake *entity.Snake, enemies []*entity.Enemy) {
	for _, e := range enemies {
		e.Advance(em.grid, snake.Body)
	}
}
