package manager

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"snake-sim/game/entity"
	"snake-sim/game/types"
)

// ErrNoFreeCell is returned when a bounded placement search cannot find
// an unoccupied cell.
var ErrNoFreeCell = errors.New("no free cell available")

// Cumulative thresholds over one uniform [0,1) draw.
const (
	superFoodChance = 0.05 // 5% super
	bonusFoodChance = 0.20 // next 15% bonus, remaining 80% regular
)

// placementAttempts bounds a random placement search on the given grid.
func placementAttempts(grid types.Grid) int {
	return 4 * grid.Width * grid.Height
}

// FoodManager draws new food items onto free cells.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Generate draws a food item on a uniformly random free cell: not on the
// snake, not a wall, not under an enemy. The search is bounded; a grid
// with no free cell left yields ErrNoFreeCell.
func (fm *FoodManager) Generate(snake *entity.Snake, enemies []*entity.Enemy) (entity.Food, error) {
	for i := 0; i < placementAttempts(fm.grid); i++ {
		pos := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !fm.collisionMgr.ValidateSpawnPosition(pos, snake, enemies) {
			continue
		}
		return entity.Food{
			Pos:       pos,
			Kind:      fm.rollKind(),
			SpawnedAt: time.Now(),
		}, nil
	}
	return entity.Food{}, fmt.Errorf("food placement: %w", ErrNoFreeCell)
}

func (fm *FoodManager) rollKind() types.FoodKind {
	roll := fm.rng.Float64()
	switch {
	case roll < superFoodChance:
		return types.FoodSuper
	case roll < bonusFoodChance:
		return types.FoodBonus
	default:
		return types.FoodRegular
	}
}
