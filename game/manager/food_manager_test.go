package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"snake-sim/game/entity"
	"snake-sim/game/types"
)

func newFoodManager(t *testing.T, w, h int, layout types.Layout, seed uint64) *FoodManager {
	t.Helper()
	grid := mustGrid(t, w, h, layout)
	return NewFoodManager(grid, rand.New(rand.NewSource(seed)), NewCollisionManager(grid))
}

func TestGenerateNeverUsesOccupiedCells(t *testing.T) {
	grid := mustGrid(t, 8, 8, types.LayoutBasic)
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.New(rand.NewSource(7)), cm)

	snake := entity.NewSnake(types.Point{X: 4, Y: 4})
	snake.Body = []types.Point{{X: 4, Y: 4}, {X: 3, Y: 4}, {X: 2, Y: 4}, {X: 2, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	enemies := []*entity.Enemy{
		entity.NewEnemy(types.Point{X: 0, Y: 0}, 2),
		entity.NewEnemy(types.Point{X: 7, Y: 7}, 2),
	}

	for i := 0; i < 500; i++ {
		food, err := fm.Generate(snake, enemies)
		require.NoError(t, err)
		assert.True(t, grid.InBounds(food.Pos))
		assert.False(t, grid.IsObstacle(food.Pos))
		assert.False(t, snake.Occupies(food.Pos))
		assert.False(t, cm.IsEnemyCollision(food.Pos, enemies))
	}
}

func TestGenerateAvoidsMazeWalls(t *testing.T) {
	fm := newFoodManager(t, 40, 30, types.LayoutMaze, 11)
	snake := entity.NewSnake(types.Point{X: 20, Y: 15})

	for i := 0; i < 500; i++ {
		food, err := fm.Generate(snake, nil)
		require.NoError(t, err)
		assert.False(t, fm.grid.IsObstacle(food.Pos))
	}
}

func TestGenerateKindDistribution(t *testing.T) {
	fm := newFoodManager(t, 40, 30, types.LayoutBasic, 42)
	snake := entity.NewSnake(types.Point{X: 20, Y: 15})

	const n = 10_000
	counts := map[types.FoodKind]int{}
	for i := 0; i < n; i++ {
		food, err := fm.Generate(snake, nil)
		require.NoError(t, err)
		counts[food.Kind]++
	}

	assert.InDelta(t, 0.80, float64(counts[types.FoodRegular])/n, 0.02)
	assert.InDelta(t, 0.15, float64(counts[types.FoodBonus])/n, 0.02)
	assert.InDelta(t, 0.05, float64(counts[types.FoodSuper])/n, 0.02)
}

func TestGenerateFailsOnSaturatedGrid(t *testing.T) {
	fm := newFoodManager(t, 2, 2, types.LayoutBasic, 3)

	snake := entity.NewSnake(types.Point{X: 1, Y: 0})
	snake.Body = []types.Point{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	_, err := fm.Generate(snake, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoFreeCell)
}

func TestGenerateStampsSpawnTime(t *testing.T) {
	fm := newFoodManager(t, 10, 10, types.LayoutBasic, 1)
	food, err := fm.Generate(entity.NewSnake(types.Point{X: 5, Y: 5}), nil)
	require.NoError(t, err)
	assert.False(t, food.SpawnedAt.IsZero())
	assert.False(t, food.Flash)
}
