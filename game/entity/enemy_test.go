package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-sim/game/types"
)

func mustGrid(t *testing.T, w, h int, layout types.Layout) types.Grid {
	t.Helper()
	g, err := types.NewGrid(w, h, layout)
	require.NoError(t, err)
	return g
}

func TestEnemyCooldownGatesMovement(t *testing.T) {
	grid := mustGrid(t, 20, 20, types.LayoutBasic)
	body := []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}}
	e := NewEnemy(types.Point{X: 5, Y: 10}, 2)

	// Fresh enemy moves immediately, then waits out its delay.
	e.Advance(grid, body)
	assert.Equal(t, types.Point{X: 6, Y: 10}, e.Position())

	e.Advance(grid, body)
	assert.Equal(t, types.Point{X: 6, Y: 10}, e.Position())
	e.Advance(grid, body)
	assert.Equal(t, types.Point{X: 6, Y: 10}, e.Position())

	e.Advance(grid, body)
	assert.Equal(t, types.Point{X: 7, Y: 10}, e.Position())
}

func TestEnemyPrefersLargerAxis(t *testing.T) {
	grid := mustGrid(t, 20, 20, types.LayoutBasic)

	// Head is 5 right, 2 down: horizontal priority, so Right wins.
	e := NewEnemy(types.Point{X: 0, Y: 0}, 0)
	e.Advance(grid, []types.Point{{X: 5, Y: 2}, {X: 4, Y: 2}})
	assert.Equal(t, types.Point{X: 1, Y: 0}, e.Position())

	// Head is 2 right, 5 down: vertical priority, so Down wins.
	e = NewEnemy(types.Point{X: 0, Y: 0}, 0)
	e.Advance(grid, []types.Point{{X: 2, Y: 5}, {X: 2, Y: 4}})
	assert.Equal(t, types.Point{X: 0, Y: 1}, e.Position())
}

func TestEnemyNeverPicksIllegalCells(t *testing.T) {
	grid := mustGrid(t, 40, 30, types.LayoutMaze)
	e := NewEnemy(types.Point{X: 7, Y: 7}, 0)
	body := []types.Point{{X: 8, Y: 7}, {X: 7, Y: 8}, {X: 6, Y: 7}}

	// Both body cells next to the enemy are excluded, and walls block the
	// rest except the head cell itself.
	for i := 0; i < 50; i++ {
		e.Advance(grid, body)
		p := e.Position()
		assert.True(t, grid.InBounds(p))
		assert.False(t, grid.IsObstacle(p))
		assert.NotContains(t, body[1:], p)
	}
}

func TestEnemyMayStepOntoHead(t *testing.T) {
	grid := mustGrid(t, 20, 20, types.LayoutBasic)
	e := NewEnemy(types.Point{X: 6, Y: 10}, 0)
	body := []types.Point{{X: 5, Y: 10}, {X: 4, Y: 10}}

	e.Advance(grid, body)
	assert.Equal(t, types.Point{X: 5, Y: 10}, e.Position())
}

func TestEnemyStaysPutWhenBoxedIn(t *testing.T) {
	grid := mustGrid(t, 20, 20, types.LayoutBasic)
	// Corner cell with both neighbors covered by non-head body cells.
	e := NewEnemy(types.Point{X: 0, Y: 0}, 1)
	body := []types.Point{{X: 10, Y: 10}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	e.Advance(grid, body)
	assert.Equal(t, types.Point{X: 0, Y: 0}, e.Position())

	// Cooldown still reset: the next tick is gated.
	body = []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}}
	e.Advance(grid, body)
	assert.Equal(t, types.Point{X: 0, Y: 0}, e.Position())

	e.Advance(grid, body)
	assert.NotEqual(t, types.Point{X: 0, Y: 0}, e.Position())
}

func TestEnemyClosesDistanceEveryMoveCycle(t *testing.T) {
	grid := mustGrid(t, 40, 30, types.LayoutBasic)
	body := []types.Point{{X: 10, Y: 15}, {X: 9, Y: 15}}
	e := NewEnemy(types.Point{X: 15, Y: 15}, types.DefaultEnemyMoveDelay)

	last := abs(e.Position().X - 10)
	for tick := 0; tick < 30 && last > 0; tick++ {
		e.Advance(grid, body)
		d := abs(e.Position().X - 10)
		assert.LessOrEqual(t, d, last)
		last = d
	}
	assert.Equal(t, 0, last, "enemy should reach the head cell")
	assert.Equal(t, 15, e.Position().Y)
}
