package entity

import (
	"snake-sim/game/types"
)

// pursuitOrder is the fixed candidate evaluation order; it also breaks
// score ties.
var pursuitOrder = [4]types.Direction{types.Up, types.Down, types.Left, types.Right}

// Enemy chases the snake head with a greedy axis-priority heuristic, one
// step every moveDelay+1 ticks.
type Enemy struct {
	pos       types.Point
	cooldown  int
	moveDelay int
}

// NewEnemy creates an enemy at pos moving every moveDelay ticks.
func NewEnemy(pos types.Point, moveDelay int) *Enemy {
	return &Enemy{pos: pos, moveDelay: moveDelay}
}

// Position returns the enemy's current cell.
func (e *Enemy) Position() types.Point {
	return e.pos
}

// MoveDelay returns the configured ticks between moves.
func (e *Enemy) MoveDelay() int {
	return e.moveDelay
}

// Advance runs one tick of pursuit. While the cooldown is positive it
// only decrements. Otherwise the enemy steps to the legal neighbor cell
// that best closes the distance to the snake head, preferring the axis
// with the larger offset. A candidate is legal when it is in bounds, not
// an obstacle, and not a non-head snake cell; the head itself is fair
// game, which is what lets the engine detect the kill on its next check.
// Enemies do not avoid each other and may share a cell.
func (e *Enemy) Advance(grid types.Grid, snakeBody []types.Point) {
	if e.cooldown > 0 {
		e.cooldown--
		return
	}
	e.cooldown = e.moveDelay

	head := snakeBody[0]
	dx := head.X - e.pos.X
	dy := head.Y - e.pos.Y
	horizontalPriority := abs(dx) > abs(dy)

	var best types.Point
	bestScore := 0
	found := false
	for _, dir := range pursuitOrder {
		c := e.pos.Add(dir.Offset())
		if !grid.InBounds(c) || grid.IsObstacle(c) {
			continue
		}
		if containsPoint(snakeBody[1:], c) {
			continue
		}

		mdx := c.X - e.pos.X
		mdy := c.Y - e.pos.Y
		helpsHorizontal := (dx > 0 && mdx > 0) || (dx < 0 && mdx < 0)
		helpsVertical := (dy > 0 && mdy > 0) || (dy < 0 && mdy < 0)

		var score int
		if horizontalPriority {
			score = axisScore(helpsHorizontal, 2) + axisScore(helpsVertical, 1)
		} else {
			score = axisScore(helpsVertical, 2) + axisScore(helpsHorizontal, 1)
		}
		if !found || score < bestScore {
			best = c
			bestScore = score
			found = true
		}
	}
	if found {
		e.pos = best
	}
}

func axisScore(helps bool, weight int) int {
	if helps {
		return -weight
	}
	return weight
}

func containsPoint(points []types.Point, p types.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
