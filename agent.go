package main

import (
	"snake-sim/game"
	"snake-sim/game/types"
)

// Agent supplies directional intents for headless runs. It is greedy:
// walk toward the food along the axis with the larger offset, never into
// a cell that kills this tick when a safe one exists. It reads only the
// engine snapshot, like any other host would.
type Agent struct {
	grid types.Grid
}

func NewAgent(grid types.Grid) *Agent {
	return &Agent{grid: grid}
}

// ChooseIntent returns the next heading for the snake, or types.None when
// every neighbor cell is fatal.
func (a *Agent) ChooseIntent(snap game.Snapshot) types.Direction {
	head := snap.Body[0]
	for _, dir := range a.preferredDirections(head, snap.Food.Pos) {
		if dir == snap.Heading.Opposite() {
			// The reversal guard would turn this into "straight ahead";
			// skip it so the safety check matches the actual move.
			continue
		}
		if a.safe(head.Add(dir.Offset()), snap) {
			return dir
		}
	}
	return types.None
}

// preferredDirections orders the four headings by how much they close the
// distance to the food: larger-offset axis first, its opposite last.
func (a *Agent) preferredDirections(head, food types.Point) [4]types.Direction {
	dx := food.X - head.X
	dy := food.Y - head.Y

	horizontal := types.Left
	if dx > 0 {
		horizontal = types.Right
	}
	vertical := types.Up
	if dy > 0 {
		vertical = types.Down
	}

	if abs(dx) > abs(dy) {
		return [4]types.Direction{horizontal, vertical, vertical.Opposite(), horizontal.Opposite()}
	}
	return [4]types.Direction{vertical, horizontal, horizontal.Opposite(), vertical.Opposite()}
}

// safe reports whether stepping onto c survives this tick: in bounds, not
// a wall, not a snake cell, not an enemy.
func (a *Agent) safe(c types.Point, snap game.Snapshot) bool {
	if !a.grid.InBounds(c) || a.grid.IsObstacle(c) {
		return false
	}
	for _, b := range snap.Body {
		if b == c {
			return false
		}
	}
	for _, e := range snap.Enemies {
		if e == c {
			return false
		}
	}
	return true
}
