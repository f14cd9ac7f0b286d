package types

import (
	"fmt"
	"time"
)

// Point is a cell coordinate on the grid. Compared by value.
type Point struct {
	X, Y int
}

// Add returns the point offset by p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Direction is a cardinal movement intent. The zero value None means
// "keep the current heading".
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Offset returns the one-step grid offset for the direction. Up decreases
// Y, Down increases Y (screen coordinates).
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the exact reverse of the direction. None has no
// opposite and maps to itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// FoodKind classifies a food item. The zero value means "no food".
type FoodKind int

const (
	FoodRegular FoodKind = iota + 1
	FoodBonus
	FoodSuper
)

// Value returns the score awarded when the snake eats this kind.
func (k FoodKind) Value() int {
	switch k {
	case FoodRegular:
		return 10
	case FoodBonus:
		return 20
	case FoodSuper:
		return 30
	default:
		return 0
	}
}

func (k FoodKind) String() string {
	switch k {
	case FoodRegular:
		return "regular"
	case FoodBonus:
		return "bonus"
	case FoodSuper:
		return "super"
	default:
		return "none"
	}
}

// Difficulty selects the advisory tick rate for the host's scheduler. The
// engine behaves identically across tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// TicksPerSecond returns the tick rate the host should drive at.
func (d Difficulty) TicksPerSecond() int {
	switch d {
	case DifficultyEasy:
		return 7
	case DifficultyMedium:
		return 15
	case DifficultyHard:
		return 20
	default:
		return 0
	}
}

// TickInterval returns the wall-clock delay between host ticks.
func (d Difficulty) TickInterval() time.Duration {
	tps := d.TicksPerSecond()
	if tps <= 0 {
		return 0
	}
	return time.Second / time.Duration(tps)
}

// Valid reports whether d names a known tier.
func (d Difficulty) Valid() bool {
	return d.TicksPerSecond() > 0
}

const (
	// DefaultEnemyMoveDelay is the number of ticks an enemy waits between
	// moves.
	DefaultEnemyMoveDelay = 2

	// MaxEnemyCount caps how many enemies a run may be configured with.
	MaxEnemyCount = 5
)

// Grid is the static playfield geometry: dimensions plus the obstacle set
// of the selected layout. Immutable after construction.
type Grid struct {
	Width  int
	Height int

	obstacles map[Point]struct{}
}

// NewGrid builds a grid for the given layout. Dimensions must be
// positive; the layout's obstacle cells are guaranteed in bounds.
func NewGrid(width, height int, layout Layout) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	cells, err := layout.obstacleCells(width, height)
	if err != nil {
		return Grid{}, err
	}
	g := Grid{
		Width:     width,
		Height:    height,
		obstacles: make(map[Point]struct{}, len(cells)),
	}
	for _, c := range cells {
		if !g.InBounds(c) {
			return Grid{}, fmt.Errorf("layout %q produced out-of-bounds obstacle %v", layout, c)
		}
		g.obstacles[c] = struct{}{}
	}
	return g, nil
}

// InBounds reports whether p lies within [0,Width)x[0,Height).
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsObstacle reports whether p is a permanent wall cell.
func (g Grid) IsObstacle(p Point) bool {
	_, ok := g.obstacles[p]
	return ok
}

// ObstacleCount returns the number of obstacle cells.
func (g Grid) ObstacleCount() int {
	return len(g.obstacles)
}

// Obstacles returns a copy of the obstacle set, for hosts that draw walls.
func (g Grid) Obstacles() []Point {
	out := make([]Point, 0, len(g.obstacles))
	for p := range g.obstacles {
		out = append(out, p)
	}
	return out
}

// FreeCells returns the number of cells that are in bounds and not walls.
func (g Grid) FreeCells() int {
	return g.Width*g.Height - len(g.obstacles)
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}
