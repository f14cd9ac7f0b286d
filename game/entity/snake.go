package entity

import (
	"snake-sim/game/types"
)

// Snake is the player actor: an ordered run of cells, head at index 0.
type Snake struct {
	Body      []types.Point
	Direction types.Direction

	growthPending bool
}

// NewSnake creates a snake of two cells at startPos, heading right, with
// the single tail cell trailing to the left.
func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{
			startPos,
			{X: startPos.X - 1, Y: startPos.Y},
		},
		Direction: types.Right,
	}
}

// Head returns the cell at index 0.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection applies a heading intent. The exact reverse of the current
// heading is rejected as a no-op; None keeps the current heading. Every
// other direction is accepted, including repeats.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.None || dir == s.Direction.Opposite() {
		return
	}
	s.Direction = dir
}

// Advance moves the snake one step along its heading. The tail cell is
// dropped unless growth is pending, in which case the body keeps it and
// the flag clears (net length +1).
func (s *Snake) Advance() {
	newHead := s.Head().Add(s.Direction.Offset())
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if s.growthPending {
		s.growthPending = false
	} else {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// RequestGrowth marks the snake to keep its tail on the next Advance.
// Idempotent while already pending.
func (s *Snake) RequestGrowth() {
	s.growthPending = true
}

// GrowthPending reports whether the next Advance will grow the snake.
func (s *Snake) GrowthPending() bool {
	return s.growthPending
}

// Occupies reports whether any body cell (head included) equals p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// BodyContains reports whether a non-head body cell equals p.
func (s *Snake) BodyContains(p types.Point) bool {
	for _, b := range s.Body[1:] {
		if b == p {
			return true
		}
	}
	return false
}
