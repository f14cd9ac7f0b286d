package manager

import (
	"snake-sim/game/entity"
	"snake-sim/game/types"
)

// CollisionManager answers occupancy questions against one grid.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{grid: grid}
}

// IsWallCollision reports whether pos is outside the grid or on a wall.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos) || cm.grid.IsObstacle(pos)
}

// IsSelfCollision reports whether the snake's head sits on one of its own
// non-head body cells.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.BodyContains(snake.Head())
}

// IsEnemyCollision reports whether pos coincides with any enemy.
func (cm *CollisionManager) IsEnemyCollision(pos types.Point, enemies []*entity.Enemy) bool {
	for _, e := range enemies {
		if e.Position() == pos {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition reports whether pos is free for placing a new
// food item or enemy: in bounds, off the walls, off the snake (head
// included), off every enemy, and off every extra cell in avoid.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, enemies []*entity.Enemy, avoid ...types.Point) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	if snake != nil && snake.Occupies(pos) {
		return false
	}
	if cm.IsEnemyCollision(pos, enemies) {
		return false
	}
	for _, a := range avoid {
		if a == pos {
			return false
		}
	}
	return true
}
