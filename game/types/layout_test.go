package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLayoutIsEmpty(t *testing.T) {
	g, err := NewGrid(40, 30, LayoutBasic)
	require.NoError(t, err)
	assert.Equal(t, 0, g.ObstacleCount())
}

func TestMazeLayoutReferenceGeometry(t *testing.T) {
	g, err := NewGrid(40, 30, LayoutMaze)
	require.NoError(t, err)

	// Border barrier.
	assert.True(t, g.IsObstacle(Point{5, 5}))
	assert.True(t, g.IsObstacle(Point{34, 5}))
	assert.True(t, g.IsObstacle(Point{5, 25}))
	assert.True(t, g.IsObstacle(Point{35, 25}))
	assert.True(t, g.IsObstacle(Point{35, 12}))

	// Vertical interior walls, alternately offset.
	assert.True(t, g.IsObstacle(Point{10, 7}))
	assert.True(t, g.IsObstacle(Point{10, 19}))
	assert.False(t, g.IsObstacle(Point{10, 22}))
	assert.True(t, g.IsObstacle(Point{15, 22}))
	assert.False(t, g.IsObstacle(Point{15, 7}))
	assert.True(t, g.IsObstacle(Point{30, 6}))

	// Horizontal connector rows at every fifth column.
	assert.True(t, g.IsObstacle(Point{25, 10}))
	assert.True(t, g.IsObstacle(Point{30, 15}))
	assert.True(t, g.IsObstacle(Point{10, 20}))
	assert.False(t, g.IsObstacle(Point{11, 15}))

	// Open field outside the barrier and inside corridors.
	assert.False(t, g.IsObstacle(Point{0, 0}))
	assert.False(t, g.IsObstacle(Point{2, 15}))
	assert.False(t, g.IsObstacle(Point{7, 7}))
}

func TestMazeLayoutScalesInBounds(t *testing.T) {
	for _, dims := range [][2]int{{40, 30}, {80, 60}, {20, 16}, {13, 11}} {
		g, err := NewGrid(dims[0], dims[1], LayoutMaze)
		require.NoError(t, err, "grid %v", dims)
		assert.Greater(t, g.ObstacleCount(), 0, "grid %v", dims)
		for _, p := range g.Obstacles() {
			assert.True(t, g.InBounds(p), "grid %v obstacle %v", dims, p)
		}
	}
}
