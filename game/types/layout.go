package types

import "fmt"

// Layout names a static obstacle arrangement.
type Layout string

const (
	// LayoutBasic is an empty field with no obstacles.
	LayoutBasic Layout = "basic"
	// LayoutMaze is a bordered maze: a rectangular barrier inset five
	// cells from the edges, five alternating vertical interior walls, and
	// three horizontal connector rows.
	LayoutMaze Layout = "maze"
)

// Valid reports whether l names a known layout.
func (l Layout) Valid() bool {
	return l == LayoutBasic || l == LayoutMaze
}

// Reference grid the maze geometry is authored against. Other grid sizes
// get the same shape scaled by integer projection.
const (
	refWidth  = 40
	refHeight = 30
)

func (l Layout) obstacleCells(width, height int) ([]Point, error) {
	switch l {
	case LayoutBasic:
		return nil, nil
	case LayoutMaze:
		return mazeCells(width, height), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", l)
	}
}

// mazeCells generates the maze in 40x30 reference coordinates and
// projects every cell onto the requested grid. Projection keeps all cells
// in bounds; on the reference grid it is the identity.
func mazeCells(width, height int) []Point {
	ref := make(map[Point]struct{})
	add := func(x, y int) { ref[Point{X: x, Y: y}] = struct{}{} }

	// Rectangular barrier inset 5 from each edge.
	for x := 5; x < 35; x++ {
		add(x, 5)
		add(x, 25)
	}
	for y := 5; y <= 25; y++ {
		add(5, y)
		add(35, y)
	}

	// Five vertical walls, alternately offset.
	for _, x := range []int{10, 20, 30} {
		for y := 5; y < 20; y++ {
			add(x, y)
		}
	}
	for _, x := range []int{15, 25} {
		for y := 10; y <= 25; y++ {
			add(x, y)
		}
	}

	// Horizontal connectors every 5 columns at three fixed rows.
	for _, y := range []int{10, 15, 20} {
		for x := 5; x < 35; x += 5 {
			add(x, y)
		}
	}

	scaled := make(map[Point]struct{}, len(ref))
	for p := range ref {
		scaled[Point{X: p.X * width / refWidth, Y: p.Y * height / refHeight}] = struct{}{}
	}
	out := make([]Point, 0, len(scaled))
	for p := range scaled {
		out = append(out, p)
	}
	return out
}
