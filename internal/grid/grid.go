package grid

import "fmt"

// Cell is a position on the grid. Equality is structural: two Cells with
// equal X and Y are the same cell, and Cell is comparable so it can be
// used directly as a map key.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// cardinalOffsets are the four unit moves, in a fixed, stable order. The
// order determines clause term order in the encoder but never its
// semantics.
var cardinalOffsets = [4]Cell{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Grid is an immutable description of world geometry: a W x H rectangle
// of cells with a fixed set of obstacles. A Grid is safe for concurrent
// read-only use once constructed.
type Grid struct {
	width, height int
	obstacles     map[Cell]struct{}
}

// New constructs a Grid of the given width and height with the given
// obstacle cells. It returns ErrNonPositiveDimension if width or height is
// less than 1, or ErrObstacleOutOfBounds if any obstacle falls outside
// the grid.
func New(width, height int, obstacles ...Cell) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrNonPositiveDimension
	}
	g := &Grid{
		width:     width,
		height:    height,
		obstacles: make(map[Cell]struct{}, len(obstacles)),
	}
	for _, o := range obstacles {
		if !g.InBounds(o) {
			return nil, fmt.Errorf("%w: %s", ErrObstacleOutOfBounds, o)
		}
		g.obstacles[o] = struct{}{}
	}
	return g, nil
}

// Width returns the grid's width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's height.
func (g *Grid) Height() int { return g.height }

// NumObstacles returns the number of obstacle cells.
func (g *Grid) NumObstacles() int { return len(g.obstacles) }

// String renders the grid's dimensions and obstacle count, never the
// obstacle set itself (which is unbounded in size).
func (g *Grid) String() string {
	return fmt.Sprintf("grid %dx%d (%d obstacles)", g.width, g.height, len(g.obstacles))
}

// InBounds reports whether c lies within [0,Width) x [0,Height).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsObstacle reports whether c is a static obstacle. Out-of-bounds cells
// are never obstacles by this definition; callers that care about bounds
// should check InBounds separately.
func (g *Grid) IsObstacle(c Cell) bool {
	_, ok := g.obstacles[c]
	return ok
}

// IsFree reports whether c is in bounds and not an obstacle.
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && !g.IsObstacle(c)
}

// Obstacles returns every obstacle cell, in row-major order.
func (g *Grid) Obstacles() []Cell {
	obs := make([]Cell, 0, len(g.obstacles))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if g.IsObstacle(c) {
				obs = append(obs, c)
			}
		}
	}
	return obs
}

// Cells returns every in-bounds cell, in row-major order. The result is
// freshly allocated on each call.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// FreeCells returns every in-bounds, non-obstacle cell, in row-major order.
func (g *Grid) FreeCells() []Cell {
	cells := make([]Cell, 0, g.width*g.height-len(g.obstacles))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if !g.IsObstacle(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// NeighborsWithStay returns c itself together with the in-bounds subset
// of its four cardinal neighbors. c is always included first, regardless
// of whether it is an obstacle: obstacle exclusion is the encoder's
// concern, not a property of adjacency.
// The returned slice is freshly allocated and has length between 1 and 5.
func (g *Grid) NeighborsWithStay(c Cell) []Cell {
	out := make([]Cell, 0, 5)
	out = append(out, c)
	for _, d := range cardinalOffsets {
		n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}
