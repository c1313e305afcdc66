package types

import "time"

// Point is a position on the canvas, in canvas units. Snake segments and food
// always sit on multiples of MoveIncrement.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Bounds is the rectangle of playable cells. Both ends are inclusive.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether p lies inside the rectangle.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Columns returns the number of cells per row for the given cell size.
func (b Bounds) Columns(step int) int {
	return (b.MaxX-b.MinX)/step + 1
}

// Rows returns the number of cells per column for the given cell size.
func (b Bounds) Rows(step int) int {
	return (b.MaxY-b.MinY)/step + 1
}

// Cell returns the top-left based cell at column col and row row.
func (b Bounds) Cell(col, row, step int) Point {
	return Point{X: b.MinX + col*step, Y: b.MinY + row*step}
}

// OnGrid reports whether p is aligned to the cell grid anchored at the
// rectangle's minimum corner.
func (b Bounds) OnGrid(p Point, step int) bool {
	return (p.X-b.MinX)%step == 0 && (p.Y-b.MinY)%step == 0
}

// Game constants
const (
	CanvasWidth    = 600
	CanvasHeight   = 620
	MoveIncrement  = 20 // Cell size and distance travelled per tick
	MovesPerSecond = 15
	GameSpeed      = time.Duration(1000/MovesPerSecond) * time.Millisecond

	// Sampling attempts before food placement falls back to scanning free cells
	MaxFoodAttempts = 1000
)

// PlayField is the area the head may occupy. A head on the canvas edge or on
// the score strip at the top counts as a wall collision.
var PlayField = Bounds{
	MinX: MoveIncrement,
	MinY: 2 * MoveIncrement,
	MaxX: CanvasWidth - MoveIncrement,
	MaxY: CanvasHeight - MoveIncrement,
}
