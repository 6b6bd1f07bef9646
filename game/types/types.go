package types

// Point is a grid cell. Coordinates may briefly fall outside the grid while
// a move is being resolved.
type Point struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back onto the grid, treating it as a torus.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Cells is the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func mod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// Direction is one of the four unit moves.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit vector of d.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the reverse of d. None has no opposite.
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
	}
	return None
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
	}
	return "none"
}

// Game constants
const (
	GridWidth    = 30
	GridHeight   = 20
	CellSize     = 20 // pixels, presentation only
	SpeedUpEvery = 5  // score points between speed-ups
)
