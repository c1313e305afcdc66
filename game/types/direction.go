package types

// Direction is one of the four cardinal headings.
type Direction int

const (
	None Direction = iota // 0
	Up                    // 1
	Right                 // 2
	Down                  // 3
	Left                  // 4
)

var directionNames = map[Direction]string{
	Up:    "Up",
	Right: "Right",
	Down:  "Down",
	Left:  "Left",
}

// ParseDirection maps a key name such as "Up" or "Left" to its direction.
func ParseDirection(name string) (Direction, bool) {
	for d, n := range directionNames {
		if n == name {
			return d, true
		}
	}
	return None, false
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// ToPoint returns the unit step for d. Y grows downwards.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Delta returns the step for d scaled to the given cell size.
func (d Direction) Delta(step int) Point {
	p := d.ToPoint()
	return Point{X: p.X * step, Y: p.Y * step}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	if n, ok := directionNames[d]; ok {
		return n
	}
	return "None"
}
