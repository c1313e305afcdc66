package game

import (
	"time"

	"classic-snake/game/types"

	"github.com/pkg/errors"
)

// Config holds the rules a game is started with. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Field            types.Bounds
	Step             int
	TickInterval     time.Duration
	InitialSnake     []types.Point
	InitialDirection types.Direction
	MaxFoodAttempts  int
	Seed             uint64 // 0 seeds from the clock
}

// DefaultConfig returns the classic 600x620 board: three segments at
// (100,100) heading right, fifteen moves per second.
func DefaultConfig() Config {
	return Config{
		Field:        types.PlayField,
		Step:         types.MoveIncrement,
		TickInterval: types.GameSpeed,
		InitialSnake: []types.Point{
			{X: 100, Y: 100},
			{X: 80, Y: 100},
			{X: 60, Y: 100},
		},
		InitialDirection: types.Right,
		MaxFoodAttempts:  types.MaxFoodAttempts,
	}
}

// Validate checks that the starting snake is at least three segments long,
// contiguous, inside the field and not heading into its own neck.
func (c Config) Validate() error {
	if c.Step <= 0 {
		return errors.Errorf("game: step must be positive, got %d", c.Step)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("game: tick interval must be positive, got %s", c.TickInterval)
	}
	if c.Field.MaxX < c.Field.MinX || c.Field.MaxY < c.Field.MinY {
		return errors.Errorf("game: empty play field %+v", c.Field)
	}
	if len(c.InitialSnake) < 3 {
		return errors.Errorf("game: initial snake needs at least 3 segments, got %d", len(c.InitialSnake))
	}
	if !c.InitialDirection.Valid() {
		return errors.Errorf("game: invalid initial direction %s", c.InitialDirection)
	}

	seen := make(map[types.Point]bool, len(c.InitialSnake))
	for i, p := range c.InitialSnake {
		if !c.Field.Contains(p) || !c.Field.OnGrid(p, c.Step) {
			return errors.Errorf("game: segment %d at %+v is off the grid", i, p)
		}
		if seen[p] {
			return errors.Errorf("game: segment %d at %+v overlaps another segment", i, p)
		}
		seen[p] = true
		if i > 0 && !adjacent(c.InitialSnake[i-1], p, c.Step) {
			return errors.Errorf("game: segment %d at %+v is not next to segment %d", i, p, i-1)
		}
	}

	neck := c.InitialSnake[1]
	if c.InitialSnake[0].Add(c.InitialDirection.Delta(c.Step)) == neck {
		return errors.Errorf("game: initial direction %s points into the body", c.InitialDirection)
	}
	return nil
}

func adjacent(a, b types.Point, step int) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return (dx == step && dy == 0) || (dx == 0 && dy == step)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
