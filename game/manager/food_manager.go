package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every cell of the play field is covered by
// the snake.
var ErrBoardFull = errors.New("manager: no free cell left for food")

type FoodManager struct {
	field        types.Bounds
	step         int
	maxAttempts  int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(field types.Bounds, step int, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		field:        field,
		step:         step,
		maxAttempts:  types.MaxFoodAttempts,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// SetMaxAttempts changes how many random cells are tried before falling back
// to scanning. Values below one are ignored.
func (fm *FoodManager) SetMaxAttempts(n int) {
	if n > 0 {
		fm.maxAttempts = n
	}
}

// GenerateFood picks a random cell that the snake does not cover. Random
// sampling is tried first; after maxAttempts misses a free cell is chosen
// uniformly from a full scan, and ErrBoardFull is returned if none is left.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	for i := 0; i < fm.maxAttempts; i++ {
		food := fm.randomCell()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, nil
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) randomCell() types.Point {
	return fm.field.Cell(
		fm.rng.Intn(fm.field.Columns(fm.step)),
		fm.rng.Intn(fm.field.Rows(fm.step)),
		fm.step,
	)
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	cols, rows := fm.field.Columns(fm.step), fm.field.Rows(fm.step)
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, part := range snake.Body {
		occupied[part] = struct{}{}
	}

	var free []types.Point
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := fm.field.Cell(col, row, fm.step)
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free
}
