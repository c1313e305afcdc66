package manager

import (
	"testing"

	"classic-snake/game/entity"
	"classic-snake/game/types"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestSnake() *entity.Snake {
	return entity.NewSnake([]types.Point{
		{X: 100, Y: 100},
		{X: 80, Y: 100},
		{X: 60, Y: 100},
	}, types.Right)
}

func TestCheckCollisionWalls(t *testing.T) {
	cm := NewCollisionManager(types.PlayField)
	snake := newTestSnake()

	require.Equal(t, WallCollision, cm.CheckCollision(types.Point{X: 600, Y: 100}, snake))
	require.Equal(t, WallCollision, cm.CheckCollision(types.Point{X: 0, Y: 100}, snake))
	require.Equal(t, WallCollision, cm.CheckCollision(types.Point{X: 100, Y: 20}, snake))
	require.Equal(t, WallCollision, cm.CheckCollision(types.Point{X: 100, Y: 620}, snake))
	require.Equal(t, NoCollision, cm.CheckCollision(types.Point{X: 580, Y: 600}, snake))
	require.Equal(t, NoCollision, cm.CheckCollision(types.Point{X: 20, Y: 40}, snake))
}

func TestCheckCollisionSelf(t *testing.T) {
	cm := NewCollisionManager(types.PlayField)
	snake := newTestSnake()

	require.Equal(t, SelfCollision, cm.CheckCollision(types.Point{X: 80, Y: 100}, snake))
	require.Equal(t, SelfCollision, cm.CheckCollision(types.Point{X: 60, Y: 100}, snake))
	// The head itself is not part of the body.
	require.Equal(t, NoCollision, cm.CheckCollision(types.Point{X: 100, Y: 100}, snake))
}

func TestCollisionTypeString(t *testing.T) {
	require.Equal(t, "none", NoCollision.String())
	require.Equal(t, "wall", WallCollision.String())
	require.Equal(t, "self", SelfCollision.String())
	require.Equal(t, "board-full", BoardFullCollision.String())
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.PlayField)
	snake := newTestSnake()

	require.False(t, cm.ValidateSpawnPosition(types.Point{X: 100, Y: 100}, snake))
	require.False(t, cm.ValidateSpawnPosition(types.Point{X: 0, Y: 0}, snake))
	require.True(t, cm.ValidateSpawnPosition(types.Point{X: 120, Y: 100}, snake))
	require.True(t, cm.IsFoodCollision(types.Point{X: 120, Y: 100}, types.Point{X: 120, Y: 100}))
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	cm := NewCollisionManager(types.PlayField)
	fm := NewFoodManager(types.PlayField, types.MoveIncrement, rand.New(rand.NewSource(7)), cm)
	snake := newTestSnake()

	for i := 0; i < 500; i++ {
		food, err := fm.GenerateFood(snake)
		require.NoError(t, err)
		require.False(t, snake.Occupies(food))
		require.True(t, types.PlayField.Contains(food))
		require.True(t, types.PlayField.OnGrid(food, types.MoveIncrement))
	}
}

func TestGenerateFoodFallsBackToScan(t *testing.T) {
	field := types.Bounds{MinX: 20, MinY: 40, MaxX: 60, MaxY: 40}
	cm := NewCollisionManager(field)
	fm := NewFoodManager(field, types.MoveIncrement, rand.New(rand.NewSource(1)), cm)
	fm.SetMaxAttempts(1)
	fm.SetMaxAttempts(0)
	require.Equal(t, 1, fm.maxAttempts)

	snake := entity.NewSnake([]types.Point{{X: 20, Y: 40}, {X: 40, Y: 40}}, types.Left)
	for i := 0; i < 50; i++ {
		food, err := fm.GenerateFood(snake)
		require.NoError(t, err)
		require.Equal(t, types.Point{X: 60, Y: 40}, food)
	}
}

func TestGenerateFoodBoardFull(t *testing.T) {
	field := types.Bounds{MinX: 20, MinY: 40, MaxX: 60, MaxY: 40}
	cm := NewCollisionManager(field)
	fm := NewFoodManager(field, types.MoveIncrement, rand.New(rand.NewSource(1)), cm)

	snake := entity.NewSnake([]types.Point{{X: 20, Y: 40}, {X: 40, Y: 40}, {X: 60, Y: 40}}, types.Left)
	_, err := fm.GenerateFood(snake)
	require.ErrorIs(t, err, ErrBoardFull)
}
