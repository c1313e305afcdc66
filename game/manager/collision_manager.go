package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
)

// CollisionType represents the reason a game ended
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFullCollision // No free cell left to place food on
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFullCollision:
		return "board-full"
	default:
		return "none"
	}
}

type CollisionManager struct {
	field types.Bounds
}

func NewCollisionManager(field types.Bounds) *CollisionManager {
	return &CollisionManager{
		field: field,
	}
}

// CheckCollision checks whether a head moving to pos hits a wall or the
// snake's own body. The tail counts as body even though it is about to move.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if snake.BodyOccupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position is outside the play field
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.field.Contains(pos)
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
