package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead computes where the head of snake goes on the next tick and what,
// if anything, it runs into. In wrap mode the returned point is already
// folded back onto the grid. The body is checked as it stands before the
// move, tail included.
func (cm *CollisionManager) NextHead(snake *entity.Snake, wallEnabled bool) (types.Point, CollisionType) {
	pos := snake.GetHead().Add(snake.Direction.Delta())

	if wallEnabled {
		if cm.isWallCollision(pos) {
			return pos, WallCollision
		}
	} else {
		pos = cm.grid.Wrap(pos)
	}

	if snake.Contains(pos) {
		return pos, SelfCollision
	}
	return pos, NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
