package manager

import (
	"errors"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// ErrGridFull is returned when the snake covers every cell and there is
// nowhere left to put food.
var ErrGridFull = errors.New("no free cell for food")

// Source is the random source used for food placement. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

type FoodManager struct {
	grid types.Grid
	rng  Source
	food types.Point
}

func NewFoodManager(grid types.Grid, rng Source) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Place picks a uniformly random free cell by resampling until it misses
// the snake. The loop only terminates while at least one cell is free, so
// that is checked up front.
func (fm *FoodManager) Place(snake *entity.Snake) (types.Point, error) {
	if snake.Len() >= fm.grid.Cells() {
		return fm.food, ErrGridFull
	}

	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !snake.Contains(food) {
			fm.food = food
			return food, nil
		}
	}
}

func (fm *FoodManager) Food() types.Point {
	return fm.food
}
