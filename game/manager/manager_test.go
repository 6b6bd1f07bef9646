package manager

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// scriptedSource replays fixed values, cycling when exhausted.
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

var testGrid = types.Grid{Width: 30, Height: 20}

func snakeOf(dir types.Direction, cells ...types.Point) *entity.Snake {
	s := entity.NewSnake(cells[0], dir)
	s.Body = append([]types.Point(nil), cells...)
	return s
}

func TestNextHeadWallMode(t *testing.T) {
	cm := NewCollisionManager(testGrid)

	tests := []struct {
		name  string
		start types.Point
		dir   types.Direction
	}{
		{"left", types.Point{X: 0, Y: 5}, types.Left},
		{"right", types.Point{X: 29, Y: 5}, types.Right},
		{"top", types.Point{X: 5, Y: 0}, types.Up},
		{"bottom", types.Point{X: 5, Y: 19}, types.Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snakeOf(tt.dir, tt.start)
			_, c := cm.NextHead(s, true)
			if c != WallCollision {
				t.Errorf("Expected wall collision, got %s", c)
			}
		})
	}
}

func TestNextHeadWrapMode(t *testing.T) {
	cm := NewCollisionManager(testGrid)

	tests := []struct {
		name  string
		start types.Point
		dir   types.Direction
		want  types.Point
	}{
		{"left", types.Point{X: 0, Y: 5}, types.Left, types.Point{X: 29, Y: 5}},
		{"right", types.Point{X: 29, Y: 5}, types.Right, types.Point{X: 0, Y: 5}},
		{"top", types.Point{X: 5, Y: 0}, types.Up, types.Point{X: 5, Y: 19}},
		{"bottom", types.Point{X: 5, Y: 19}, types.Down, types.Point{X: 5, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snakeOf(tt.dir, tt.start)
			got, c := cm.NextHead(s, false)
			if c != NoCollision {
				t.Fatalf("Expected no collision, got %s", c)
			}
			if got != tt.want {
				t.Errorf("NextHead = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextHeadHitsTail(t *testing.T) {
	cm := NewCollisionManager(testGrid)
	// A 2x2 loop: head at (5,5) moving up runs into the tail at (5,4),
	// which would only vacate after the move.
	s := snakeOf(types.Up,
		types.Point{X: 5, Y: 5},
		types.Point{X: 6, Y: 5},
		types.Point{X: 6, Y: 4},
		types.Point{X: 5, Y: 4},
	)

	for _, wall := range []bool{true, false} {
		if _, c := cm.NextHead(s, wall); c != SelfCollision {
			t.Errorf("wall=%v: expected self collision, got %s", wall, c)
		}
	}
}

func TestPlaceResamplesOccupiedCells(t *testing.T) {
	s := snakeOf(types.Right, types.Point{X: 1, Y: 1}, types.Point{X: 0, Y: 1})
	// First two draws land on the body, the third is free.
	src := &scriptedSource{values: []int{1, 1, 0, 1, 7, 3}}
	fm := NewFoodManager(testGrid, src)

	food, err := fm.Place(s)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if food != (types.Point{X: 7, Y: 3}) {
		t.Errorf("Expected (7,3), got %v", food)
	}
	if fm.Food() != food {
		t.Errorf("Food() = %v, want %v", fm.Food(), food)
	}
}

func TestPlaceNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	fm := NewFoodManager(testGrid, rng)

	s := entity.NewSnake(types.Point{X: 0, Y: 0}, types.Right)
	for x := 1; x < testGrid.Width; x++ {
		s.Move(types.Point{X: x, Y: 0})
	}

	for i := 0; i < 1000; i++ {
		food, err := fm.Place(s)
		if err != nil {
			t.Fatalf("Place: %v", err)
		}
		if s.Contains(food) {
			t.Fatalf("Food placed on snake at %v", food)
		}
		if !testGrid.Contains(food) {
			t.Fatalf("Food placed off grid at %v", food)
		}
	}
}

func TestPlaceGridFull(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))
	s := snakeOf(types.Left, types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0})

	if _, err := fm.Place(s); !errors.Is(err, ErrGridFull) {
		t.Errorf("Expected ErrGridFull, got %v", err)
	}
}

func TestAddPointSpeedsUp(t *testing.T) {
	sm := NewStateManager(SpeedConfig{
		Initial: 100 * time.Millisecond,
		Min:     20 * time.Millisecond,
		Step:    10 * time.Millisecond,
		Every:   5,
	})

	for i := 1; i <= 4; i++ {
		if sm.AddPoint() {
			t.Fatalf("Speed changed at score %d", i)
		}
	}
	if !sm.AddPoint() {
		t.Fatal("Expected speed change at score 5")
	}
	if sm.GetSpeed() != 90*time.Millisecond {
		t.Errorf("Speed = %v, want 90ms", sm.GetSpeed())
	}

	for sm.GetScore() < 50 {
		sm.AddPoint()
	}
	if sm.GetSpeed() != 20*time.Millisecond {
		t.Errorf("Speed = %v at score 50, want floor 20ms", sm.GetSpeed())
	}

	sm.Reset()
	if sm.GetScore() != 0 || sm.GetSpeed() != 100*time.Millisecond {
		t.Errorf("Reset left score=%d speed=%v", sm.GetScore(), sm.GetSpeed())
	}
}

func TestAddPointClampsAtFloor(t *testing.T) {
	sm := NewStateManager(SpeedConfig{
		Initial: 25 * time.Millisecond,
		Min:     20 * time.Millisecond,
		Step:    10 * time.Millisecond,
		Every:   1,
	})

	if !sm.AddPoint() {
		t.Fatal("Expected speed change")
	}
	if sm.GetSpeed() != 20*time.Millisecond {
		t.Errorf("Speed = %v, want clamp to 20ms", sm.GetSpeed())
	}
	if sm.AddPoint() {
		t.Error("No change expected at the floor")
	}
}
