package entity

import (
	"snake-classic/game/types"
)

// Snake is the player's body, head first. Only Move and RemoveTail mutate
// the body, which keeps it contiguous.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

// Move inserts newHead in front of the current head.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any body cell, tail included, is at p.
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// SetDirection changes the heading unless dir would reverse the snake onto
// its own neck. It reports whether the change was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Cells returns a copy of the body for readers outside the game lock.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
