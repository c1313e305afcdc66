package entity

import (
	"classic-snake/game/types"
)

// Snake is an ordered list of segments, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction // Heading used by the last move
	next      types.Direction
}

func NewSnake(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
		next:      dir,
	}
}

// Move puts newHead in front of the body. Callers drop the tail afterwards
// unless the snake is growing.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append([]types.Point{newHead}, s.Body...)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow duplicates the tail segment so the next Move/RemoveTail pair leaves
// the snake one segment longer.
func (s *Snake) Grow() {
	if len(s.Body) > 0 {
		s.Body = append(s.Body, s.Body[len(s.Body)-1])
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

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// BodyOccupies reports whether any segment other than the head sits on p.
func (s *Snake) BodyOccupies(p types.Point) bool {
	for _, part := range s.Body[1:] {
		if part == p {
			return true
		}
	}
	return false
}

// Positions returns a copy of the body.
func (s *Snake) Positions() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// SetDirection queues dir for the next move. Unknown directions and the
// reverse of the last move's heading are rejected. Among accepted inputs the
// last one wins.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return false
	}
	s.next = dir
	return true
}

// NextDirection returns the heading the next move will use.
func (s *Snake) NextDirection() types.Direction {
	return s.next
}

// Turn commits the queued direction and returns it.
func (s *Snake) Turn() types.Direction {
	s.Direction = s.next
	return s.Direction
}
