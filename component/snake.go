package component

import "github.com/lixenwraith/vi-snake/core"

// SnakeBody is the ordered cell sequence of the snake, head first
// Segments trail the head; each move shifts them one slot toward the head
type SnakeBody struct {
	cells []core.Cell
}

// NewSnakeBody creates a snake of the given length with its head at head,
// segments laid out behind it (opposite of facing)
func NewSnakeBody(head core.Cell, facing core.Direction, length int) *SnakeBody {
	if length < 1 {
		length = 1
	}
	back := facing.Opposite().Delta()
	cells := make([]core.Cell, length)
	cells[0] = head
	for i := 1; i < length; i++ {
		cells[i] = cells[i-1].Add(back)
	}
	return &SnakeBody{cells: cells}
}

// NewSnakeBodyFrom builds a snake from explicit cells, first cell is the head
// Panics on an empty layout
func NewSnakeBodyFrom(cells ...core.Cell) *SnakeBody {
	if len(cells) == 0 {
		panic("component: snake body needs at least a head")
	}
	return &SnakeBody{cells: append([]core.Cell(nil), cells...)}
}

// Move shifts every segment onto its predecessor and advances the head by d
// Call at most once per tick
func (s *SnakeBody) Move(d core.Direction) {
	copy(s.cells[1:], s.cells[:len(s.cells)-1])
	s.cells[0] = s.cells[0].Step(d)
}

// Grow appends a segment stacked on the current tail (the head if there are no segments)
// The new segment separates from the tail on the next move
func (s *SnakeBody) Grow() {
	s.cells = append(s.cells, s.cells[len(s.cells)-1])
}

// Head returns the head cell
func (s *SnakeBody) Head() core.Cell {
	return s.cells[0]
}

// Tail returns the last cell
func (s *SnakeBody) Tail() core.Cell {
	return s.cells[len(s.cells)-1]
}

// Len returns 1 + segment count
func (s *SnakeBody) Len() int {
	return len(s.cells)
}

// Occupies reports whether the head or any segment sits on c
func (s *SnakeBody) Occupies(c core.Cell) bool {
	for _, sc := range s.cells {
		if sc == c {
			return true
		}
	}
	return false
}

// HasSelfCollision reports whether the head shares a cell with a segment
// Meaningful after Move
func (s *SnakeBody) HasSelfCollision() bool {
	head := s.cells[0]
	for _, sc := range s.cells[1:] {
		if sc == head {
			return true
		}
	}
	return false
}

// Segments returns a copy of the trailing cells
func (s *SnakeBody) Segments() []core.Cell {
	return append([]core.Cell(nil), s.cells[1:]...)
}

// Cells returns a copy of all cells, head first
func (s *SnakeBody) Cells() []core.Cell {
	return append([]core.Cell(nil), s.cells...)
}
