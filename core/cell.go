package core

import "fmt"

// Cell is a grid coordinate, not a screen position
// X grows to the right, Y grows downward
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is a shorthand constructor
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns the component-wise sum
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Step returns the neighbour one unit away in direction d
func (c Cell) Step(d Direction) Cell {
	return c.Add(d.Delta())
}

// In reports whether the cell lies inside [0,width) x [0,height)
func (c Cell) In(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
