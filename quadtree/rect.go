package quadtree

import (
	"github.com/quartercastle/vector"
)

// Rect is an axis aligned rectangle. X, Y is the north-west corner, i.e. north
// is the half with the smaller Y and west the half with the smaller X.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether pos lies inside r, borders included.
func (r Rect) Contains(pos vector.Vector) bool {
	contains := pos.X() >= r.X && pos.X() <= r.X+r.Width && pos.Y() >= r.Y && pos.Y() <= r.Y+r.Height
	return contains
}

func (r Rect) Center() vector.Vector {
	return vector.Vector{r.X + r.Width/2, r.Y + r.Height/2}
}

func (r Rect) North() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height / 2}
}

func (r Rect) South() Rect {
	return Rect{X: r.X, Y: r.Y + r.Height/2, Width: r.Width, Height: r.Height / 2}
}

func (r Rect) West() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width / 2, Height: r.Height}
}

func (r Rect) East() Rect {
	return Rect{X: r.X + r.Width/2, Y: r.Y, Width: r.Width / 2, Height: r.Height}
}

// Quadrants returns the four quadrants of r indexed by Direction.
func (r Rect) Quadrants() [4]Rect {
	return [4]Rect{
		NW: r.North().West(),
		NE: r.North().East(),
		SW: r.South().West(),
		SE: r.South().East(),
	}
}

// direction selects the quadrant of r that pos belongs to. Positions on a
// shared border go north first, then west.
func (r Rect) direction(pos vector.Vector) Direction {
	inNorth := r.North().Contains(pos)
	inWest := r.West().Contains(pos)
	switch {
	case inNorth && inWest:
		return NW
	case inNorth:
		return NE
	case inWest:
		return SW
	default:
		return SE
	}
}
