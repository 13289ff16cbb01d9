package quadtree

import "strings"

// Direction names one of the four children of an internal node.
type Direction uint8

const (
	NW Direction = iota
	NE
	SW
	SE
)

// Directions lists all directions in traversal order.
var Directions = [4]Direction{NW, NE, SW, SE}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "invalid"
}

// Path identifies a node by the directions taken from the root. It is
// comparable, so it can key maps. The zero value is the root.
type Path string

const Root Path = ""

func (p Path) Child(d Direction) Path {
	return p + Path([]byte{byte(d)})
}

func (p Path) Depth() int {
	return len(p)
}

func (p Path) Directions() []Direction {
	dirs := make([]Direction, len(p))
	for i := 0; i < len(p); i++ {
		dirs[i] = Direction(p[i])
	}
	return dirs
}

func (p Path) String() string {
	if p == Root {
		return "root"
	}
	parts := make([]string, 0, len(p))
	for _, d := range p.Directions() {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, "/")
}
