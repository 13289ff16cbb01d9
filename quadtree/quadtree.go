package quadtree

import (
	"github.com/quartercastle/vector"
)

// Positioned is implemented by everything that can be stored in a QuadTree.
type Positioned interface {
	Position() vector.Vector
}

type Config struct {
	// MaxDepth bounds the recursion of node splitting. An occupied leaf at
	// this depth does not split, it keeps all further elements instead. Without
	// the bound two elements at the exact same position would split forever.
	MaxDepth int
}

var DefaultConfig = Config{MaxDepth: 48}

type nodeKind uint8

const (
	emptyLeaf nodeKind = iota
	occupiedLeaf
	internalNode
)

type node[T Positioned] struct {
	kind   nodeKind
	region Rect
	// elems holds the occupants of an occupied leaf. It has exactly one element
	// except for leaves at Config.MaxDepth.
	elems    []T
	children [4]*node[T]
}

func newLeaf[T Positioned](region Rect) *node[T] {
	return &node[T]{kind: emptyLeaf, region: region}
}

func newInternalNode[T Positioned](region Rect) *node[T] {
	n := &node[T]{kind: internalNode, region: region}
	for d, quadrant := range region.Quadrants() {
		n.children[d] = newLeaf[T](quadrant)
	}
	return n
}

// QuadTree is a region quadtree holding at most one element per leaf. It is
// meant to be rebuilt from scratch whenever the positions of its elements
// change, there is no removal.
type QuadTree[T Positioned] struct {
	bounds Rect
	root   *node[T]
	config Config
	size   int
}

// NewQuadTree creates an empty tree covering Rect{0, 0, width, height}.
func NewQuadTree[T Positioned](config *Config, width, height float64) *QuadTree[T] {
	qt := new(QuadTree[T])
	if config == nil {
		config = &DefaultConfig
	}
	qt.config = *config
	if qt.config.MaxDepth <= 0 {
		qt.config.MaxDepth = DefaultConfig.MaxDepth
	}
	qt.bounds = Rect{X: 0, Y: 0, Width: width, Height: height}
	qt.root = newLeaf[T](qt.bounds)
	return qt
}

func (qt *QuadTree[T]) Bounds() Rect {
	return qt.bounds
}

// Len returns the number of inserted elements.
func (qt *QuadTree[T]) Len() int {
	return qt.size
}

// Insert adds elem to the tree. It returns false and leaves the tree untouched
// if elem lies outside the bounds of the tree.
func (qt *QuadTree[T]) Insert(elem T) bool {
	if !qt.bounds.Contains(elem.Position()) {
		return false
	}
	qt.root = qt.root.insert(elem, 0, qt.config.MaxDepth)
	qt.size++
	return true
}

// insert returns the node replacing n in its parent.
func (n *node[T]) insert(elem T, depth, maxDepth int) *node[T] {
	switch n.kind {
	case emptyLeaf:
		n.kind = occupiedLeaf
		n.elems = []T{elem}
		return n
	case occupiedLeaf:
		if depth >= maxDepth {
			n.elems = append(n.elems, elem)
			return n
		}
		split := newInternalNode[T](n.region)
		for _, occupant := range n.elems {
			split.insert(occupant, depth, maxDepth)
		}
		return split.insert(elem, depth, maxDepth)
	default:
		d := n.region.direction(elem.Position())
		n.children[d] = n.children[d].insert(elem, depth+1, maxDepth)
		return n
	}
}

// Regions returns the region of every node in the tree, keyed by its path.
func (qt *QuadTree[T]) Regions() map[Path]Rect {
	regions := make(map[Path]Rect)
	qt.root.regions(regions, Root)
	return regions
}

func (n *node[T]) regions(collector map[Path]Rect, path Path) {
	collector[path] = n.region
	if n.kind != internalNode {
		return
	}
	for _, d := range Directions {
		n.children[d].regions(collector, path.Child(d))
	}
}

// PathsFitting descends the tree and stops at the first node whose region
// satisfies pred, collecting its path. Leaves that do not satisfy pred are
// collected only when occupied. The result is a frontier covering every
// element of the tree exactly once.
func (qt *QuadTree[T]) PathsFitting(pred func(Rect) bool) map[Path]struct{} {
	paths := make(map[Path]struct{})
	qt.root.pathsFitting(pred, paths, Root)
	return paths
}

func (n *node[T]) pathsFitting(pred func(Rect) bool, collector map[Path]struct{}, path Path) {
	if pred(n.region) {
		collector[path] = struct{}{}
		return
	}
	switch n.kind {
	case occupiedLeaf:
		collector[path] = struct{}{}
	case internalNode:
		for _, d := range Directions {
			n.children[d].pathsFitting(pred, collector, path.Child(d))
		}
	}
}
