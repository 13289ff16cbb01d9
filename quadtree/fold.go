package quadtree

// Folder reduces a QuadTree bottom-up into a single value of type R.
type Folder[T Positioned, R any] interface {
	VisitEmpty(path Path) R
	// VisitLeaf is called for occupied leaves. elems must not be modified.
	VisitLeaf(path Path, elems []T) R
	VisitQuad(path Path, nw, ne, sw, se R) R
}

// Fold runs folder over qt in post-order, children in NW, NE, SW, SE order,
// and returns the result for the root.
func Fold[T Positioned, R any](qt *QuadTree[T], folder Folder[T, R]) R {
	return fold[T, R](qt.root, folder, Root)
}

func fold[T Positioned, R any](n *node[T], folder Folder[T, R], path Path) R {
	switch n.kind {
	case emptyLeaf:
		return folder.VisitEmpty(path)
	case occupiedLeaf:
		return folder.VisitLeaf(path, n.elems)
	}
	var results [4]R
	for _, d := range Directions {
		results[d] = fold[T, R](n.children[d], folder, path.Child(d))
	}
	return folder.VisitQuad(path, results[NW], results[NE], results[SW], results[SE])
}
