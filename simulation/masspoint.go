package simulation

import (
	"github.com/quartercastle/vector"
	"github.com/suxatcode/nbody-barnes-hut/quadtree"
)

// MassPoint represents either a single body or the centre of mass of a set
// of bodies.
type MassPoint struct {
	Pos  vector.Vector
	Mass float64
	// Body is the represented body, nil for aggregates.
	Body Body
	// members are the single body points merged into a leaf at the depth
	// limit of the quadtree.
	members []MassPoint
}

func NewMassPoint(pos vector.Vector, mass float64) MassPoint {
	return MassPoint{Pos: pos, Mass: mass}
}

// pointOf snapshots the current state of b.
func pointOf(b Body) MassPoint {
	pos := b.Position()
	return MassPoint{Pos: vector.Vector{pos.X(), pos.Y()}, Mass: b.Mass(), Body: b}
}

// Merge returns the centre of mass of mp and other. Merging two massless
// points yields their midpoint, so the result is never NaN.
func (mp MassPoint) Merge(other MassPoint) MassPoint {
	combinedMass := mp.Mass + other.Mass
	if combinedMass == 0 {
		return NewMassPoint(mp.Pos.Add(other.Pos).Scale(0.5), 0)
	}
	pos := mp.Pos.Scale(mp.Mass).Add(other.Pos.Scale(other.Mass)).Scale(1 / combinedMass)
	return NewMassPoint(pos, combinedMass)
}

// appendExcluding appends mp to points unless it represents b. Of a merged
// leaf only the member representing b is dropped.
func (mp MassPoint) appendExcluding(points []MassPoint, b Body) []MassPoint {
	if len(mp.members) == 0 {
		if mp.Body != nil && mp.Body == b {
			return points
		}
		return append(points, mp)
	}
	for _, member := range mp.members {
		if member.Body != b {
			points = append(points, member)
		}
	}
	return points
}

// CentresOfMass maps the path of every occupied leaf and internal node of a
// quadtree to its aggregated mass.
type CentresOfMass map[quadtree.Path]MassPoint

// CalculateMasses folds qt into its centres of mass.
func CalculateMasses(qt *quadtree.QuadTree[Body]) CentresOfMass {
	folder := &massFolder{centres: make(CentresOfMass)}
	quadtree.Fold[Body, MassPoint](qt, folder)
	return folder.centres
}

// massFolder implements quadtree.Folder.
type massFolder struct {
	centres CentresOfMass
}

func (f *massFolder) VisitEmpty(path quadtree.Path) MassPoint {
	// no bodies, no mass: the position never takes part in a weighted merge
	return NewMassPoint(vector.Vector{0, 0}, 0)
}

func (f *massFolder) VisitLeaf(path quadtree.Path, bodies []Body) MassPoint {
	var mp MassPoint
	if len(bodies) == 1 {
		mp = pointOf(bodies[0])
	} else {
		members := make([]MassPoint, len(bodies))
		for i, b := range bodies {
			members[i] = pointOf(b)
		}
		mp = members[0]
		for _, member := range members[1:] {
			mp = mp.Merge(member)
		}
		mp.members = members
	}
	f.centres[path] = mp
	return mp
}

func (f *massFolder) VisitQuad(path quadtree.Path, nw, ne, sw, se MassPoint) MassPoint {
	mp := nw.Merge(ne).Merge(sw).Merge(se)
	f.centres[path] = mp
	return mp
}
