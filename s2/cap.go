package s2

import (
	"fmt"
	"math"
	"slices"

	"github.com/owlpinetech/s2cell/s1"
)

// Cap is a spherical cap: the set of unit points within Radius of Center.
// The radius is stored as a chord angle, so containment tests need no
// trigonometry. Data carries an arbitrary payload alongside the region.
type Cap[T any] struct {
	Center Point
	Radius s1.ChordAngle
	Data   T
}

// CapFromCenterChordAngle returns the cap with the given center and chord
// radius. The center should be unit length.
func CapFromCenterChordAngle[T any](center Point, radius s1.ChordAngle, data T) Cap[T] {
	return Cap[T]{Center: center, Radius: radius, Data: data}
}

// CapFromCenterAngle returns the cap with the given center and radius.
// Radii of π or more produce a full cap; negative radii produce an empty one.
func CapFromCenterAngle[T any](center Point, radius s1.Angle, data T) Cap[T] {
	return CapFromCenterChordAngle(center, s1.ChordAngleFromAngle(min(radius, math.Pi*s1.Radian)), data)
}

// CapFromPoint returns the cap containing only p.
func CapFromPoint[T any](p Point, data T) Cap[T] {
	return CapFromCenterChordAngle(p, 0, data)
}

// EmptyCap returns a cap containing no points.
func EmptyCap[T any](data T) Cap[T] {
	return CapFromCenterChordAngle(Point{1, 0, 0}, s1.NegativeChordAngle, data)
}

// FullCap returns a cap containing every point.
func FullCap[T any](data T) Cap[T] {
	return CapFromCenterChordAngle(Point{1, 0, 0}, s1.StraightChordAngle, data)
}

func (c Cap[T]) IsEmpty() bool { return c.Radius < 0 }

func (c Cap[T]) IsFull() bool { return c.Radius >= s1.StraightChordAngle }

// IsValid reports whether the center is unit length and the radius is at
// most a straight angle.
func (c Cap[T]) IsValid() bool {
	return math.Abs(c.Center.Norm2()-1) <= 5e-15 && c.Radius <= s1.StraightChordAngle
}

// Height is the distance from the cap's base plane to its apex along the
// center axis. Empty caps have negative height.
func (c Cap[T]) Height() float64 { return 0.5 * float64(c.Radius) }

// Area returns the surface area of the cap on the unit sphere.
func (c Cap[T]) Area() float64 {
	return 2 * math.Pi * math.Max(0, c.Height())
}

// RadiusAngle returns the cap radius as an angle. Empty caps return a
// negative angle.
func (c Cap[T]) RadiusAngle() s1.Angle { return c.Radius.Angle() }

// ContainsPoint reports whether the unit point p lies in the cap, boundary
// included.
func (c Cap[T]) ContainsPoint(p Point) bool {
	return ChordAngleBetweenPoints(c.Center, p) <= c.Radius
}

// Complement returns the cap covering everything outside this one. The two
// share a boundary but no interior points. A singleton cap and an empty cap
// have the same complement, so the operation is not reversible.
func (c Cap[T]) Complement() Cap[T] {
	if c.IsFull() {
		return EmptyCap(c.Data)
	}
	if c.IsEmpty() {
		return FullCap(c.Data)
	}
	return CapFromCenterChordAngle(c.Center.Neg(), s1.ChordAngleFromSquaredLength(4-float64(c.Radius)), c.Data)
}

// CellVertexCount returns how many of the cell's four corners lie in the cap.
func (c Cap[T]) CellVertexCount(id CellID) int {
	n := 0
	for _, v := range id.Vertices() {
		if c.ContainsPoint(v) {
			n++
		}
	}
	return n
}

// ContainsCell reports whether the cap contains the whole cell. The test
// is conservative for caps so small that their complement rounds to full.
func (c Cap[T]) ContainsCell(id CellID) bool {
	vertices := id.Vertices()
	for _, v := range vertices {
		if !c.ContainsPoint(v) {
			return false
		}
	}
	return !c.Complement().IntersectsCellEdges(id, vertices)
}

// IntersectsCell reports whether the cap and the cell share any point.
func (c Cap[T]) IntersectsCell(id CellID) bool {
	vertices := id.Vertices()
	for _, v := range vertices {
		if c.ContainsPoint(v) {
			return true
		}
	}
	return c.IntersectsCellEdges(id, vertices)
}

// IntersectsCellEdges reports whether the cap meets the cell anywhere other
// than at its corners, given the cell's unit vertices. Callers must already
// know that no vertex lies in the cap.
func (c Cap[T]) IntersectsCellEdges(id CellID, vertices [4]Point) bool {
	// With no vertex inside, a hemisphere or larger cap and the cell are both
	// convex with respect to each other, so nothing else can be inside.
	if c.Radius >= s1.RightChordAngle || c.IsEmpty() {
		return false
	}
	if id.ContainsPoint(c.Center) {
		return true
	}

	// The only remaining way to intersect is through the interior of an edge.
	sin2 := c.Radius.Sin2()
	edges := id.EdgesRaw()
	for k, edge := range edges {
		dot := c.Center.Dot(edge)
		if dot > 0 {
			// The center is on the inside of this edge. If the cap crosses
			// it, it also crosses the opposite edge.
			continue
		}
		if dot*dot > sin2*edge.Norm2() {
			return false
		}
		dir := edge.Cross(c.Center)
		if dir.Dot(vertices[k]) < 0 && dir.Dot(vertices[(k+1)&3]) > 0 {
			return true
		}
	}
	return false
}

// IntersectingCells returns a set of cells covering the cap, in ascending
// id order. Cells wholly inside the cap are returned at whatever level they
// are found. Partially covered cells are subdivided down to the level whose
// maximum edge length is closest to the cap radius.
func (c Cap[T]) IntersectingCells() []CellID {
	if c.IsEmpty() {
		return nil
	}
	stack := make([]CellID, 0, 64)
	for f := NumFaces - 1; f >= 0; f-- {
		stack = append(stack, CellIDFromFace(f))
	}
	if c.IsFull() {
		slices.Reverse(stack)
		return stack
	}

	maxDepth := MaxEdgeMetric.ClosestLevel(c.Radius.Angle().Radians())
	var result []CellID
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := c.CellVertexCount(id)
		atMax := id.Level() >= maxDepth
		switch {
		case n == 4 || (n > 0 && atMax):
			result = append(result, id)
		case atMax:
		case n == 0:
			// A cell with no corner inside can still hold the whole cap.
			if id.ContainsPoint(c.Center) {
				children := id.Children()
				stack = append(stack, children[:]...)
			}
		default:
			children := id.Children()
			stack = append(stack, children[:]...)
		}
	}
	slices.Sort(result)
	return result
}

func (c Cap[T]) String() string {
	return fmt.Sprintf("[Center=%v, Radius=%v]", c.Center, c.Radius.Angle())
}
