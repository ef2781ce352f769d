// Package s2 maps points on the unit sphere onto a hierarchy of cells
// addressed by 64-bit Hilbert curve ids, and provides the regions and
// predicates used to reason about those cells.
package s2

import (
	"fmt"
	"math"

	"github.com/owlpinetech/s2cell/s1"
)

// Point is a direction in three dimensional space. Most operations expect a
// unit length point; the Raw variants of functions that produce points return
// them unnormalized.
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// Mul multiplies componentwise.
func (p Point) Mul(o Point) Point { return Point{p.X * o.X, p.Y * o.Y, p.Z * o.Z} }

// Div divides componentwise.
func (p Point) Div(o Point) Point { return Point{p.X / o.X, p.Y / o.Y, p.Z / o.Z} }

func (p Point) AddScalar(f float64) Point { return Point{p.X + f, p.Y + f, p.Z + f} }

func (p Point) SubScalar(f float64) Point { return Point{p.X - f, p.Y - f, p.Z - f} }

func (p Point) MulScalar(f float64) Point { return Point{p.X * f, p.Y * f, p.Z * f} }

func (p Point) DivScalar(f float64) Point { return Point{p.X / f, p.Y / f, p.Z / f} }

// Neg returns the point pointing in the opposite direction.
func (p Point) Neg() Point { return Point{-p.X, -p.Y, -p.Z} }

func (p Point) Abs() Point { return Point{math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)} }

func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

func (p Point) Cross(o Point) Point {
	return Point{
		p.Y*o.Z - p.Z*o.Y,
		p.Z*o.X - p.X*o.Z,
		p.X*o.Y - p.Y*o.X,
	}
}

func (p Point) Norm2() float64 { return p.Dot(p) }

func (p Point) Norm() float64 { return math.Sqrt(p.Norm2()) }

// Normalize returns a unit length copy of p. The zero point is returned
// unchanged.
func (p Point) Normalize() Point {
	n2 := p.Norm2()
	if n2 == 0 {
		return Point{}
	}
	return p.MulScalar(1 / math.Sqrt(n2))
}

// Distance returns the Euclidean distance between the two points.
func (p Point) Distance(o Point) float64 { return p.Sub(o).Norm() }

// Angle returns the angle between the two points, accurate for all
// separations including nearly parallel and nearly antipodal ones.
func (p Point) Angle(o Point) s1.Angle {
	return s1.Angle(math.Atan2(p.Cross(o).Norm(), p.Dot(o)))
}

// LargestAbsComponent returns the axis (0, 1 or 2) of the component with the
// largest magnitude. Ties resolve toward the later axis.
func (p Point) LargestAbsComponent() int {
	t := p.Abs()
	if t.X > t.Y {
		if t.X > t.Z {
			return 0
		}
		return 2
	}
	if t.Y > t.Z {
		return 1
	}
	return 2
}

// Intermediate returns p + (o-p)(1-t).
func (p Point) Intermediate(o Point, t float64) Point {
	return p.Add(o.Sub(p).MulScalar(1 - t))
}

// IsEmpty reports whether all components are zero.
func (p Point) IsEmpty() bool { return p.X == 0 && p.Y == 0 && p.Z == 0 }

// Cmp compares two points lexicographically by x, y and z. NaN components
// compare equal to each other and below any number.
func (p Point) Cmp(o Point) int {
	if c := compareFloat(p.X, o.X); c != 0 {
		return c
	}
	if c := compareFloat(p.Y, o.Y); c != 0 {
		return c
	}
	return compareFloat(p.Z, o.Z)
}

func compareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ApproxEqual reports whether the two points are within a small angle of
// each other.
func (p Point) ApproxEqual(o Point) bool {
	return p.Angle(o) <= 1e-15
}

// Face returns the cube face the point projects onto.
func (p Point) Face() int { return face(p) }

// FaceUV returns the face and the (u,v) coordinates of the point on it.
func (p Point) FaceUV() (f int, u, v float64) { return XYZToFaceUV(p) }

// FaceST returns the face and the (s,t) coordinates of the point on it.
func (p Point) FaceST() (f int, s, t float64) {
	f, u, v := XYZToFaceUV(p)
	return f, UVToST(u), UVToST(v)
}

// LonLat returns the point's longitude and latitude in degrees.
func (p Point) LonLat() LonLat { return LonLatFromPoint(p) }

// CellID returns the leaf cell containing the point.
func (p Point) CellID() CellID { return CellIDFromPoint(p) }

func (p Point) String() string {
	return fmt.Sprintf("(%0.24f, %0.24f, %0.24f)", p.X, p.Y, p.Z)
}

// ChordAngleBetweenPoints returns the chord angle between two unit length
// points, clamped to StraightChordAngle for roundoff.
func ChordAngleBetweenPoints(a, b Point) s1.ChordAngle {
	return s1.ChordAngle(math.Min(4, a.Sub(b).Norm2()))
}
