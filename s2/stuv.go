package s2

import (
	"fmt"
	"math"
)

// There are several coordinate systems in play:
//
//	(x,y,z)  direction vectors, not necessarily unit length.
//	(face,u,v)  a cube face and gnomonic coordinates in [-1,1] on it.
//	(face,s,t)  nonlinear cell-space coordinates in [0,1], chosen so cells
//	            have roughly uniform area.
//	(face,si,ti)  s and t scaled by 2^31, locating cell centers and corners.
//	(face,i,j)  leaf cell coordinates in [0, 2^30).
//
// The (u,v) <-> (s,t) warp is selected at build time; see the projection_*
// files. The quadratic warp is the default.

const (
	// MaxLevel is the level of leaf cells.
	MaxLevel = 30
	// MaxSize is the number of leaf cells along a face edge.
	MaxSize = 1 << MaxLevel
	// maxSiTi is the number of discrete si/ti values along a face edge.
	maxSiTi = 1 << (MaxLevel + 1)
)

// LinearSTToUV is the linear warp u = 2s - 1. It is fast but leaves cell
// areas varying by a factor of about 5.2.
func LinearSTToUV(s float64) float64 { return 2*s - 1 }

func LinearUVToST(u float64) float64 { return 0.5 * (u + 1) }

// TangentSTToUV warps with a tangent, giving the most uniform cell areas at
// the cost of transcendental calls.
func TangentSTToUV(s float64) float64 {
	s = math.Tan(math.Pi/2*s - math.Pi/4)
	// Nudge away from zero so that the inverse maps back onto s.
	return s + (1.0/(1<<53))*s
}

func TangentUVToST(u float64) float64 {
	return (2 / math.Pi) * (math.Atan(u) + math.Pi/4)
}

// QuadraticSTToUV is the default warp: nearly as uniform as the tangent and
// much cheaper.
func QuadraticSTToUV(s float64) float64 {
	if s >= 0.5 {
		return (1 / 3.) * (4*s*s - 1)
	}
	return (1 / 3.) * (1 - 4*(1-s)*(1-s))
}

func QuadraticUVToST(u float64) float64 {
	if u >= 0 {
		return 0.5 * math.Sqrt(1+3*u)
	}
	return 1 - 0.5*math.Sqrt(1-3*u)
}

// STToIJ converts an s or t value to the leaf cell coordinate containing it,
// clamping to [0, MaxSize-1].
func STToIJ(s float64) int {
	return clamp(int(math.Floor(MaxSize*s)), 0, MaxSize-1)
}

// IJToST returns the s or t value of the lower edge of leaf coordinate i.
// Panics when i > MaxSize.
func IJToST(i int) float64 {
	if i < 0 || i > MaxSize {
		panic(fmt.Sprintf("s2: leaf coordinate %d out of range", i))
	}
	return float64(i) / MaxSize
}

// SiTiToST converts an si or ti value to s or t. Panics when si > 2^31.
func SiTiToST(si uint32) float64 {
	if si > maxSiTi {
		panic(fmt.Sprintf("s2: si/ti value %d out of range", si))
	}
	return float64(si) / maxSiTi
}

// STToSiTi converts s or t to the nearest si or ti value.
func STToSiTi(s float64) uint32 {
	return uint32(math.Round(s * maxSiTi))
}

// face returns the face containing p: the axis of its largest absolute
// component, plus 3 when that component is negative.
func face(p Point) int {
	f := p.LargestAbsComponent()
	var comp float64
	switch f {
	case 0:
		comp = p.X
	case 1:
		comp = p.Y
	default:
		comp = p.Z
	}
	if comp < 0 {
		f += 3
	}
	return f
}

// validFaceXYZToUV returns the (u,v) coordinates of p on the given face.
// The face must satisfy p·Norm(face) > 0, otherwise it panics.
func validFaceXYZToUV(f int, p Point) (float64, float64) {
	if p.Dot(faceNorms[f]) <= 0 {
		panic(fmt.Sprintf("s2: point %v does not project onto face %d", p, f))
	}
	switch f {
	case 0:
		return p.Y / p.X, p.Z / p.X
	case 1:
		return -p.X / p.Y, p.Z / p.Y
	case 2:
		return -p.X / p.Z, -p.Y / p.Z
	case 3:
		return p.Z / p.X, p.Y / p.X
	case 4:
		return p.Z / p.Y, -p.X / p.Y
	}
	return -p.Y / p.Z, -p.X / p.Z
}

// XYZToFaceUV returns the face containing p and the (u,v) coordinates on it.
func XYZToFaceUV(p Point) (f int, u, v float64) {
	f = face(p)
	u, v = validFaceXYZToUV(f, p)
	return f, u, v
}

// FaceXYZToUV projects p onto the given face. ok is false when p lies on the
// far side of the face's plane through the origin.
func FaceXYZToUV(f int, p Point) (u, v float64, ok bool) {
	switch f {
	case 0:
		ok = p.X > 0
	case 1:
		ok = p.Y > 0
	case 2:
		ok = p.Z > 0
	case 3:
		ok = p.X < 0
	case 4:
		ok = p.Y < 0
	default:
		ok = p.Z < 0
	}
	if !ok {
		return 0, 0, false
	}
	u, v = validFaceXYZToUV(f, p)
	return u, v, true
}

// FaceUVToXYZ returns the unnormalized point for (u,v) on the given face.
func FaceUVToXYZ(f int, u, v float64) Point {
	switch f {
	case 0:
		return Point{1, u, v}
	case 1:
		return Point{-u, 1, v}
	case 2:
		return Point{-u, -v, 1}
	case 3:
		return Point{-1, -v, -u}
	case 4:
		return Point{v, -1, -u}
	default:
		return Point{v, u, -1}
	}
}

// FaceSiTiToXYZ returns the unnormalized point for (si,ti) on the given face.
func FaceSiTiToXYZ(f int, si, ti uint32) Point {
	return FaceUVToXYZ(f, STToUV(SiTiToST(si)), STToUV(SiTiToST(ti)))
}

// FaceXYZToUVW transforms p into the right-handed (u,v,w) frame of the face.
// The result is not projected onto the face plane.
func FaceXYZToUVW(f int, p Point) Point {
	switch f {
	case 0:
		return Point{p.Y, p.Z, p.X}
	case 1:
		return Point{-p.X, p.Z, p.Y}
	case 2:
		return Point{-p.X, -p.Y, p.Z}
	case 3:
		return Point{-p.Z, -p.Y, -p.X}
	case 4:
		return Point{-p.Z, p.X, -p.Y}
	default:
		return Point{p.Y, p.X, -p.Z}
	}
}

// UNorm returns the normal of the plane through the origin containing the
// edge u = const on the given face. It is not unit length.
func UNorm(f int, u float64) Point {
	switch f {
	case 0:
		return Point{u, -1, 0}
	case 1:
		return Point{1, u, 0}
	case 2:
		return Point{1, 0, u}
	case 3:
		return Point{-u, 0, 1}
	case 4:
		return Point{0, -u, 1}
	default:
		return Point{0, -1, -u}
	}
}

// VNorm returns the normal of the plane through the origin containing the
// edge v = const on the given face. It is not unit length.
func VNorm(f int, v float64) Point {
	switch f {
	case 0:
		return Point{-v, 0, 1}
	case 1:
		return Point{0, -v, 1}
	case 2:
		return Point{0, -1, -v}
	case 3:
		return Point{v, -1, 0}
	case 4:
		return Point{1, v, 0}
	default:
		return Point{1, 0, v}
	}
}

// faceUVWAxes holds the u, v and w axes of each face. w is the face normal.
var faceUVWAxes = [6][3]Point{
	{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}},
	{{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}},
	{{0, 0, -1}, {1, 0, 0}, {0, -1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
}

// faceUVWFaces[face][axis][direction] is the face reached by moving off the
// given face along the positive (1) or negative (0) direction of an axis.
var faceUVWFaces = [6][3][2]int{
	{{4, 1}, {5, 2}, {3, 0}},
	{{0, 3}, {5, 2}, {4, 1}},
	{{0, 3}, {1, 4}, {5, 2}},
	{{2, 5}, {1, 4}, {0, 3}},
	{{2, 5}, {3, 0}, {1, 4}},
	{{4, 1}, {3, 0}, {2, 5}},
}

var faceNorms = [6]Point{
	faceUVWAxes[0][2],
	faceUVWAxes[1][2],
	faceUVWAxes[2][2],
	faceUVWAxes[3][2],
	faceUVWAxes[4][2],
	faceUVWAxes[5][2],
}

// UVWAxis returns the given axis (0=u, 1=v, 2=w) of the face.
func UVWAxis(f, axis int) Point { return faceUVWAxes[f][axis] }

// UVWFace returns the face adjacent to f in the given axis direction.
func UVWFace(f, axis, direction int) int { return faceUVWFaces[f][axis][direction] }

// UAxis returns the u axis of the face.
func UAxis(f int) Point { return faceUVWAxes[f][0] }

// VAxis returns the v axis of the face.
func VAxis(f int) Point { return faceUVWAxes[f][1] }

// Norm returns the unit normal of the face.
func Norm(f int) Point { return faceNorms[f] }
