package s2

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// CellID uniquely identifies a cell in the S2 cell decomposition. The top
// three bits hold the face, the following 61 bits the position along the
// Hilbert curve over that face. A cell at level k has its lowest set bit at
// position 2*(30-k), so leaf cells are odd and the level can be recovered
// from the trailing zero count.
//
// The zero value is the invalid "none" id. SentinelCellID compares greater
// than every valid id.
type CellID uint64

// SentinelCellID is larger than any valid cell id.
const SentinelCellID = CellID(^uint64(0))

const (
	faceBits   = 3
	NumFaces   = 6
	posBits    = 2*MaxLevel + 1
	wrapOffset = uint64(NumFaces) << posBits
)

// Rect is an axis aligned rectangle in (u,v) or (s,t) space.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// CellIDFromFace returns the level 0 cell covering the given face.
func CellIDFromFace(face int) CellID {
	return CellID(uint64(face)<<posBits + lsbForLevel(0))
}

// CellIDFromFacePosLevel returns the cell at the given level containing the
// leaf cell with the given face and Hilbert curve position.
func CellIDFromFacePosLevel(face int, pos uint64, level int) CellID {
	return CellID(uint64(face)<<posBits + (pos | 1)).Parent(level)
}

// CellIDFromPoint returns the leaf cell containing p. Points on a cell
// boundary are assigned deterministically to one of the adjacent cells. p
// need not be unit length.
func CellIDFromPoint(p Point) CellID {
	f, u, v := XYZToFaceUV(p)
	return CellIDFromFaceIJ(f, STToIJ(UVToST(u)), STToIJ(UVToST(v)))
}

// CellIDFromLonLat returns the leaf cell containing the given coordinate.
func CellIDFromLonLat(ll LonLat) CellID {
	return CellIDFromPoint(ll.Point())
}

func CellIDFromFaceUV(face int, u, v float64) CellID {
	return CellIDFromFaceST(face, UVToST(u), UVToST(v))
}

func CellIDFromFaceST(face int, s, t float64) CellID {
	return CellIDFromFaceIJ(face, STToIJ(s), STToIJ(t))
}

// CellIDFromFaceIJ returns the leaf cell at the given face and leaf
// coordinates.
func CellIDFromFaceIJ(face, i, j int) CellID {
	// The face occupies the top bits; its low bit seeds the orientation so
	// that the curve is continuous across faces.
	n := uint64(face) << (posBits - 1)
	b := face & swapMask

	for k := 7; k >= 0; k-- {
		const mask = (1 << lookupBits) - 1
		b += ((i >> uint(k*lookupBits)) & mask) << (lookupBits + 2)
		b += ((j >> uint(k*lookupBits)) & mask) << 2
		b = lookupPos[b]
		n |= uint64(b>>2) << (uint(k) * 2 * lookupBits)
		b &= swapMask | invertMask
	}
	return CellID(n*2 + 1)
}

// CellIDFromFaceIJLevel returns the cell at the given level whose
// coordinates in that level's grid are (i,j).
func CellIDFromFaceIJLevel(face, i, j, level int) CellID {
	shift := uint(MaxLevel - level)
	return CellIDFromFaceIJ(face, i<<shift, j<<shift).Parent(level)
}

// CellIDFromDistance is the inverse of Distance.
func CellIDFromDistance(distance uint64, level int) CellID {
	shift := uint(2 * (MaxLevel - level))
	return CellID(distance<<(shift+1) + 1<<shift)
}

// CellIDFromString parses the "f/ddd" form produced by String. It returns
// the zero CellID for malformed input.
func CellIDFromString(s string) CellID {
	level := len(s) - 2
	if level < 0 || level > MaxLevel {
		return 0
	}
	f := int(s[0]) - '0'
	if f < 0 || f >= NumFaces || s[1] != '/' {
		return 0
	}
	id := CellIDFromFace(f)
	for i := 2; i < len(s); i++ {
		pos := int(s[i]) - '0'
		if pos < 0 || pos > 3 {
			return 0
		}
		id = id.Child(pos)
	}
	return id
}

// lsbForLevel returns the lowest set bit of cells at the given level.
func lsbForLevel(level int) uint64 {
	return 1 << uint(2*(MaxLevel-level))
}

// sizeIJ returns the edge length of cells at the given level in leaf cells.
func sizeIJ(level int) int {
	return 1 << uint(MaxLevel-level)
}

// SizeST returns the edge length of cells at the given level in (s,t) space.
func SizeST(level int) float64 {
	return IJToST(sizeIJ(level))
}

func (ci CellID) lsb() uint64 {
	return uint64(ci) & -uint64(ci)
}

// Face returns the cube face of the cell.
func (ci CellID) Face() int { return int(uint64(ci) >> posBits) }

// Pos returns the position along the Hilbert curve over the face.
func (ci CellID) Pos() uint64 { return uint64(ci) & (^uint64(0) >> faceBits) }

// Level returns the subdivision level of the cell, 0 for faces through 30
// for leaves. Panics on the zero id.
func (ci CellID) Level() int {
	if ci == 0 {
		panic("s2: level of the zero cell id")
	}
	return MaxLevel - bits.TrailingZeros64(uint64(ci))>>1
}

// IsValid reports whether ci names an actual cell.
func (ci CellID) IsValid() bool {
	return ci.Face() < NumFaces && ci.lsb()&0x1555555555555555 != 0
}

func (ci CellID) IsLeaf() bool { return uint64(ci)&1 != 0 }

func (ci CellID) IsFace() bool { return uint64(ci)&(lsbForLevel(0)-1) == 0 }

// LowBits returns the least significant 32 bits of the id.
func (ci CellID) LowBits() uint32 { return uint32(ci) }

// HighBits returns the most significant 32 bits of the id.
func (ci CellID) HighBits() uint32 { return uint32(ci >> 32) }

// Child returns the child at the given Hilbert curve position (0..3). The
// cell must be valid and not a leaf.
func (ci CellID) Child(pos int) CellID {
	if !ci.IsValid() || ci.IsLeaf() || pos < 0 || pos > 3 {
		panic(fmt.Sprintf("s2: child %d of cell %d", pos, uint64(ci)))
	}
	newLsb := ci.lsb() >> 2
	return CellID(uint64(ci) - 3*newLsb + 2*uint64(pos)*newLsb)
}

// Parent returns the ancestor of the cell at the given level, which must be
// no greater than the cell's level.
func (ci CellID) Parent(level int) CellID {
	lsb := lsbForLevel(level)
	return CellID((uint64(ci) & -lsb) | lsb)
}

// ImmediateParent returns the parent one level up. The cell must not be a
// face.
func (ci CellID) ImmediateParent() CellID {
	lsb := ci.lsb() << 2
	return CellID((uint64(ci) & -lsb) | lsb)
}

// ChildPosition returns where the ancestor at the given level sits within
// its own parent. Level must be in [1, ci.Level()].
func (ci CellID) ChildPosition(level int) int {
	if !ci.IsValid() || level < 1 || level > ci.Level() {
		panic(fmt.Sprintf("s2: child position at level %d of cell %d", level, uint64(ci)))
	}
	return int(uint64(ci)>>uint(2*(MaxLevel-level)+1)) & 3
}

// Children returns the four children in counterclockwise order for a cell
// with the canonical orientation: positions 0, 3, 2 and 1.
func (ci CellID) Children() [4]CellID {
	return [4]CellID{ci.Child(0), ci.Child(3), ci.Child(2), ci.Child(1)}
}

// ChildrenOriented returns the four children in counterclockwise order for a
// cell with the given Hilbert orientation, as returned by
// FaceIJOrientation. Axis-swapped cells traverse their quadrants in the
// opposite rotational direction, so positions 1 and 3 trade places.
func (ci CellID) ChildrenOriented(orientation int) [4]CellID {
	c := ci.Children()
	if orientation&swapMask != 0 {
		c[1], c[3] = c[3], c[1]
	}
	return c
}

// ChildrenIJ returns the children of the cell at (i,j) in the given level's
// grid, ordered (2i,2j), (2i+1,2j), (2i,2j+1), (2i+1,2j+1).
func ChildrenIJ(face, level, i, j int) [4]CellID {
	i <<= 1
	j <<= 1
	return [4]CellID{
		CellIDFromFaceIJLevel(face, i, j, level+1),
		CellIDFromFaceIJLevel(face, i+1, j, level+1),
		CellIDFromFaceIJLevel(face, i, j+1, level+1),
		CellIDFromFaceIJLevel(face, i+1, j+1, level+1),
	}
}

// Next returns the next cell along the Hilbert curve at the same level,
// wrapping from the end of face 5 to the start of face 0.
func (ci CellID) Next() CellID {
	n := uint64(ci) + ci.lsb()<<1
	if n < wrapOffset {
		return CellID(n)
	}
	return CellID(n - wrapOffset)
}

// Prev returns the previous cell along the Hilbert curve at the same level,
// wrapping from the start of face 0 to the end of face 5.
func (ci CellID) Prev() CellID {
	p := uint64(ci) - ci.lsb()<<1
	if p < wrapOffset {
		return CellID(p)
	}
	return CellID(p + wrapOffset)
}

// RangeMin returns the smallest leaf cell id contained by ci.
func (ci CellID) RangeMin() CellID { return CellID(uint64(ci) - (ci.lsb() - 1)) }

// RangeMax returns the largest leaf cell id contained by ci.
func (ci CellID) RangeMax() CellID { return CellID(uint64(ci) + (ci.lsb() - 1)) }

// Range returns the inclusive range of leaf cell ids contained by ci.
func (ci CellID) Range() (min, max CellID) { return ci.RangeMin(), ci.RangeMax() }

// Contains reports whether oc is ci or one of its descendants.
func (ci CellID) Contains(oc CellID) bool {
	return ci.RangeMin() <= oc && oc <= ci.RangeMax()
}

// Intersects reports whether ci and oc share any leaf cell.
func (ci CellID) Intersects(oc CellID) bool {
	return oc.RangeMin() <= ci.RangeMax() && oc.RangeMax() >= ci.RangeMin()
}

// ContainsPoint reports whether the leaf cell containing p is within ci.
func (ci CellID) ContainsPoint(p Point) bool {
	return ci.Contains(CellIDFromPoint(p))
}

// Distance returns the index of the cell along the Hilbert curve across all
// six faces at the given level. Indices at level k lie in [0, 6*4^k).
func (ci CellID) Distance(level int) uint64 {
	return uint64(ci) >> uint(2*(MaxLevel-level)+1)
}

// FaceIJOrientation returns the face and leaf coordinates of the cell, and
// the Hilbert curve orientation of the cell itself. For cells above leaf
// level the coordinates are those of a leaf adjacent to the cell center.
func (ci CellID) FaceIJOrientation() (f, i, j, orientation int) {
	f = ci.Face()
	orientation = f & swapMask
	// The top chunk holds only 2*30 - 7*2*4 = 4 position bits.
	nbits := MaxLevel - 7*lookupBits
	for k := 7; k >= 0; k-- {
		orientation += (int(uint64(ci)>>uint(k*2*lookupBits+1)) & ((1 << uint(2*nbits)) - 1)) << 2
		orientation = lookupIJ[orientation]
		i += (orientation >> (lookupBits + 2)) << uint(k*lookupBits)
		j += ((orientation >> 2) & ((1 << lookupBits) - 1)) << uint(k*lookupBits)
		orientation &= swapMask | invertMask
		nbits = lookupBits
	}
	// The lookup walks four levels past odd-level cells; undo the extra
	// swap for them.
	if ci.lsb()&0x1111111111111110 != 0 {
		orientation ^= swapMask
	}
	return f, i, j, orientation
}

// FaceIJAtLevel returns the face and the cell's coordinates in the grid of
// the given level.
func (ci CellID) FaceIJAtLevel(level int) (f, i, j int) {
	f, i, j, _ = ci.FaceIJOrientation()
	shift := uint(MaxLevel - level)
	return f, i >> shift, j >> shift
}

// CenterST returns the face and the (s,t) coordinates of the cell center.
func (ci CellID) CenterST() (f int, s, t float64) {
	f, si, ti := ci.faceSiTi()
	return f, SiTiToST(si), SiTiToST(ti)
}

// CenterUV returns the face and the (u,v) coordinates of the cell center.
func (ci CellID) CenterUV() (f int, u, v float64) {
	f, s, t := ci.CenterST()
	return f, STToUV(s), STToUV(t)
}

// faceSiTi returns the cell center in (si,ti) coordinates. Leaves sit at odd
// si/ti values; larger cells at even ones determined by which leaf
// FaceIJOrientation picked next to the center.
func (ci CellID) faceSiTi() (f int, si, ti uint32) {
	f, i, j, _ := ci.FaceIJOrientation()
	delta := 0
	if ci.IsLeaf() {
		delta = 1
	} else if (uint64(i)^(uint64(ci)>>2))&1 != 0 {
		delta = 2
	}
	return f, uint32(2*i + delta), uint32(2*j + delta)
}

// RawPoint returns the unnormalized center of the cell.
func (ci CellID) RawPoint() Point {
	f, u, v := ci.CenterUV()
	return FaceUVToXYZ(f, u, v)
}

// Point returns the unit length center of the cell.
func (ci CellID) Point() Point {
	return ci.RawPoint().Normalize()
}

// LonLat returns the center of the cell as a longitude and latitude.
func (ci CellID) LonLat() LonLat {
	return LonLatFromPoint(ci.RawPoint())
}

// SizeIJ returns the edge length of the cell in leaf cells.
func (ci CellID) SizeIJ() int { return sizeIJ(ci.Level()) }

// BoundsST returns the (s,t) rectangle centered on the cell center with the
// edge length of cells at the given level.
func (ci CellID) BoundsST(level int) Rect {
	_, s, t := ci.CenterST()
	half := 0.5 * SizeST(level)
	return Rect{s - half, t - half, s + half, t + half}
}

// BoundUV returns the bounds of the cell in (u,v) space.
func (ci CellID) BoundUV() Rect {
	_, i, j, _ := ci.FaceIJOrientation()
	return ijLevelToBoundUV(i, j, ci.Level())
}

func ijLevelToBoundUV(i, j, level int) Rect {
	size := sizeIJ(level)
	iLo := i & -size
	jLo := j & -size
	return Rect{
		Left:   STToUV(IJToST(iLo)),
		Bottom: STToUV(IJToST(jLo)),
		Right:  STToUV(IJToST(iLo + size)),
		Top:    STToUV(IJToST(jLo + size)),
	}
}

// VerticesRaw returns the unnormalized cell corners in counterclockwise
// order: lower left, lower right, upper right, upper left in (u,v) space.
func (ci CellID) VerticesRaw() [4]Point {
	f := ci.Face()
	b := ci.BoundUV()
	return [4]Point{
		FaceUVToXYZ(f, b.Left, b.Bottom),
		FaceUVToXYZ(f, b.Right, b.Bottom),
		FaceUVToXYZ(f, b.Right, b.Top),
		FaceUVToXYZ(f, b.Left, b.Top),
	}
}

// Vertices returns the unit length cell corners in the order of VerticesRaw.
func (ci CellID) Vertices() [4]Point {
	v := ci.VerticesRaw()
	for k := range v {
		v[k] = v[k].Normalize()
	}
	return v
}

// EdgesRaw returns the inward facing normals of the great circles through
// each cell edge, edge k running from vertex k to vertex k+1. They are not
// unit length.
func (ci CellID) EdgesRaw() [4]Point {
	f := ci.Face()
	b := ci.BoundUV()
	return [4]Point{
		VNorm(f, b.Bottom),
		UNorm(f, b.Right),
		VNorm(f, b.Top).Neg(),
		UNorm(f, b.Left).Neg(),
	}
}

// Edges returns the unit length versions of EdgesRaw.
func (ci CellID) Edges() [4]Point {
	e := ci.EdgesRaw()
	for k := range e {
		e[k] = e[k].Normalize()
	}
	return e
}

// EdgeNeighbors returns the four cells sharing an edge with ci, at the same
// level, ordered down, right, up, left: the neighbors across j-1, i+1, j+1
// and i-1 in the face's (i,j) frame.
func (ci CellID) EdgeNeighbors() [4]CellID {
	f, i, j, _ := ci.FaceIJOrientation()
	return NeighborsIJ(f, i, j, ci.Level())
}

// NeighborsIJ returns the edge neighbors at the given level of the cell
// containing leaf (i,j) on the face, in the order of EdgeNeighbors.
func NeighborsIJ(face, i, j, level int) [4]CellID {
	size := sizeIJ(level)
	return [4]CellID{
		cellIDFromFaceIJSame(face, i, j-size, j-size >= 0).Parent(level),
		cellIDFromFaceIJSame(face, i+size, j, i+size < MaxSize).Parent(level),
		cellIDFromFaceIJSame(face, i, j+size, j+size < MaxSize).Parent(level),
		cellIDFromFaceIJSame(face, i-size, j, i-size >= 0).Parent(level),
	}
}

// VertexNeighbors returns the cells at the given level that share the
// vertex of ci closest to its center's leaf. level must be less than 30 and
// no greater than ci.Level(). Normally four cells are returned; three when
// the vertex is a cube corner.
func (ci CellID) VertexNeighbors(level int) []CellID {
	if level >= MaxLevel {
		panic(fmt.Sprintf("s2: vertex neighbors at level %d", level))
	}
	halfSize := sizeIJ(level + 1)
	size := halfSize << 1
	f, i, j, _ := ci.FaceIJOrientation()

	var isame, jsame bool
	var ioffset, joffset int
	if i&halfSize != 0 {
		ioffset = size
		isame = i+size < MaxSize
	} else {
		ioffset = -size
		isame = i-size >= 0
	}
	if j&halfSize != 0 {
		joffset = size
		jsame = j+size < MaxSize
	} else {
		joffset = -size
		jsame = j-size >= 0
	}

	results := []CellID{
		ci.Parent(level),
		cellIDFromFaceIJSame(f, i+ioffset, j, isame).Parent(level),
		cellIDFromFaceIJSame(f, i, j+joffset, jsame).Parent(level),
	}
	// At a cube corner only three cells meet.
	if isame || jsame {
		results = append(results, cellIDFromFaceIJSame(f, i+ioffset, j+joffset, isame && jsame).Parent(level))
	}
	return results
}

func cellIDFromFaceIJSame(face, i, j int, sameFace bool) CellID {
	if sameFace {
		return CellIDFromFaceIJ(face, i, j)
	}
	return cellIDFromFaceIJWrap(face, i, j)
}

// cellIDFromFaceIJWrap returns the leaf cell for (i,j) coordinates that may
// lie just outside the face, by projecting through the sphere onto the
// adjacent face.
func cellIDFromFaceIJWrap(face, i, j int) CellID {
	// Pull the coordinates to the leaf just past the boundary.
	i = clamp(i, -1, MaxSize)
	j = clamp(j, -1, MaxSize)

	// Leaf centers are converted with the linear projection, which is exact
	// at the boundary and keeps the point on the right side of the edge.
	const scale = 1.0 / MaxSize
	limit := math.Nextafter(1, 2)
	u := clamp(scale*float64(2*(i-MaxSize/2)+1), -limit, limit)
	v := clamp(scale*float64(2*(j-MaxSize/2)+1), -limit, limit)

	face, u, v = XYZToFaceUV(FaceUVToXYZ(face, u, v))
	return CellIDFromFaceIJ(face, STToIJ(0.5*(u+1)), STToIJ(0.5*(v+1)))
}

// String returns the "f/ddd" form: the face digit, then the child position
// at each level from 1 to the cell's level.
func (ci CellID) String() string {
	if !ci.IsValid() {
		return "Invalid"
	}
	var b strings.Builder
	b.Grow(2 + MaxLevel)
	b.WriteByte('0' + byte(ci.Face()))
	b.WriteByte('/')
	for level := 1; level <= ci.Level(); level++ {
		b.WriteByte('0' + byte(ci.ChildPosition(level)))
	}
	return b.String()
}

// Token returns the id as hex with trailing zeros dropped, which keeps
// coarse cells short. The zero id is "X".
func (ci CellID) Token() string {
	hex := strconv.FormatUint(uint64(ci), 16)
	hex = strings.Repeat("0", 16-len(hex)) + hex
	if hex = strings.TrimRight(hex, "0"); hex == "" {
		return "X"
	}
	return hex
}

// CellIDFromToken parses a token produced by Token. It returns the zero
// CellID for malformed input.
func CellIDFromToken(token string) CellID {
	if len(token) == 0 || len(token) > 16 {
		return 0
	}
	n, err := strconv.ParseUint(token, 16, 64)
	if err != nil {
		return 0
	}
	return CellID(n << (4 * uint(16-len(token))))
}
