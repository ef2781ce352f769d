package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarpRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		stToUV  func(float64) float64
		uvToST  func(float64) float64
		epsilon float64
	}{
		{"linear", LinearSTToUV, LinearUVToST, 0},
		{"tangent", TangentSTToUV, TangentUVToST, 1e-15},
		{"quadratic", QuadraticSTToUV, QuadraticUVToST, 1e-15},
		{"compiled", STToUV, UVToST, 1e-15},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, -1, tc.stToUV(0), 1e-15)
			assert.InDelta(t, 0, tc.stToUV(0.5), 1e-15)
			assert.InDelta(t, 1, tc.stToUV(1), 1e-15)

			prev := tc.stToUV(0)
			for k := 1; k <= 64; k++ {
				s := float64(k) / 64
				u := tc.stToUV(s)
				if u <= prev {
					t.Errorf("warp is not increasing at s=%v", s)
				}
				prev = u
				assert.InDelta(t, s, tc.uvToST(u), tc.epsilon)
			}
		})
	}
}

func TestSTToIJ(t *testing.T) {
	testCases := []struct {
		s    float64
		want int
	}{
		{0, 0},
		{-0.25, 0},
		{0.5, MaxSize / 2},
		{1, MaxSize - 1},
		{1.5, MaxSize - 1},
		{IJToST(12345), 12345},
	}

	for _, tc := range testCases {
		if got := STToIJ(tc.s); got != tc.want {
			t.Errorf("expected leaf coordinate %d for s=%v, got %d", tc.want, tc.s, got)
		}
	}
}

func TestGridConversions(t *testing.T) {
	assert.Equal(t, 0.0, IJToST(0))
	assert.Equal(t, 1.0, IJToST(MaxSize))
	assert.Equal(t, 0.5, IJToST(MaxSize/2))
	assert.Panics(t, func() { IJToST(-1) })
	assert.Panics(t, func() { IJToST(MaxSize + 1) })

	assert.Equal(t, 1.0, SiTiToST(maxSiTi))
	assert.Equal(t, 0.25, SiTiToST(maxSiTi/4))
	assert.Panics(t, func() { SiTiToST(maxSiTi + 1) })

	assert.Equal(t, uint32(maxSiTi/2), STToSiTi(0.5))
	for _, si := range []uint32{0, 1, 77, maxSiTi / 3, maxSiTi} {
		assert.Equal(t, si, STToSiTi(SiTiToST(si)))
	}
}

func TestFaceUVRoundTrip(t *testing.T) {
	for f := 0; f < NumFaces; f++ {
		p := FaceUVToXYZ(f, 0.3, -0.7)
		gf, u, v := XYZToFaceUV(p)
		assert.Equal(t, f, gf)
		assert.Equal(t, 0.3, u)
		assert.Equal(t, -0.7, v)

		u, v, ok := FaceXYZToUV(f, p)
		assert.True(t, ok)
		assert.Equal(t, 0.3, u)
		assert.Equal(t, -0.7, v)

		_, _, ok = FaceXYZToUV(f, p.Neg())
		assert.False(t, ok, "face %d accepted the antipode", f)

		assert.Equal(t, Norm(f), FaceUVToXYZ(f, 0, 0))
		assert.Equal(t, f, face(Norm(f)))
	}

	assert.Panics(t, func() { validFaceXYZToUV(0, Point{-1, 0, 0}) })
}

func TestFaceAxes(t *testing.T) {
	for f := 0; f < NumFaces; f++ {
		u, v, w := UAxis(f), VAxis(f), Norm(f)
		assert.Equal(t, w, u.Cross(v), "face %d axes are not right handed", f)
		assert.Equal(t, u, UVWAxis(f, 0))
		assert.Equal(t, v, UVWAxis(f, 1))
		assert.Equal(t, w, UVWAxis(f, 2))

		assert.Equal(t, Point{1, 0, 0}, FaceXYZToUVW(f, u))
		assert.Equal(t, Point{0, 1, 0}, FaceXYZToUVW(f, v))
		assert.Equal(t, Point{0, 0, 1}, FaceXYZToUVW(f, w))

		for axis := 0; axis < 3; axis++ {
			dir := UVWAxis(f, axis)
			assert.Equal(t, face(dir), UVWFace(f, axis, 1))
			assert.Equal(t, face(dir.Neg()), UVWFace(f, axis, 0))
		}
	}
}

func TestEdgeNormals(t *testing.T) {
	for f := 0; f < NumFaces; f++ {
		for _, c := range []float64{-1, -0.4, 0, 0.8, 1} {
			for _, along := range []float64{-1, 0.25, 1} {
				assert.InDelta(t, 0, UNorm(f, c).Dot(FaceUVToXYZ(f, c, along)), 1e-15)
				assert.InDelta(t, 0, VNorm(f, c).Dot(FaceUVToXYZ(f, along, c)), 1e-15)
			}
			// Both normals are left of an edge traversed in the positive
			// direction: UNorm faces decreasing u, VNorm increasing v.
			assert.Greater(t, UNorm(f, c).Dot(FaceUVToXYZ(f, c-0.1, 0)), 0.0)
			assert.Greater(t, VNorm(f, c).Dot(FaceUVToXYZ(f, 0, c+0.1)), 0.0)
		}
	}
}
