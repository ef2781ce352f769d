package s2cell

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/owlpinetech/s2cell/s1"
	"github.com/owlpinetech/s2cell/s2"
	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Latitude of the corners of a face, atan(1/sqrt(2)) in degrees.
const faceCornerLat = 35.26438968275466

func TestCellFormats(t *testing.T) {
	assert.Equal(t, []string{"geojson", "ids", "wkt"}, CellFormats())

	_, err := FormatCells("kml", []s2.CellID{s2.CellIDFromFace(0)})
	assert.ErrorIs(t, err, ErrUnknownFormat)

	for _, format := range CellFormats() {
		out, err := FormatCells(format, []s2.CellID{s2.CellIDFromFace(1)})
		require.NoError(t, err, format)
		assert.NotEmpty(t, out, format)

		_, err = FormatCells(format, []s2.CellID{0})
		var cellErr InvalidCellError
		assert.ErrorAs(t, err, &cellErr, format)
	}
}

func TestCellsToText(t *testing.T) {
	out, err := CellsToText([]s2.CellID{s2.CellIDFromFace(0), s2.CellIDFromString("3/02")})
	require.NoError(t, err)
	assert.Equal(t, "1152921504606846976 1 0/\n7277816997830721536 65 3/02\n", string(out))

	out, err = CellsToText(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCellPolygon(t *testing.T) {
	poly := CellPolygon(s2.CellIDFromFace(0))
	want := [][]geom.Coord{{
		{-45, -faceCornerLat},
		{45, -faceCornerLat},
		{45, faceCornerLat},
		{-45, faceCornerLat},
		{-45, -faceCornerLat},
	}}
	if diff := cmp.Diff(want, poly.Coords(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected face polygon (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, poly.NumLinearRings())
	assert.Greater(t, poly.Area(), 0.0, "ring should be counterclockwise")
}

func TestCellPolygonAntimeridian(t *testing.T) {
	// Face 3 is centered on longitude 180.
	for _, id := range []s2.CellID{s2.CellIDFromFace(3), s2.CellIDFromFace(3).Child(0), s2.CellIDFromFace(3).Child(3)} {
		coords := CellPolygon(id).Coords()[0]
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, c := range coords {
			lo = math.Min(lo, c.X())
			hi = math.Max(hi, c.X())
		}
		assert.LessOrEqual(t, hi-lo, 90+1e-9, "cell %v", id)
	}
}

func TestCellsToWKT(t *testing.T) {
	ids := []s2.CellID{s2.CellIDFromFace(0), s2.CellIDFromFace(4).Child(1)}
	str, err := CellsToWKT(ids)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(str, "MULTIPOLYGON"), str)

	g, err := wkt.Unmarshal(str)
	require.NoError(t, err)
	multi, ok := g.(*geom.MultiPolygon)
	require.True(t, ok, "decoded %T", g)
	assert.Equal(t, len(ids), multi.NumPolygons())
	for k, id := range ids {
		if diff := cmp.Diff(CellPolygon(id).Coords(), multi.Polygon(k).Coords(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("polygon %d differs after round trip (-want +got):\n%s", k, diff)
		}
	}

	str, err = CellsToWKT(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(str, "MULTIPOLYGON"), str)
}

func TestCellsToGeoJSON(t *testing.T) {
	ids := []s2.CellID{s2.CellIDFromString("0/21"), s2.CellIDFromString("5/0003")}
	out, err := CellsToGeoJSON(ids)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(out)
	require.NoError(t, err)
	require.Len(t, fc.Features, len(ids))
	for k, f := range fc.Features {
		id := ids[k]
		assert.Equal(t, id.Token(), f.ID)
		assert.Equal(t, id.String(), f.PropertyMustString("cell"))
		assert.Equal(t, float64(id.Level()), f.PropertyMustFloat64("level"))
		assert.Equal(t, float64(id.Face()), f.PropertyMustFloat64("face"))

		require.Equal(t, geojson.GeometryPolygon, f.Geometry.Type)
		ring := f.Geometry.Polygon[0]
		require.Len(t, ring, 5)
		assert.Equal(t, ring[0], ring[4])

		ll := id.LonLat()
		for _, c := range ring[:4] {
			d := s2.LonLat{Lon: c[0], Lat: c[1]}.Normalized().Distance(ll)
			assert.Less(t, d.Radians(), s2.MaxDiagMetric.Value(id.Level()), "vertex %v of %v", c, id)
		}
	}
}

func TestCapToGeoJSON(t *testing.T) {
	center := s2.LonLat{Lon: 10, Lat: 20}
	radius := s1.AngleFromDegrees(10)
	c := s2.CapFromCenterAngle(center.Point(), radius, "zone")

	out, err := CapToGeoJSON(c, 16)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(out)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	pt := fc.Features[0]
	require.Equal(t, geojson.GeometryPoint, pt.Geometry.Type)
	assert.InDelta(t, 10, pt.Geometry.Point[0], 1e-9)
	assert.InDelta(t, 20, pt.Geometry.Point[1], 1e-9)
	assert.InDelta(t, radius.Kilometers(), pt.PropertyMustFloat64("radius_km"), 1e-6)

	poly := fc.Features[1]
	require.Equal(t, geojson.GeometryPolygon, poly.Geometry.Type)
	ring := poly.Geometry.Polygon[0]
	require.Len(t, ring, 17)
	assert.Equal(t, ring[0], ring[16])
	for _, v := range ring {
		d := s2.LonLat{Lon: v[0], Lat: v[1]}.Distance(center)
		assert.InDelta(t, radius.Radians(), d.Radians(), 1e-9)
	}

	out, err = CapToGeoJSON(s2.EmptyCap(0), 8)
	require.NoError(t, err)
	fc, err = geojson.UnmarshalFeatureCollection(out)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)

	out, err = CapToGeoJSON(s2.FullCap(0), 8)
	require.NoError(t, err)
	fc, err = geojson.UnmarshalFeatureCollection(out)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 1)

	_, err = CapToGeoJSON(c, 2)
	assert.Error(t, err)
}
