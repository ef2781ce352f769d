package s2cell

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/owlpinetech/s2cell/s1"
	"github.com/owlpinetech/s2cell/s2"
	geojson "github.com/paulmach/go.geojson"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
	"golang.org/x/exp/maps"
)

// CellFormatter renders a list of cells.
type CellFormatter func(ids []s2.CellID) ([]byte, error)

var cellFormats = map[string]CellFormatter{
	"ids":     CellsToText,
	"geojson": CellsToGeoJSON,
	"wkt": func(ids []s2.CellID) ([]byte, error) {
		str, err := CellsToWKT(ids)
		return []byte(str), err
	},
}

// CellFormats returns the names accepted by FormatCells in sorted order.
func CellFormats() []string {
	names := maps.Keys(cellFormats)
	slices.Sort(names)
	return names
}

func FormatCells(format string, ids []s2.CellID) ([]byte, error) {
	formatter, ok := cellFormats[format]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrUnknownFormat, format, strings.Join(CellFormats(), ", "))
	}
	return formatter(ids)
}

// CellsToText writes one line per cell: the numeric id, the token and the
// face/position string.
func CellsToText(ids []s2.CellID) ([]byte, error) {
	var b strings.Builder
	for _, id := range ids {
		if !id.IsValid() {
			return nil, NewInvalidCellError(id)
		}
		fmt.Fprintf(&b, "%d %s %s\n", uint64(id), id.Token(), id)
	}
	return []byte(b.String()), nil
}

// cellRing returns the closed boundary of the cell in longitude/latitude
// degrees, counterclockwise. Longitudes are unwrapped relative to the first
// vertex so rings crossing the antimeridian stay contiguous.
func cellRing(id s2.CellID) [][]float64 {
	verts := id.Vertices()
	ring := make([][]float64, 0, len(verts)+1)
	for _, v := range verts {
		ll := v.LonLat()
		ring = append(ring, []float64{ll.Lon, ll.Lat})
	}
	unwrapRing(ring)
	return append(ring, ring[0])
}

func unwrapRing(ring [][]float64) {
	for k := 1; k < len(ring); k++ {
		switch d := ring[k][0] - ring[0][0]; {
		case d > 180:
			ring[k][0] -= 360
		case d < -180:
			ring[k][0] += 360
		}
	}
}

// CellPolygon returns the boundary of the cell as a go-geom polygon in
// longitude/latitude degrees.
func CellPolygon(id s2.CellID) *geom.Polygon {
	ring := cellRing(id)
	coords := make([]geom.Coord, len(ring))
	for k, c := range ring {
		coords[k] = geom.Coord{c[0], c[1]}
	}
	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{coords})
}

// CellsToWKT renders the cells as a single WKT MULTIPOLYGON.
func CellsToWKT(ids []s2.CellID) (string, error) {
	polys := make([][][]geom.Coord, 0, len(ids))
	for _, id := range ids {
		if !id.IsValid() {
			return "", NewInvalidCellError(id)
		}
		polys = append(polys, CellPolygon(id).Coords())
	}
	return wkt.Marshal(geom.NewMultiPolygon(geom.XY).MustSetCoords(polys))
}

// CellsToGeoJSON renders the cells as a feature collection with one polygon
// feature per cell.
func CellsToGeoJSON(ids []s2.CellID) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, id := range ids {
		if !id.IsValid() {
			return nil, NewInvalidCellError(id)
		}
		fc.AddFeature(cellFeature(id))
	}
	return fc.MarshalJSON()
}

func cellFeature(id s2.CellID) *geojson.Feature {
	f := geojson.NewPolygonFeature([][][]float64{cellRing(id)})
	f.ID = id.Token()
	f.SetProperty("id", fmt.Sprint(uint64(id)))
	f.SetProperty("cell", id.String())
	f.SetProperty("face", id.Face())
	f.SetProperty("level", id.Level())
	return f
}

// CapToGeoJSON renders the cap as a feature collection holding its center
// and, unless the cap is empty or full, a polygon approximating its boundary
// with the given number of vertices.
func CapToGeoJSON[T any](c s2.Cap[T], vertices int) ([]byte, error) {
	if vertices < 3 {
		return nil, fmt.Errorf("cap boundary needs at least 3 vertices, got %d", vertices)
	}
	fc := geojson.NewFeatureCollection()
	if c.IsEmpty() {
		return fc.MarshalJSON()
	}

	ll := c.Center.LonLat()
	center := geojson.NewPointFeature([]float64{ll.Lon, ll.Lat})
	center.SetProperty("radius_km", c.RadiusAngle().Kilometers())
	center.SetProperty("area_sr", c.Area())
	fc.AddFeature(center)

	if !c.IsFull() {
		fc.AddFeature(geojson.NewPolygonFeature([][][]float64{capRing(c.Center, c.RadiusAngle(), vertices)}))
	}
	return fc.MarshalJSON()
}

// capRing walks the circle at the given angular distance around center,
// counterclockwise when seen from outside the sphere.
func capRing(center s2.Point, radius s1.Angle, vertices int) [][]float64 {
	axis := s2.Point{X: 1}
	if math.Abs(center.X) > 0.9 {
		axis = s2.Point{Y: 1}
	}
	u := center.Cross(axis).Normalize()
	v := center.Cross(u)

	sinR, cosR := math.Sincos(radius.Radians())
	ring := make([][]float64, 0, vertices+1)
	for k := 0; k < vertices; k++ {
		sinT, cosT := math.Sincos(2 * math.Pi * float64(k) / float64(vertices))
		dir := u.MulScalar(cosT).Add(v.MulScalar(sinT))
		ll := center.MulScalar(cosR).Add(dir.MulScalar(sinR)).LonLat()
		ring = append(ring, []float64{ll.Lon, ll.Lat})
	}
	unwrapRing(ring)
	return append(ring, ring[0])
}
