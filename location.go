package s2cell

import (
	"math"

	"github.com/owlpinetech/s2cell/s1"
	"github.com/owlpinetech/s2cell/s2"
)

type Location interface{}

type IndexLocation int

type RingLocation int

type NestLocation int

type UniqueLocation int

type GridLocation struct {
	X int
	Y int
}

// Latitude and longitude in radians.
type SphericalLocation struct {
	Latitude  float64
	Longitude float64
}

// Longitude and latitude in degrees.
type LonLatLocation s2.LonLat

type ProjectedLocation struct {
	X float64
	Y float64
}

type RectangularLocation struct {
	X float64
	Y float64
	Z float64
}

type PointLocation s2.Point

type CellLocation s2.CellID

// Leaf cell coordinates on one cube face.
type FaceIJLocation struct {
	Face int
	I    int
	J    int
}

func (r RectangularLocation) ToSpherical() SphericalLocation {
	ll := s2.LonLatFromPoint(s2.Point{X: r.X, Y: r.Y, Z: r.Z})
	return SphericalLocation{
		Latitude:  s1.AngleFromDegrees(ll.Lat).Radians(),
		Longitude: s1.AngleFromDegrees(ll.Lon).Radians(),
	}
}

func (s SphericalLocation) ToLonLat() s2.LonLat {
	return s2.LonLatFromAngles(s1.Angle(s.Longitude), s1.Angle(s.Latitude))
}

// locationPoint resolves the locations that name a single direction on the
// sphere. The second result is false for any other kind of location.
func locationPoint(loc Location) (s2.Point, bool, error) {
	switch val := loc.(type) {
	case PointLocation:
		p := s2.Point(val)
		if p.IsEmpty() || !isFinite(p.X, p.Y, p.Z) {
			return s2.Point{}, true, NewLocationOutOfBoundsError(loc)
		}
		return p.Normalize(), true, nil
	case RectangularLocation:
		return locationPoint(PointLocation{X: val.X, Y: val.Y, Z: val.Z})
	case LonLatLocation:
		ll := s2.LonLat(val)
		if !ll.IsValid() {
			return s2.Point{}, true, NewLocationOutOfBoundsError(loc)
		}
		return ll.Point(), true, nil
	case SphericalLocation:
		if math.Abs(val.Latitude) > math.Pi/2 || math.Abs(val.Longitude) > math.Pi {
			return s2.Point{}, true, NewLocationOutOfBoundsError(loc)
		}
		return val.ToLonLat().Normalized().Point(), true, nil
	case CellLocation:
		id := s2.CellID(val)
		if !id.IsValid() {
			return s2.Point{}, true, NewInvalidCellError(id)
		}
		return id.Point(), true, nil
	case FaceIJLocation:
		if err := checkFaceIJ(val); err != nil {
			return s2.Point{}, true, err
		}
		return s2.CellIDFromFaceIJ(val.Face, val.I, val.J).Point(), true, nil
	default:
		return s2.Point{}, false, nil
	}
}

func checkFaceIJ(val FaceIJLocation) error {
	if val.Face < 0 || val.Face >= s2.NumFaces ||
		val.I < 0 || val.I >= s2.MaxSize || val.J < 0 || val.J >= s2.MaxSize {
		return NewLocationOutOfBoundsError(val)
	}
	return nil
}

func isFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
