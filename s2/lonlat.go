package s2

import (
	"fmt"
	"math"

	"github.com/owlpinetech/s2cell/s1"
)

// LonLat is a geographic coordinate in degrees. Valid coordinates have a
// longitude in [-180, 180] and a latitude in [-90, 90].
type LonLat struct {
	Lon float64
	Lat float64
}

// LonLatFromPoint returns the coordinate of the direction p, which need not
// be unit length.
func LonLatFromPoint(p Point) LonLat {
	// Adding zero turns -0 into +0 so that atan2 returns 0 rather than -π
	// for points on the prime meridian's negative side.
	lon := math.Atan2(p.Y+0, p.X+0)
	lat := math.Atan2(p.Z, math.Hypot(p.X, p.Y))
	return LonLat{Lon: lon * 180 / math.Pi, Lat: lat * 180 / math.Pi}
}

// LonLatFromAngles builds a coordinate from a longitude and latitude angle.
func LonLatFromAngles(lon, lat s1.Angle) LonLat {
	return LonLat{Lon: lon.Degrees(), Lat: lat.Degrees()}
}

// IsValid reports whether the coordinate is within the normal ranges.
func (ll LonLat) IsValid() bool {
	return math.Abs(ll.Lat) <= 90 && math.Abs(ll.Lon) <= 180
}

// Normalized wraps the longitude into [-180, 180) and clamps the latitude
// into [-90, 90].
func (ll LonLat) Normalized() LonLat {
	lon := math.Mod(math.Mod(ll.Lon+180, 360)+360, 360) - 180
	return LonLat{Lon: lon, Lat: clamp(ll.Lat, -90, 90)}
}

// Angles returns the longitude and latitude as angles.
func (ll LonLat) Angles() (lon, lat s1.Angle) {
	return s1.AngleFromDegrees(ll.Lon), s1.AngleFromDegrees(ll.Lat)
}

// Point returns the unit length direction of the coordinate. The coordinate
// must be valid.
func (ll LonLat) Point() Point {
	if !ll.IsValid() {
		panic(fmt.Sprintf("s2: invalid coordinate %v", ll))
	}
	lon, lat := ll.Angles()
	cosLat := math.Cos(lat.Radians())
	return Point{
		cosLat * math.Cos(lon.Radians()),
		cosLat * math.Sin(lon.Radians()),
		math.Sin(lat.Radians()),
	}
}

// Distance returns the great circle angle between the two coordinates using
// the haversine formula.
func (ll LonLat) Distance(o LonLat) s1.Angle {
	lon1, lat1 := ll.Angles()
	lon2, lat2 := o.Angles()
	dlat := math.Sin(0.5 * float64(lat2-lat1))
	dlon := math.Sin(0.5 * float64(lon2-lon1))
	x := dlat*dlat + dlon*dlon*math.Cos(lat1.Radians())*math.Cos(lat2.Radians())
	return s1.Angle(2 * math.Asin(math.Sqrt(math.Min(1, x))))
}

// Bearing returns the initial compass bearing in degrees, in [0, 360), of
// the great circle from ll to o.
func (ll LonLat) Bearing(o LonLat) float64 {
	lon1, lat1 := ll.Angles()
	lon2, lat2 := o.Angles()
	dlon := float64(lon2 - lon1)
	y := math.Sin(dlon) * math.Cos(lat2.Radians())
	x := math.Cos(lat1.Radians())*math.Sin(lat2.Radians()) -
		math.Sin(lat1.Radians())*math.Cos(lat2.Radians())*math.Cos(dlon)
	return math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
}

func (ll LonLat) Add(o LonLat) LonLat { return LonLat{ll.Lon + o.Lon, ll.Lat + o.Lat} }

func (ll LonLat) Sub(o LonLat) LonLat { return LonLat{ll.Lon - o.Lon, ll.Lat - o.Lat} }

func (ll LonLat) Neg() LonLat { return LonLat{-ll.Lon, -ll.Lat} }

// ApproxEqual reports whether both components agree to within 1e-15
// degrees.
func (ll LonLat) ApproxEqual(o LonLat) bool {
	return math.Abs(ll.Lon-o.Lon) <= 1e-15 && math.Abs(ll.Lat-o.Lat) <= 1e-15
}

func (ll LonLat) String() string {
	return fmt.Sprintf("[%f, %f]", ll.Lon, ll.Lat)
}
