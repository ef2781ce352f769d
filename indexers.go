package s2cell

import (
	"fmt"
	"math"

	"github.com/owlpinetech/flatsphere"
	"github.com/owlpinetech/healpix"
	"github.com/owlpinetech/s2cell/s2"
)

// Common functionality for converting between various coordinate systems and
// a dense index of pixels or cells.
type LocationIndexer interface {
	ToIndex(Location) (int, error)
	Projection() flatsphere.Projection
	Name() string
	Size() int
}

// Indexes the cells of one level of the S2 hierarchy by their position along
// the Hilbert curve, so consecutive indices are always adjacent cells. An
// optional planar projection lets projected coordinates be resolved too.
type CellIndexer struct {
	Level int `json:"level"`
	proj  flatsphere.Projection
}

func NewCellIndexer(level int, proj flatsphere.Projection) (CellIndexer, error) {
	if level < 0 || level > s2.MaxLevel {
		return CellIndexer{}, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	return CellIndexer{
		Level: level,
		proj:  proj,
	}, nil
}

func (c CellIndexer) Name() string {
	return "s2-cell"
}

func (c CellIndexer) Projection() flatsphere.Projection {
	return c.proj
}

func (c CellIndexer) Size() int {
	return s2.NumFaces << (2 * c.Level)
}

func (c CellIndexer) ToIndex(loc Location) (int, error) {
	switch val := loc.(type) {
	case IndexLocation:
		if val < 0 || int(val) >= c.Size() {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		return int(val), nil
	case CellLocation:
		id := s2.CellID(val)
		if !id.IsValid() {
			return -1, NewInvalidCellError(id)
		}
		if id.Level() < c.Level {
			return -1, fmt.Errorf("%w: cell %v spans many cells at level %d", ErrInvalidLevel, id, c.Level)
		}
		return int(id.Distance(c.Level)), nil
	case FaceIJLocation:
		if err := checkFaceIJ(val); err != nil {
			return -1, err
		}
		return int(s2.CellIDFromFaceIJ(val.Face, val.I, val.J).Distance(c.Level)), nil
	case ProjectedLocation:
		if c.proj == nil {
			return -1, NewLocationNotSupportedError(c.Name(), loc)
		}
		lat, lon := c.proj.Inverse(val.X, val.Y)
		if !isFinite(lat, lon) {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		return c.ToIndex(SphericalLocation{lat, lon})
	}

	p, ok, err := locationPoint(loc)
	if !ok {
		return -1, NewLocationNotSupportedError(c.Name(), loc)
	}
	if err != nil {
		return -1, err
	}
	return int(s2.CellIDFromPoint(p).Distance(c.Level)), nil
}

// CellAt returns the cell at the given index.
func (c CellIndexer) CellAt(index int) (s2.CellID, error) {
	if index < 0 || index >= c.Size() {
		return 0, NewLocationOutOfBoundsError(IndexLocation(index))
	}
	return s2.CellIDFromDistance(uint64(index), c.Level), nil
}

// Cell returns the cell at the indexer's level holding the location.
func (c CellIndexer) Cell(loc Location) (s2.CellID, error) {
	index, err := c.ToIndex(loc)
	if err != nil {
		return 0, err
	}
	return c.CellAt(index)
}

// Pixelizes a sphere using the HEALPix pixelisation method. Every pixel has
// the same area, which makes this a useful companion to the cell indexer
// when comparing coverage. Ring and nested storage schemes are supported.
type HealpixIndexer struct {
	Scheme healpix.HealpixScheme `json:"scheme"`
	Order  healpix.HealpixOrder  `json:"order"`
	proj   flatsphere.HEALPixStandard
}

func NewHealpixIndexer(order healpix.HealpixOrder, scheme healpix.HealpixScheme) HealpixIndexer {
	return HealpixIndexer{
		Scheme: scheme,
		Order:  order,
		proj:   flatsphere.NewHEALPixStandard(),
	}
}

func (h HealpixIndexer) Name() string {
	return "healpix"
}

func (h HealpixIndexer) Projection() flatsphere.Projection {
	return h.proj
}

func (h HealpixIndexer) Size() int {
	return h.Order.Pixels()
}

func (h HealpixIndexer) ToIndex(loc Location) (int, error) {
	switch val := loc.(type) {
	case IndexLocation:
		if val < 0 || int(val) >= h.Size() {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		return int(val), nil
	case RingLocation:
		return h.checkPixel(loc, healpix.RingPixel(int(val)).PixelId(h.Order, h.Scheme))
	case NestLocation:
		return h.checkPixel(loc, healpix.NestPixel(int(val)).PixelId(h.Order, h.Scheme))
	case UniqueLocation:
		return h.checkPixel(loc, healpix.UniquePixel(int(val)).PixelId(h.Order, h.Scheme))
	case ProjectedLocation:
		return h.checkPixel(loc, healpix.NewProjectionCoordinate(val.X, val.Y).PixelId(h.Order, h.Scheme))
	}

	p, ok, err := locationPoint(loc)
	if !ok {
		return -1, NewLocationNotSupportedError(h.Name(), loc)
	}
	if err != nil {
		return -1, err
	}
	lon, lat := p.LonLat().Angles()
	// HEALPix measures longitude over [0, 2π) and latitude from the north pole.
	phi := math.Mod(lon.Radians(), 2*math.Pi)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	if phi >= 2*math.Pi {
		phi = 0
	}
	coord := healpix.NewColatLonCoordinate(math.Pi/2-lat.Radians(), phi)
	return h.checkPixel(loc, coord.PixelId(h.Order, h.Scheme))
}

func (h HealpixIndexer) checkPixel(loc Location, pix int) (int, error) {
	if pix < 0 || pix >= h.Size() {
		return -1, NewLocationOutOfBoundsError(loc)
	}
	return pix, nil
}

// Indexes a rectangular grid laid over the planar bounds of a projection.
// The grid may be cut to a band of latitudes, which projections such as
// Mercator need because they diverge at the poles. Row-major and
// column-major storage are both supported; the origin is the bottom left
// corner of the projected plane.
type PlanarIndexer struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	RowMajor    bool    `json:"rowmajor"`
	NorthCutoff float64 `json:"northCutoff"`
	SouthCutoff float64 `json:"southCutoff"`
	name        string
	yMin        float64 // projected y of the bottom grid row
	yRange      float64 // projected y range covered by the grid
	proj        flatsphere.Projection
}

// NewPlanarIndexer grids the full planar bounds of the projection.
func NewPlanarIndexer(name string, proj flatsphere.Projection, width int, height int, rowMajor bool) PlanarIndexer {
	bounds := proj.PlanarBounds()
	return PlanarIndexer{
		Width:       width,
		Height:      height,
		RowMajor:    rowMajor,
		NorthCutoff: math.Pi / 2,
		SouthCutoff: -math.Pi / 2,
		name:        name,
		yMin:        bounds.YMin,
		yRange:      bounds.Height(),
		proj:        proj,
	}
}

// NewMercatorIndexer grids a Mercator projection between two cutoff
// latitudes in radians.
func NewMercatorIndexer(northCutoff float64, southCutoff float64, width int, height int, rowMajor bool) PlanarIndexer {
	if northCutoff <= southCutoff {
		panic("s2cell: mercator north cutoff smaller than south cutoff")
	}
	proj := flatsphere.NewMercator()
	_, southY := proj.Project(southCutoff, 0)
	_, northY := proj.Project(northCutoff, 0)
	return PlanarIndexer{
		Width:       width,
		Height:      height,
		RowMajor:    rowMajor,
		NorthCutoff: northCutoff,
		SouthCutoff: southCutoff,
		name:        "mercator-cutoff",
		yMin:        southY,
		yRange:      northY - southY,
		proj:        proj,
	}
}

// NewEquirectangularIndexer grids a cylindrical equirectangular projection
// focused at the given latitude.
func NewEquirectangularIndexer(parallel float64, width int, height int, rowMajor bool) PlanarIndexer {
	return NewPlanarIndexer("cylindrical-equirectangular", flatsphere.NewEquirectangular(parallel), width, height, rowMajor)
}

func (p PlanarIndexer) Name() string {
	return p.name
}

func (p PlanarIndexer) Projection() flatsphere.Projection {
	return p.proj
}

func (p PlanarIndexer) Size() int {
	return p.Width * p.Height
}

func (p PlanarIndexer) ToIndex(loc Location) (int, error) {
	switch val := loc.(type) {
	case IndexLocation:
		if val < 0 || int(val) >= p.Size() {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		return int(val), nil
	case GridLocation:
		if val.X < 0 || val.X >= p.Width || val.Y < 0 || val.Y >= p.Height {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		if p.RowMajor {
			return val.Y*p.Width + val.X, nil
		}
		return val.X*p.Height + val.Y, nil
	case ProjectedLocation:
		bounds := p.proj.PlanarBounds()
		xPix := ((val.X - bounds.XMin) / bounds.Width()) * float64(p.Width-1)
		yPix := ((val.Y - p.yMin) / p.yRange) * float64(p.Height-1)
		return p.ToIndex(GridLocation{int(xPix), int(yPix)})
	case SphericalLocation:
		if val.Latitude > p.NorthCutoff || val.Latitude < p.SouthCutoff {
			return -1, NewLocationOutOfBoundsError(loc)
		}
		x, y := p.proj.Project(val.Latitude, val.Longitude)
		return p.ToIndex(ProjectedLocation{x, y})
	}

	pt, ok, err := locationPoint(loc)
	if !ok {
		return -1, NewLocationNotSupportedError(p.Name(), loc)
	}
	if err != nil {
		return -1, err
	}
	lon, lat := pt.LonLat().Angles()
	return p.ToIndex(SphericalLocation{Latitude: lat.Radians(), Longitude: lon.Radians()})
}
