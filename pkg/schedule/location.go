package schedule

import "github.com/travigo/txc2gtfs/pkg/geo"

type LocationKind int

const (
	LocationNone LocationKind = iota
	LocationLonLat
	LocationGrid
)

// Location holds whichever representation the document used, reprojection happens when it is read
type Location struct {
	Kind LocationKind

	Longitude float64
	Latitude  float64

	Easting  float64
	Northing float64
}

func LonLat(longitude float64, latitude float64) Location {
	return Location{Kind: LocationLonLat, Longitude: longitude, Latitude: latitude}
}

func Grid(easting float64, northing float64) Location {
	return Location{Kind: LocationGrid, Easting: easting, Northing: northing}
}

// WGS84 returns longitude and latitude, or zeros if the location is unknown
func (l Location) WGS84() (float64, float64) {
	switch l.Kind {
	case LocationLonLat:
		return l.Longitude, l.Latitude
	case LocationGrid:
		return geo.ToWGS84(l.Easting, l.Northing)
	default:
		return 0, 0
	}
}
