package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulcager/osgridref"
)

// FromGridReference converts a textual OS grid reference into WGS84 longitude and latitude.
// Plain "easting,northing" pairs go through ToWGS84, anything else (eg. "TG 51409 13177")
// is handed to osgridref.
func FromGridReference(reference string) (float64, float64, error) {
	reference = strings.TrimSpace(reference)

	if easting, northing, ok := parseNumericPair(reference); ok {
		longitude, latitude := ToWGS84(easting, northing)
		return longitude, latitude, nil
	}

	gridRef, err := osgridref.ParseOsGridRef(reference)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid reference %q: %w", reference, err)
	}

	latitude, longitude := gridRef.ToLatLon()

	return longitude, latitude, nil
}

func parseNumericPair(reference string) (float64, float64, bool) {
	parts := strings.FieldsFunc(reference, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(parts) != 2 {
		return 0, 0, false
	}

	easting, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	northing, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false
	}

	return easting, northing, true
}
