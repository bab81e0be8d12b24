package naptan

import (
	"strconv"
	"strings"
)

// Stop is one row of the NaPTAN Stops.csv export. Only the columns needed to name and place a stop are kept,
// the rest of the national file is ignored when reading.
type Stop struct {
	AtcoCode           string `csv:"ATCOCode"`
	NaptanCode         string `csv:"NaptanCode"`
	CommonName         string `csv:"CommonName"`
	Street             string `csv:"Street"`
	Indicator          string `csv:"Indicator"`
	LocalityName       string `csv:"LocalityName"`
	ParentLocalityName string `csv:"ParentLocalityName"`
	Longitude          string `csv:"Longitude"`
	Latitude           string `csv:"Latitude"`
}

// City is the parent locality when there is one, otherwise the stop's own locality
func (s *Stop) City() string {
	if s.ParentLocalityName != "" {
		return s.ParentLocalityName
	}

	return s.LocalityName
}

// Coordinates returns the stop's WGS84 longitude and latitude, ok is false if either is missing
func (s *Stop) Coordinates() (longitude float64, latitude float64, ok bool) {
	longitude, lonErr := strconv.ParseFloat(strings.TrimSpace(s.Longitude), 64)
	latitude, latErr := strconv.ParseFloat(strings.TrimSpace(s.Latitude), 64)
	if lonErr != nil || latErr != nil {
		return 0, 0, false
	}

	return longitude, latitude, true
}
