package naptan

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/travigo/txc2gtfs/pkg/geo"
	"golang.org/x/net/html/charset"
)

type xmlStopPoint struct {
	Status string `xml:",attr"`

	AtcoCode   string
	NaptanCode string

	Descriptor struct {
		CommonName string
		Street     string
		Indicator  string
	}

	Suburb   string       `xml:"Place>Suburb"`
	Town     string       `xml:"Place>Town"`
	Location *xmlLocation `xml:"Place>Location"`

	StopType string `xml:"StopClassification>StopType"`
}

type xmlLocation struct {
	Easting             string
	Northing            string
	TranslationEasting  string `xml:"Translation>Easting"`
	TranslationNorthing string `xml:"Translation>Northing"`
	Longitude string `xml:"Translation>Longitude"`
	Latitude  string `xml:"Translation>Latitude"`
}

// Entrances are not somewhere a vehicle calls so they never appear in a timetable
func includeStopPoint(stopPoint *xmlStopPoint) bool {
	switch stopPoint.StopType {
	case "RSE", "TMU":
		return false
	}

	return stopPoint.Status != "inactive"
}

// ParseXML reads stop points from a NaPTAN XML document. The XML export does not name localities so the
// town or suburb from the stop's Place is used instead.
func ParseXML(reader io.Reader) ([]*Stop, error) {
	var stops []*Stop
	skipped := 0

	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "decoding NaPTAN xml")
		}

		ty, ok := tok.(xml.StartElement)
		if !ok || ty.Name.Local != "StopPoint" {
			continue
		}

		var stopPoint xmlStopPoint
		if err = d.DecodeElement(&stopPoint, &ty); err != nil {
			return nil, errors.Wrap(err, "decoding NaPTAN StopPoint")
		}

		if !includeStopPoint(&stopPoint) {
			skipped++
			continue
		}

		stops = append(stops, stopPoint.toStop())
	}

	log.Debug().Int("stops", len(stops)).Int("skipped", skipped).Msg("Parsed NaPTAN xml")

	return stops, nil
}

func (s *xmlStopPoint) toStop() *Stop {
	stop := &Stop{
		AtcoCode:     s.AtcoCode,
		NaptanCode:   s.NaptanCode,
		CommonName:   s.Descriptor.CommonName,
		Street:       s.Descriptor.Street,
		Indicator:    s.Descriptor.Indicator,
		LocalityName: s.Town,
	}
	if stop.LocalityName == "" {
		stop.LocalityName = s.Suburb
	}

	if s.Location == nil {
		return stop
	}

	if s.Location.Longitude != "" && s.Location.Latitude != "" {
		stop.Longitude = s.Location.Longitude
		stop.Latitude = s.Location.Latitude
		return stop
	}

	eastingValue, northingValue := s.Location.Easting, s.Location.Northing
	if eastingValue == "" || northingValue == "" {
		eastingValue, northingValue = s.Location.TranslationEasting, s.Location.TranslationNorthing
	}

	easting, eastingErr := strconv.ParseFloat(eastingValue, 64)
	northing, northingErr := strconv.ParseFloat(northingValue, 64)
	if eastingErr == nil && northingErr == nil {
		longitude, latitude := geo.ToWGS84(easting, northing)
		stop.Longitude = strconv.FormatFloat(longitude, 'f', 6, 64)
		stop.Latitude = strconv.FormatFloat(latitude, 'f', 6, 64)
	}

	return stop
}
