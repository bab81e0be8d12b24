package transxchange

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
)

func ParseXMLFile(reader io.Reader) (*TransXChange, error) {
	transXChange := TransXChange{
		Sections: map[string]bool{},
	}

	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			// EOF means we're done.
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "decoding token")
		}

		ty, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch ty.Name.Local {
		case "TransXChange":
			for _, attr := range ty.Attr {
				switch attr.Name.Local {
				case "CreationDateTime":
					transXChange.CreationDateTime = attr.Value
				case "ModificationDateTime":
					transXChange.ModificationDateTime = attr.Value
				case "SchemaVersion":
					transXChange.SchemaVersion = attr.Value
				case "FileName":
					transXChange.FileName = attr.Value
				}
			}
		case SectionStopPoints, SectionOperators, SectionRoutes, SectionRouteSections,
			SectionJourneyPatternSections, SectionServices, SectionVehicleJourneys:
			transXChange.Sections[ty.Name.Local] = true
		case "AnnotatedStopPointRef":
			err = decodeInto(d, &ty, &transXChange.AnnotatedStopPointRefs)
		case "StopPoint":
			err = decodeInto(d, &ty, &transXChange.StopPoints)
		case "Operator":
			err = decodeInto(d, &ty, &transXChange.Operators)
		case "LicensedOperator":
			err = decodeInto(d, &ty, &transXChange.LicensedOperators)
		case "Route":
			err = decodeInto(d, &ty, &transXChange.Routes)
		case "Service":
			err = decodeInto(d, &ty, &transXChange.Services)
		case "JourneyPatternSection":
			err = decodeInto(d, &ty, &transXChange.JourneyPatternSections)
		case "RouteSection":
			err = decodeInto(d, &ty, &transXChange.RouteSections)
		case "VehicleJourney":
			err = decodeInto(d, &ty, &transXChange.VehicleJourneys)
		}

		if err != nil {
			return nil, errors.Wrapf(err, "decoding %s", ty.Name.Local)
		}
	}

	log.Debug().Msgf("Successfully parsed document")
	log.Debug().Msgf(" - Last modified %s", transXChange.ModificationDateTime)
	log.Debug().Msgf(" - Contains %d operators", len(transXChange.Operators)+len(transXChange.LicensedOperators))
	log.Debug().Msgf(" - Contains %d services", len(transXChange.Services))
	log.Debug().Msgf(" - Contains %d routes", len(transXChange.Routes))
	log.Debug().Msgf(" - Contains %d route sections", len(transXChange.RouteSections))
	log.Debug().Msgf(" - Contains %d vehicle journeys", len(transXChange.VehicleJourneys))

	return &transXChange, nil
}

func decodeInto[T any](d *xml.Decoder, start *xml.StartElement, items *[]*T) error {
	var item T
	if err := d.DecodeElement(&item, start); err != nil {
		return err
	}

	*items = append(*items, &item)
	return nil
}
