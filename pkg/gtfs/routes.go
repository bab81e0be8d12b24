package gtfs

import (
	"regexp"
	"strings"

	"github.com/travigo/txc2gtfs/pkg/schedule"
	"github.com/travigo/txc2gtfs/pkg/util"
)

const maxLongNameLength = 80

var routeTypes = map[schedule.Mode]int{
	schedule.ModeAir:         1100,
	schedule.ModeBus:         3,
	schedule.ModeCoach:       3,
	schedule.ModeFerry:       4,
	schedule.ModeTrain:       2,
	schedule.ModeTram:        0,
	schedule.ModeUnderground: 1,
}

var (
	unexpectedCharacters = regexp.MustCompile(`[^0-9a-zA-Z'\s]`)
	leadingSymbol        = regexp.MustCompile(`^\s*[^0-9a-zA-Z]\s+`)

	streetAbbreviations = strings.NewReplacer(
		"Road", "Rd",
		"Lane", "Ln",
		"Street", "St",
		"Court", "Ct",
		"Station", "Stn",
		"Avenue", "Ave",
		"Centre", "Ctr",
		"Center", "Ctr",
		"Drive", "Dr",
	)
)

func routeType(mode schedule.Mode) int {
	if routeType, exists := routeTypes[mode]; exists {
		return routeType
	}
	return routeTypes[schedule.ModeBus]
}

func cleanPlaceName(name string) string {
	name = unexpectedCharacters.ReplaceAllString(strings.TrimSpace(name), "/")
	return leadingSymbol.ReplaceAllString(name, "")
}

// routeLongName is "origin - destination" unless the service only has placeholder names, in which case the via is used
func routeLongName(service *schedule.Service) string {
	placeholder := strings.EqualFold(strings.TrimSpace(service.Origin), "origin") ||
		strings.EqualFold(strings.TrimSpace(service.Destination), "destination")
	if placeholder && service.Via != "" {
		return service.Via
	}

	longName := cleanPlaceName(service.Origin) + " - " + cleanPlaceName(service.Destination)

	return util.TrimString(streetAbbreviations.Replace(longName), maxLongNameLength)
}

func routeShortName(service *schedule.Service) string {
	for _, line := range service.Lines {
		if line.Name != "" {
			return line.Name
		}
	}
	return service.ServiceCode
}

func (f *Feed) addRoutes(doc *schedule.Schedule) {
	for _, serviceCode := range sortedKeys(doc.Services) {
		service := doc.Services[serviceCode]
		if f.seenRoutes[service.ServiceCode] {
			continue
		}
		f.seenRoutes[service.ServiceCode] = true

		agency := service.RegisteredOperatorRef
		if operator, exists := doc.Operators[service.RegisteredOperatorRef]; exists {
			agency = agencyID(operator)
		}

		f.Routes = append(f.Routes, Route{
			ID:          service.ServiceCode,
			AgencyID:    agency,
			ShortName:   routeShortName(service),
			LongName:    routeLongName(service),
			Type:        routeType(service.Mode),
			Description: service.Description,
		})
	}
}
