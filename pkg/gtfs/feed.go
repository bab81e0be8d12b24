package gtfs

import (
	"github.com/travigo/txc2gtfs/pkg/calendar"
	"github.com/travigo/txc2gtfs/pkg/journeys"
	"github.com/travigo/txc2gtfs/pkg/naptan"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"golang.org/x/exp/slices"
)

const DefaultTimezone = "Europe/London"

type Options struct {
	AgencyURL string
	Timezone  string
	Language  string

	NaPTAN *naptan.Index
}

// Document is everything produced from one TransXChange document
type Document struct {
	// Key is prefixed to the calendar and trip ids of the document as they restart from 1 in every document
	Key       string
	Schedule  *schedule.Schedule
	Journeys  []journeys.Journey
	Calendars []*calendar.Calendar
}

// Feed collects the rows of every GTFS table. Documents must be added one at a time and in a stable order
// as agencies, routes, stops and shapes are only taken from the first document that defines them.
type Feed struct {
	options Options

	Agencies      []Agency
	Routes        []Route
	Stops         []Stop
	Shapes        []Shape
	Trips         []Trip
	StopTimes     []StopTime
	Calendars     []Calendar
	CalendarDates []CalendarDate

	seenAgencies map[string]bool
	seenRoutes   map[string]bool
	seenStops    map[string]bool
	seenShapes   map[string]bool
}

func NewFeed(options Options) *Feed {
	if options.Timezone == "" {
		options.Timezone = DefaultTimezone
	}

	return &Feed{
		options:      options,
		seenAgencies: map[string]bool{},
		seenRoutes:   map[string]bool{},
		seenStops:    map[string]bool{},
		seenShapes:   map[string]bool{},
	}
}

func (f *Feed) Add(document Document) {
	f.addAgencies(document.Schedule)
	f.addRoutes(document.Schedule)
	f.addStops(document.Schedule)
	f.addShapes(document.Schedule)
	f.addCalendars(document.Key, document.Calendars)
	f.addTrips(document.Key, document.Journeys)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}
