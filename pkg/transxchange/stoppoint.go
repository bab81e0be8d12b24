package transxchange

// AnnotatedStopPointRef is the pre-resolved stop form used by most operator exports
type AnnotatedStopPointRef struct {
	StopPointRef      string
	CommonName        string
	LocalityName      string
	LocalityQualifier string

	Location *Location
}

// StopPoint is the full NaPTAN style stop definition
type StopPoint struct {
	AtcoCode string

	CommonName      string `xml:"Descriptor>CommonName"`
	Indicator       string `xml:"Descriptor>Indicator"`
	NptgLocalityRef string `xml:"Place>NptgLocalityRef"`
	Suburb          string `xml:"Place>Suburb"`
	Town            string `xml:"Place>Town"`

	Location *Location `xml:"Place>Location"`
}

type Location struct {
	LocationInner

	Translation *LocationInner
}

type LocationInner struct {
	Longitude string
	Latitude  string

	GridType string
	Easting  string
	Northing string
}
