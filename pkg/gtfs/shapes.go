package gtfs

import "github.com/travigo/txc2gtfs/pkg/schedule"

// addShapes emits every route link vertex of the document. The point sequence is the vertex's position in
// the whole document, which is increasing within each shape.
func (f *Feed) addShapes(doc *schedule.Schedule) {
	definedHere := map[string]bool{}

	for i, routeLink := range doc.RouteLinks {
		if f.seenShapes[routeLink.ID] && !definedHere[routeLink.ID] {
			continue
		}
		definedHere[routeLink.ID] = true

		if routeLink.Location.Kind == schedule.LocationNone {
			continue
		}

		longitude, latitude := routeLink.Location.WGS84()
		f.Shapes = append(f.Shapes, Shape{
			ID:             routeLink.ID,
			PointLatitude:  latitude,
			PointLongitude: longitude,
			PointSequence:  i + 1,
		})
	}

	for id := range definedHere {
		f.seenShapes[id] = true
	}
}
