package geo

import (
	"math"
)

// Airy 1830 ellipsoid and the National Grid transverse mercator projection
const (
	airyA = 6377563.396
	airyB = 6356256.909

	wgs84A = 6378137.0
	wgs84B = 6356752.314245

	scaleFactor   = 0.9996012717
	falseEasting  = 400000.0
	falseNorthing = -100000.0
)

var (
	originLatitude  = degreesToRadians(49)
	originLongitude = degreesToRadians(-2)
)

// OSGB36 -> WGS84 seven-parameter Helmert transformation as published by Ordnance Survey.
// Translations are in metres, rotations in arc seconds and scale in parts per million.
var osgb36ToWGS84 = helmertParameters{
	tx: 446.448,
	ty: -125.157,
	tz: 542.060,
	rx: 0.1502,
	ry: 0.2470,
	rz: 0.8421,
	s:  -20.4894,
}

type helmertParameters struct {
	tx, ty, tz float64
	rx, ry, rz float64
	s          float64
}

func (h helmertParameters) inverse() helmertParameters {
	return helmertParameters{
		tx: -h.tx, ty: -h.ty, tz: -h.tz,
		rx: -h.rx, ry: -h.ry, rz: -h.rz,
		s: -h.s,
	}
}

func (h helmertParameters) apply(x, y, z float64) (float64, float64, float64) {
	rx := degreesToRadians(h.rx / 3600)
	ry := degreesToRadians(h.ry / 3600)
	rz := degreesToRadians(h.rz / 3600)
	scale := 1 + h.s/1e6

	return h.tx + scale*x - rz*y + ry*z,
		h.ty + rz*x + scale*y - rx*z,
		h.tz - ry*x + rx*y + scale*z
}

// ToWGS84 converts a National Grid easting/northing pair into WGS84 longitude and latitude in degrees
func ToWGS84(easting float64, northing float64) (float64, float64) {
	latitude, longitude := gridToLatLon(easting, northing)

	x, y, z := toCartesian(latitude, longitude, airyA, airyB)
	x, y, z = osgb36ToWGS84.apply(x, y, z)
	latitude, longitude = fromCartesian(x, y, z, wgs84A, wgs84B)

	return radiansToDegrees(longitude), radiansToDegrees(latitude)
}

// ToOSGB36 converts WGS84 longitude and latitude in degrees into a National Grid easting/northing pair
func ToOSGB36(longitude float64, latitude float64) (float64, float64) {
	x, y, z := toCartesian(degreesToRadians(latitude), degreesToRadians(longitude), wgs84A, wgs84B)
	x, y, z = osgb36ToWGS84.inverse().apply(x, y, z)
	lat, lon := fromCartesian(x, y, z, airyA, airyB)

	return latLonToGrid(lat, lon)
}

// meridionalArc is the developed arc of the meridian from the true origin to latitude
func meridionalArc(latitude float64) float64 {
	n := (airyA - airyB) / (airyA + airyB)
	n2 := n * n
	n3 := n * n * n

	dLat := latitude - originLatitude
	sLat := latitude + originLatitude

	return airyB * scaleFactor * ((1+n+(5.0/4)*n2+(5.0/4)*n3)*dLat -
		(3*n+3*n2+(21.0/8)*n3)*math.Sin(dLat)*math.Cos(sLat) +
		((15.0/8)*n2+(15.0/8)*n3)*math.Sin(2*dLat)*math.Cos(2*sLat) -
		(35.0/24)*n3*math.Sin(3*dLat)*math.Cos(3*sLat))
}

// gridToLatLon returns OSGB36 latitude and longitude in radians
func gridToLatLon(easting float64, northing float64) (float64, float64) {
	e2 := 1 - (airyB*airyB)/(airyA*airyA)

	latitude := originLatitude
	m := 0.0
	for i := 0; i < 100; i++ {
		latitude = (northing-falseNorthing-m)/(airyA*scaleFactor) + latitude
		m = meridionalArc(latitude)

		if math.Abs(northing-falseNorthing-m) < 0.00001 {
			break
		}
	}

	sinLat := math.Sin(latitude)
	cosLat := math.Cos(latitude)
	tanLat := math.Tan(latitude)
	tan2 := tanLat * tanLat
	tan4 := tan2 * tan2
	tan6 := tan4 * tan2

	nu := airyA * scaleFactor / math.Sqrt(1-e2*sinLat*sinLat)
	rho := airyA * scaleFactor * (1 - e2) / math.Pow(1-e2*sinLat*sinLat, 1.5)
	eta2 := nu/rho - 1

	nu3 := nu * nu * nu
	nu5 := nu3 * nu * nu
	nu7 := nu5 * nu * nu

	vii := tanLat / (2 * rho * nu)
	viii := tanLat / (24 * rho * nu3) * (5 + 3*tan2 + eta2 - 9*tan2*eta2)
	ix := tanLat / (720 * rho * nu5) * (61 + 90*tan2 + 45*tan4)
	x := 1 / (cosLat * nu)
	xi := 1 / (cosLat * 6 * nu3) * (nu/rho + 2*tan2)
	xii := 1 / (cosLat * 120 * nu5) * (5 + 28*tan2 + 24*tan4)
	xiia := 1 / (cosLat * 5040 * nu7) * (61 + 662*tan2 + 1320*tan4 + 720*tan6)

	dE := easting - falseEasting
	dE2 := dE * dE
	dE3 := dE2 * dE
	dE4 := dE3 * dE
	dE5 := dE4 * dE
	dE6 := dE5 * dE
	dE7 := dE6 * dE

	lat := latitude - vii*dE2 + viii*dE4 - ix*dE6
	lon := originLongitude + x*dE - xi*dE3 + xii*dE5 - xiia*dE7

	return lat, lon
}

// latLonToGrid takes OSGB36 latitude and longitude in radians
func latLonToGrid(latitude float64, longitude float64) (float64, float64) {
	e2 := 1 - (airyB*airyB)/(airyA*airyA)

	sinLat := math.Sin(latitude)
	cosLat := math.Cos(latitude)
	cos3 := cosLat * cosLat * cosLat
	cos5 := cos3 * cosLat * cosLat
	tanLat := math.Tan(latitude)
	tan2 := tanLat * tanLat
	tan4 := tan2 * tan2

	nu := airyA * scaleFactor / math.Sqrt(1-e2*sinLat*sinLat)
	rho := airyA * scaleFactor * (1 - e2) / math.Pow(1-e2*sinLat*sinLat, 1.5)
	eta2 := nu/rho - 1

	i := meridionalArc(latitude) + falseNorthing
	ii := (nu / 2) * sinLat * cosLat
	iii := (nu / 24) * sinLat * cos3 * (5 - tan2 + 9*eta2)
	iiia := (nu / 720) * sinLat * cos5 * (61 - 58*tan2 + tan4)
	iv := nu * cosLat
	v := (nu / 6) * cos3 * (nu/rho - tan2)
	vi := (nu / 120) * cos5 * (5 - 18*tan2 + tan4 + 14*eta2 - 58*tan2*eta2)

	dL := longitude - originLongitude
	dL2 := dL * dL
	dL3 := dL2 * dL
	dL4 := dL3 * dL
	dL5 := dL4 * dL
	dL6 := dL5 * dL

	northing := i + ii*dL2 + iii*dL4 + iiia*dL6
	easting := falseEasting + iv*dL + v*dL3 + vi*dL5

	return easting, northing
}

// toCartesian assumes zero ellipsoidal height
func toCartesian(latitude float64, longitude float64, a float64, b float64) (float64, float64, float64) {
	e2 := 1 - (b*b)/(a*a)
	sinLat := math.Sin(latitude)
	nu := a / math.Sqrt(1-e2*sinLat*sinLat)

	x := nu * math.Cos(latitude) * math.Cos(longitude)
	y := nu * math.Cos(latitude) * math.Sin(longitude)
	z := (1 - e2) * nu * sinLat

	return x, y, z
}

func fromCartesian(x float64, y float64, z float64, a float64, b float64) (float64, float64) {
	e2 := 1 - (b*b)/(a*a)
	p := math.Sqrt(x*x + y*y)

	latitude := math.Atan2(z, p*(1-e2))
	for i := 0; i < 100; i++ {
		sinLat := math.Sin(latitude)
		nu := a / math.Sqrt(1-e2*sinLat*sinLat)
		next := math.Atan2(z+e2*nu*sinLat, p)

		if math.Abs(next-latitude) < 1e-12 {
			latitude = next
			break
		}
		latitude = next
	}

	return latitude, math.Atan2(y, x)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func radiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
