package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridToLatLonOrdnanceSurveyExample(t *testing.T) {
	// Worked example from "A guide to coordinate systems in Great Britain"
	latitude, longitude := gridToLatLon(651409.903, 313177.270)

	assert.InDelta(t, 52+39.0/60+27.2531/3600, radiansToDegrees(latitude), 1e-7)
	assert.InDelta(t, 1+43.0/60+4.5177/3600, radiansToDegrees(longitude), 1e-7)
}

func TestLatLonToGridOrdnanceSurveyExample(t *testing.T) {
	easting, northing := latLonToGrid(
		degreesToRadians(52+39.0/60+27.2531/3600),
		degreesToRadians(1+43.0/60+4.5177/3600),
	)

	assert.InDelta(t, 651409.903, easting, 0.01)
	assert.InDelta(t, 313177.270, northing, 0.01)
}

func TestToWGS84(t *testing.T) {
	for _, tc := range []struct {
		name      string
		easting   float64
		northing  float64
		longitude float64
		latitude  float64
	}{
		{"norfolk", 651409.903, 313177.270, 1.716051946, 52.657978596},
		{"charing cross", 530034, 180381, -0.127724044, 51.507406924},
		{"edinburgh", 325904, 673811, -3.188139112, 55.951592495},
		{"brecon", 355679, 218477, -2.645031209, 51.863103456},
		{"central meridian", 400000, 100000, -2.001367153, 50.799560602},
		{"plymouth", 263000, 45000, -3.924530361, 50.289012921},
	} {
		t.Run(tc.name, func(t *testing.T) {
			longitude, latitude := ToWGS84(tc.easting, tc.northing)

			assert.InDelta(t, tc.longitude, longitude, 1e-6)
			assert.InDelta(t, tc.latitude, latitude, 1e-6)
		})
	}
}

func TestToWGS84PublishedValue(t *testing.T) {
	// 52°39′28.7230″N 1°42′57.7870″E
	longitude, latitude := ToWGS84(651409.903, 313177.270)

	assert.InDelta(t, 52+39.0/60+28.7230/3600, latitude, 1e-5)
	assert.InDelta(t, 1+42.0/60+57.7870/3600, longitude, 1e-5)
}

func TestToWGS84Deterministic(t *testing.T) {
	lon1, lat1 := ToWGS84(355679, 218477)
	lon2, lat2 := ToWGS84(355679, 218477)

	assert.Equal(t, lon1, lon2)
	assert.Equal(t, lat1, lat2)
}

func TestRoundTrip(t *testing.T) {
	for _, point := range [][2]float64{
		{651409.903, 313177.270},
		{530034, 180381},
		{325904, 673811},
		{263000, 45000},
	} {
		longitude, latitude := ToWGS84(point[0], point[1])
		easting, northing := ToOSGB36(longitude, latitude)

		// The Helmert inverse is only first order accurate so allow a few centimetres
		assert.InDelta(t, point[0], easting, 0.05)
		assert.InDelta(t, point[1], northing, 0.05)
	}
}

func TestFromGridReferenceNumeric(t *testing.T) {
	longitude, latitude, err := FromGridReference("530034,180381")

	assert.NoError(t, err)
	assert.InDelta(t, -0.127724044, longitude, 1e-6)
	assert.InDelta(t, 51.507406924, latitude, 1e-6)

	longitude, latitude, err = FromGridReference(" 530034 180381 ")

	assert.NoError(t, err)
	assert.InDelta(t, -0.127724044, longitude, 1e-6)
	assert.InDelta(t, 51.507406924, latitude, 1e-6)
}
