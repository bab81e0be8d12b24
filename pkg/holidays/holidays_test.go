package holidays

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const govUKFixture = `{
  "england-and-wales": {
    "division": "england-and-wales",
    "events": [
      {"title": "New Year’s Day", "date": "2024-01-01", "notes": "", "bunting": true},
      {"title": "Good Friday", "date": "2024-03-29", "notes": "", "bunting": false},
      {"title": "Easter Monday", "date": "2024-04-01", "notes": "", "bunting": true},
      {"title": "Summer bank holiday", "date": "2024-08-26", "notes": "", "bunting": true},
      {"title": "Christmas Day", "date": "2027-12-27", "notes": "Substitute day", "bunting": true}
    ]
  },
  "scotland": {
    "division": "scotland",
    "events": [
      {"title": "2nd January", "date": "2024-01-02", "notes": "", "bunting": true},
      {"title": "Good Friday", "date": "2024-03-29", "notes": "", "bunting": false},
      {"title": "Summer bank holiday", "date": "2024-08-05", "notes": "", "bunting": true}
    ]
  },
  "northern-ireland": {
    "division": "northern-ireland",
    "events": [
      {"title": "St Patrick’s Day", "date": "2024-03-18", "notes": "", "bunting": true}
    ]
  }
}`

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseGovUK(t *testing.T) {
	holidays, err := ParseGovUK([]byte(govUKFixture))
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(2024, time.March, 29)}, holidays["GoodFriday"])
	assert.Equal(t, []time.Time{date(2024, time.August, 26)}, holidays["LateSummerBankHolidayNotScotland"])
	assert.Equal(t, []time.Time{date(2024, time.August, 5)}, holidays["AugustBankHolidayScotland"])
	assert.Equal(t, []time.Time{date(2024, time.January, 1)}, holidays["NewYearsDayHoliday"])
	assert.Equal(t, []time.Time{date(2027, time.December, 27)}, holidays["ChristmasDayHoliday"])
	assert.Equal(t, []time.Time{date(2024, time.March, 18)}, holidays["StPatricksDay"])
}

func TestParseGovUKFixedDays(t *testing.T) {
	holidays, err := ParseGovUK([]byte(govUKFixture))
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(2024, time.December, 25), date(2027, time.December, 25)}, holidays["ChristmasDay"])
	assert.Equal(t, []time.Time{date(2024, time.November, 30), date(2027, time.November, 30)}, holidays["StAndrewsDay"])
	assert.Equal(t, []time.Time{date(2024, time.January, 2), date(2027, time.January, 2)}, holidays["Jan2ndScotland"])
}

func TestParseGovUKGroups(t *testing.T) {
	holidays, err := ParseGovUK([]byte(govUKFixture))
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		date(2024, time.April, 1),
		date(2024, time.August, 5),
		date(2024, time.August, 26),
	}, holidays["HolidayMondays"])

	assert.Equal(t, []time.Time{
		date(2024, time.December, 24),
		date(2024, time.December, 31),
		date(2027, time.December, 24),
		date(2027, time.December, 31),
	}, holidays["EarlyRunOff"])

	assert.Equal(t, []time.Time{
		date(2024, time.December, 25),
		date(2024, time.December, 26),
		date(2027, time.December, 25),
		date(2027, time.December, 26),
	}, holidays["Christmas"])

	assert.Contains(t, holidays["AllBankHolidays"], date(2024, time.March, 29))
	assert.Contains(t, holidays["AllBankHolidays"], date(2027, time.December, 27))
	assert.NotContains(t, holidays["AllHolidaysExceptChristmas"], date(2024, time.December, 25))
}

func TestParseGovUKInvalid(t *testing.T) {
	_, err := ParseGovUK([]byte("{"))
	assert.Error(t, err)

	_, err = ParseGovUK([]byte(`{"scotland": {"events": [{"title": "Good Friday", "date": "29/03/2024"}]}}`))
	assert.Error(t, err)
}

func TestFetchGovUK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(govUKFixture))
	}))
	defer server.Close()

	holidays, err := FetchGovUK(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(2024, time.April, 1)}, holidays["EasterMonday"])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ChristmasDay: ["2025-12-25", "2024-12-25"]
BoxingDay: ["2024-12-26"]
EasterMonday: ["2024-04-01"]
EarlyRunOff: ["2024-12-24"]
`), 0o644))

	holidays, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(2024, time.December, 25), date(2025, time.December, 25)}, holidays["ChristmasDay"])
	assert.Equal(t, []time.Time{
		date(2024, time.December, 25),
		date(2024, time.December, 26),
		date(2025, time.December, 25),
	}, holidays["Christmas"])
	assert.Equal(t, []time.Time{date(2024, time.April, 1)}, holidays["HolidayMondays"])
	assert.Equal(t, []time.Time{date(2024, time.December, 24)}, holidays["EarlyRunOff"])
	assert.NotContains(t, holidays, "DisplacementHolidays")
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte(`ChristmasDay: ["25/12/2024"]`))
	assert.Error(t, err)
}
