package holidays

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/travigo/txc2gtfs/pkg/calendar"
	"github.com/travigo/txc2gtfs/pkg/schedule"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML mapping of holiday name to dates, eg.
//
//	ChristmasDay: [2024-12-25, 2025-12-25]
//
// Groups such as AllBankHolidays are derived from their members unless the file sets them.
func LoadFile(path string) (calendar.BankHolidays, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading holidays file")
	}

	return ParseYAML(contents)
}

func ParseYAML(contents []byte) (calendar.BankHolidays, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding holidays file")
	}

	holidays := builder{}
	for name, dates := range raw {
		for _, value := range dates {
			date, err := time.Parse(schedule.DateFormat, value)
			if err != nil {
				return nil, errors.Wrapf(err, "holiday %s", name)
			}
			holidays.add(name, date)
		}
	}

	holidays.addGroups()

	return holidays.freeze(), nil
}
