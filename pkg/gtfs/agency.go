package gtfs

import "github.com/travigo/txc2gtfs/pkg/schedule"

func agencyID(operator schedule.Operator) string {
	if operator.Code != "" {
		return operator.Code
	}
	return operator.ID
}

func (f *Feed) addAgencies(doc *schedule.Schedule) {
	for _, id := range sortedKeys(doc.Operators) {
		operator := doc.Operators[id]
		agency := agencyID(operator)

		if f.seenAgencies[agency] {
			continue
		}
		f.seenAgencies[agency] = true

		f.Agencies = append(f.Agencies, Agency{
			ID:       agency,
			Name:     operator.Name(),
			URL:      f.options.AgencyURL,
			Timezone: f.options.Timezone,
			Language: f.options.Language,
			NOC:      operator.NationalOperatorCode,
		})
	}
}
