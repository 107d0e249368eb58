package domain

// refMap is a ReferenceLookup over a plain map.
type refMap map[string]StateReference

func (m refMap) Reference(state string) (StateReference, bool) {
	r, ok := m[state]
	return r, ok
}

var california = StateReference{
	State:           "California",
	Abbreviation:    "CA",
	MedianAge:       36.0,
	MedianIncome:    71000,
	PercentDemocrat: 61.7,
	AvgTemp:         59.4,
	Latitude:        36.778259,
	Longitude:       -119.417931,
}

var texas = StateReference{
	State:           "Texas",
	Abbreviation:    "TX",
	MedianAge:       34.4,
	MedianIncome:    59206,
	PercentDemocrat: 45.0,
	AvgTemp:         64.8,
	Latitude:        31.968599,
	Longitude:       -99.901813,
}
