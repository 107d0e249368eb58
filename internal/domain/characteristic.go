package domain

import (
	"fmt"
	"strings"
)

// Characteristic names one static state attribute that can be plotted against popularity.
type Characteristic string

const (
	MedianAge       Characteristic = "median_age"
	MedianIncome    Characteristic = "median_income"
	PercentDemocrat Characteristic = "percent_democrat"
	AvgTemp         Characteristic = "avg_temp"
	Latitude        Characteristic = "latitude"
	Longitude       Characteristic = "longitude"
)

// Characteristics lists the selectable attributes in dropdown order.
var Characteristics = []Characteristic{MedianAge, MedianIncome, PercentDemocrat, AvgTemp, Latitude, Longitude}

var characteristicLabels = map[Characteristic]string{
	MedianAge:       "Median Age",
	MedianIncome:    "Median Income",
	PercentDemocrat: "Percent Democrat",
	AvgTemp:         "Avg Temp",
	Latitude:        "Latitude",
	Longitude:       "Longitude",
}

// Label returns the human-readable column name used in chart titles.
func (c Characteristic) Label() string {
	if l, ok := characteristicLabels[c]; ok {
		return l
	}
	return string(c)
}

// Value extracts the characteristic from a row.
func (c Characteristic) Value(row EnrichedStateRow) (float64, error) {
	switch c {
	case MedianAge:
		return row.MedianAge, nil
	case MedianIncome:
		return row.MedianIncome, nil
	case PercentDemocrat:
		return row.PercentDemocrat, nil
	case AvgTemp:
		return row.AvgTemp, nil
	case Latitude:
		return row.Latitude, nil
	case Longitude:
		return row.Longitude, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCharacteristic, string(c))
	}
}

// ParseCharacteristic accepts a key ("median_age"), a label ("Median Age"), or the
// legacy "AvgTemp" column name, case-insensitively.
func ParseCharacteristic(s string) (Characteristic, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "avgtemp" {
		return AvgTemp, nil
	}
	for _, c := range Characteristics {
		if norm == string(c) || norm == strings.ToLower(c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCharacteristic, s)
}
