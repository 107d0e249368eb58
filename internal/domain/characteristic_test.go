package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCharacteristic(t *testing.T) {
	cases := map[string]Characteristic{
		"median_age":       MedianAge,
		"Median Age":       MedianAge,
		"median income":    MedianIncome,
		"Percent Democrat": PercentDemocrat,
		"AvgTemp":          AvgTemp,
		"Avg Temp":         AvgTemp,
		"LATITUDE":         Latitude,
		"longitude":        Longitude,
	}
	for in, want := range cases {
		got, err := ParseCharacteristic(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseCharacteristic_Unknown(t *testing.T) {
	_, err := ParseCharacteristic("Population")
	require.ErrorIs(t, err, ErrUnknownCharacteristic)
}

func TestCharacteristic_Value(t *testing.T) {
	row := EnrichedStateRow{StateReference: california, Popularity: 80}

	v, err := MedianIncome.Value(row)
	require.NoError(t, err)
	assert.Equal(t, 71000.0, v)

	v, err = AvgTemp.Value(row)
	require.NoError(t, err)
	assert.Equal(t, 59.4, v)

	_, err = Characteristic("popularity").Value(row)
	require.ErrorIs(t, err, ErrUnknownCharacteristic)
}
