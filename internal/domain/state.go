package domain

import "strings"

// State is a US state (or DC) name with its two-letter postal code.
type State struct {
	Name string
	Code string
}

// States lists the 50 states plus DC in the order the popularity provider
// returns them: alphabetical by name, so DC sits between Delaware and Florida.
var States = []State{
	{"Alabama", "AL"}, {"Alaska", "AK"}, {"Arizona", "AZ"}, {"Arkansas", "AR"},
	{"California", "CA"}, {"Colorado", "CO"}, {"Connecticut", "CT"}, {"Delaware", "DE"},
	{"District of Columbia", "DC"}, {"Florida", "FL"}, {"Georgia", "GA"}, {"Hawaii", "HI"},
	{"Idaho", "ID"}, {"Illinois", "IL"}, {"Indiana", "IN"}, {"Iowa", "IA"},
	{"Kansas", "KS"}, {"Kentucky", "KY"}, {"Louisiana", "LA"}, {"Maine", "ME"},
	{"Maryland", "MD"}, {"Massachusetts", "MA"}, {"Michigan", "MI"}, {"Minnesota", "MN"},
	{"Mississippi", "MS"}, {"Missouri", "MO"}, {"Montana", "MT"}, {"Nebraska", "NE"},
	{"Nevada", "NV"}, {"New Hampshire", "NH"}, {"New Jersey", "NJ"}, {"New Mexico", "NM"},
	{"New York", "NY"}, {"North Carolina", "NC"}, {"North Dakota", "ND"}, {"Ohio", "OH"},
	{"Oklahoma", "OK"}, {"Oregon", "OR"}, {"Pennsylvania", "PA"}, {"Rhode Island", "RI"},
	{"South Carolina", "SC"}, {"South Dakota", "SD"}, {"Tennessee", "TN"}, {"Texas", "TX"},
	{"Utah", "UT"}, {"Vermont", "VT"}, {"Virginia", "VA"}, {"Washington", "WA"},
	{"West Virginia", "WV"}, {"Wisconsin", "WI"}, {"Wyoming", "WY"},
}

var (
	codeByName = make(map[string]string, len(States))
	validCodes = make(map[string]struct{}, len(States))
)

func init() {
	for _, s := range States {
		codeByName[s.Name] = s.Code
		validCodes[s.Code] = struct{}{}
	}
}

// CodeForName returns the postal code for a full state name.
func CodeForName(name string) (string, bool) {
	code, ok := codeByName[strings.TrimSpace(name)]
	return code, ok
}

// IsStateCode reports whether code is one of the 51 known postal codes.
func IsStateCode(code string) bool {
	_, ok := validCodes[code]
	return ok
}

// NormalizePlaceName maps a location-table place name to a state name:
// "Wisconsin, USA" -> "Wisconsin", "Missouri State, USA" -> "Missouri".
func NormalizePlaceName(place string) string {
	name, _, _ := strings.Cut(place, ",")
	name = strings.TrimSpace(name)
	if name == "Missouri State" {
		return "Missouri"
	}
	return name
}
