// Package domain models per-state search popularity and the static demographic
// reference data it is compared against.
//
// # Data Sources
//
// Popularity scores come from the Google Trends "interest by region" widget for a
// single search term over the last five years, restricted to the United States.
// Scores are relative (0–100) within the query: 100 marks the state where the term
// had the largest share of all searches.
//
// Reference tables are static CSV files bundled with the service:
//
//	med_age.csv          state,median age              (no header)
//	median_income.csv    State,2017,...                ("71,000" style values)
//	political.csv        State,Democrat,Republican,... (Gallup party affiliation)
//	avg_temp.csv         State,AvgTemp                 (degrees Fahrenheit)
//	state_locations.csv  Place Name,Latitude,Longitude (prepared offline)
//
// # Join Semantics
//
// Every table is keyed by full state name. A state survives only if it appears in
// the popularity result and in every reference table (inner join). States missing
// from any side are dropped silently; the dropped names are reported for logging
// but never as an error. See [Join].
//
// Abbreviations come from the fixed 51-entry [States] table (50 states plus DC),
// never from the provider's response order. [JoinOptions.Positional] reproduces
// the legacy behaviour of zipping the provider output against that table by
// position, which misaligns labels whenever the provider reorders or omits a row.
//
// # Trendline
//
// The scatter chart carries an ordinary least squares line of popularity against
// the chosen characteristic, evaluated at the sorted unique characteristic values.
// Fewer than two distinct x-values cannot define a line; the chart is then built
// without a trendline. See [FitLine].
package domain
