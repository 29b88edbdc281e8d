// Package domain models European PFAS contamination measurement data.
//
// # Data Source
//
// Source records originate from an aggregated European PFAS survey dataset:
// one row per study/sample event, exported as JSON Lines. Each row carries
// study metadata (dataset id, date, location, country, coordinates, sector)
// plus a "pfas_values" field that holds a serialized JSON array of individual
// substance measurements taken at that event.
//
// # Source Data Conventions
//
// pfas_values format:
//
//	A string containing a JSON array, e.g.
//	  '[{"substance":"PFOA","value":5,"unit":"ng/kg"},{"substance":"GenX","value":2,"unit":"ng/kg"}]'
//	An event with no measurements carries the literal string "[]" (or an
//	empty string). Such records are excluded from the flat table entirely.
//	Numeric values occasionally arrive JSON-quoted ("5.0"); both encodings
//	are accepted. A string that is not valid JSON is a hard error: the whole
//	run fails rather than silently dropping or including corrupt data.
//
// Year sentinels:
//
//	Several upstream datasets encode "year unknown" as 0 or 1900. Both are
//	coerced to the fallback year (2024 by default) so the year column is
//	always a usable 4-digit value.
//
// Date format:
//
//	"YYYY-MM-DD" when present. Only the month token is consumed, to derive
//	the month name column; anything that does not split into a zero-padded
//	"01".."12" token maps to "Unknown".
//
// Units:
//
//	Measurements arrive as mass-per-volume (ng/L) for water samples and
//	mass-per-mass (ng/kg) for soil and sediment samples. Terrestrial ng/kg
//	values are converted to ng/L using a generic soil bulk density of
//	1.3 kg/L. After conversion the unit column is force-set to ng/L for
//	every row, including rows whose original unit was something else and
//	whose value was never converted. That relabel is a documented
//	data-quality caveat inherited from the source system; downstream
//	consumers depend on the uniform label, so it is preserved as-is.
//	See [NormalizeUnits].
//
// Oceanic/Terrestrial flag:
//
//	Derived per row from the sample coordinates via a land/sea boundary
//	lookup. A lookup failure, or a row without coordinates, degrades to
//	"Unknown" and never aborts the run. See [ClassifyLandSea].
//
// PFA type:
//
//	Coarse chemical grouping of the free-text substance name, assigned by
//	exact membership lookup against the reference tables in
//	taxonomy_tables.go: perfluoroalkyl, then polyfluoroalkyl, then polymer,
//	first match wins, no match means "Unclassified". The column is never
//	empty. See [ClassifyPFAType].
package domain
