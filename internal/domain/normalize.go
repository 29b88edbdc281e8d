package domain

// Measurement units.
const (
	UnitMassPerMass   = "ng/kg" // soil and sediment samples
	UnitMassPerVolume = "ng/L"  // the single post-normalization target unit
)

// soilBulkDensity is the generic bulk density used to convert terrestrial
// mass-per-mass values to mass-per-volume, in kg/L.
const soilBulkDensity = 1.3

// NormalizeUnits converts terrestrial ng/kg values to ng/L using the generic
// soil bulk density, then force-sets the unit to ng/L regardless of what the
// row carried before.
//
// The unconditional relabel means rows that were never numerically converted
// (non-terrestrial rows, or terrestrial rows in some other unit) still end up
// labeled ng/L. That matches the source system exactly and downstream
// consumers rely on the uniform label; see the data-quality caveat in the
// package documentation before changing it. The terrestrial condition reads
// the reported location type, not the derived land/sea flag.
func NormalizeUnits(m Measurement) Measurement {
	if m.LocationType == FlagTerrestrial && m.Unit == UnitMassPerMass && m.Value != nil {
		converted := *m.Value * soilBulkDensity
		m.Value = &converted
	}
	m.Unit = UnitMassPerVolume
	return m
}
