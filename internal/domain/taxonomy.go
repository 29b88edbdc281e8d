package domain

// PFA type labels. ClassifyPFAType always returns one of these four.
const (
	PFATypePerfluoroalkyl  = "Perfluoroalkyl PFAs"
	PFATypePolyfluoroalkyl = "Polyfluoroalkyl PFAs"
	PFATypePolymer         = "Polymer PFAs"
	PFATypeUnclassified    = "Unclassified"
)

// PFATypes lists the labels in classification priority order, Unclassified
// last.
var PFATypes = []string{
	PFATypePerfluoroalkyl,
	PFATypePolyfluoroalkyl,
	PFATypePolymer,
	PFATypeUnclassified,
}

// ClassifyPFAType maps a free-text substance name to its PFA group by exact
// membership lookup against the compiled-in reference tables, checked in
// priority order: perfluoroalkyl, polyfluoroalkyl, polymer. First match wins.
// Unrecognized names are not an error; they classify as Unclassified, so the
// column is never empty.
func ClassifyPFAType(substance string) string {
	if _, ok := perfluoroalkylNames[substance]; ok {
		return PFATypePerfluoroalkyl
	}
	if _, ok := polyfluoroalkylNames[substance]; ok {
		return PFATypePolyfluoroalkyl
	}
	if _, ok := polymerNames[substance]; ok {
		return PFATypePolymer
	}
	return PFATypeUnclassified
}
