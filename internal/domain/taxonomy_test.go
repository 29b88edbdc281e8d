package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPFAType(t *testing.T) {
	tests := []struct {
		name      string
		substance string
		expected  string
	}{
		{"PFOA is perfluoroalkyl", "PFOA", PFATypePerfluoroalkyl},
		{"PFOS is perfluoroalkyl", "PFOS", PFATypePerfluoroalkyl},
		{"long-form synonym", "Pentadecafluorooctanoic", PFATypePerfluoroalkyl},
		{"GenX is polyfluoroalkyl", "GenX", PFATypePolyfluoroalkyl},
		{"FTOH is polyfluoroalkyl", "FTOH", PFATypePolyfluoroalkyl},
		{"ADONA is polyfluoroalkyl", "ADONA", PFATypePolyfluoroalkyl},
		{"PTFE is polymer", "PTFE", PFATypePolymer},
		{"ECTFE is polymer", "ECTFE", PFATypePolymer},
		{"unknown name", "definitely-not-a-pfas", PFATypeUnclassified},
		{"empty name", "", PFATypeUnclassified},
		{"lookup is case sensitive", "pfoa", PFATypeUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPFAType(tt.substance))
		})
	}
}

func TestClassifyPFAType_PriorityOrder(t *testing.T) {
	// Names listed under more than one group resolve to the first matching
	// group: perfluoroalkyl before polyfluoroalkyl before polymer.
	assert.Equal(t, PFATypePerfluoroalkyl, ClassifyPFAType("PFBA"))
	assert.Equal(t, PFATypePerfluoroalkyl, ClassifyPFAType("PFDA"))
	assert.Equal(t, PFATypePerfluoroalkyl, ClassifyPFAType("PFSA"))
}

func TestClassifyPFAType_NeverEmpty(t *testing.T) {
	for _, substance := range []string{"PFOA", "GenX", "PTFE", "", "???", "pf"} {
		label := ClassifyPFAType(substance)
		assert.NotEmpty(t, label)
		assert.Contains(t, PFATypes, label)
	}
}
