package validation

import (
	"math"

	"github.com/Saffronius/acpgen/domain/entities"
)

// confidencePenalties maps each diagnostic code to the amount it lowers
// the reported extraction confidence. A code is charged once no matter
// how many findings carry it: ten unsupported condition keys say no more
// about extraction quality than one.
var confidencePenalties = map[entities.Code]float64{
	entities.CodeUnknownService:          0.05,
	entities.CodeMissingResourceSegment:  0.04,
	entities.CodeConditionKeyUnsupported: 0.03,
	entities.CodeInsecureTransport:       0.03,
	entities.CodeLowEvidenceConfidence:   0.03,
	entities.CodeWildcardResource:        0.02,
}

// AdjustConfidence derives the reported extraction confidence as a pure
// reduction over the diagnostic sequence: the base score minus one
// penalty per distinct code present, clamped to [0, 1] and rounded to
// two decimals so repeated runs agree byte for byte.
func AdjustConfidence(base float64, diags []entities.Diagnostic) float64 {
	seen := make(map[entities.Code]bool)
	adjusted := base
	for _, d := range diags {
		if seen[d.Code] {
			continue
		}
		seen[d.Code] = true
		adjusted -= confidencePenalties[d.Code]
	}
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > 1 {
		adjusted = 1
	}
	return math.Round(adjusted*100) / 100
}
