package calc

// =============================================================================
// THRESHOLD CLASSIFIER
//
// Qualitative risk bands over computed DSCR and cap-rate values. The
// constants are exported so the API layer and any downstream display code
// reference the same cutoffs instead of re-declaring them.
// =============================================================================

const (
	// DSCRDangerBelow is the typical minimum lenders require.
	DSCRDangerBelow = 1.25
	// DSCRGoodAbove marks comfortable coverage.
	DSCRGoodAbove = 1.5

	// CapRateLowBelow marks aggressively priced (low yield) deals.
	CapRateLowBelow = 4.0
	// CapRateHighAbove marks high-yield (often higher risk) deals.
	CapRateHighAbove = 8.0
)

// Risk band labels.
const (
	RatingDanger  = "danger"
	RatingWarning = "warning"
	RatingGood    = "good"

	RatingLow    = "low"
	RatingNormal = "normal"
	RatingHigh   = "high"
)

// ClassifyDSCR maps a debt service coverage ratio to a risk band.
// Boundary values fall upward: exactly 1.25 is "warning", exactly 1.5 is
// "good".
func ClassifyDSCR(dscr float64) string {
	switch {
	case dscr < DSCRDangerBelow:
		return RatingDanger
	case dscr < DSCRGoodAbove:
		return RatingWarning
	default:
		return RatingGood
	}
}

// ClassifyCapRate maps a cap rate (whole-number percent) to a pricing band.
func ClassifyCapRate(capRate float64) string {
	switch {
	case capRate < CapRateLowBelow:
		return RatingLow
	case capRate > CapRateHighAbove:
		return RatingHigh
	default:
		return RatingNormal
	}
}
