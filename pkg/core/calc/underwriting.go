package calc

import "math"

// =============================================================================
// DOMAIN CONSTANTS
// Percent-denominated inputs are whole-number percentages (7 means 7%).
// Division by 100 happens inside each function, never in the caller.
// =============================================================================

const (
	// CapRateTypicalMin / Max bound the band a computed cap rate is expected
	// to fall in. Outside it the result is still valid, just flagged.
	CapRateTypicalMin = 0.0
	CapRateTypicalMax = 50.0

	// CapRateSanityMin / Max bound a cap rate supplied as an input (e.g. a
	// target or exit cap rate) when sanity-checked standalone.
	CapRateSanityMin = 2.0
	CapRateSanityMax = 20.0

	// PricePerSFTypicalMin / Max bound the typical $/SF band for commercial
	// property. Values outside are flagged, not rejected.
	PricePerSFTypicalMin = 10.0
	PricePerSFTypicalMax = 2000.0
)

// =============================================================================
// INCOME & EXPENSE
// =============================================================================

// CalculateNOI computes net operating income: gross income minus operating
// expenses. Negative NOI is a valid output (vacant or distressed property).
func CalculateNOI(grossIncome, operatingExpenses float64) Metric {
	if !IsNonNegativeNumber(grossIncome) {
		return invalidMetric(0, "gross income must be a non-negative number")
	}
	if !IsNonNegativeNumber(operatingExpenses) {
		return invalidMetric(0, "operating expenses must be a non-negative number")
	}
	return validMetric(grossIncome - operatingExpenses)
}

// CalculateEffectiveGrossIncome computes PGI less vacancy loss plus other
// income. Vacancy is a whole-number percent of PGI.
func CalculateEffectiveGrossIncome(potentialGrossIncome, vacancyRate, otherIncome float64) Metric {
	if !IsNonNegativeNumber(potentialGrossIncome) {
		return invalidMetric(0, "potential gross income must be a non-negative number")
	}
	if !IsValidNumber(vacancyRate) || vacancyRate < 0 || vacancyRate > 100 {
		return invalidMetric(0, "vacancy rate must be between 0 and 100")
	}
	if !IsNonNegativeNumber(otherIncome) {
		return invalidMetric(0, "other income must be a non-negative number")
	}
	egi := potentialGrossIncome - potentialGrossIncome*(vacancyRate/100) + otherIncome
	return validMetric(egi)
}

// CalculateManagementFee computes the management fee as a percent of EGI.
func CalculateManagementFee(effectiveGrossIncome, feePercent float64) Metric {
	if !IsNonNegativeNumber(effectiveGrossIncome) {
		return invalidMetric(0, "effective gross income must be a non-negative number")
	}
	if !IsValidNumber(feePercent) || feePercent < 0 || feePercent > 100 {
		return invalidMetric(0, "management fee percent must be between 0 and 100")
	}
	return validMetric(effectiveGrossIncome * (feePercent / 100))
}

// OperatingExpenseItems are the itemized expense categories of a deal.
// A missing category is simply zero.
type OperatingExpenseItems struct {
	Taxes         float64 `json:"taxes"`
	Insurance     float64 `json:"insurance"`
	Utilities     float64 `json:"utilities"`
	ManagementFee float64 `json:"management_fee"`
	Repairs       float64 `json:"repairs"`
	Reserves      float64 `json:"reserves"`
	Other         float64 `json:"other"`
}

// CalculateTotalOperatingExpenses sums the seven expense categories. Any
// category that is not a finite number is treated as zero rather than
// poisoning the total.
func CalculateTotalOperatingExpenses(items OperatingExpenseItems) Metric {
	total := 0.0
	for _, v := range []float64{
		items.Taxes,
		items.Insurance,
		items.Utilities,
		items.ManagementFee,
		items.Repairs,
		items.Reserves,
		items.Other,
	} {
		if IsValidNumber(v) {
			total += v
		}
	}
	return validMetric(total)
}

// =============================================================================
// VALUATION METRICS
// =============================================================================

// CalculateCapRate computes NOI / purchase price as a whole-number percent.
// Purchase price must be strictly positive; NOI may be any finite number,
// including negative. A result outside the typical band is returned valid
// with a warning.
func CalculateCapRate(noi, purchasePrice float64) Metric {
	if !IsValidNumber(noi) {
		return invalidMetric(0, "NOI must be a valid number")
	}
	if !IsPositiveNumber(purchasePrice) {
		return invalidMetric(0, "purchase price must be a positive number")
	}
	rate := (noi / purchasePrice) * 100
	if rate < CapRateTypicalMin || rate > CapRateTypicalMax {
		return warnMetric(rate, "cap rate is outside the typical 0-50% range")
	}
	return validMetric(rate)
}

// CalculatePricePerSquareFoot divides price by building area. Square footage
// must be strictly positive and price must not be negative.
func CalculatePricePerSquareFoot(price, squareFootage float64) Metric {
	if !IsNonNegativeNumber(price) {
		return invalidMetric(0, "price must be a non-negative number")
	}
	if !IsPositiveNumber(squareFootage) {
		return invalidMetric(0, "square footage must be a positive number")
	}
	return validMetric(price / squareFootage)
}

// CalculateGRM computes the gross rent multiplier: purchase price over annual
// gross rent. Both operands must be strictly positive.
func CalculateGRM(purchasePrice, annualGrossRent float64) Metric {
	if !IsPositiveNumber(purchasePrice) {
		return invalidMetric(0, "purchase price must be a positive number")
	}
	if !IsPositiveNumber(annualGrossRent) {
		return invalidMetric(0, "annual gross rent must be a positive number")
	}
	return validMetric(purchasePrice / annualGrossRent)
}

// CalculateValueFromCapRate inverts the cap-rate formula for appraisal use:
// value = NOI / (capRate/100). The cap rate must be strictly positive and at
// most 100.
func CalculateValueFromCapRate(noi, capRate float64) Metric {
	if !IsValidNumber(noi) {
		return invalidMetric(0, "NOI must be a valid number")
	}
	if !IsPositiveNumber(capRate) || capRate > 100 {
		return invalidMetric(0, "cap rate must be a positive number no greater than 100")
	}
	return validMetric(noi / (capRate / 100))
}

// CalculateOccupancyRate computes occupied SF over total SF as a percent.
// Occupied space can never exceed total space.
func CalculateOccupancyRate(occupiedSF, totalSF float64) Metric {
	if !IsNonNegativeNumber(occupiedSF) {
		return invalidMetric(0, "occupied square footage must be a non-negative number")
	}
	if !IsPositiveNumber(totalSF) {
		return invalidMetric(0, "total square footage must be a positive number")
	}
	if occupiedSF > totalSF {
		return invalidMetric(0, "occupied square footage cannot exceed total square footage")
	}
	return validMetric((occupiedSF / totalSF) * 100)
}

// =============================================================================
// RETURN & COVERAGE METRICS
// =============================================================================

// CalculateCashOnCash computes annual cash flow over total cash invested as a
// percent. Cash flow may be negative; the invested amount must be positive.
func CalculateCashOnCash(annualCashFlow, totalCashInvested float64) Metric {
	if !IsValidNumber(annualCashFlow) {
		return invalidMetric(0, "annual cash flow must be a valid number")
	}
	if !IsPositiveNumber(totalCashInvested) {
		return invalidMetric(0, "total cash invested must be a positive number")
	}
	return validMetric((annualCashFlow / totalCashInvested) * 100)
}

// CalculateDSCR computes the debt service coverage ratio: NOI over annual
// debt service. A ratio below the lender threshold is valid but flagged.
func CalculateDSCR(noi, annualDebtService float64) Metric {
	if !IsValidNumber(noi) {
		return invalidMetric(0, "NOI must be a valid number")
	}
	if !IsPositiveNumber(annualDebtService) {
		return invalidMetric(0, "annual debt service must be a positive number")
	}
	ratio := noi / annualDebtService
	if ratio < DSCRDangerBelow {
		return warnMetric(ratio, "DSCR is below the typical lender requirement of 1.25")
	}
	return validMetric(ratio)
}

// CalculateAnnualFromMonthly converts a monthly amount to annual.
func CalculateAnnualFromMonthly(monthly float64) Metric {
	if !IsNonNegativeNumber(monthly) {
		return invalidMetric(0, "monthly amount must be a non-negative number")
	}
	return validMetric(monthly * 12)
}

// =============================================================================
// ROUNDING & STANDALONE SANITY CHECKS
// =============================================================================

// RoundToDecimals rounds half away from zero at the given precision.
// Invalid input rounds to 0.
func RoundToDecimals(value float64, places int) float64 {
	if !IsValidNumber(value) {
		return 0
	}
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// RoundToCents rounds to 2 decimal places, the default display precision.
func RoundToCents(value float64) float64 {
	return RoundToDecimals(value, 2)
}

// ValidateCapRate sanity-checks a cap rate supplied as an input. Hard bounds
// are [0,100]; the 2-20% band is advisory only.
func ValidateCapRate(capRate float64) Metric {
	if !IsValidNumber(capRate) || capRate < 0 || capRate > 100 {
		return invalidMetric(0, "cap rate must be between 0 and 100")
	}
	if capRate < CapRateSanityMin || capRate > CapRateSanityMax {
		return warnMetric(capRate, "cap rate is outside the typical 2-20% range")
	}
	return validMetric(capRate)
}

// ValidatePricePerSF sanity-checks a price-per-square-foot value. Negative
// values are rejected; the $10-$2000 band is advisory only.
func ValidatePricePerSF(pricePerSF float64) Metric {
	if !IsNonNegativeNumber(pricePerSF) {
		return invalidMetric(0, "price per square foot must be a non-negative number")
	}
	if pricePerSF < PricePerSFTypicalMin || pricePerSF > PricePerSFTypicalMax {
		return warnMetric(pricePerSF, "price per square foot is outside the typical $10-$2000 range")
	}
	return validMetric(pricePerSF)
}
