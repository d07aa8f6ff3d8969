package calc

import "math"

// =============================================================================
// DEBT SERVICE FUNCTIONS
//
// These return plain float64 values, not Metric. Callers are expected to have
// validated upstream values before reaching financing math, so malformed
// inputs (zero rate, zero term, non-finite intermediate) silently degrade to
// 0 instead of carrying an error channel. The asymmetry with the Metric
// functions is intentional.
// =============================================================================

// CalculateLoanAmount sizes the loan from purchase price and loan-to-value.
// LTV is a whole-number percent.
func CalculateLoanAmount(purchasePrice, ltvPercent float64) float64 {
	if !IsPositiveNumber(purchasePrice) || !IsNonNegativeNumber(ltvPercent) {
		return 0
	}
	return purchasePrice * (ltvPercent / 100)
}

// CalculateDownPayment returns the equity portion of the purchase.
func CalculateDownPayment(purchasePrice, loanAmount float64) float64 {
	if !IsPositiveNumber(purchasePrice) || !IsNonNegativeNumber(loanAmount) {
		return 0
	}
	return purchasePrice - loanAmount
}

// CalculateMonthlyPayment computes the fixed monthly payment of a fully
// amortizing loan using the standard annuity formula:
//
//	P * (r(1+r)^n) / ((1+r)^n - 1)
//
// where r is the monthly rate and n the number of monthly payments. A zero
// loan, rate, or term yields 0 rather than dividing by zero.
func CalculateMonthlyPayment(loanAmount, annualRatePercent float64, amortizationYears int) float64 {
	if !IsPositiveNumber(loanAmount) || !IsPositiveNumber(annualRatePercent) || amortizationYears <= 0 {
		return 0
	}
	r := (annualRatePercent / 100) / 12
	n := float64(amortizationYears) * 12

	compounded := math.Pow(1+r, n)
	payment := loanAmount * (r * compounded) / (compounded - 1)
	if !IsValidNumber(payment) {
		return 0
	}
	return payment
}

// CalculateAnnualDebtService converts a monthly payment to annual debt
// service.
func CalculateAnnualDebtService(monthlyPayment float64) float64 {
	if !IsNonNegativeNumber(monthlyPayment) {
		return 0
	}
	return monthlyPayment * 12
}

// CalculateLoanBalance returns the principal remaining after elapsedYears of
// payments, using the amortization-balance identity
//
//	P * ((1+r)^n - (1+r)^m) / ((1+r)^n - 1)
//
// with m the number of elapsed monthly payments. The balance is floored at 0.
// With a zero rate or term the loan never amortizes under this formula, so
// the original principal is returned.
func CalculateLoanBalance(loanAmount, annualRatePercent float64, amortizationYears, elapsedYears int) float64 {
	if !IsPositiveNumber(loanAmount) {
		return 0
	}
	if !IsPositiveNumber(annualRatePercent) || amortizationYears <= 0 {
		return loanAmount
	}
	r := (annualRatePercent / 100) / 12
	n := float64(amortizationYears) * 12
	m := float64(elapsedYears) * 12

	compoundedFull := math.Pow(1+r, n)
	compoundedElapsed := math.Pow(1+r, m)

	balance := loanAmount * (compoundedFull - compoundedElapsed) / (compoundedFull - 1)
	if !IsValidNumber(balance) {
		return loanAmount
	}
	if balance < 0 {
		return 0
	}
	return balance
}
