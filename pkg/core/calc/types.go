// Package calc provides deterministic single-period underwriting calculations
// for commercial real estate deals: income, expense, valuation, and debt
// coverage metrics. Every public calculation is a pure function of its
// numeric inputs.
package calc

import "math"

// =============================================================================
// METRIC RESULT WRAPPER
// =============================================================================

// Metric is the uniform result of every single-period calculation.
//
// The Error field is dual-purpose: when IsValid is false it explains a hard
// rejection (the input violated a precondition and Value must not be used for
// further math); when IsValid is true and Error is non-empty it is a soft
// warning (the value is mathematically sound but outside the empirically
// typical range, and remains fully usable). Callers distinguish the two tiers
// by IsValid alone.
type Metric struct {
	Value   float64 `json:"value"`
	IsValid bool    `json:"is_valid"`
	Error   string  `json:"error,omitempty"`
}

// validMetric wraps a clean result.
func validMetric(value float64) Metric {
	return Metric{Value: value, IsValid: true}
}

// warnMetric wraps a usable result that carries an advisory message.
func warnMetric(value float64, warning string) Metric {
	return Metric{Value: value, IsValid: true, Error: warning}
}

// invalidMetric wraps a hard rejection. The value is a best-effort number
// (usually 0) that callers must not feed into further math.
func invalidMetric(value float64, reason string) Metric {
	return Metric{Value: value, IsValid: false, Error: reason}
}

// =============================================================================
// NUMERIC VALIDATORS
// =============================================================================

// IsValidNumber reports whether x is a finite number (rejects NaN and ±Inf).
func IsValidNumber(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsPositiveNumber reports whether x is finite and strictly positive.
func IsPositiveNumber(x float64) bool {
	return IsValidNumber(x) && x > 0
}

// IsNonNegativeNumber reports whether x is finite and >= 0.
func IsNonNegativeNumber(x float64) bool {
	return IsValidNumber(x) && x >= 0
}
