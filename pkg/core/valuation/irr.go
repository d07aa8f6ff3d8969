// Package valuation computes disposition proceeds and discounted-cash-flow
// return metrics (IRR, equity multiple) for a completed projection.
package valuation

import (
	"math"

	"deal_underwriting/pkg/core/calc"
)

// SolverConfig holds the Newton-Raphson parameters for the IRR root-finder.
// These were previously hardcoded magic numbers; keeping them injectable lets
// tests force non-convergence paths deterministically.
type SolverConfig struct {
	// InitialGuess is the starting discount rate (decimal, 0.10 = 10%).
	InitialGuess float64

	// MaxIterations caps the Newton loop.
	MaxIterations int

	// Tolerance is the |NPV| threshold for convergence.
	Tolerance float64

	// MinRate / MaxRate clamp the rate each iteration to prevent divergence.
	// -0.99 keeps (1+r) strictly positive.
	MinRate float64
	MaxRate float64
}

// DefaultSolverConfig provides the production solver parameters.
var DefaultSolverConfig = SolverConfig{
	InitialGuess:  0.10,
	MaxIterations: 100,
	Tolerance:     0.0001,
	MinRate:       -0.99,
	MaxRate:       10.0,
}

// BuildCashFlowStream assembles the IRR input stream: index 0 is the negative
// initial cash investment, indices 1..N are each year's cash flow, and the
// final year is incremented by net sale proceeds.
func BuildCashFlowStream(initialInvestment float64, yearlyCashFlows []float64, netSaleProceeds float64) []float64 {
	stream := make([]float64, 0, len(yearlyCashFlows)+1)
	stream = append(stream, -initialInvestment)
	stream = append(stream, yearlyCashFlows...)
	if len(yearlyCashFlows) > 0 {
		stream[len(stream)-1] += netSaleProceeds
	}
	return stream
}

// CalculateIRR solves for the discount rate at which the stream's NPV is
// zero and returns it as a whole-number percent. Degenerate inputs (fewer
// than 2 flows, or a non-negative initial flow) return 0 without iterating.
func CalculateIRR(cashFlows []float64) float64 {
	return CalculateIRRWithConfig(cashFlows, DefaultSolverConfig)
}

// CalculateIRRWithConfig is CalculateIRR with explicit solver parameters.
//
// Newton-Raphson: r <- r - NPV(r)/NPV'(r), clamped to [MinRate, MaxRate]
// each iteration. A zero derivative stops the iteration and returns the
// current estimate; there is no bisection fallback.
func CalculateIRRWithConfig(cashFlows []float64, cfg SolverConfig) float64 {
	if len(cashFlows) < 2 || cashFlows[0] >= 0 {
		return 0
	}

	rate := cfg.InitialGuess
	for i := 0; i < cfg.MaxIterations; i++ {
		npv, derivative := npvAndDerivative(cashFlows, rate)
		if math.Abs(npv) < cfg.Tolerance {
			break
		}
		if derivative == 0 {
			break
		}
		rate -= npv / derivative
		if rate < cfg.MinRate {
			rate = cfg.MinRate
		} else if rate > cfg.MaxRate {
			rate = cfg.MaxRate
		}
	}

	if !calc.IsValidNumber(rate) {
		return 0
	}
	return rate * 100
}

// npvAndDerivative evaluates NPV(r) = sum CF_t/(1+r)^t and its first
// derivative in one pass.
func npvAndDerivative(cashFlows []float64, rate float64) (npv, derivative float64) {
	for t, cf := range cashFlows {
		ft := float64(t)
		discount := math.Pow(1+rate, ft)
		npv += cf / discount
		if t > 0 {
			derivative -= ft * cf / math.Pow(1+rate, ft+1)
		}
	}
	return npv, derivative
}

// CalculateEquityMultiple returns total cash returned over total cash
// invested: (sum of yearly cash flows + net sale proceeds) / invested.
// A zero or invalid investment returns 0.
func CalculateEquityMultiple(yearlyCashFlows []float64, netSaleProceeds, totalInvested float64) float64 {
	if !calc.IsPositiveNumber(totalInvested) {
		return 0
	}
	total := netSaleProceeds
	for _, cf := range yearlyCashFlows {
		total += cf
	}
	return total / totalInvested
}
