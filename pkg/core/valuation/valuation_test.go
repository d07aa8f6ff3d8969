package valuation

import (
	"math"
	"testing"
)

func almostEqual(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestBuildCashFlowStream(t *testing.T) {
	stream := BuildCashFlowStream(2500000, []float64{100000, 105000, 110000}, 3000000)

	if len(stream) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(stream))
	}
	almostEqual(t, "year 0", stream[0], -2500000, 0)
	almostEqual(t, "year 1", stream[1], 100000, 0)
	almostEqual(t, "year 2", stream[2], 105000, 0)
	// Final year carries the operating cash flow plus net sale proceeds.
	almostEqual(t, "year 3", stream[3], 110000+3000000, 0)
}

func TestCalculateIRR_SinglePeriod(t *testing.T) {
	// Invest 100, receive 110 a year later: IRR is 10%.
	got := CalculateIRR([]float64{-100, 110})
	almostEqual(t, "single period IRR", got, 10, 0.01)
}

func TestCalculateIRR_TwoPeriods(t *testing.T) {
	// [-100, 60, 60] returns 120 total over two years, so the IRR is
	// strictly between 0% and 60%. Solving the quadratic by hand gives
	// roughly 13.07%.
	got := CalculateIRR([]float64{-100, 60, 60})
	if got <= 0 || got >= 60 {
		t.Fatalf("IRR = %v%%, want strictly between 0 and 60", got)
	}
	almostEqual(t, "two period IRR", got, 13.07, 0.05)
	// NPV at the solved rate should be ~0.
	r := got / 100
	npv := -100 + 60/(1+r) + 60/math.Pow(1+r, 2)
	almostEqual(t, "NPV at solved rate", npv, 0, 0.001)

	// [-100, 50, 50] merely returns the capital, so the rate solves to ~0%.
	almostEqual(t, "breakeven IRR", CalculateIRR([]float64{-100, 50, 50}), 0, 0.1)
}

func TestCalculateIRR_Degenerate(t *testing.T) {
	if got := CalculateIRR([]float64{-100}); got != 0 {
		t.Errorf("single flow should return 0, got %v", got)
	}
	if got := CalculateIRR(nil); got != 0 {
		t.Errorf("empty stream should return 0, got %v", got)
	}
	// A non-negative initial flow means nothing was invested.
	if got := CalculateIRR([]float64{100, 110}); got != 0 {
		t.Errorf("positive initial flow should return 0, got %v", got)
	}
	if got := CalculateIRR([]float64{0, 110}); got != 0 {
		t.Errorf("zero initial flow should return 0, got %v", got)
	}
}

func TestCalculateIRR_NegativeReturn(t *testing.T) {
	// Invest 100, get back 50: the IRR is -50%.
	got := CalculateIRR([]float64{-100, 50})
	almostEqual(t, "losing deal IRR", got, -50, 0.01)
}

func TestCalculateIRRWithConfig_IterationCap(t *testing.T) {
	// With zero iterations allowed the solver returns the initial guess.
	cfg := DefaultSolverConfig
	cfg.MaxIterations = 0
	got := CalculateIRRWithConfig([]float64{-100, 110}, cfg)
	almostEqual(t, "capped solver returns guess", got, cfg.InitialGuess*100, 1e-9)
}

func TestCalculateIRRWithConfig_Clamp(t *testing.T) {
	// An absurdly profitable stream pushes the rate toward the upper clamp
	// but must never exceed it.
	got := CalculateIRR([]float64{-1, 100000})
	if got > DefaultSolverConfig.MaxRate*100 {
		t.Errorf("IRR %v%% exceeded the clamp of %v%%", got, DefaultSolverConfig.MaxRate*100)
	}
	// A near-total loss is bounded below by the lower clamp.
	got = CalculateIRR([]float64{-100, 0.0001})
	if got < DefaultSolverConfig.MinRate*100 {
		t.Errorf("IRR %v%% fell below the clamp of %v%%", got, DefaultSolverConfig.MinRate*100)
	}
}

func TestCalculateEquityMultiple(t *testing.T) {
	// 3 years of 100k plus 2.7M at sale on 2.5M invested:
	// (300000 + 2700000) / 2500000 = 1.2
	got := CalculateEquityMultiple([]float64{100000, 100000, 100000}, 2700000, 2500000)
	almostEqual(t, "equity multiple", got, 1.2, 1e-9)

	if got := CalculateEquityMultiple([]float64{100}, 100, 0); got != 0 {
		t.Errorf("zero invested should return 0, got %v", got)
	}
	if got := CalculateEquityMultiple(nil, 0, -5); got != 0 {
		t.Errorf("negative invested should return 0, got %v", got)
	}
}

func TestCalculateSaleProceeds(t *testing.T) {
	// Exit NOI 550k at a 6% exit cap: sale price ~9,166,666.67.
	// 2% selling costs ~183,333.33; net ~8,983,333.33.
	// Loan payoff 7M leaves ~1,983,333.33 to the seller.
	p := CalculateSaleProceeds(550000, 6, 2, 7000000)

	almostEqual(t, "sale price", p.SalePrice, 9166666.67, 0.01)
	almostEqual(t, "selling costs", p.SellingCosts, 183333.33, 0.01)
	almostEqual(t, "net sale proceeds", p.NetSaleProceeds, 8983333.33, 0.01)
	almostEqual(t, "loan payoff", p.LoanPayoff, 7000000, 0)
	almostEqual(t, "net to seller", p.NetToSeller, 1983333.33, 0.01)
}

func TestCalculateSaleProceeds_BadCapRate(t *testing.T) {
	p := CalculateSaleProceeds(550000, 0, 2, 7000000)
	almostEqual(t, "zero-cap sale price", p.SalePrice, 0, 0)
	almostEqual(t, "zero-cap net to seller", p.NetToSeller, -7000000, 0)
}
