package calc

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

func TestValidators(t *testing.T) {
	if !IsValidNumber(0) || !IsValidNumber(-5.5) {
		t.Error("finite numbers should be valid")
	}
	if IsValidNumber(math.NaN()) || IsValidNumber(math.Inf(1)) || IsValidNumber(math.Inf(-1)) {
		t.Error("NaN and infinities should be invalid")
	}
	if IsPositiveNumber(0) || !IsPositiveNumber(0.0001) {
		t.Error("IsPositiveNumber should require x > 0")
	}
	if !IsNonNegativeNumber(0) || IsNonNegativeNumber(-0.0001) {
		t.Error("IsNonNegativeNumber should require x >= 0")
	}
}

func TestCalculateNOI(t *testing.T) {
	// PGI 600k, expenses 100k -> NOI 500k
	m := CalculateNOI(600000, 100000)
	if !m.IsValid {
		t.Fatalf("unexpected rejection: %s", m.Error)
	}
	almostEqual(t, "NOI", m.Value, 500000, 1e-9)

	// Negative NOI is a valid output (distressed property)
	m = CalculateNOI(50000, 80000)
	if !m.IsValid {
		t.Fatalf("negative NOI should still be valid, got: %s", m.Error)
	}
	almostEqual(t, "negative NOI", m.Value, -30000, 1e-9)

	// Negative inputs are hard rejections
	if CalculateNOI(-1, 100).IsValid {
		t.Error("negative gross income should be rejected")
	}
	if CalculateNOI(100, -1).IsValid {
		t.Error("negative expenses should be rejected")
	}
	if CalculateNOI(math.NaN(), 100).IsValid {
		t.Error("NaN gross income should be rejected")
	}
}

func TestCalculateEffectiveGrossIncome(t *testing.T) {
	// PGI 100k at 7% vacancy plus 5k other income:
	// 100000 - 7000 + 5000 = 98000
	m := CalculateEffectiveGrossIncome(100000, 7, 5000)
	if !m.IsValid {
		t.Fatalf("unexpected rejection: %s", m.Error)
	}
	almostEqual(t, "EGI", m.Value, 98000, 1e-9)

	if CalculateEffectiveGrossIncome(100000, 120, 0).IsValid {
		t.Error("vacancy above 100% should be rejected")
	}
	if CalculateEffectiveGrossIncome(100000, -1, 0).IsValid {
		t.Error("negative vacancy should be rejected")
	}
}

func TestCalculateManagementFee(t *testing.T) {
	m := CalculateManagementFee(98000, 5)
	almostEqual(t, "management fee", m.Value, 4900, 1e-9)
	if !m.IsValid {
		t.Errorf("unexpected rejection: %s", m.Error)
	}
	if CalculateManagementFee(98000, 101).IsValid {
		t.Error("fee percent above 100 should be rejected")
	}
}

func TestCalculateTotalOperatingExpenses(t *testing.T) {
	items := OperatingExpenseItems{
		Taxes:     12000,
		Insurance: 4000,
		Utilities: 6000,
		Repairs:   3000,
	}
	// Missing categories count as zero.
	m := CalculateTotalOperatingExpenses(items)
	almostEqual(t, "total opex", m.Value, 25000, 1e-9)

	// A NaN category is skipped rather than poisoning the sum.
	items.Other = math.NaN()
	m = CalculateTotalOperatingExpenses(items)
	almostEqual(t, "total opex with NaN category", m.Value, 25000, 1e-9)
}

func TestCalculateCapRate(t *testing.T) {
	// NOI 500k on a 10M purchase -> exactly 5%
	m := CalculateCapRate(500000, 10000000)
	if !m.IsValid || m.Error != "" {
		t.Fatalf("expected clean result, got valid=%v err=%q", m.IsValid, m.Error)
	}
	almostEqual(t, "cap rate", m.Value, 5, 1e-9)

	// Zero purchase price is a hard rejection for any NOI.
	for _, noi := range []float64{0, 1, -1, 500000} {
		if CalculateCapRate(noi, 0).IsValid {
			t.Errorf("cap rate with zero price should be rejected (noi=%v)", noi)
		}
	}

	// Negative NOI produces a negative cap rate: valid, flagged.
	m = CalculateCapRate(-100000, 1000000)
	if !m.IsValid {
		t.Fatalf("negative cap rate should remain valid: %s", m.Error)
	}
	if m.Error == "" {
		t.Error("negative cap rate should carry a range warning")
	}
	almostEqual(t, "negative cap rate", m.Value, -10, 1e-9)

	// 60% cap rate: mathematically sound, empirically unusual.
	m = CalculateCapRate(600000, 1000000)
	if !m.IsValid || m.Error == "" {
		t.Errorf("60%% cap rate should be valid with warning, got valid=%v err=%q", m.IsValid, m.Error)
	}
}

func TestCalculatePricePerSquareFoot(t *testing.T) {
	// $10M over 50,000 SF -> $200/SF
	m := CalculatePricePerSquareFoot(10000000, 50000)
	almostEqual(t, "price per SF", m.Value, 200, 1e-9)
	if !m.IsValid {
		t.Errorf("unexpected rejection: %s", m.Error)
	}

	if CalculatePricePerSquareFoot(-1, 50000).IsValid {
		t.Error("negative price should be rejected")
	}
	if CalculatePricePerSquareFoot(100, 0).IsValid {
		t.Error("zero square footage should be rejected")
	}
}

func TestCalculateGRM(t *testing.T) {
	m := CalculateGRM(1200000, 150000)
	almostEqual(t, "GRM", m.Value, 8, 1e-9)
	if CalculateGRM(0, 150000).IsValid || CalculateGRM(1200000, 0).IsValid {
		t.Error("GRM requires both operands strictly positive")
	}
}

func TestCalculateValueFromCapRate(t *testing.T) {
	// NOI 500k at a 6% target cap -> ~8,333,333
	m := CalculateValueFromCapRate(500000, 6)
	if !m.IsValid {
		t.Fatalf("unexpected rejection: %s", m.Error)
	}
	almostEqual(t, "value from cap rate", m.Value, 8333333.33, 0.01)

	if CalculateValueFromCapRate(500000, 0).IsValid {
		t.Error("zero cap rate should be rejected")
	}
	if CalculateValueFromCapRate(500000, 101).IsValid {
		t.Error("cap rate above 100 should be rejected")
	}
}

func TestCapRateRoundTrip(t *testing.T) {
	// Value-from-cap-rate inverts cap-rate when price and cap are consistent.
	noi := CalculateNOI(600000, 100000)
	price := 10000000.0
	cap := CalculateCapRate(noi.Value, price)
	back := CalculateValueFromCapRate(noi.Value, cap.Value)
	if !back.IsValid {
		t.Fatalf("round trip rejected: %s", back.Error)
	}
	almostEqual(t, "round-trip value", back.Value, price, 0.01)
}

func TestCalculateOccupancyRate(t *testing.T) {
	m := CalculateOccupancyRate(45000, 50000)
	almostEqual(t, "occupancy", m.Value, 90, 1e-9)

	// Occupied exceeding total is nonsense, not a warning.
	m = CalculateOccupancyRate(60000, 50000)
	if m.IsValid {
		t.Fatal("occupied > total should be a hard rejection")
	}
	if m.Error == "" || m.Error != "occupied square footage cannot exceed total square footage" {
		t.Errorf("unexpected rejection message: %q", m.Error)
	}

	if CalculateOccupancyRate(100, 0).IsValid {
		t.Error("zero total SF should be rejected")
	}
}

func TestCalculateCashOnCash(t *testing.T) {
	// 100k cash flow on 3M invested -> ~3.33%
	m := CalculateCashOnCash(100000, 3000000)
	if !m.IsValid {
		t.Fatalf("unexpected rejection: %s", m.Error)
	}
	almostEqual(t, "cash on cash", m.Value, 3.3333, 0.0001)

	// Negative cash flow is a real (bad) deal, not an error.
	m = CalculateCashOnCash(-50000, 1000000)
	if !m.IsValid {
		t.Errorf("negative cash flow should be valid: %s", m.Error)
	}
	almostEqual(t, "negative cash on cash", m.Value, -5, 1e-9)

	if CalculateCashOnCash(100000, 0).IsValid {
		t.Error("zero investment should be rejected")
	}
}

func TestCalculateDSCR(t *testing.T) {
	// NOI 500k over 400k debt service -> exactly 1.25: valid, no warning
	// (1.25 is the boundary of the danger band, not inside it).
	m := CalculateDSCR(500000, 400000)
	if !m.IsValid {
		t.Fatalf("unexpected rejection: %s", m.Error)
	}
	almostEqual(t, "DSCR", m.Value, 1.25, 1e-9)
	if m.Error != "" {
		t.Errorf("DSCR of exactly 1.25 should not be flagged, got %q", m.Error)
	}

	// Below 1.25: valid but flagged.
	m = CalculateDSCR(400000, 400000)
	if !m.IsValid {
		t.Fatalf("DSCR of 1.0 should be valid: %s", m.Error)
	}
	if m.Error == "" {
		t.Error("DSCR below 1.25 should carry the lender warning")
	}

	for _, ds := range []float64{0, -100} {
		if CalculateDSCR(500000, ds).IsValid {
			t.Errorf("debt service %v should be rejected", ds)
		}
	}
}

func TestCalculateAnnualFromMonthly(t *testing.T) {
	m := CalculateAnnualFromMonthly(2500)
	almostEqual(t, "annual from monthly", m.Value, 30000, 1e-9)
	if CalculateAnnualFromMonthly(-1).IsValid {
		t.Error("negative monthly amount should be rejected")
	}
}

func TestRoundToDecimals(t *testing.T) {
	cases := []struct {
		in     float64
		places int
		want   float64
	}{
		{3.14159, 2, 3.14},
		{0.625, 2, 0.63},   // exact half rounds away from zero
		{-0.625, 2, -0.63}, // symmetric for negatives
		{1234.5678, 0, 1235},
		{2.5, 0, 3},
		{math.NaN(), 2, 0},
		{math.Inf(1), 2, 0},
	}
	for _, c := range cases {
		got := RoundToDecimals(c.in, c.places)
		almostEqual(t, "RoundToDecimals", got, c.want, 1e-9)
	}
	almostEqual(t, "RoundToCents", RoundToCents(3.14159), 3.14, 1e-9)
}

func TestValidateCapRate(t *testing.T) {
	m := ValidateCapRate(6.5)
	if !m.IsValid || m.Error != "" {
		t.Errorf("6.5%% should pass clean, got valid=%v err=%q", m.IsValid, m.Error)
	}

	m = ValidateCapRate(35)
	if !m.IsValid || m.Error == "" {
		t.Errorf("35%% should be valid with warning, got valid=%v err=%q", m.IsValid, m.Error)
	}

	if ValidateCapRate(-1).IsValid || ValidateCapRate(101).IsValid {
		t.Error("cap rate outside [0,100] should be rejected")
	}
}

func TestValidatePricePerSF(t *testing.T) {
	m := ValidatePricePerSF(250)
	if !m.IsValid || m.Error != "" {
		t.Errorf("$250/SF should pass clean, got valid=%v err=%q", m.IsValid, m.Error)
	}

	m = ValidatePricePerSF(5)
	if !m.IsValid || m.Error == "" {
		t.Errorf("$5/SF should be valid with warning, got valid=%v err=%q", m.IsValid, m.Error)
	}
	m = ValidatePricePerSF(3000)
	if !m.IsValid || m.Error == "" {
		t.Errorf("$3000/SF should be valid with warning, got valid=%v err=%q", m.IsValid, m.Error)
	}

	if ValidatePricePerSF(-10).IsValid {
		t.Error("negative price per SF should be rejected")
	}
}
