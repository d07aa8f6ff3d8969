package analysis

import (
	"deal_underwriting/pkg/core/calc"
	"deal_underwriting/pkg/core/projection"
	"deal_underwriting/pkg/core/valuation"
)

// UnderwritingReport is the complete computed output for one deal: the
// single-period metrics, the financing breakdown, the year-by-year
// projection, the exit analysis, and the qualitative risk ratings. Everything
// downstream (persistence, rendering, narrative) consumes this record and
// never recomputes a formula.
type UnderwritingReport struct {
	// Single-period metrics (each carries its own validity and warnings)
	EffectiveGrossIncome   calc.Metric `json:"effective_gross_income"`
	ManagementFee          calc.Metric `json:"management_fee"`
	TotalOperatingExpenses calc.Metric `json:"total_operating_expenses"`
	NOI                    calc.Metric `json:"noi"`
	CapRate                calc.Metric `json:"cap_rate"`
	PricePerSF             calc.Metric `json:"price_per_sf"`
	GRM                    calc.Metric `json:"grm"`
	OccupancyRate          calc.Metric `json:"occupancy_rate"`
	CashOnCash             calc.Metric `json:"cash_on_cash"`
	DSCR                   calc.Metric `json:"dscr"`

	// Financing (plain numbers; malformed inputs degrade to 0 upstream)
	LoanAmount        float64 `json:"loan_amount"`
	DownPayment       float64 `json:"down_payment"`
	ClosingCosts      float64 `json:"closing_costs"`
	TotalCashInvested float64 `json:"total_cash_invested"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	AnnualDebtService float64 `json:"annual_debt_service"`

	// Multi-year hold
	Projection []projection.YearProjection `json:"projection,omitempty"`

	// Exit & returns
	Sale           valuation.SaleProceeds `json:"sale"`
	IRR            float64                `json:"irr"`
	EquityMultiple float64                `json:"equity_multiple"`

	// Risk bands (empty string when the underlying metric was rejected)
	DSCRRating    string `json:"dscr_rating,omitempty"`
	CapRateRating string `json:"cap_rate_rating,omitempty"`
}
