// Package models defines the shared record types exchanged between the API
// layer, the persistence layer, and the underwriting engine.
package models

import "time"

// DealInputs are the raw numeric fields of a deal as supplied by the caller.
// Percent-denominated fields are whole-number percentages (7 means 7%). Any
// field may be absent (zero) or invalid; the engine tolerates both and
// reports validity per metric.
type DealInputs struct {
	// Income
	PotentialGrossIncome float64 `json:"potential_gross_income"`
	VacancyRate          float64 `json:"vacancy_rate"`
	OtherIncome          float64 `json:"other_income"`

	// Itemized operating expenses
	Taxes         float64 `json:"taxes"`
	Insurance     float64 `json:"insurance"`
	Utilities     float64 `json:"utilities"`
	Repairs       float64 `json:"repairs"`
	Reserves      float64 `json:"reserves"`
	OtherExpenses float64 `json:"other_expenses"`

	ManagementFeePercent float64 `json:"management_fee_percent"`

	// Acquisition & financing
	PurchasePrice      float64 `json:"purchase_price"`
	LTVPercent         float64 `json:"ltv_percent"`
	InterestRate       float64 `json:"interest_rate"`
	AmortizationYears  int     `json:"amortization_years"`
	ClosingCostPercent float64 `json:"closing_cost_percent"`

	// Hold & exit assumptions
	IncomeGrowthRate   float64 `json:"income_growth_rate"`
	ExpenseGrowthRate  float64 `json:"expense_growth_rate"`
	HoldingPeriod      int     `json:"holding_period"`
	ExitCapRate        float64 `json:"exit_cap_rate"`
	SellingCostPercent float64 `json:"selling_cost_percent"`
}

// Deal is a persisted deal record. The property metadata (county, property
// type, square footage) drives rate-table default population; the engine
// itself only ever sees the numeric inputs.
type Deal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address,omitempty"`
	County        string     `json:"county,omitempty"`
	PropertyType  string     `json:"property_type,omitempty"`
	SquareFootage float64    `json:"square_footage,omitempty"`
	OccupiedSF    float64    `json:"occupied_sf,omitempty"`
	Inputs        DealInputs `json:"inputs"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at,omitempty"`
}
