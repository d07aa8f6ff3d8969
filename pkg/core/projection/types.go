// Package projection generates multi-year pro-forma cash flow projections
// for an underwritten deal. The engine is stateless: every call rebuilds the
// full series from its inputs.
package projection

// ProjectionInputs are the drivers of a multi-year hold projection.
// Growth rates are whole-number percents (3 means 3% per year); income and
// expense growth are independent parameters, not linked.
type ProjectionInputs struct {
	InitialIncome     float64 `json:"initial_income"`   // effective gross income, year 1
	InitialExpenses   float64 `json:"initial_expenses"` // total operating expenses, year 1
	IncomeGrowthRate  float64 `json:"income_growth_rate"`
	ExpenseGrowthRate float64 `json:"expense_growth_rate"`
	PurchasePrice     float64 `json:"purchase_price"`
	LoanAmount        float64 `json:"loan_amount"`
	InterestRate      float64 `json:"interest_rate"`
	AmortizationYears int     `json:"amortization_years"`
	HoldingPeriod     int     `json:"holding_period"`
}

// YearProjection is one row of the pro-forma. Years are 1-indexed and
// contiguous; there is no year 0 row (year 0 exists only as the negative
// initial investment in an IRR cash-flow stream).
type YearProjection struct {
	Year              int     `json:"year"`
	GrossIncome       float64 `json:"gross_income"`
	OperatingExpenses float64 `json:"operating_expenses"`
	NOI               float64 `json:"noi"`
	AnnualDebtService float64 `json:"annual_debt_service"`
	CashFlow          float64 `json:"cash_flow"`
	LoanBalance       float64 `json:"loan_balance"`
	Equity            float64 `json:"equity"`
}
