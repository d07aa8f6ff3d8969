package projection

import (
	"math"

	"deal_underwriting/pkg/core/calc"
)

// EquityGrowthBasis names the model's simplifying assumption for implied
// equity: property value appreciates at the income growth rate, not at an
// independent appreciation rate. Cap-rate-driven value growth is deliberately
// not modeled; revisit here if a separate appreciation input is ever added.
const EquityGrowthBasis = "income_growth_rate"

// Project builds the year-by-year pro-forma for the holding period.
//
// For each year t (1-based), income and expenses compound independently by
// (1+growth)^(t-1), so year 1 equals the initial values. Annual debt service
// is held constant across the hold (the loan is neither refinanced nor
// re-amortized), the loan balance follows the amortization identity, and
// implied equity is the appreciated property value (see EquityGrowthBasis)
// less the remaining balance.
//
// A non-positive holding period yields an empty series.
func Project(in ProjectionInputs) []YearProjection {
	if in.HoldingPeriod <= 0 {
		return nil
	}

	monthly := calc.CalculateMonthlyPayment(in.LoanAmount, in.InterestRate, in.AmortizationYears)
	debtService := calc.CalculateAnnualDebtService(monthly)

	incomeGrowth := in.IncomeGrowthRate / 100
	expenseGrowth := in.ExpenseGrowthRate / 100

	years := make([]YearProjection, 0, in.HoldingPeriod)
	for t := 1; t <= in.HoldingPeriod; t++ {
		compounding := float64(t - 1)
		income := in.InitialIncome * math.Pow(1+incomeGrowth, compounding)
		expenses := in.InitialExpenses * math.Pow(1+expenseGrowth, compounding)
		noi := income - expenses

		balance := calc.CalculateLoanBalance(in.LoanAmount, in.InterestRate, in.AmortizationYears, t)

		// Property value compounds at the income growth rate.
		propertyValue := in.PurchasePrice * math.Pow(1+incomeGrowth, compounding)

		years = append(years, YearProjection{
			Year:              t,
			GrossIncome:       income,
			OperatingExpenses: expenses,
			NOI:               noi,
			AnnualDebtService: debtService,
			CashFlow:          noi - debtService,
			LoanBalance:       balance,
			Equity:            propertyValue - balance,
		})
	}
	return years
}

// CashFlows extracts the ordered yearly cash flows from a projection series,
// in year order. Used to assemble IRR streams.
func CashFlows(years []YearProjection) []float64 {
	flows := make([]float64, 0, len(years))
	for _, y := range years {
		flows = append(flows, y.CashFlow)
	}
	return flows
}

// FinalNOI returns the last projected year's NOI, or 0 for an empty series.
// The exit-year NOI drives the sale price at disposition.
func FinalNOI(years []YearProjection) float64 {
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1].NOI
}
