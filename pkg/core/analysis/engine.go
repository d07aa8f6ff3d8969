// Package analysis orchestrates the full underwriting pipeline for a deal:
// validated single-period metrics, financing math, the multi-year projection,
// the exit and return analysis, and the threshold classification.
package analysis

import (
	"deal_underwriting/pkg/core/calc"
	"deal_underwriting/pkg/core/projection"
	"deal_underwriting/pkg/core/valuation"
	"deal_underwriting/pkg/models"
)

// Analyze runs the complete underwriting calculation for a deal. It is a
// pure function of the deal record: no I/O, no state between calls.
func Analyze(deal models.Deal) *UnderwritingReport {
	in := deal.Inputs
	report := &UnderwritingReport{}

	// 1. Income
	report.EffectiveGrossIncome = calc.CalculateEffectiveGrossIncome(
		in.PotentialGrossIncome, in.VacancyRate, in.OtherIncome)
	report.ManagementFee = calc.CalculateManagementFee(
		report.EffectiveGrossIncome.Value, in.ManagementFeePercent)

	// 2. Expenses
	items := calc.OperatingExpenseItems{
		Taxes:         in.Taxes,
		Insurance:     in.Insurance,
		Utilities:     in.Utilities,
		ManagementFee: report.ManagementFee.Value,
		Repairs:       in.Repairs,
		Reserves:      in.Reserves,
		Other:         in.OtherExpenses,
	}
	report.TotalOperatingExpenses = calc.CalculateTotalOperatingExpenses(items)

	// 3. NOI and valuation metrics
	report.NOI = calc.CalculateNOI(
		report.EffectiveGrossIncome.Value, report.TotalOperatingExpenses.Value)
	report.CapRate = calc.CalculateCapRate(report.NOI.Value, in.PurchasePrice)
	report.PricePerSF = calc.CalculatePricePerSquareFoot(in.PurchasePrice, deal.SquareFootage)
	report.GRM = calc.CalculateGRM(in.PurchasePrice, in.PotentialGrossIncome)
	report.OccupancyRate = calc.CalculateOccupancyRate(deal.OccupiedSF, deal.SquareFootage)

	// 4. Financing
	report.LoanAmount = calc.CalculateLoanAmount(in.PurchasePrice, in.LTVPercent)
	report.DownPayment = calc.CalculateDownPayment(in.PurchasePrice, report.LoanAmount)
	if calc.IsPositiveNumber(in.PurchasePrice) && calc.IsNonNegativeNumber(in.ClosingCostPercent) {
		report.ClosingCosts = in.PurchasePrice * (in.ClosingCostPercent / 100)
	}
	report.TotalCashInvested = report.DownPayment + report.ClosingCosts
	report.MonthlyPayment = calc.CalculateMonthlyPayment(
		report.LoanAmount, in.InterestRate, in.AmortizationYears)
	report.AnnualDebtService = calc.CalculateAnnualDebtService(report.MonthlyPayment)

	// 5. Coverage and year-1 return
	report.DSCR = calc.CalculateDSCR(report.NOI.Value, report.AnnualDebtService)
	yearOneCashFlow := report.NOI.Value - report.AnnualDebtService
	report.CashOnCash = calc.CalculateCashOnCash(yearOneCashFlow, report.TotalCashInvested)

	// 6. Multi-year projection
	report.Projection = projection.Project(projection.ProjectionInputs{
		InitialIncome:     report.EffectiveGrossIncome.Value,
		InitialExpenses:   report.TotalOperatingExpenses.Value,
		IncomeGrowthRate:  in.IncomeGrowthRate,
		ExpenseGrowthRate: in.ExpenseGrowthRate,
		PurchasePrice:     in.PurchasePrice,
		LoanAmount:        report.LoanAmount,
		InterestRate:      in.InterestRate,
		AmortizationYears: in.AmortizationYears,
		HoldingPeriod:     in.HoldingPeriod,
	})

	// 7. Exit and returns
	if len(report.Projection) > 0 {
		finalYear := report.Projection[len(report.Projection)-1]
		report.Sale = valuation.CalculateSaleProceeds(
			finalYear.NOI, in.ExitCapRate, in.SellingCostPercent, finalYear.LoanBalance)

		stream := valuation.BuildCashFlowStream(
			report.TotalCashInvested,
			projection.CashFlows(report.Projection),
			report.Sale.NetSaleProceeds)
		report.IRR = valuation.CalculateIRR(stream)
		report.EquityMultiple = valuation.CalculateEquityMultiple(
			projection.CashFlows(report.Projection),
			report.Sale.NetSaleProceeds,
			report.TotalCashInvested)
	}

	// 8. Risk bands, only for metrics that computed cleanly
	if report.DSCR.IsValid {
		report.DSCRRating = calc.ClassifyDSCR(report.DSCR.Value)
	}
	if report.CapRate.IsValid {
		report.CapRateRating = calc.ClassifyCapRate(report.CapRate.Value)
	}

	return report
}
