package valuation

import "deal_underwriting/pkg/core/calc"

// SaleProceeds breaks down the disposition of the property at the end of the
// hold.
type SaleProceeds struct {
	SalePrice       float64 `json:"sale_price"`
	SellingCosts    float64 `json:"selling_costs"`
	NetSaleProceeds float64 `json:"net_sale_proceeds"`
	LoanPayoff      float64 `json:"loan_payoff"`
	NetToSeller     float64 `json:"net_to_seller"`
}

// CalculateSaleProceeds prices the exit by capitalizing the exit-year NOI at
// the exit cap rate, then nets out selling costs and the remaining loan
// balance. Selling costs are a whole-number percent of the sale price.
//
// An unusable exit cap rate (zero, negative, or above 100) yields a zero
// sale; the deal then returns only its operating cash flows.
func CalculateSaleProceeds(exitNOI, exitCapRate, sellingCostPercent, loanBalance float64) SaleProceeds {
	value := calc.CalculateValueFromCapRate(exitNOI, exitCapRate)
	if !value.IsValid {
		return SaleProceeds{LoanPayoff: loanBalance, NetToSeller: -loanBalance}
	}

	salePrice := value.Value
	sellingCosts := 0.0
	if calc.IsValidNumber(sellingCostPercent) && sellingCostPercent > 0 {
		sellingCosts = salePrice * (sellingCostPercent / 100)
	}
	net := salePrice - sellingCosts

	return SaleProceeds{
		SalePrice:       salePrice,
		SellingCosts:    sellingCosts,
		NetSaleProceeds: net,
		LoanPayoff:      loanBalance,
		NetToSeller:     net - loanBalance,
	}
}
