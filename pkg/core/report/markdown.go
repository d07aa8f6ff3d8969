// Package report renders a computed UnderwritingReport as a markdown
// document for the document layer. It only formats engine output; no formula
// is ever recomputed here.
package report

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"deal_underwriting/pkg/core/analysis"
	"deal_underwriting/pkg/core/calc"
	"deal_underwriting/pkg/models"
)

// BuildMarkdown renders the full underwriting summary: deal header,
// single-period metrics, financing, the pro-forma table, and the exit
// analysis.
func BuildMarkdown(deal models.Deal, r *analysis.UnderwritingReport) string {
	var b strings.Builder

	title := deal.Name
	if title == "" {
		title = "Underwriting Summary"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if deal.Address != "" {
		fmt.Fprintf(&b, "%s\n\n", deal.Address)
	}

	b.WriteString("## Key Metrics\n\n")
	b.WriteString("| Metric | Value | Note |\n|---|---|---|\n")
	writeMetricRow(&b, "Effective Gross Income", r.EffectiveGrossIncome, "$%s")
	writeMetricRow(&b, "Total Operating Expenses", r.TotalOperatingExpenses, "$%s")
	writeMetricRow(&b, "Net Operating Income", r.NOI, "$%s")
	writeMetricRow(&b, "Cap Rate", r.CapRate, "%s%%")
	writeMetricRow(&b, "Price / SF", r.PricePerSF, "$%s")
	writeMetricRow(&b, "GRM", r.GRM, "%s")
	writeMetricRow(&b, "Occupancy", r.OccupancyRate, "%s%%")
	writeMetricRow(&b, "Cash-on-Cash", r.CashOnCash, "%s%%")
	writeMetricRow(&b, "DSCR", r.DSCR, "%s")
	b.WriteString("\n")

	if r.DSCRRating != "" || r.CapRateRating != "" {
		fmt.Fprintf(&b, "Risk bands: DSCR **%s**, cap rate **%s**\n\n",
			orDash(r.DSCRRating), orDash(r.CapRateRating))
	}

	b.WriteString("## Financing\n\n")
	fmt.Fprintf(&b, "- Loan amount: $%s\n", money(r.LoanAmount))
	fmt.Fprintf(&b, "- Down payment: $%s\n", money(r.DownPayment))
	fmt.Fprintf(&b, "- Closing costs: $%s\n", money(r.ClosingCosts))
	fmt.Fprintf(&b, "- Total cash invested: $%s\n", money(r.TotalCashInvested))
	fmt.Fprintf(&b, "- Monthly payment: $%s\n", money(r.MonthlyPayment))
	fmt.Fprintf(&b, "- Annual debt service: $%s\n\n", money(r.AnnualDebtService))

	if len(r.Projection) > 0 {
		b.WriteString("## Pro-Forma Projection\n\n")
		b.WriteString("| Year | Income | Expenses | NOI | Debt Service | Cash Flow | Loan Balance | Equity |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|\n")
		for _, y := range r.Projection {
			fmt.Fprintf(&b, "| %d | $%s | $%s | $%s | $%s | $%s | $%s | $%s |\n",
				y.Year, money(y.GrossIncome), money(y.OperatingExpenses), money(y.NOI),
				money(y.AnnualDebtService), money(y.CashFlow), money(y.LoanBalance), money(y.Equity))
		}
		b.WriteString("\n")

		b.WriteString("## Exit Analysis\n\n")
		fmt.Fprintf(&b, "- Sale price: $%s\n", money(r.Sale.SalePrice))
		fmt.Fprintf(&b, "- Selling costs: $%s\n", money(r.Sale.SellingCosts))
		fmt.Fprintf(&b, "- Net sale proceeds: $%s\n", money(r.Sale.NetSaleProceeds))
		fmt.Fprintf(&b, "- Loan payoff: $%s\n", money(r.Sale.LoanPayoff))
		fmt.Fprintf(&b, "- Net to seller: $%s\n\n", money(r.Sale.NetToSeller))
		fmt.Fprintf(&b, "**IRR: %.2f%%** / **Equity multiple: %.2fx**\n", r.IRR, r.EquityMultiple)
	}

	return b.String()
}

// writeMetricRow emits one table row. Rejected metrics render a dash with
// the rejection reason; warned metrics keep their value and surface the
// advisory note.
func writeMetricRow(b *strings.Builder, label string, m calc.Metric, format string) {
	if !m.IsValid {
		fmt.Fprintf(b, "| %s | - | %s |\n", label, m.Error)
		return
	}
	value := fmt.Sprintf(format, money(m.Value))
	note := ""
	if m.Error != "" {
		note = "warning: " + m.Error
	}
	fmt.Fprintf(b, "| %s | %s | %s |\n", label, value, note)
}

// money formats a number with 2 decimal places for display.
func money(v float64) string {
	return fmt.Sprintf("%.2f", calc.RoundToCents(v))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// CleanMarkdown strips conversational filler and outer code fences, leaving
// pure markdown ready for rendering. Narrative text coming back from an LLM
// often arrives wrapped this way.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// ValidateMarkdown checks the string parses as markdown. Goldmark is very
// permissive, so this is a basic structural check.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}
