// Package narrative generates a plain-English summary of an underwriting
// report. It is strictly a display layer: the prompt carries the engine's
// computed numbers and the model is never asked to calculate anything.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"deal_underwriting/pkg/core/analysis"
	"deal_underwriting/pkg/core/calc"
	"deal_underwriting/pkg/core/llm"
	"deal_underwriting/pkg/core/utils"
	"deal_underwriting/pkg/models"
)

// Narrative is the structured output of the narrative service.
type Narrative struct {
	Summary string   `json:"summary"`
	Risks   []string `json:"risks"`
}

// Service turns a computed report into prose. With a nil provider it falls
// back to a deterministic template, so the API works without an API key.
type Service struct {
	provider llm.Provider
}

// NewService creates a narrative service. provider may be nil.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

const systemPrompt = `You are a commercial real estate analyst. You are given
already-computed underwriting metrics; never recalculate or second-guess the
numbers. Respond with JSON: {"summary": string, "risks": [string]}.`

// Generate produces the deal narrative. Provider failures degrade to the
// deterministic fallback rather than surfacing an error to the caller.
func (s *Service) Generate(ctx context.Context, deal models.Deal, report *analysis.UnderwritingReport) Narrative {
	if s.provider == nil {
		return fallbackNarrative(deal, report)
	}

	prompt := buildPrompt(deal, report)
	raw, err := s.provider.GenerateResponse(ctx, prompt, systemPrompt, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		fmt.Printf("[NARRATIVE] provider failed, using fallback: %v\n", err)
		return fallbackNarrative(deal, report)
	}

	// Model output is repaired before parsing; LLM JSON is rarely clean.
	var n Narrative
	if err := utils.RepairInto(raw, &n); err != nil {
		fmt.Printf("[NARRATIVE] unparseable model output, using fallback: %v\n", err)
		return fallbackNarrative(deal, report)
	}
	if n.Summary == "" {
		return fallbackNarrative(deal, report)
	}
	return n
}

func buildPrompt(deal models.Deal, r *analysis.UnderwritingReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Deal: %s (%s, %s)\n", deal.Name, deal.PropertyType, deal.County)
	fmt.Fprintf(&b, "Purchase price: $%.0f\n", deal.Inputs.PurchasePrice)
	fmt.Fprintf(&b, "NOI: $%.0f (valid=%v)\n", r.NOI.Value, r.NOI.IsValid)
	fmt.Fprintf(&b, "Cap rate: %.2f%% (%s)\n", r.CapRate.Value, r.CapRateRating)
	fmt.Fprintf(&b, "DSCR: %.2f (%s)\n", r.DSCR.Value, r.DSCRRating)
	fmt.Fprintf(&b, "Cash-on-cash: %.2f%%\n", r.CashOnCash.Value)
	fmt.Fprintf(&b, "IRR over hold: %.2f%%\n", r.IRR)
	fmt.Fprintf(&b, "Equity multiple: %.2fx\n", r.EquityMultiple)
	b.WriteString("Summarize the deal and list its main risks.\n")
	return b.String()
}

// fallbackNarrative builds a terse summary straight from the ratings.
func fallbackNarrative(deal models.Deal, r *analysis.UnderwritingReport) Narrative {
	name := deal.Name
	if name == "" {
		name = "This deal"
	}

	summary := fmt.Sprintf(
		"%s underwrites to a %.2f%% cap rate on $%.0f of NOI, with a projected IRR of %.2f%% and an equity multiple of %.2fx over the hold.",
		name, r.CapRate.Value, r.NOI.Value, r.IRR, r.EquityMultiple)

	var risks []string
	if r.DSCRRating == calc.RatingDanger {
		risks = append(risks, fmt.Sprintf("DSCR of %.2f is below the typical lender requirement of %.2f.", r.DSCR.Value, calc.DSCRDangerBelow))
	}
	if r.CapRateRating == calc.RatingLow {
		risks = append(risks, "Entry cap rate is aggressive for the market.")
	}
	if r.CapRate.Error != "" {
		risks = append(risks, r.CapRate.Error)
	}
	if len(risks) == 0 {
		risks = append(risks, "No threshold-level risks flagged by the engine.")
	}

	return Narrative{Summary: summary, Risks: risks}
}
