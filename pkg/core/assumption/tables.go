// Package assumption holds the jurisdiction rate tables used to pre-populate
// missing deal inputs (tax rate by county, insurance and utility rates by
// property type). The tables are configuration data injected from YAML, never
// consulted by the calculation engine itself.
package assumption

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"deal_underwriting/pkg/models"
)

// RateTables maps jurisdictions and property types to default operating
// rates. Tax rates are whole-number percents of purchase price; insurance
// and utility rates are dollars per square foot per year.
type RateTables struct {
	TaxRateByCounty           map[string]float64 `yaml:"tax_rate_by_county"`
	InsurancePerSFByType      map[string]float64 `yaml:"insurance_per_sf_by_type"`
	UtilitiesPerSFByType      map[string]float64 `yaml:"utilities_per_sf_by_type"`
	DefaultTaxRatePercent     float64            `yaml:"default_tax_rate_percent"`
	DefaultInsurancePerSF     float64            `yaml:"default_insurance_per_sf"`
	DefaultUtilitiesPerSF     float64            `yaml:"default_utilities_per_sf"`
}

// LoadRateTables reads rate tables from a YAML file.
func LoadRateTables(path string) (*RateTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rate tables: %w", err)
	}
	var tables RateTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse rate tables: %w", err)
	}
	return &tables, nil
}

// TaxRatePercent returns the property tax rate for a county, falling back to
// the configured default. Lookup is case-insensitive.
func (rt *RateTables) TaxRatePercent(county string) float64 {
	if rate, ok := lookup(rt.TaxRateByCounty, county); ok {
		return rate
	}
	return rt.DefaultTaxRatePercent
}

// InsurancePerSF returns the insurance rate for a property type.
func (rt *RateTables) InsurancePerSF(propertyType string) float64 {
	if rate, ok := lookup(rt.InsurancePerSFByType, propertyType); ok {
		return rate
	}
	return rt.DefaultInsurancePerSF
}

// UtilitiesPerSF returns the utility rate for a property type.
func (rt *RateTables) UtilitiesPerSF(propertyType string) float64 {
	if rate, ok := lookup(rt.UtilitiesPerSFByType, propertyType); ok {
		return rate
	}
	return rt.DefaultUtilitiesPerSF
}

// ApplyDefaults fills expense fields the caller left at zero from the rate
// tables. Fields the caller populated are never overwritten.
func (rt *RateTables) ApplyDefaults(deal *models.Deal) {
	if deal == nil {
		return
	}
	if deal.Inputs.Taxes == 0 && deal.Inputs.PurchasePrice > 0 {
		deal.Inputs.Taxes = deal.Inputs.PurchasePrice * rt.TaxRatePercent(deal.County) / 100
	}
	if deal.Inputs.Insurance == 0 && deal.SquareFootage > 0 {
		deal.Inputs.Insurance = deal.SquareFootage * rt.InsurancePerSF(deal.PropertyType)
	}
	if deal.Inputs.Utilities == 0 && deal.SquareFootage > 0 {
		deal.Inputs.Utilities = deal.SquareFootage * rt.UtilitiesPerSF(deal.PropertyType)
	}
}

func lookup(table map[string]float64, key string) (float64, bool) {
	if table == nil {
		return 0, false
	}
	if v, ok := table[key]; ok {
		return v, true
	}
	// Tolerate case differences in human-entered config.
	for k, v := range table {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return 0, false
}
