package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"deal_underwriting/pkg/core/analysis"
	"deal_underwriting/pkg/core/assumption"
	"deal_underwriting/pkg/core/report"
	"deal_underwriting/pkg/core/utils"
	"deal_underwriting/pkg/models"
)

func main() {
	ratesPath := flag.String("rates", "config/rates.yaml", "assumption rate table file")
	asJSON := flag.Bool("json", false, "emit the raw report as JSON instead of markdown")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("usage: underwrite [-rates config/rates.yaml] [-json] <deal.hjson>")
		os.Exit(1)
	}

	deal, err := loadDeal(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if tables, err := assumption.LoadRateTables(*ratesPath); err != nil {
		fmt.Printf("[WARNING] Rate tables unavailable (%v), using deal figures as-is\n", err)
	} else {
		tables.ApplyDefaults(deal)
	}

	result := analysis.Analyze(*deal)

	if *asJSON {
		data, err := json.MarshalIndent(result, "", "    ")
		if err != nil {
			fmt.Printf("Error marshaling report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Print(report.BuildMarkdown(*deal, result))
}

// loadDeal reads a deal scenario file. HJSON is accepted so scenario files
// can carry comments and trailing commas.
func loadDeal(path string) (*models.Deal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	var deal models.Deal
	if err := utils.ParseHJSONToStruct(data, &deal); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &deal, nil
}
