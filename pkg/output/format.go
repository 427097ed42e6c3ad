// Package output provides utilities for formatting and displaying proposal
// evaluation results.
package output

import (
	"fmt"
	"strings"

	"github.com/satriyop/solar-forecast/internal/proposal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []proposal.Evaluation) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		fmt.Printf("--- Results for proposal %s ---\n", result.Name)

		_, _ = p.Printf("Total savings over %d years: %.2f\n", result.HorizonYears, result.TotalSavings)
		if result.PaysBack {
			_, _ = p.Printf("Payback period: %.1f years\n", result.PaybackYears)
		} else {
			fmt.Printf("Payback period: not within %d-year horizon\n", result.HorizonYears)
		}
		_, _ = p.Printf("Return on investment: %.1f%%\n", result.ROIPercent)

		switch {
		case result.Financing.Lease != nil:
			lease := result.Financing.Lease
			_, _ = p.Printf("Lease: %.2f/month, buyout %.2f, total cost %.2f\n",
				lease.MonthlyLease, lease.BuyoutPrice, lease.TotalCost)
		case result.Financing.MonthlyPayment > 0:
			_, _ = p.Printf("Loan: %.2f/month, total financed cost %.2f\n",
				result.Financing.MonthlyPayment, result.Financing.TotalFinancedCost)
		}

		if battery := result.Battery; battery != nil {
			_, _ = p.Printf("Battery: self-consumption %.0f%% -> %.0f%%, backup %.1f hours, savings %.2f/year\n",
				battery.SelfConsumption.Without*100, battery.SelfConsumption.With*100,
				battery.Backup.Hours, battery.Savings.Annual)
		}

		fmt.Printf("Year | Savings\n")
		fmt.Printf("____ | _______\n")
		for _, yearly := range result.Projections {
			_, _ = p.Printf("%4d | %.2f\n", yearly.Year, yearly.Savings)
		}
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []proposal.Evaluation) {
	fmt.Print(CsvString(results))
}

// CsvString renders the yearly savings of all proposals as CSV. All
// proposals share the same year axis; shorter horizons leave trailing cells
// empty.
func CsvString(results []proposal.Evaluation) string {
	if len(results) == 0 {
		return ""
	}

	maxYears := 0
	for _, result := range results {
		if len(result.Projections) > maxYears {
			maxYears = len(result.Projections)
		}
	}

	var b strings.Builder
	b.WriteString(`"year"`)
	for _, result := range results {
		fmt.Fprintf(&b, `,"savings (%s)"`, result.Name)
	}
	b.WriteString("\n")

	for year := 1; year <= maxYears; year++ {
		fmt.Fprintf(&b, `"%d"`, year)
		for _, result := range results {
			if year <= len(result.Projections) {
				fmt.Fprintf(&b, `,"%.2f"`, result.Projections[year-1].Savings)
			} else {
				b.WriteString(`,""`)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
