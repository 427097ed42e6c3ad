// Package projection generates year-by-year energy savings series under
// tariff escalation and equipment degradation.
package projection

import (
	"github.com/satriyop/solar-forecast/pkg/constants"
)

// YearlyProjection holds the projected savings for a single year. Year is
// 1-based; the first entry of a series is always year 1.
type YearlyProjection struct {
	Year    int
	Savings float64
}

// Generate materializes the full savings series for the given horizon.
// Production degrades and the tariff escalates independently, each
// compounding on the previous year's value, so a zero production or zero
// rate at year one propagates zeros through the whole series. A non-positive
// horizon yields an empty series.
func Generate(annualProduction, electricityRate, tariffEscalationPercent, degradationPercent float64, horizonYears int) []YearlyProjection {
	if horizonYears <= 0 {
		return nil
	}

	projections := make([]YearlyProjection, 0, horizonYears)

	production := annualProduction
	rate := electricityRate
	for year := 1; year <= horizonYears; year++ {
		if year > 1 {
			production *= 1 - degradationPercent/constants.PercentageMultiplier
			rate *= 1 + tariffEscalationPercent/constants.PercentageMultiplier
		}
		projections = append(projections, YearlyProjection{
			Year:    year,
			Savings: production * rate,
		})
	}

	return projections
}

// Sum totals the savings across a series; an empty series sums to 0.
func Sum(projections []YearlyProjection) float64 {
	total := 0.00
	for _, p := range projections {
		total += p.Savings
	}
	return total
}
