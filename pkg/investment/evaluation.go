// Package investment derives payback period and return on investment from a
// projected savings series and an upfront cost.
package investment

import (
	"github.com/satriyop/solar-forecast/pkg/constants"
	"github.com/satriyop/solar-forecast/pkg/projection"
)

// PaybackPeriod returns the fractional number of years until cumulative
// savings reach the upfront cost. The boolean reports whether payback occurs
// at all: false means the series is empty or never accumulates enough within
// its horizon. A non-positive cost is already paid back, so it returns
// (0, true).
func PaybackPeriod(projections []projection.YearlyProjection, upfrontCost float64) (float64, bool) {
	if upfrontCost <= 0 {
		return 0, true
	}
	if len(projections) == 0 {
		return 0, false
	}

	cumulative := 0.00
	for i, p := range projections {
		previous := cumulative
		cumulative += p.Savings
		if cumulative >= upfrontCost {
			if i == 0 {
				return upfrontCost / p.Savings, true
			}
			return float64(i) + (upfrontCost-previous)/p.Savings, true
		}
	}

	return 0, false
}

// ROI returns the return on investment as a percentage; negative for a loss,
// zero at break-even or for a non-positive cost.
func ROI(totalSavings, totalCost float64) float64 {
	if totalCost <= 0 {
		return 0
	}
	return (totalSavings - totalCost) / totalCost * constants.PercentageMultiplier
}
