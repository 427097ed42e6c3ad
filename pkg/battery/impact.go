// Package battery models the incremental value of adding a storage battery
// to a solar installation: self-consumption uplift, backup runtime, and the
// savings attributable to the battery over its lifetime.
package battery

import (
	"github.com/satriyop/solar-forecast/pkg/constants"
	"github.com/satriyop/solar-forecast/pkg/mathutil"
)

// SelfConsumptionResult holds the self-consumption ratios with and without a
// battery. All fields are ratios in [0, 1].
type SelfConsumptionResult struct {
	Without  float64
	With     float64
	Increase float64
}

// BackupResult holds how long a battery can carry the site's consumption
// during an outage. Both fields are rounded to one decimal place.
type BackupResult struct {
	Hours float64
	Days  float64
}

// Savings holds the grid-offset value contributed by a battery.
type Savings struct {
	Annual   float64
	Lifetime float64
}

// DefaultCapacities is the standard tier list of battery sizes offered with
// an installation, in kWh, ascending.
var DefaultCapacities = []float64{5, 10, 15, 20}

// CalculateSelfConsumption quantifies how much of the daily solar production
// a battery shifts from export to on-site use. The battery captures excess
// production up to its usable capacity; the resulting ratio is capped at
// maxConsumption no matter how oversized the battery is. Zero production
// means the battery cannot raise self-consumption at all.
func CalculateSelfConsumption(dailyProduction, batteryKwh, roundTripEfficiency, baseConsumption, maxConsumption float64) SelfConsumptionResult {
	if dailyProduction <= 0 {
		return SelfConsumptionResult{
			Without:  baseConsumption,
			With:     baseConsumption,
			Increase: 0,
		}
	}

	captureableExcess := dailyProduction * (1 - baseConsumption)
	batteryCapture := mathutil.Min(batteryKwh*roundTripEfficiency, captureableExcess)

	additionalRatio := batteryCapture / dailyProduction
	with := mathutil.Min(maxConsumption, baseConsumption+additionalRatio)

	return SelfConsumptionResult{
		Without:  baseConsumption,
		With:     with,
		Increase: with - baseConsumption,
	}
}

// CalculateBackupCapability estimates how long a battery can power the site
// at its average hourly draw. Consumption is assumed to be spread over
// activeHours per day rather than the full 24.
func CalculateBackupCapability(batteryKwh, roundTripEfficiency, dailyConsumption, activeHours float64) BackupResult {
	if dailyConsumption <= 0 || activeHours <= 0 {
		return BackupResult{}
	}

	avgHourlyConsumption := dailyConsumption / activeHours
	usableCapacity := batteryKwh * roundTripEfficiency
	hours := usableCapacity / avgHourlyConsumption

	return BackupResult{
		Hours: mathutil.RoundTenth(hours),
		Days:  mathutil.RoundTenth(hours / constants.HoursPerDay),
	}
}

// CalculateSavings values the energy a battery shifts to self-consumption.
// Lifetime savings apply a linear midpoint degradation factor,
// 1 - deg/100 * years/2, rather than compounding year over year; this keeps
// numeric parity with the yearly projection model used elsewhere only at
// year one.
func CalculateSavings(annualProduction, selfConsumptionIncrease, electricityRate, degradationPercentPerYear float64, lifetimeYears int) Savings {
	annual := mathutil.RoundWhole(annualProduction * selfConsumptionIncrease * electricityRate)

	lifetimeDegradationFactor := 1 - (degradationPercentPerYear / constants.PercentageMultiplier * float64(lifetimeYears) / 2)
	lifetime := annual * float64(lifetimeYears) * lifetimeDegradationFactor

	return Savings{
		Annual:   annual,
		Lifetime: lifetime,
	}
}

// RecommendedCapacity picks the smallest available battery size that covers
// the recommended fraction of daily production, falling back to the largest
// tier when production outstrips every option. The available slice is not
// mutated; a nil or empty slice falls back to DefaultCapacities.
func RecommendedCapacity(dailyProduction, recommendedRatio float64, available []float64) float64 {
	if len(available) == 0 {
		available = DefaultCapacities
	}

	recommendedKwh := dailyProduction * recommendedRatio

	best := available[0]
	largest := available[0]
	found := false
	for _, capacity := range available {
		if capacity > largest {
			largest = capacity
		}
		if capacity >= recommendedKwh && (!found || capacity < best) {
			best = capacity
			found = true
		}
	}

	if !found {
		return largest
	}
	return best
}
