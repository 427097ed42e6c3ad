package battery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSelfConsumption_ZeroProduction(t *testing.T) {
	result := CalculateSelfConsumption(0, 10, 0.9, 0.3, 0.85)

	assert.InDelta(t, 0.3, result.Without, 0.0001)
	assert.InDelta(t, 0.3, result.With, 0.0001)
	assert.InDelta(t, 0, result.Increase, 0.0001)
}

func TestCalculateSelfConsumption_OversizedBatteryCapsAtMax(t *testing.T) {
	result := CalculateSelfConsumption(10, 100, 0.9, 0.3, 0.85)

	assert.InDelta(t, 0.85, result.With, 0.0001)
	assert.InDelta(t, 0.55, result.Increase, 0.0001)
}

func TestCalculateSelfConsumption_CaptureLimitedByBattery(t *testing.T) {
	// Production 20 kWh/day, 30% already self-consumed: 14 kWh exported.
	// A 5 kWh battery at 90% round trip captures 4.5 kWh.
	result := CalculateSelfConsumption(20, 5, 0.9, 0.3, 0.85)

	assert.InDelta(t, 0.3, result.Without, 0.0001)
	assert.InDelta(t, 0.3+4.5/20, result.With, 0.0001)
	assert.InDelta(t, 0.225, result.Increase, 0.0001)
}

func TestCalculateSelfConsumption_CaptureLimitedByExcess(t *testing.T) {
	// Production 10 kWh/day with 90% base self-consumption leaves only
	// 1 kWh of excess regardless of battery size.
	result := CalculateSelfConsumption(10, 20, 0.9, 0.9, 1.0)

	assert.InDelta(t, 0.9+1.0/10, result.With, 0.0001)
	assert.InDelta(t, 0.1, result.Increase, 0.0001)
}

func TestCalculateSelfConsumption_MonotoneInBatterySize(t *testing.T) {
	previous := 0.0
	for _, kwh := range []float64{0, 2, 5, 10, 20, 50} {
		result := CalculateSelfConsumption(25, kwh, 0.9, 0.3, 0.85)
		assert.GreaterOrEqual(t, result.With, previous,
			"With ratio must not decrease as battery grows (kwh=%v)", kwh)
		assert.LessOrEqual(t, result.With, 0.85)
		previous = result.With
	}
}

func TestCalculateSelfConsumption_IncreaseInvariant(t *testing.T) {
	result := CalculateSelfConsumption(18, 8, 0.92, 0.35, 0.8)
	assert.InDelta(t, result.With-result.Without, result.Increase, 1e-12)
}

func TestCalculateBackupCapability(t *testing.T) {
	result := CalculateBackupCapability(10, 0.9, 30, 10)

	// 9 kWh usable / 3 kW average draw = 3 hours = 0.125 days, rounded.
	assert.InDelta(t, 3.0, result.Hours, 0.0001)
	assert.InDelta(t, 0.1, result.Days, 0.0001)
}

func TestCalculateBackupCapability_ZeroConsumption(t *testing.T) {
	result := CalculateBackupCapability(10, 0.9, 0, 10)
	assert.Equal(t, BackupResult{}, result)
}

func TestCalculateBackupCapability_ZeroActiveHours(t *testing.T) {
	result := CalculateBackupCapability(10, 0.9, 30, 0)
	assert.Equal(t, BackupResult{}, result)
}

func TestCalculateBackupCapability_RoundsToTenth(t *testing.T) {
	// 13.5 kWh usable / 2 kW = 6.75 hours -> 6.8; 0.28125 days -> 0.3
	result := CalculateBackupCapability(15, 0.9, 20, 10)
	assert.InDelta(t, 6.8, result.Hours, 0.0001)
	assert.InDelta(t, 0.3, result.Days, 0.0001)
}

func TestCalculateSavings(t *testing.T) {
	savings := CalculateSavings(15000, 0.2, 1500, 2.0, 10)

	// annual = 15000 * 0.2 * 1500 = 4,500,000
	assert.InDelta(t, 4500000, savings.Annual, 0.0001)
	// lifetime factor = 1 - 0.02*10/2 = 0.9
	assert.InDelta(t, 4500000*10*0.9, savings.Lifetime, 0.0001)
}

func TestCalculateSavings_ZeroProduction(t *testing.T) {
	savings := CalculateSavings(0, 0.2, 1500, 2.0, 10)
	assert.Zero(t, savings.Annual)
	assert.Zero(t, savings.Lifetime)
}

func TestCalculateSavings_ZeroIncrease(t *testing.T) {
	savings := CalculateSavings(15000, 0, 1500, 2.0, 10)
	assert.Zero(t, savings.Annual)
	assert.Zero(t, savings.Lifetime)
}

func TestCalculateSavings_AnnualRoundedToWholeUnits(t *testing.T) {
	// 1234 * 0.17 * 1.5 = 314.67 -> 315
	savings := CalculateSavings(1234, 0.17, 1.5, 0, 1)
	assert.InDelta(t, 315, savings.Annual, 0.0001)
}

func TestRecommendedCapacity(t *testing.T) {
	tests := []struct {
		name             string
		dailyProduction  float64
		recommendedRatio float64
		available        []float64
		expected         float64
	}{
		{"Smallest tier covers", 6, 0.7, nil, 5},
		{"Mid tier", 12, 0.7, nil, 10},
		{"Exact boundary", 10, 0.5, nil, 5},
		{"Outstrips all tiers falls back to largest", 100, 0.7, nil, 20},
		{"Custom tier list", 12, 0.7, []float64{3, 6, 9, 12}, 9},
		{"Unsorted tier list", 12, 0.7, []float64{12, 3, 9, 6}, 9},
		{"Zero production picks smallest", 0, 0.7, nil, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RecommendedCapacity(tt.dailyProduction, tt.recommendedRatio, tt.available)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRecommendedCapacity_DoesNotMutateInput(t *testing.T) {
	available := []float64{20, 5, 15, 10}
	RecommendedCapacity(12, 0.7, available)
	assert.Equal(t, []float64{20, 5, 15, 10}, available)
}
