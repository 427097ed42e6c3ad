package investment

import (
	"math"
	"testing"

	"github.com/satriyop/solar-forecast/pkg/projection"
)

func series(savings ...float64) []projection.YearlyProjection {
	out := make([]projection.YearlyProjection, len(savings))
	for i, s := range savings {
		out[i] = projection.YearlyProjection{Year: i + 1, Savings: s}
	}
	return out
}

func TestPaybackPeriod(t *testing.T) {
	tests := []struct {
		name        string
		projections []projection.YearlyProjection
		upfrontCost float64
		expected    float64
		ok          bool
	}{
		{
			name:        "Whole-year crossing",
			projections: series(5000, 5000, 5000),
			upfrontCost: 10000,
			expected:    2,
			ok:          true,
		},
		{
			name:        "Fractional crossing",
			projections: series(3000, 3000, 3000),
			upfrontCost: 7500,
			expected:    2.5,
			ok:          true,
		},
		{
			name:        "Recouped within year one",
			projections: series(10000, 10000),
			upfrontCost: 2500,
			expected:    0.25,
			ok:          true,
		},
		{
			name:        "Zero cost already paid back",
			projections: series(5000, 5000),
			upfrontCost: 0,
			expected:    0,
			ok:          true,
		},
		{
			name:        "Negative cost already paid back",
			projections: series(5000),
			upfrontCost: -100,
			expected:    0,
			ok:          true,
		},
		{
			name:        "Empty series cannot compute",
			projections: nil,
			upfrontCost: 10000,
			ok:          false,
		},
		{
			name:        "Never recoups within horizon",
			projections: series(1000, 1000, 1000),
			upfrontCost: 10000,
			ok:          false,
		},
		{
			name:        "Exact crossing at final year",
			projections: series(5000, 5000),
			upfrontCost: 10000,
			expected:    2,
			ok:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := PaybackPeriod(tt.projections, tt.upfrontCost)
			if ok != tt.ok {
				t.Fatalf("PaybackPeriod() ok = %v, expected %v", ok, tt.ok)
			}
			if ok && math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("PaybackPeriod() = %.4f, expected %.4f", result, tt.expected)
			}
		})
	}
}

func TestPaybackPeriodUsesEscalatedSeries(t *testing.T) {
	// An escalating series crosses earlier than a flat series at the same
	// year-one savings.
	escalating := projection.Generate(10000, 1500, 5, 0, 10)
	flat := projection.Generate(10000, 1500, 0, 0, 10)
	cost := 60000000.0

	escalated, okEsc := PaybackPeriod(escalating, cost)
	flatYears, okFlat := PaybackPeriod(flat, cost)

	if !okEsc || !okFlat {
		t.Fatalf("expected both series to recoup: esc=%v flat=%v", okEsc, okFlat)
	}
	if escalated >= flatYears {
		t.Errorf("escalating payback %.4f should beat flat payback %.4f", escalated, flatYears)
	}
}

func TestROI(t *testing.T) {
	tests := []struct {
		name         string
		totalSavings float64
		totalCost    float64
		expected     float64
	}{
		{"Fifty percent gain", 150000, 100000, 50},
		{"Break even", 100000, 100000, 0},
		{"Fifty percent loss", 50000, 100000, -50},
		{"Zero cost", 12345, 0, 0},
		{"Negative cost", 12345, -100, 0},
		{"Total loss", 0, 100000, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ROI(tt.totalSavings, tt.totalCost)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("ROI(%v, %v) = %.4f, expected %.4f",
					tt.totalSavings, tt.totalCost, result, tt.expected)
			}
		})
	}
}
