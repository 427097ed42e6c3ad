// Package financing provides loan and lease payment calculations for solar
// system proposals.
package financing

import (
	"math"

	"github.com/satriyop/solar-forecast/pkg/constants"
	"github.com/satriyop/solar-forecast/pkg/mathutil"
)

// LeaseQuote holds the payment structure for a leased system.
type LeaseQuote struct {
	MonthlyLease       float64
	TotalLeasePayments float64
	BuyoutPrice        float64
	TotalCost          float64
}

// Payment holds the values for a single amortization schedule entry.
type Payment struct {
	Payment            float64
	Principal          float64
	Interest           float64
	RemainingPrincipal float64
}

// CalculateLoanPayment calculates the monthly payment for a loan using the
// standard amortization formula. A non-positive principal or term yields 0
// and a non-positive rate falls back to interest-free straight division, so
// the result is always a finite number.
func CalculateLoanPayment(principal, annualRatePercent float64, years int) float64 {
	if principal <= 0 || years <= 0 {
		return 0
	}

	termMonths := float64(years * constants.MonthsPerYear)
	if annualRatePercent <= 0 {
		// For zero interest, simply divide the principal by term
		return principal / termMonths
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, termMonths)
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// CalculateLeasePayment structures a lease for a system: straight-line
// depreciation to the residual value plus a money-factor finance charge.
// The monthly lease and buyout price are rounded to whole currency units.
// A non-positive cost or term yields a zero quote.
func CalculateLeasePayment(systemCost float64, leaseTermYears int, residualPercent, moneyFactor float64) LeaseQuote {
	if systemCost <= 0 || leaseTermYears <= 0 {
		return LeaseQuote{}
	}

	termMonths := float64(leaseTermYears * constants.MonthsPerYear)
	residualValue := mathutil.ApplyPercentage(systemCost, residualPercent)
	depreciation := (systemCost - residualValue) / termMonths
	financeCharge := (systemCost + residualValue) * moneyFactor

	monthlyLease := mathutil.RoundWhole(depreciation + financeCharge)
	totalLeasePayments := monthlyLease * termMonths
	buyoutPrice := mathutil.RoundWhole(residualValue)

	return LeaseQuote{
		MonthlyLease:       monthlyLease,
		TotalLeasePayments: totalLeasePayments,
		BuyoutPrice:        buyoutPrice,
		TotalCost:          totalLeasePayments + buyoutPrice,
	}
}

// CalculateInterestPayment calculates the interest portion of one monthly
// payment at the given remaining balance.
func CalculateInterestPayment(remainingPrincipal, annualRatePercent float64) float64 {
	if annualRatePercent <= 0 {
		return 0
	}
	return remainingPrincipal * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// AmortizationSchedule generates the month-by-month principal/interest split
// for a loan. The slice is ordered from the first payment; an empty slice is
// returned for degenerate inputs.
func AmortizationSchedule(principal, annualRatePercent float64, years int) []Payment {
	if principal <= 0 || years <= 0 {
		return nil
	}

	monthlyPayment := CalculateLoanPayment(principal, annualRatePercent, years)
	termMonths := years * constants.MonthsPerYear
	schedule := make([]Payment, 0, termMonths)

	remaining := principal
	for month := 1; month <= termMonths; month++ {
		interest := CalculateInterestPayment(remaining, annualRatePercent)
		principalPortion := monthlyPayment - interest

		if month == termMonths || mathutil.Round(remaining-principalPortion) == 0 {
			// Absorb machine error on the final payment.
			principalPortion = remaining
			remaining = 0
		} else {
			remaining -= principalPortion
		}

		schedule = append(schedule, Payment{
			Payment:            monthlyPayment,
			Principal:          principalPortion,
			Interest:           interest,
			RemainingPrincipal: remaining,
		})

		if remaining == 0 {
			break
		}
	}

	return schedule
}

// TotalLoanCost sums all payments in an amortization schedule.
func TotalLoanCost(schedule []Payment) float64 {
	total := 0.00
	for _, payment := range schedule {
		total += payment.Payment
	}
	return total
}
