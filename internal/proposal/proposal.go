// Package proposal composes the financing, battery, projection, and
// investment calculators into a full evaluation of each configured proposal.
package proposal

import (
	"fmt"

	"github.com/satriyop/solar-forecast/internal/config"
	"github.com/satriyop/solar-forecast/pkg/battery"
	"github.com/satriyop/solar-forecast/pkg/constants"
	"github.com/satriyop/solar-forecast/pkg/financing"
	"github.com/satriyop/solar-forecast/pkg/investment"
	"github.com/satriyop/solar-forecast/pkg/projection"
	"go.uber.org/zap"
)

// FinancingSummary holds the payment obligations for the chosen method.
// MonthlyPayment and TotalFinancedCost are zero for cash purchases; Lease is
// nil unless the method is lease.
type FinancingSummary struct {
	Method            string
	MonthlyPayment    float64
	TotalFinancedCost float64
	Lease             *financing.LeaseQuote
}

// BatteryImpact holds the incremental value of the configured battery.
type BatteryImpact struct {
	SelfConsumption     battery.SelfConsumptionResult
	Backup              battery.BackupResult
	Savings             battery.Savings
	RecommendedCapacity float64
}

// Evaluation is the complete result for one proposal.
type Evaluation struct {
	Name         string
	Projections  []projection.YearlyProjection
	TotalSavings float64
	Financing    FinancingSummary
	Battery      *BatteryImpact
	PaybackYears float64
	PaysBack     bool
	ROIPercent   float64
	UpfrontCost  float64
	HorizonYears int
}

// Evaluate runs every active proposal through the calculation engine. The
// calculators themselves are pure; this layer only sequences them and logs.
func Evaluate(logger *zap.Logger, conf config.Configuration) []Evaluation {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Evaluation
	for _, p := range conf.Proposals {
		if !p.Active {
			logger.Debug(fmt.Sprintf("skipping proposal %s because it is inactive", p.Name),
				zap.String("op", "proposal.Evaluate"),
			)
			continue
		}

		results = append(results, evaluateOne(logger, p))
	}

	return results
}

func evaluateOne(logger *zap.Logger, p config.Proposal) Evaluation {
	result := Evaluation{
		Name:         p.Name,
		HorizonYears: p.HorizonYears,
	}

	result.Projections = projection.Generate(
		p.Site.AnnualProductionKwh,
		p.Tariff.RatePerKwh,
		p.Tariff.EscalationPercent,
		p.DegradationPercent,
		p.HorizonYears,
	)
	result.TotalSavings = projection.Sum(result.Projections)

	result.Financing = summarizeFinancing(p)
	result.UpfrontCost = upfrontCost(p, result.Financing)

	if p.Battery.CapacityKwh > 0 {
		result.Battery = evaluateBattery(p)
	}

	result.PaybackYears, result.PaysBack = investment.PaybackPeriod(result.Projections, result.UpfrontCost)
	result.ROIPercent = investment.ROI(result.TotalSavings, totalCost(p, result.Financing))

	logger.Debug(fmt.Sprintf("evaluated proposal %s", p.Name),
		zap.String("op", "proposal.Evaluate"),
		zap.Float64("totalSavings", result.TotalSavings),
		zap.Float64("roiPercent", result.ROIPercent),
		zap.Bool("paysBack", result.PaysBack),
	)

	return result
}

func summarizeFinancing(p config.Proposal) FinancingSummary {
	summary := FinancingSummary{Method: p.Financing.Method}

	switch p.Financing.Method {
	case constants.FinancingLoan:
		principal := p.SystemCost - p.Financing.DownPayment
		summary.MonthlyPayment = financing.CalculateLoanPayment(
			principal, p.Financing.AnnualRatePercent, p.Financing.TermYears)
		schedule := financing.AmortizationSchedule(
			principal, p.Financing.AnnualRatePercent, p.Financing.TermYears)
		summary.TotalFinancedCost = p.Financing.DownPayment + financing.TotalLoanCost(schedule)
	case constants.FinancingLease:
		quote := financing.CalculateLeasePayment(
			p.SystemCost, p.Financing.TermYears, p.Financing.ResidualPercent, p.Financing.MoneyFactor)
		summary.Lease = &quote
		summary.MonthlyPayment = quote.MonthlyLease
		summary.TotalFinancedCost = quote.TotalCost
	}

	return summary
}

// upfrontCost is the capital the buyer must recover through savings. Cash
// purchases pay the full system cost up front; loans put down only the down
// payment but still owe the principal, so payback is measured against the
// system cost; leases have no upfront outlay beyond the stream of payments.
func upfrontCost(p config.Proposal, summary FinancingSummary) float64 {
	if summary.Method == constants.FinancingLease {
		return 0
	}
	return p.SystemCost
}

// totalCost is the all-in cost of ownership used for ROI.
func totalCost(p config.Proposal, summary FinancingSummary) float64 {
	switch summary.Method {
	case constants.FinancingLoan, constants.FinancingLease:
		return summary.TotalFinancedCost
	}
	return p.SystemCost
}

func evaluateBattery(p config.Proposal) *BatteryImpact {
	impact := &BatteryImpact{}

	impact.SelfConsumption = battery.CalculateSelfConsumption(
		p.Site.DailyProductionKwh,
		p.Battery.CapacityKwh,
		p.Battery.RoundTripEfficiency,
		p.Site.BaseSelfConsumptionRatio,
		p.Site.MaxSelfConsumptionRatio,
	)

	impact.Backup = battery.CalculateBackupCapability(
		p.Battery.CapacityKwh,
		p.Battery.RoundTripEfficiency,
		p.Site.DailyConsumptionKwh,
		p.Site.ActiveHoursPerDay,
	)

	impact.Savings = battery.CalculateSavings(
		p.Site.AnnualProductionKwh,
		impact.SelfConsumption.Increase,
		p.Tariff.RatePerKwh,
		p.DegradationPercent,
		p.HorizonYears,
	)

	impact.RecommendedCapacity = battery.RecommendedCapacity(
		p.Site.DailyProductionKwh,
		p.Battery.RecommendedRatio,
		nil,
	)

	return impact
}
