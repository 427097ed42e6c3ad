package validation

import (
	"fmt"
)

// ProposalConfig carries the fields of a proposal that sanity checks care
// about. Warnings never block evaluation; every calculator has a defined
// result for out-of-domain input.
type ProposalConfig struct {
	Name                     string
	Active                   bool
	SystemCost               float64
	FinancingMethod          string
	HorizonYears             int
	BaseSelfConsumptionRatio float64
	MaxSelfConsumptionRatio  float64
	RoundTripEfficiency      float64
	TariffEscalationPercent  float64
	DegradationPercent       float64
}

// ValidateRatio checks that a 0-1 ratio field is within range.
func ValidateRatio(name string, value float64, proposal string) string {
	if value < 0 || value > 1 {
		return fmt.Sprintf("Proposal '%s': %s is %.4f, expected a ratio between 0 and 1",
			proposal, name, value)
	}
	return ""
}

// ValidateProposal returns warnings for a single proposal's inputs.
func ValidateProposal(p ProposalConfig) []string {
	var warnings []string

	if p.SystemCost <= 0 {
		warnings = append(warnings, fmt.Sprintf("Proposal '%s': systemCost is %.2f - payback and ROI will report trivially",
			p.Name, p.SystemCost))
	}

	if p.HorizonYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("Proposal '%s': horizonYears is %d - savings projection will be empty",
			p.Name, p.HorizonYears))
	}

	if err := ValidateFinancingMethod(p.FinancingMethod); err != nil {
		warnings = append(warnings, fmt.Sprintf("Proposal '%s': %v", p.Name, err))
	}

	for _, check := range []struct {
		name  string
		value float64
	}{
		{"baseSelfConsumptionRatio", p.BaseSelfConsumptionRatio},
		{"maxSelfConsumptionRatio", p.MaxSelfConsumptionRatio},
		{"roundTripEfficiency", p.RoundTripEfficiency},
	} {
		if warning := ValidateRatio(check.name, check.value, p.Name); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if p.MaxSelfConsumptionRatio < p.BaseSelfConsumptionRatio {
		warnings = append(warnings, fmt.Sprintf("Proposal '%s': maxSelfConsumptionRatio (%.2f) is below baseSelfConsumptionRatio (%.2f)",
			p.Name, p.MaxSelfConsumptionRatio, p.BaseSelfConsumptionRatio))
	}

	if p.DegradationPercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Proposal '%s': degradationPercent is negative (%.2f) - panels do not improve with age",
			p.Name, p.DegradationPercent))
	}

	return warnings
}

// ValidateProposals validates a full proposal set and returns all warnings.
func ValidateProposals(proposals []ProposalConfig) []string {
	var warnings []string

	anyActive := false
	for _, p := range proposals {
		if !p.Active {
			continue
		}
		anyActive = true
		warnings = append(warnings, ValidateProposal(p)...)
	}

	if len(proposals) > 0 && !anyActive {
		warnings = append(warnings, "No active proposals - nothing will be evaluated")
	}

	return warnings
}
