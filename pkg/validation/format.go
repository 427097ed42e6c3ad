// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/satriyop/solar-forecast/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateFinancingMethod checks if the financing method is one this engine
// can price.
func ValidateFinancingMethod(method string) error {
	switch method {
	case constants.FinancingCash, constants.FinancingLoan, constants.FinancingLease:
		return nil
	}
	return fmt.Errorf("expected financing method of %s, %s, or %s, got %s",
		constants.FinancingCash, constants.FinancingLoan, constants.FinancingLease, method)
}
