// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/satriyop/solar-forecast/internal/proposal"
)

// FindEvaluation finds an evaluation by proposal name in the results slice.
// Returns a pointer to the evaluation if found, nil otherwise.
func FindEvaluation(results []proposal.Evaluation, name string) *proposal.Evaluation {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
