package testutil

import (
	"testing"

	"github.com/satriyop/solar-forecast/internal/proposal"
)

func TestFindEvaluation(t *testing.T) {
	results := []proposal.Evaluation{
		{Name: "baseline"},
		{Name: "with-battery"},
	}

	if found := FindEvaluation(results, "with-battery"); found == nil || found.Name != "with-battery" {
		t.Errorf("FindEvaluation() failed to locate existing evaluation")
	}

	if found := FindEvaluation(results, "missing"); found != nil {
		t.Errorf("FindEvaluation() = %v, expected nil for missing name", found)
	}

	if found := FindEvaluation(nil, "baseline"); found != nil {
		t.Errorf("FindEvaluation() on nil slice = %v, expected nil", found)
	}
}
