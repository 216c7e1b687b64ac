package validator

import (
	"fmt"
	"strings"
)

// Report renders the validation report for the last run. The layout is
// deterministic for a given document: a header naming the file, an ERRORS
// block when errors exist, a WARNINGS block when warnings exist, an
// "All checks passed!" line when neither does, and the final verdict.
func (v *Validator) Report() string {
	lines := []string{
		fmt.Sprintf("Spec Validation Report: %s", v.filename),
		strings.Repeat("=", 50),
	}

	if len(v.errors) > 0 {
		lines = append(lines, fmt.Sprintf("\nERRORS (%d):", len(v.errors)))
		for _, err := range v.errors {
			lines = append(lines, fmt.Sprintf("  - %s", err))
		}
	}

	if len(v.warnings) > 0 {
		lines = append(lines, fmt.Sprintf("\nWARNINGS (%d):", len(v.warnings)))
		for _, warn := range v.warnings {
			lines = append(lines, fmt.Sprintf("  - %s", warn))
		}
	}

	if len(v.errors) == 0 && len(v.warnings) == 0 {
		lines = append(lines, "\nAll checks passed!")
	}

	status := "PASSED"
	if len(v.errors) > 0 {
		status = "FAILED"
	}
	lines = append(lines, fmt.Sprintf("\nResult: %s", status))

	return strings.Join(lines, "\n")
}
