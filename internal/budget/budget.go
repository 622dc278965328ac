// Package budget derives per-section and overview word allocations from a
// total summary word target.
package budget

import "math"

// ExpandBelow is the fraction of the total target under which the compiled
// summary is sent back for an expansion pass.
const ExpandBelow = 0.85

// Budget is the planned word allocation for one summarization run.
type Budget struct {
	// TotalTarget is the caller's word cap for the whole summary.
	TotalTarget int
	// PerSection is the word target for each individual section summary.
	PerSection int
	// Overview is the word target for the overview paragraph. It is larger
	// when no sections were detected, since the overview then carries the
	// whole summary on raw-text context alone.
	Overview int
	// ExpandBelow mirrors the package constant for callers that hold only
	// the plan.
	ExpandBelow float64
}

// Plan allocates word budgets for a run summarizing presentSections
// sections toward totalTarget words. Sixty percent of the (floored) total
// feeds the section pool, split evenly across present sections with an
// 80-word floor each.
func Plan(totalTarget, presentSections int) Budget {
	total := totalTarget
	if total < 200 {
		total = 200
	}
	pool := int(math.Round(float64(total) * 0.6))
	if pool < 100 {
		pool = 100
	}

	divisor := presentSections
	if divisor < 1 {
		divisor = 1
	}
	perSection := pool / divisor
	if perSection < 80 {
		perSection = 80
	}

	var overview int
	if presentSections == 0 {
		overview = int(math.Round(float64(totalTarget) * 0.8))
		if overview < 400 {
			overview = 400
		}
	} else {
		overview = int(math.Round(float64(totalTarget) * 0.4))
		if overview < 200 {
			overview = 200
		}
	}

	return Budget{
		TotalTarget: totalTarget,
		PerSection:  perSection,
		Overview:    overview,
		ExpandBelow: ExpandBelow,
	}
}
