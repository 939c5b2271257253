package grades

import (
	"fmt"

	"github.com/henripigeon/grade-tracker/internal/types"
)

const (
	// DefaultCredits is assumed when an entry has no credit value set.
	DefaultCredits = 3

	// NotAvailable is returned by AverageCGPA when there is nothing to
	// average. Callers feeding a chart must map it to 0 themselves.
	NotAvailable = "N/A"
)

// WeightedPercentage computes the weighted average score of a set of
// assignments. An ungraded assignment contributes 0 to the sum while its
// weight still counts toward the total, so it drags the average down as if
// it scored 0%. That matches how the tracker has always behaved; changing
// it would silently shift every scale entry's grade.
func WeightedPercentage(assignments []types.Assignment) float64 {
	var totalWeight, weightedSum float64
	for _, a := range assignments {
		totalWeight += a.Weight
		if a.Grade != nil {
			weightedSum += *a.Grade * a.Weight
		}
	}

	if totalWeight > 0 {
		return weightedSum / totalWeight
	}
	return 0
}

// RemainingWeight returns how many percentage points of a scale entry are
// not yet covered by assignments, floored at 0. Display only; it plays no
// part in the average.
func RemainingWeight(assignments []types.Assignment) float64 {
	var total float64
	for _, a := range assignments {
		total += a.Weight
	}

	if total >= 100 {
		return 0
	}
	return 100 - total
}

// EntryLetter returns the letter grade an entry currently stands at: the
// recorded final grade for "final" entries (F when missing), or the letter
// for the weighted assignment average for "scale" entries.
func EntryLetter(entry types.CourseEntry) string {
	if entry.EntryType == types.EntryTypeScale {
		return PercentageToLetter(WeightedPercentage(entry.Assignments))
	}

	if entry.FinalGrade == "" {
		return "F"
	}
	return entry.FinalGrade
}

// EntryNumeric returns the grade-point value of an entry. Scale entries go
// through the percentage -> letter -> numeric round trip on purpose: the
// displayed letter and the grade points must always agree, even though the
// round trip discards precision between the two scales.
func EntryNumeric(entry types.CourseEntry) float64 {
	return LetterToNumeric(EntryLetter(entry))
}

// Credits returns the credit weight of an entry, substituting
// DefaultCredits when the field is unset or zero.
func Credits(entry types.CourseEntry) float64 {
	if entry.Credits > 0 {
		return entry.Credits
	}
	return DefaultCredits
}

// AverageCGPA computes the credit-weighted grade-point average across
// entries, formatted with two fractional digits. An empty collection yields
// NotAvailable rather than a number.
func AverageCGPA(entries []types.CourseEntry) string {
	if len(entries) == 0 {
		return NotAvailable
	}

	var totalPoints, totalCredits float64
	for _, entry := range entries {
		credits := Credits(entry)
		totalPoints += EntryNumeric(entry) * credits
		totalCredits += credits
	}

	return fmt.Sprintf("%.2f", totalPoints/totalCredits)
}
