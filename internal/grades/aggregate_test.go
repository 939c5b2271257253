package grades

import (
	"testing"

	"github.com/henripigeon/grade-tracker/internal/types"
	"github.com/stretchr/testify/assert"
)

func gradePtr(v float64) *float64 {
	return &v
}

func TestEntryNumericFinalGrade(t *testing.T) {
	entry := types.CourseEntry{
		Course:     "Algorithms",
		EntryType:  types.EntryTypeFinal,
		FinalGrade: "A",
	}

	assert.Equal(t, "A", EntryLetter(entry))
	assert.Equal(t, 9.0, EntryNumeric(entry))
}

func TestEntryNumericMissingFinalGradeIsF(t *testing.T) {
	entry := types.CourseEntry{EntryType: types.EntryTypeFinal}

	assert.Equal(t, "F", EntryLetter(entry))
	assert.Equal(t, 0.0, EntryNumeric(entry))
}

func TestEntryNumericScaleCountsUngradedAsZero(t *testing.T) {
	// One graded assignment at 80%, one still ungraded. The ungraded half
	// counts its weight but contributes nothing, so the average lands at 40.
	entry := types.CourseEntry{
		EntryType: types.EntryTypeScale,
		Assignments: []types.Assignment{
			{Name: "Midterm", Grade: gradePtr(80), Weight: 50},
			{Name: "Final", Weight: 50},
		},
	}

	assert.Equal(t, 40.0, WeightedPercentage(entry.Assignments))
	assert.Equal(t, "E", EntryLetter(entry))
	assert.Equal(t, 1.0, EntryNumeric(entry))
}

func TestEntryNumericScaleRoundTripAgreesWithLetter(t *testing.T) {
	entry := types.CourseEntry{
		EntryType: types.EntryTypeScale,
		Assignments: []types.Assignment{
			{Name: "Quiz", Grade: gradePtr(87), Weight: 30},
			{Name: "Project", Grade: gradePtr(92), Weight: 70},
		},
	}

	letter := EntryLetter(entry)
	assert.Equal(t, LetterToNumeric(letter), EntryNumeric(entry))
}

func TestWeightedPercentageNoAssignments(t *testing.T) {
	assert.Equal(t, 0.0, WeightedPercentage(nil))
	assert.Equal(t, 0.0, WeightedPercentage([]types.Assignment{}))
}

func TestRemainingWeight(t *testing.T) {
	assignments := []types.Assignment{
		{Name: "Midterm", Weight: 30},
		{Name: "Final", Weight: 40},
	}
	assert.Equal(t, 30.0, RemainingWeight(assignments))

	// Floored at zero once assignments cover 100 points or more
	assignments = append(assignments, types.Assignment{Name: "Project", Weight: 50})
	assert.Equal(t, 0.0, RemainingWeight(assignments))
}

func TestCreditsDefault(t *testing.T) {
	assert.Equal(t, float64(DefaultCredits), Credits(types.CourseEntry{}))
	assert.Equal(t, float64(DefaultCredits), Credits(types.CourseEntry{Credits: 0}))
	assert.Equal(t, 4.0, Credits(types.CourseEntry{Credits: 4}))
}

func TestAverageCGPAEmpty(t *testing.T) {
	assert.Equal(t, NotAvailable, AverageCGPA(nil))
	assert.Equal(t, NotAvailable, AverageCGPA([]types.CourseEntry{}))
}

func TestAverageCGPACreditWeighted(t *testing.T) {
	entries := []types.CourseEntry{
		{EntryType: types.EntryTypeFinal, FinalGrade: "A", Credits: 3},
		{EntryType: types.EntryTypeFinal, FinalGrade: "B", Credits: 3},
	}

	// (9*3 + 6*3) / 6 = 7.5
	assert.Equal(t, "7.50", AverageCGPA(entries))
}

func TestAverageCGPAUnevenCredits(t *testing.T) {
	entries := []types.CourseEntry{
		{EntryType: types.EntryTypeFinal, FinalGrade: "A+", Credits: 4},
		{EntryType: types.EntryTypeFinal, FinalGrade: "C", Credits: 2},
	}

	// (10*4 + 4*2) / 6 = 8.0
	assert.Equal(t, "8.00", AverageCGPA(entries))
}

func TestAverageCGPAZeroCreditsTreatedAsDefault(t *testing.T) {
	entries := []types.CourseEntry{
		{EntryType: types.EntryTypeFinal, FinalGrade: "A"},
		{EntryType: types.EntryTypeFinal, FinalGrade: "B"},
	}

	assert.Equal(t, "7.50", AverageCGPA(entries))
}

func TestAggregationIsIdempotent(t *testing.T) {
	entries := []types.CourseEntry{
		{EntryType: types.EntryTypeFinal, FinalGrade: "A-", Credits: 3},
		{
			EntryType: types.EntryTypeScale,
			Credits:   4,
			Assignments: []types.Assignment{
				{Name: "Midterm", Grade: gradePtr(72), Weight: 40},
				{Name: "Final", Weight: 60},
			},
		},
	}

	first := AverageCGPA(entries)
	second := AverageCGPA(entries)
	assert.Equal(t, first, second)

	assert.Equal(t, EntryNumeric(entries[1]), EntryNumeric(entries[1]))
}
