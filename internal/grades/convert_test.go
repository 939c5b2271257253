package grades

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentageToLetterBoundaries(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{150, "A+"},
		{90, "A+"},
		{89.999, "A"},
		{85, "A"},
		{84.999, "A-"},
		{80, "A-"},
		{75, "B+"},
		{74.999, "B"},
		{70, "B"},
		{65, "C+"},
		{60, "C"},
		{55, "D+"},
		{50, "D"},
		{49.999, "E"},
		{40, "E"},
		{39.999, "F"},
		{0, "F"},
		{-5, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PercentageToLetter(tt.percentage), "percentage %v", tt.percentage)
	}
}

func TestPercentageToLetterIsMonotonic(t *testing.T) {
	prev := LetterToNumeric(PercentageToLetter(-20))
	for p := -20.0; p <= 120; p += 0.25 {
		current := LetterToNumeric(PercentageToLetter(p))
		assert.GreaterOrEqual(t, current, prev, "grade points dropped at %v", p)
		prev = current
	}
}

func TestLetterToNumeric(t *testing.T) {
	tests := []struct {
		letter string
		want   float64
	}{
		{"A+", 10},
		{"A", 9},
		{"A-", 8},
		{"B+", 7},
		{"B", 6},
		{"C+", 5},
		{"C", 4},
		{"D+", 3},
		{"D", 2},
		{"E", 1},
		{"F", 0},
		{"ABS", 0},
		{"EIN", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LetterToNumeric(tt.letter), "letter %s", tt.letter)
	}
}

func TestLetterToNumericUnknownLetter(t *testing.T) {
	assert.Equal(t, 0.0, LetterToNumeric("Z"))
	assert.Equal(t, 0.0, LetterToNumeric(""))
	assert.Equal(t, 0.0, LetterToNumeric("a+"))
}
