// Package grades holds the grade arithmetic: letter/percentage conversion,
// per-entry grade points, credit-weighted averages, and the chart series
// derived from them. Everything here is a pure function over course entries;
// handlers recompute from the current collection on every request.
package grades

// letterPoints is the fixed grade-point scale. ABS (absent) and EIN
// (incomplete) count the same as F. Letters outside the table are worth 0.
var letterPoints = map[string]float64{
	"A+":  10,
	"A":   9,
	"A-":  8,
	"B+":  7,
	"B":   6,
	"C+":  5,
	"C":   4,
	"D+":  3,
	"D":   2,
	"E":   1,
	"F":   0,
	"ABS": 0,
	"EIN": 0,
}

// PercentageToLetter maps a percentage score to a letter grade. Every real
// number maps to exactly one letter: anything below 40 is an F, anything at
// or above 90 is an A+.
func PercentageToLetter(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 85:
		return "A"
	case percentage >= 80:
		return "A-"
	case percentage >= 75:
		return "B+"
	case percentage >= 70:
		return "B"
	case percentage >= 65:
		return "C+"
	case percentage >= 60:
		return "C"
	case percentage >= 55:
		return "D+"
	case percentage >= 50:
		return "D"
	case percentage >= 40:
		return "E"
	default:
		return "F"
	}
}

// LetterToNumeric returns the grade-point value of a letter grade. Unknown
// letters are worth 0, same as F.
func LetterToNumeric(letter string) float64 {
	return letterPoints[letter]
}
