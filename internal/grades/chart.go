package grades

import (
	"strconv"

	"github.com/henripigeon/grade-tracker/internal/types"
)

// OverallLabel is the trailing chart label covering the whole collection.
const OverallLabel = "Overall"

// ChartData is the shape the bar chart consumes: one value per label, in
// matching order.
type ChartData struct {
	Labels []string  `json:"labels"`
	Series []float64 `json:"series"`
}

// TermLabels returns the distinct "<year> <semester>" labels of a
// collection, in the order they are first encountered.
func TermLabels(entries []types.CourseEntry) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, entry := range entries {
		label := entry.TermLabel()
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}

// BuildChart computes the per-term CGPA series plus a trailing Overall
// value. Terms appear in collection-encounter order. An empty collection
// still yields the Overall bar, charted at 0.
func BuildChart(entries []types.CourseEntry) ChartData {
	var chart ChartData

	for _, label := range TermLabels(entries) {
		var group []types.CourseEntry
		for _, entry := range entries {
			if entry.TermLabel() == label {
				group = append(group, entry)
			}
		}
		chart.Labels = append(chart.Labels, label)
		chart.Series = append(chart.Series, chartValue(AverageCGPA(group)))
	}

	chart.Labels = append(chart.Labels, OverallLabel)
	chart.Series = append(chart.Series, chartValue(AverageCGPA(entries)))

	return chart
}

// chartValue parses an AverageCGPA result for charting, mapping
// NotAvailable to 0.
func chartValue(cgpa string) float64 {
	if cgpa == NotAvailable {
		return 0
	}

	value, err := strconv.ParseFloat(cgpa, 64)
	if err != nil {
		return 0
	}
	return value
}
