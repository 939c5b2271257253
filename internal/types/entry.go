package types

// EntryType selects how a course entry is graded.
type EntryType string

const (
	// EntryTypeFinal marks a course graded by a single end-of-term letter grade.
	EntryTypeFinal EntryType = "final"
	// EntryTypeScale marks a course graded by an accumulating set of weighted assignments.
	EntryTypeScale EntryType = "scale"
)

// Assignment is one graded component of a "scale" course entry.
//
// Grade is nil while the assignment has not been graded yet. An ungraded
// assignment contributes 0 to the weighted sum but its weight still counts
// toward the total, so it pulls the course average down until a grade lands.
type Assignment struct {
	Name   string   `json:"name" firestore:"name"`
	Grade  *float64 `json:"grade" firestore:"grade"`
	Weight float64  `json:"weight" firestore:"weight"`
}

// CourseEntry represents one course in one term, stored in Firestore.
//
// Firestore Structure:
//   - entries/{id}
//
// Exactly one of FinalGrade / Assignments is meaningful, selected by
// EntryType. Credits of 0 means "unset" and defaults to 3 at computation
// time.
type CourseEntry struct {
	ID          string       `json:"id" firestore:"id"`
	Course      string       `json:"course" firestore:"course"`
	Year        string       `json:"year" firestore:"year"`
	Semester    string       `json:"semester" firestore:"semester"`
	GoalGrade   string       `json:"goal_grade" firestore:"goal_grade"`
	EntryType   EntryType    `json:"entry_type" firestore:"entry_type"`
	FinalGrade  string       `json:"final_grade" firestore:"final_grade"`
	Assignments []Assignment `json:"assignments" firestore:"assignments"`
	Credits     float64      `json:"credits" firestore:"credits"`
}

// TermLabel groups entries by academic term, e.g. "2024 Fall".
func (e CourseEntry) TermLabel() string {
	return e.Year + " " + e.Semester
}
