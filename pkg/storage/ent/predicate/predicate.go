// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GradeResult is the predicate function for graderesult builders.
type GradeResult func(*sql.Selector)

// StudyGuide is the predicate function for studyguide builders.
type StudyGuide func(*sql.Selector)
