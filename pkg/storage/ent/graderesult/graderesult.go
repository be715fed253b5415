// Code generated by ent, DO NOT EDIT.

package graderesult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graderesult type in the database.
	Label = "grade_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExamName holds the string denoting the exam_name field in the database.
	FieldExamName = "exam_name"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldTotalMarks holds the string denoting the total_marks field in the database.
	FieldTotalMarks = "total_marks"
	// FieldTotalPossibleMarks holds the string denoting the total_possible_marks field in the database.
	FieldTotalPossibleMarks = "total_possible_marks"
	// FieldBreakdown holds the string denoting the breakdown field in the database.
	FieldBreakdown = "breakdown"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the graderesult in the database.
	Table = "grade_results"
)

// Columns holds all SQL columns for graderesult fields.
var Columns = []string{
	FieldID,
	FieldExamName,
	FieldSubject,
	FieldModel,
	FieldTotalMarks,
	FieldTotalPossibleMarks,
	FieldBreakdown,
	FieldFeedback,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ExamNameValidator is a validator for the "exam_name" field. It is called by the builders before save.
	ExamNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the GradeResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExamName orders the results by the exam_name field.
func ByExamName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamName, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByTotalMarks orders the results by the total_marks field.
func ByTotalMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMarks, opts...).ToFunc()
}

// ByTotalPossibleMarks orders the results by the total_possible_marks field.
func ByTotalPossibleMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPossibleMarks, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
