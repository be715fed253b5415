// Code generated by ent, DO NOT EDIT.

package graderesult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContainsFold(FieldID, id))
}

// ExamName applies equality check predicate on the "exam_name" field. It's identical to ExamNameEQ.
func ExamName(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldExamName, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldSubject, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldModel, v))
}

// TotalMarks applies equality check predicate on the "total_marks" field. It's identical to TotalMarksEQ.
func TotalMarks(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldTotalMarks, v))
}

// TotalPossibleMarks applies equality check predicate on the "total_possible_marks" field. It's identical to TotalPossibleMarksEQ.
func TotalPossibleMarks(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldTotalPossibleMarks, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldCreatedAt, v))
}

// ExamNameEQ applies the EQ predicate on the "exam_name" field.
func ExamNameEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldExamName, v))
}

// ExamNameNEQ applies the NEQ predicate on the "exam_name" field.
func ExamNameNEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldExamName, v))
}

// ExamNameIn applies the In predicate on the "exam_name" field.
func ExamNameIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldExamName, vs...))
}

// ExamNameNotIn applies the NotIn predicate on the "exam_name" field.
func ExamNameNotIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldExamName, vs...))
}

// ExamNameGT applies the GT predicate on the "exam_name" field.
func ExamNameGT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldExamName, v))
}

// ExamNameGTE applies the GTE predicate on the "exam_name" field.
func ExamNameGTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldExamName, v))
}

// ExamNameLT applies the LT predicate on the "exam_name" field.
func ExamNameLT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldExamName, v))
}

// ExamNameLTE applies the LTE predicate on the "exam_name" field.
func ExamNameLTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldExamName, v))
}

// ExamNameContains applies the Contains predicate on the "exam_name" field.
func ExamNameContains(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContains(FieldExamName, v))
}

// ExamNameHasPrefix applies the HasPrefix predicate on the "exam_name" field.
func ExamNameHasPrefix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasPrefix(FieldExamName, v))
}

// ExamNameHasSuffix applies the HasSuffix predicate on the "exam_name" field.
func ExamNameHasSuffix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasSuffix(FieldExamName, v))
}

// ExamNameEqualFold applies the EqualFold predicate on the "exam_name" field.
func ExamNameEqualFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEqualFold(FieldExamName, v))
}

// ExamNameContainsFold applies the ContainsFold predicate on the "exam_name" field.
func ExamNameContainsFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContainsFold(FieldExamName, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContainsFold(FieldSubject, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContainsFold(FieldModel, v))
}

// TotalMarksEQ applies the EQ predicate on the "total_marks" field.
func TotalMarksEQ(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldTotalMarks, v))
}

// TotalMarksNEQ applies the NEQ predicate on the "total_marks" field.
func TotalMarksNEQ(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldTotalMarks, v))
}

// TotalMarksIn applies the In predicate on the "total_marks" field.
func TotalMarksIn(vs ...float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldTotalMarks, vs...))
}

// TotalMarksNotIn applies the NotIn predicate on the "total_marks" field.
func TotalMarksNotIn(vs ...float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldTotalMarks, vs...))
}

// TotalMarksGT applies the GT predicate on the "total_marks" field.
func TotalMarksGT(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldTotalMarks, v))
}

// TotalMarksGTE applies the GTE predicate on the "total_marks" field.
func TotalMarksGTE(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldTotalMarks, v))
}

// TotalMarksLT applies the LT predicate on the "total_marks" field.
func TotalMarksLT(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldTotalMarks, v))
}

// TotalMarksLTE applies the LTE predicate on the "total_marks" field.
func TotalMarksLTE(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldTotalMarks, v))
}

// TotalPossibleMarksEQ applies the EQ predicate on the "total_possible_marks" field.
func TotalPossibleMarksEQ(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldTotalPossibleMarks, v))
}

// TotalPossibleMarksNEQ applies the NEQ predicate on the "total_possible_marks" field.
func TotalPossibleMarksNEQ(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldTotalPossibleMarks, v))
}

// TotalPossibleMarksIn applies the In predicate on the "total_possible_marks" field.
func TotalPossibleMarksIn(vs ...float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldTotalPossibleMarks, vs...))
}

// TotalPossibleMarksNotIn applies the NotIn predicate on the "total_possible_marks" field.
func TotalPossibleMarksNotIn(vs ...float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldTotalPossibleMarks, vs...))
}

// TotalPossibleMarksGT applies the GT predicate on the "total_possible_marks" field.
func TotalPossibleMarksGT(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldTotalPossibleMarks, v))
}

// TotalPossibleMarksGTE applies the GTE predicate on the "total_possible_marks" field.
func TotalPossibleMarksGTE(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldTotalPossibleMarks, v))
}

// TotalPossibleMarksLT applies the LT predicate on the "total_possible_marks" field.
func TotalPossibleMarksLT(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldTotalPossibleMarks, v))
}

// TotalPossibleMarksLTE applies the LTE predicate on the "total_possible_marks" field.
func TotalPossibleMarksLTE(v float64) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldTotalPossibleMarks, v))
}

// BreakdownIsNil applies the IsNil predicate on the "breakdown" field.
func BreakdownIsNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIsNull(FieldBreakdown))
}

// BreakdownNotNil applies the NotNil predicate on the "breakdown" field.
func BreakdownNotNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotNull(FieldBreakdown))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldContainsFold(FieldFeedback, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GradeResult {
	return predicate.GradeResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeResult) predicate.GradeResult {
	return predicate.GradeResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeResult) predicate.GradeResult {
	return predicate.GradeResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeResult) predicate.GradeResult {
	return predicate.GradeResult(sql.NotPredicates(p))
}
