// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/graderesult"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/predicate"
)

// GradeResultUpdate is the builder for updating GradeResult entities.
type GradeResultUpdate struct {
	config
	hooks    []Hook
	mutation *GradeResultMutation
}

// Where appends a list predicates to the GradeResultUpdate builder.
func (_u *GradeResultUpdate) Where(ps ...predicate.GradeResult) *GradeResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamName sets the "exam_name" field.
func (_u *GradeResultUpdate) SetExamName(v string) *GradeResultUpdate {
	_u.mutation.SetExamName(v)
	return _u
}

// SetNillableExamName sets the "exam_name" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableExamName(v *string) *GradeResultUpdate {
	if v != nil {
		_u.SetExamName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *GradeResultUpdate) SetSubject(v string) *GradeResultUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableSubject(v *string) *GradeResultUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *GradeResultUpdate) ClearSubject() *GradeResultUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetModel sets the "model" field.
func (_u *GradeResultUpdate) SetModel(v string) *GradeResultUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableModel(v *string) *GradeResultUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *GradeResultUpdate) ClearModel() *GradeResultUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetTotalMarks sets the "total_marks" field.
func (_u *GradeResultUpdate) SetTotalMarks(v float64) *GradeResultUpdate {
	_u.mutation.ResetTotalMarks()
	_u.mutation.SetTotalMarks(v)
	return _u
}

// SetNillableTotalMarks sets the "total_marks" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableTotalMarks(v *float64) *GradeResultUpdate {
	if v != nil {
		_u.SetTotalMarks(*v)
	}
	return _u
}

// AddTotalMarks adds value to the "total_marks" field.
func (_u *GradeResultUpdate) AddTotalMarks(v float64) *GradeResultUpdate {
	_u.mutation.AddTotalMarks(v)
	return _u
}

// SetTotalPossibleMarks sets the "total_possible_marks" field.
func (_u *GradeResultUpdate) SetTotalPossibleMarks(v float64) *GradeResultUpdate {
	_u.mutation.ResetTotalPossibleMarks()
	_u.mutation.SetTotalPossibleMarks(v)
	return _u
}

// SetNillableTotalPossibleMarks sets the "total_possible_marks" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableTotalPossibleMarks(v *float64) *GradeResultUpdate {
	if v != nil {
		_u.SetTotalPossibleMarks(*v)
	}
	return _u
}

// AddTotalPossibleMarks adds value to the "total_possible_marks" field.
func (_u *GradeResultUpdate) AddTotalPossibleMarks(v float64) *GradeResultUpdate {
	_u.mutation.AddTotalPossibleMarks(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *GradeResultUpdate) SetBreakdown(v []guide.GradeLine) *GradeResultUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// AppendBreakdown appends value to the "breakdown" field.
func (_u *GradeResultUpdate) AppendBreakdown(v []guide.GradeLine) *GradeResultUpdate {
	_u.mutation.AppendBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *GradeResultUpdate) ClearBreakdown() *GradeResultUpdate {
	_u.mutation.ClearBreakdown()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeResultUpdate) SetFeedback(v string) *GradeResultUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradeResultUpdate) SetNillableFeedback(v *string) *GradeResultUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *GradeResultUpdate) ClearFeedback() *GradeResultUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *GradeResultUpdate) SetMetadata(v map[string]interface{}) *GradeResultUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *GradeResultUpdate) ClearMetadata() *GradeResultUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the GradeResultMutation object of the builder.
func (_u *GradeResultUpdate) Mutation() *GradeResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeResultUpdate) check() error {
	if v, ok := _u.mutation.ExamName(); ok {
		if err := graderesult.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "GradeResult.exam_name": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graderesult.Table, graderesult.Columns, sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamName(); ok {
		_spec.SetField(graderesult.FieldExamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(graderesult.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(graderesult.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(graderesult.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(graderesult.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.TotalMarks(); ok {
		_spec.SetField(graderesult.FieldTotalMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalMarks(); ok {
		_spec.AddField(graderesult.FieldTotalMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPossibleMarks(); ok {
		_spec.SetField(graderesult.FieldTotalPossibleMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPossibleMarks(); ok {
		_spec.AddField(graderesult.FieldTotalPossibleMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(graderesult.FieldBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBreakdown(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, graderesult.FieldBreakdown, value)
		})
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(graderesult.FieldBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(graderesult.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(graderesult.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(graderesult.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(graderesult.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graderesult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeResultUpdateOne is the builder for updating a single GradeResult entity.
type GradeResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeResultMutation
}

// SetExamName sets the "exam_name" field.
func (_u *GradeResultUpdateOne) SetExamName(v string) *GradeResultUpdateOne {
	_u.mutation.SetExamName(v)
	return _u
}

// SetNillableExamName sets the "exam_name" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableExamName(v *string) *GradeResultUpdateOne {
	if v != nil {
		_u.SetExamName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *GradeResultUpdateOne) SetSubject(v string) *GradeResultUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableSubject(v *string) *GradeResultUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *GradeResultUpdateOne) ClearSubject() *GradeResultUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetModel sets the "model" field.
func (_u *GradeResultUpdateOne) SetModel(v string) *GradeResultUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableModel(v *string) *GradeResultUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *GradeResultUpdateOne) ClearModel() *GradeResultUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetTotalMarks sets the "total_marks" field.
func (_u *GradeResultUpdateOne) SetTotalMarks(v float64) *GradeResultUpdateOne {
	_u.mutation.ResetTotalMarks()
	_u.mutation.SetTotalMarks(v)
	return _u
}

// SetNillableTotalMarks sets the "total_marks" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableTotalMarks(v *float64) *GradeResultUpdateOne {
	if v != nil {
		_u.SetTotalMarks(*v)
	}
	return _u
}

// AddTotalMarks adds value to the "total_marks" field.
func (_u *GradeResultUpdateOne) AddTotalMarks(v float64) *GradeResultUpdateOne {
	_u.mutation.AddTotalMarks(v)
	return _u
}

// SetTotalPossibleMarks sets the "total_possible_marks" field.
func (_u *GradeResultUpdateOne) SetTotalPossibleMarks(v float64) *GradeResultUpdateOne {
	_u.mutation.ResetTotalPossibleMarks()
	_u.mutation.SetTotalPossibleMarks(v)
	return _u
}

// SetNillableTotalPossibleMarks sets the "total_possible_marks" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableTotalPossibleMarks(v *float64) *GradeResultUpdateOne {
	if v != nil {
		_u.SetTotalPossibleMarks(*v)
	}
	return _u
}

// AddTotalPossibleMarks adds value to the "total_possible_marks" field.
func (_u *GradeResultUpdateOne) AddTotalPossibleMarks(v float64) *GradeResultUpdateOne {
	_u.mutation.AddTotalPossibleMarks(v)
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *GradeResultUpdateOne) SetBreakdown(v []guide.GradeLine) *GradeResultUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// AppendBreakdown appends value to the "breakdown" field.
func (_u *GradeResultUpdateOne) AppendBreakdown(v []guide.GradeLine) *GradeResultUpdateOne {
	_u.mutation.AppendBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *GradeResultUpdateOne) ClearBreakdown() *GradeResultUpdateOne {
	_u.mutation.ClearBreakdown()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradeResultUpdateOne) SetFeedback(v string) *GradeResultUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradeResultUpdateOne) SetNillableFeedback(v *string) *GradeResultUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *GradeResultUpdateOne) ClearFeedback() *GradeResultUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *GradeResultUpdateOne) SetMetadata(v map[string]interface{}) *GradeResultUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *GradeResultUpdateOne) ClearMetadata() *GradeResultUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the GradeResultMutation object of the builder.
func (_u *GradeResultUpdateOne) Mutation() *GradeResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradeResultUpdate builder.
func (_u *GradeResultUpdateOne) Where(ps ...predicate.GradeResult) *GradeResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeResultUpdateOne) Select(field string, fields ...string) *GradeResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeResult entity.
func (_u *GradeResultUpdateOne) Save(ctx context.Context) (*GradeResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeResultUpdateOne) SaveX(ctx context.Context) *GradeResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeResultUpdateOne) check() error {
	if v, ok := _u.mutation.ExamName(); ok {
		if err := graderesult.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "GradeResult.exam_name": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeResultUpdateOne) sqlSave(ctx context.Context) (_node *GradeResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graderesult.Table, graderesult.Columns, sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graderesult.FieldID)
		for _, f := range fields {
			if !graderesult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graderesult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamName(); ok {
		_spec.SetField(graderesult.FieldExamName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(graderesult.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(graderesult.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(graderesult.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(graderesult.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.TotalMarks(); ok {
		_spec.SetField(graderesult.FieldTotalMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalMarks(); ok {
		_spec.AddField(graderesult.FieldTotalMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalPossibleMarks(); ok {
		_spec.SetField(graderesult.FieldTotalPossibleMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPossibleMarks(); ok {
		_spec.AddField(graderesult.FieldTotalPossibleMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(graderesult.FieldBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBreakdown(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, graderesult.FieldBreakdown, value)
		})
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(graderesult.FieldBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(graderesult.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(graderesult.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(graderesult.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(graderesult.FieldMetadata, field.TypeJSON)
	}
	_node = &GradeResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graderesult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
