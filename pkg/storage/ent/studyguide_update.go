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
	"github.com/studyforgeco/studyforge/pkg/storage/ent/predicate"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/studyguide"
)

// StudyGuideUpdate is the builder for updating StudyGuide entities.
type StudyGuideUpdate struct {
	config
	hooks    []Hook
	mutation *StudyGuideMutation
}

// Where appends a list predicates to the StudyGuideUpdate builder.
func (_u *StudyGuideUpdate) Where(ps ...predicate.StudyGuide) *StudyGuideUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StudyGuideUpdate) SetSubject(v string) *StudyGuideUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableSubject(v *string) *StudyGuideUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudyGuideUpdate) SetTopic(v string) *StudyGuideUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableTopic(v *string) *StudyGuideUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *StudyGuideUpdate) SetLevel(v string) *StudyGuideUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableLevel(v *string) *StudyGuideUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// ClearLevel clears the value of the "level" field.
func (_u *StudyGuideUpdate) ClearLevel() *StudyGuideUpdate {
	_u.mutation.ClearLevel()
	return _u
}

// SetModel sets the "model" field.
func (_u *StudyGuideUpdate) SetModel(v string) *StudyGuideUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableModel(v *string) *StudyGuideUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *StudyGuideUpdate) ClearModel() *StudyGuideUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetContent sets the "content" field.
func (_u *StudyGuideUpdate) SetContent(v string) *StudyGuideUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *StudyGuideUpdate) SetNillableContent(v *string) *StudyGuideUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *StudyGuideUpdate) SetSections(v []guide.Section) *StudyGuideUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *StudyGuideUpdate) AppendSections(v []guide.Section) *StudyGuideUpdate {
	_u.mutation.AppendSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *StudyGuideUpdate) ClearSections() *StudyGuideUpdate {
	_u.mutation.ClearSections()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *StudyGuideUpdate) SetMetadata(v map[string]interface{}) *StudyGuideUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *StudyGuideUpdate) ClearMetadata() *StudyGuideUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the StudyGuideMutation object of the builder.
func (_u *StudyGuideUpdate) Mutation() *StudyGuideMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyGuideUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyGuideUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyGuideUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyGuideUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyGuideUpdate) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := studyguide.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := studyguide.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyGuideUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyguide.Table, studyguide.Columns, sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studyguide.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studyguide.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(studyguide.FieldLevel, field.TypeString, value)
	}
	if _u.mutation.LevelCleared() {
		_spec.ClearField(studyguide.FieldLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(studyguide.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(studyguide.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(studyguide.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(studyguide.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyguide.FieldSections, value)
		})
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(studyguide.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(studyguide.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(studyguide.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyguide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyGuideUpdateOne is the builder for updating a single StudyGuide entity.
type StudyGuideUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyGuideMutation
}

// SetSubject sets the "subject" field.
func (_u *StudyGuideUpdateOne) SetSubject(v string) *StudyGuideUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableSubject(v *string) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudyGuideUpdateOne) SetTopic(v string) *StudyGuideUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableTopic(v *string) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *StudyGuideUpdateOne) SetLevel(v string) *StudyGuideUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableLevel(v *string) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// ClearLevel clears the value of the "level" field.
func (_u *StudyGuideUpdateOne) ClearLevel() *StudyGuideUpdateOne {
	_u.mutation.ClearLevel()
	return _u
}

// SetModel sets the "model" field.
func (_u *StudyGuideUpdateOne) SetModel(v string) *StudyGuideUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableModel(v *string) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *StudyGuideUpdateOne) ClearModel() *StudyGuideUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetContent sets the "content" field.
func (_u *StudyGuideUpdateOne) SetContent(v string) *StudyGuideUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *StudyGuideUpdateOne) SetNillableContent(v *string) *StudyGuideUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *StudyGuideUpdateOne) SetSections(v []guide.Section) *StudyGuideUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *StudyGuideUpdateOne) AppendSections(v []guide.Section) *StudyGuideUpdateOne {
	_u.mutation.AppendSections(v)
	return _u
}

// ClearSections clears the value of the "sections" field.
func (_u *StudyGuideUpdateOne) ClearSections() *StudyGuideUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *StudyGuideUpdateOne) SetMetadata(v map[string]interface{}) *StudyGuideUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *StudyGuideUpdateOne) ClearMetadata() *StudyGuideUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the StudyGuideMutation object of the builder.
func (_u *StudyGuideUpdateOne) Mutation() *StudyGuideMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyGuideUpdate builder.
func (_u *StudyGuideUpdateOne) Where(ps ...predicate.StudyGuide) *StudyGuideUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyGuideUpdateOne) Select(field string, fields ...string) *StudyGuideUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyGuide entity.
func (_u *StudyGuideUpdateOne) Save(ctx context.Context) (*StudyGuide, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyGuideUpdateOne) SaveX(ctx context.Context) *StudyGuide {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyGuideUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyGuideUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyGuideUpdateOne) check() error {
	if v, ok := _u.mutation.Subject(); ok {
		if err := studyguide.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := studyguide.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyGuideUpdateOne) sqlSave(ctx context.Context) (_node *StudyGuide, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyguide.Table, studyguide.Columns, sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyGuide.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyguide.FieldID)
		for _, f := range fields {
			if !studyguide.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyguide.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(studyguide.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studyguide.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(studyguide.FieldLevel, field.TypeString, value)
	}
	if _u.mutation.LevelCleared() {
		_spec.ClearField(studyguide.FieldLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(studyguide.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(studyguide.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(studyguide.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(studyguide.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studyguide.FieldSections, value)
		})
	}
	if _u.mutation.SectionsCleared() {
		_spec.ClearField(studyguide.FieldSections, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(studyguide.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(studyguide.FieldMetadata, field.TypeJSON)
	}
	_node = &StudyGuide{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyguide.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
