// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/graderesult"
)

// GradeResultCreate is the builder for creating a GradeResult entity.
type GradeResultCreate struct {
	config
	mutation *GradeResultMutation
	hooks    []Hook
}

// SetExamName sets the "exam_name" field.
func (_c *GradeResultCreate) SetExamName(v string) *GradeResultCreate {
	_c.mutation.SetExamName(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *GradeResultCreate) SetSubject(v string) *GradeResultCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *GradeResultCreate) SetNillableSubject(v *string) *GradeResultCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *GradeResultCreate) SetModel(v string) *GradeResultCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *GradeResultCreate) SetNillableModel(v *string) *GradeResultCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetTotalMarks sets the "total_marks" field.
func (_c *GradeResultCreate) SetTotalMarks(v float64) *GradeResultCreate {
	_c.mutation.SetTotalMarks(v)
	return _c
}

// SetTotalPossibleMarks sets the "total_possible_marks" field.
func (_c *GradeResultCreate) SetTotalPossibleMarks(v float64) *GradeResultCreate {
	_c.mutation.SetTotalPossibleMarks(v)
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *GradeResultCreate) SetBreakdown(v []guide.GradeLine) *GradeResultCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *GradeResultCreate) SetFeedback(v string) *GradeResultCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *GradeResultCreate) SetNillableFeedback(v *string) *GradeResultCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *GradeResultCreate) SetMetadata(v map[string]interface{}) *GradeResultCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GradeResultCreate) SetCreatedAt(v time.Time) *GradeResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GradeResultCreate) SetNillableCreatedAt(v *time.Time) *GradeResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GradeResultCreate) SetID(v string) *GradeResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GradeResultMutation object of the builder.
func (_c *GradeResultCreate) Mutation() *GradeResultMutation {
	return _c.mutation
}

// Save creates the GradeResult in the database.
func (_c *GradeResultCreate) Save(ctx context.Context) (*GradeResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeResultCreate) SaveX(ctx context.Context) *GradeResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graderesult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeResultCreate) check() error {
	if _, ok := _c.mutation.ExamName(); !ok {
		return &ValidationError{Name: "exam_name", err: errors.New(`ent: missing required field "GradeResult.exam_name"`)}
	}
	if v, ok := _c.mutation.ExamName(); ok {
		if err := graderesult.ExamNameValidator(v); err != nil {
			return &ValidationError{Name: "exam_name", err: fmt.Errorf(`ent: validator failed for field "GradeResult.exam_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalMarks(); !ok {
		return &ValidationError{Name: "total_marks", err: errors.New(`ent: missing required field "GradeResult.total_marks"`)}
	}
	if _, ok := _c.mutation.TotalPossibleMarks(); !ok {
		return &ValidationError{Name: "total_possible_marks", err: errors.New(`ent: missing required field "GradeResult.total_possible_marks"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GradeResult.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := graderesult.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "GradeResult.id": %w`, err)}
		}
	}
	return nil
}

func (_c *GradeResultCreate) sqlSave(ctx context.Context) (*GradeResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected GradeResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GradeResultCreate) createSpec() (*GradeResult, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graderesult.Table, sqlgraph.NewFieldSpec(graderesult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExamName(); ok {
		_spec.SetField(graderesult.FieldExamName, field.TypeString, value)
		_node.ExamName = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(graderesult.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(graderesult.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.TotalMarks(); ok {
		_spec.SetField(graderesult.FieldTotalMarks, field.TypeFloat64, value)
		_node.TotalMarks = value
	}
	if value, ok := _c.mutation.TotalPossibleMarks(); ok {
		_spec.SetField(graderesult.FieldTotalPossibleMarks, field.TypeFloat64, value)
		_node.TotalPossibleMarks = value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(graderesult.FieldBreakdown, field.TypeJSON, value)
		_node.Breakdown = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(graderesult.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(graderesult.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graderesult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GradeResultCreateBulk is the builder for creating many GradeResult entities in bulk.
type GradeResultCreateBulk struct {
	config
	err      error
	builders []*GradeResultCreate
}

// Save creates the GradeResult entities in the database.
func (_c *GradeResultCreateBulk) Save(ctx context.Context) ([]*GradeResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GradeResultCreateBulk) SaveX(ctx context.Context) []*GradeResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
