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
	"github.com/studyforgeco/studyforge/pkg/storage/ent/studyguide"
)

// StudyGuideCreate is the builder for creating a StudyGuide entity.
type StudyGuideCreate struct {
	config
	mutation *StudyGuideMutation
	hooks    []Hook
}

// SetSubject sets the "subject" field.
func (_c *StudyGuideCreate) SetSubject(v string) *StudyGuideCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *StudyGuideCreate) SetTopic(v string) *StudyGuideCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *StudyGuideCreate) SetLevel(v string) *StudyGuideCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableLevel(v *string) *StudyGuideCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *StudyGuideCreate) SetModel(v string) *StudyGuideCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableModel(v *string) *StudyGuideCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *StudyGuideCreate) SetContent(v string) *StudyGuideCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSections sets the "sections" field.
func (_c *StudyGuideCreate) SetSections(v []guide.Section) *StudyGuideCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *StudyGuideCreate) SetMetadata(v map[string]interface{}) *StudyGuideCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyGuideCreate) SetCreatedAt(v time.Time) *StudyGuideCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyGuideCreate) SetNillableCreatedAt(v *time.Time) *StudyGuideCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudyGuideCreate) SetID(v string) *StudyGuideCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StudyGuideMutation object of the builder.
func (_c *StudyGuideCreate) Mutation() *StudyGuideMutation {
	return _c.mutation
}

// Save creates the StudyGuide in the database.
func (_c *StudyGuideCreate) Save(ctx context.Context) (*StudyGuide, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyGuideCreate) SaveX(ctx context.Context) *StudyGuide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyGuideCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyGuideCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyGuideCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyguide.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyGuideCreate) check() error {
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "StudyGuide.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := studyguide.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "StudyGuide.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := studyguide.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "StudyGuide.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyGuide.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := studyguide.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "StudyGuide.id": %w`, err)}
		}
	}
	return nil
}

func (_c *StudyGuideCreate) sqlSave(ctx context.Context) (*StudyGuide, error) {
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
			return nil, fmt.Errorf("unexpected StudyGuide.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudyGuideCreate) createSpec() (*StudyGuide, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyGuide{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyguide.Table, sqlgraph.NewFieldSpec(studyguide.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(studyguide.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(studyguide.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(studyguide.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(studyguide.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(studyguide.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(studyguide.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(studyguide.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyguide.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudyGuideCreateBulk is the builder for creating many StudyGuide entities in bulk.
type StudyGuideCreateBulk struct {
	config
	err      error
	builders []*StudyGuideCreate
}

// Save creates the StudyGuide entities in the database.
func (_c *StudyGuideCreateBulk) Save(ctx context.Context) ([]*StudyGuide, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyGuide, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyGuideMutation)
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
func (_c *StudyGuideCreateBulk) SaveX(ctx context.Context) []*StudyGuide {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyGuideCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyGuideCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
