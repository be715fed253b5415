// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/graderesult"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/predicate"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/studyguide"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGradeResult = "GradeResult"
	TypeStudyGuide  = "StudyGuide"
)

// GradeResultMutation represents an operation that mutates the GradeResult nodes in the graph.
type GradeResultMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	exam_name               *string
	subject                 *string
	model                   *string
	total_marks             *float64
	addtotal_marks          *float64
	total_possible_marks    *float64
	addtotal_possible_marks *float64
	breakdown               *[]guide.GradeLine
	appendbreakdown         []guide.GradeLine
	feedback                *string
	metadata                *map[string]interface{}
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*GradeResult, error)
	predicates              []predicate.GradeResult
}

var _ ent.Mutation = (*GradeResultMutation)(nil)

// graderesultOption allows management of the mutation configuration using functional options.
type graderesultOption func(*GradeResultMutation)

// newGradeResultMutation creates new mutation for the GradeResult entity.
func newGradeResultMutation(c config, op Op, opts ...graderesultOption) *GradeResultMutation {
	m := &GradeResultMutation{
		config:        c,
		op:            op,
		typ:           TypeGradeResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGradeResultID sets the ID field of the mutation.
func withGradeResultID(id string) graderesultOption {
	return func(m *GradeResultMutation) {
		var (
			err   error
			once  sync.Once
			value *GradeResult
		)
		m.oldValue = func(ctx context.Context) (*GradeResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GradeResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGradeResult sets the old GradeResult of the mutation.
func withGradeResult(node *GradeResult) graderesultOption {
	return func(m *GradeResultMutation) {
		m.oldValue = func(context.Context) (*GradeResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GradeResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GradeResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GradeResult entities.
func (m *GradeResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GradeResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GradeResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GradeResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExamName sets the "exam_name" field.
func (m *GradeResultMutation) SetExamName(s string) {
	m.exam_name = &s
}

// ExamName returns the value of the "exam_name" field in the mutation.
func (m *GradeResultMutation) ExamName() (r string, exists bool) {
	v := m.exam_name
	if v == nil {
		return
	}
	return *v, true
}

// OldExamName returns the old "exam_name" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldExamName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamName: %w", err)
	}
	return oldValue.ExamName, nil
}

// ResetExamName resets all changes to the "exam_name" field.
func (m *GradeResultMutation) ResetExamName() {
	m.exam_name = nil
}

// SetSubject sets the "subject" field.
func (m *GradeResultMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *GradeResultMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *GradeResultMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[graderesult.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *GradeResultMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[graderesult.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *GradeResultMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, graderesult.FieldSubject)
}

// SetModel sets the "model" field.
func (m *GradeResultMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GradeResultMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *GradeResultMutation) ClearModel() {
	m.model = nil
	m.clearedFields[graderesult.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *GradeResultMutation) ModelCleared() bool {
	_, ok := m.clearedFields[graderesult.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *GradeResultMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, graderesult.FieldModel)
}

// SetTotalMarks sets the "total_marks" field.
func (m *GradeResultMutation) SetTotalMarks(f float64) {
	m.total_marks = &f
	m.addtotal_marks = nil
}

// TotalMarks returns the value of the "total_marks" field in the mutation.
func (m *GradeResultMutation) TotalMarks() (r float64, exists bool) {
	v := m.total_marks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMarks returns the old "total_marks" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldTotalMarks(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMarks: %w", err)
	}
	return oldValue.TotalMarks, nil
}

// AddTotalMarks adds f to the "total_marks" field.
func (m *GradeResultMutation) AddTotalMarks(f float64) {
	if m.addtotal_marks != nil {
		*m.addtotal_marks += f
	} else {
		m.addtotal_marks = &f
	}
}

// AddedTotalMarks returns the value that was added to the "total_marks" field in this mutation.
func (m *GradeResultMutation) AddedTotalMarks() (r float64, exists bool) {
	v := m.addtotal_marks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMarks resets all changes to the "total_marks" field.
func (m *GradeResultMutation) ResetTotalMarks() {
	m.total_marks = nil
	m.addtotal_marks = nil
}

// SetTotalPossibleMarks sets the "total_possible_marks" field.
func (m *GradeResultMutation) SetTotalPossibleMarks(f float64) {
	m.total_possible_marks = &f
	m.addtotal_possible_marks = nil
}

// TotalPossibleMarks returns the value of the "total_possible_marks" field in the mutation.
func (m *GradeResultMutation) TotalPossibleMarks() (r float64, exists bool) {
	v := m.total_possible_marks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPossibleMarks returns the old "total_possible_marks" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldTotalPossibleMarks(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPossibleMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPossibleMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPossibleMarks: %w", err)
	}
	return oldValue.TotalPossibleMarks, nil
}

// AddTotalPossibleMarks adds f to the "total_possible_marks" field.
func (m *GradeResultMutation) AddTotalPossibleMarks(f float64) {
	if m.addtotal_possible_marks != nil {
		*m.addtotal_possible_marks += f
	} else {
		m.addtotal_possible_marks = &f
	}
}

// AddedTotalPossibleMarks returns the value that was added to the "total_possible_marks" field in this mutation.
func (m *GradeResultMutation) AddedTotalPossibleMarks() (r float64, exists bool) {
	v := m.addtotal_possible_marks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPossibleMarks resets all changes to the "total_possible_marks" field.
func (m *GradeResultMutation) ResetTotalPossibleMarks() {
	m.total_possible_marks = nil
	m.addtotal_possible_marks = nil
}

// SetBreakdown sets the "breakdown" field.
func (m *GradeResultMutation) SetBreakdown(gl []guide.GradeLine) {
	m.breakdown = &gl
	m.appendbreakdown = nil
}

// Breakdown returns the value of the "breakdown" field in the mutation.
func (m *GradeResultMutation) Breakdown() (r []guide.GradeLine, exists bool) {
	v := m.breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakdown returns the old "breakdown" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldBreakdown(ctx context.Context) (v []guide.GradeLine, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakdown: %w", err)
	}
	return oldValue.Breakdown, nil
}

// AppendBreakdown adds gl to the "breakdown" field.
func (m *GradeResultMutation) AppendBreakdown(gl []guide.GradeLine) {
	m.appendbreakdown = append(m.appendbreakdown, gl...)
}

// AppendedBreakdown returns the list of values that were appended to the "breakdown" field in this mutation.
func (m *GradeResultMutation) AppendedBreakdown() ([]guide.GradeLine, bool) {
	if len(m.appendbreakdown) == 0 {
		return nil, false
	}
	return m.appendbreakdown, true
}

// ClearBreakdown clears the value of the "breakdown" field.
func (m *GradeResultMutation) ClearBreakdown() {
	m.breakdown = nil
	m.appendbreakdown = nil
	m.clearedFields[graderesult.FieldBreakdown] = struct{}{}
}

// BreakdownCleared returns if the "breakdown" field was cleared in this mutation.
func (m *GradeResultMutation) BreakdownCleared() bool {
	_, ok := m.clearedFields[graderesult.FieldBreakdown]
	return ok
}

// ResetBreakdown resets all changes to the "breakdown" field.
func (m *GradeResultMutation) ResetBreakdown() {
	m.breakdown = nil
	m.appendbreakdown = nil
	delete(m.clearedFields, graderesult.FieldBreakdown)
}

// SetFeedback sets the "feedback" field.
func (m *GradeResultMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *GradeResultMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *GradeResultMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[graderesult.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *GradeResultMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[graderesult.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *GradeResultMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, graderesult.FieldFeedback)
}

// SetMetadata sets the "metadata" field.
func (m *GradeResultMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *GradeResultMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *GradeResultMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[graderesult.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *GradeResultMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[graderesult.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *GradeResultMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, graderesult.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *GradeResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GradeResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GradeResult entity.
// If the GradeResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GradeResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GradeResultMutation builder.
func (m *GradeResultMutation) Where(ps ...predicate.GradeResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GradeResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GradeResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GradeResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GradeResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GradeResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GradeResult).
func (m *GradeResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GradeResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.exam_name != nil {
		fields = append(fields, graderesult.FieldExamName)
	}
	if m.subject != nil {
		fields = append(fields, graderesult.FieldSubject)
	}
	if m.model != nil {
		fields = append(fields, graderesult.FieldModel)
	}
	if m.total_marks != nil {
		fields = append(fields, graderesult.FieldTotalMarks)
	}
	if m.total_possible_marks != nil {
		fields = append(fields, graderesult.FieldTotalPossibleMarks)
	}
	if m.breakdown != nil {
		fields = append(fields, graderesult.FieldBreakdown)
	}
	if m.feedback != nil {
		fields = append(fields, graderesult.FieldFeedback)
	}
	if m.metadata != nil {
		fields = append(fields, graderesult.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, graderesult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GradeResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graderesult.FieldExamName:
		return m.ExamName()
	case graderesult.FieldSubject:
		return m.Subject()
	case graderesult.FieldModel:
		return m.Model()
	case graderesult.FieldTotalMarks:
		return m.TotalMarks()
	case graderesult.FieldTotalPossibleMarks:
		return m.TotalPossibleMarks()
	case graderesult.FieldBreakdown:
		return m.Breakdown()
	case graderesult.FieldFeedback:
		return m.Feedback()
	case graderesult.FieldMetadata:
		return m.Metadata()
	case graderesult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GradeResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graderesult.FieldExamName:
		return m.OldExamName(ctx)
	case graderesult.FieldSubject:
		return m.OldSubject(ctx)
	case graderesult.FieldModel:
		return m.OldModel(ctx)
	case graderesult.FieldTotalMarks:
		return m.OldTotalMarks(ctx)
	case graderesult.FieldTotalPossibleMarks:
		return m.OldTotalPossibleMarks(ctx)
	case graderesult.FieldBreakdown:
		return m.OldBreakdown(ctx)
	case graderesult.FieldFeedback:
		return m.OldFeedback(ctx)
	case graderesult.FieldMetadata:
		return m.OldMetadata(ctx)
	case graderesult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GradeResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graderesult.FieldExamName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamName(v)
		return nil
	case graderesult.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case graderesult.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case graderesult.FieldTotalMarks:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMarks(v)
		return nil
	case graderesult.FieldTotalPossibleMarks:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPossibleMarks(v)
		return nil
	case graderesult.FieldBreakdown:
		v, ok := value.([]guide.GradeLine)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakdown(v)
		return nil
	case graderesult.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case graderesult.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case graderesult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GradeResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GradeResultMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_marks != nil {
		fields = append(fields, graderesult.FieldTotalMarks)
	}
	if m.addtotal_possible_marks != nil {
		fields = append(fields, graderesult.FieldTotalPossibleMarks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GradeResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case graderesult.FieldTotalMarks:
		return m.AddedTotalMarks()
	case graderesult.FieldTotalPossibleMarks:
		return m.AddedTotalPossibleMarks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case graderesult.FieldTotalMarks:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMarks(v)
		return nil
	case graderesult.FieldTotalPossibleMarks:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPossibleMarks(v)
		return nil
	}
	return fmt.Errorf("unknown GradeResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GradeResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(graderesult.FieldSubject) {
		fields = append(fields, graderesult.FieldSubject)
	}
	if m.FieldCleared(graderesult.FieldModel) {
		fields = append(fields, graderesult.FieldModel)
	}
	if m.FieldCleared(graderesult.FieldBreakdown) {
		fields = append(fields, graderesult.FieldBreakdown)
	}
	if m.FieldCleared(graderesult.FieldFeedback) {
		fields = append(fields, graderesult.FieldFeedback)
	}
	if m.FieldCleared(graderesult.FieldMetadata) {
		fields = append(fields, graderesult.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GradeResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GradeResultMutation) ClearField(name string) error {
	switch name {
	case graderesult.FieldSubject:
		m.ClearSubject()
		return nil
	case graderesult.FieldModel:
		m.ClearModel()
		return nil
	case graderesult.FieldBreakdown:
		m.ClearBreakdown()
		return nil
	case graderesult.FieldFeedback:
		m.ClearFeedback()
		return nil
	case graderesult.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown GradeResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GradeResultMutation) ResetField(name string) error {
	switch name {
	case graderesult.FieldExamName:
		m.ResetExamName()
		return nil
	case graderesult.FieldSubject:
		m.ResetSubject()
		return nil
	case graderesult.FieldModel:
		m.ResetModel()
		return nil
	case graderesult.FieldTotalMarks:
		m.ResetTotalMarks()
		return nil
	case graderesult.FieldTotalPossibleMarks:
		m.ResetTotalPossibleMarks()
		return nil
	case graderesult.FieldBreakdown:
		m.ResetBreakdown()
		return nil
	case graderesult.FieldFeedback:
		m.ResetFeedback()
		return nil
	case graderesult.FieldMetadata:
		m.ResetMetadata()
		return nil
	case graderesult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GradeResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GradeResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GradeResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GradeResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GradeResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GradeResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GradeResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GradeResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GradeResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GradeResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GradeResult edge %s", name)
}

// StudyGuideMutation represents an operation that mutates the StudyGuide nodes in the graph.
type StudyGuideMutation struct {
	config
	op             Op
	typ            string
	id             *string
	subject        *string
	topic          *string
	level          *string
	model          *string
	content        *string
	sections       *[]guide.Section
	appendsections []guide.Section
	metadata       *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*StudyGuide, error)
	predicates     []predicate.StudyGuide
}

var _ ent.Mutation = (*StudyGuideMutation)(nil)

// studyguideOption allows management of the mutation configuration using functional options.
type studyguideOption func(*StudyGuideMutation)

// newStudyGuideMutation creates new mutation for the StudyGuide entity.
func newStudyGuideMutation(c config, op Op, opts ...studyguideOption) *StudyGuideMutation {
	m := &StudyGuideMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyGuide,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyGuideID sets the ID field of the mutation.
func withStudyGuideID(id string) studyguideOption {
	return func(m *StudyGuideMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyGuide
		)
		m.oldValue = func(ctx context.Context) (*StudyGuide, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyGuide.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyGuide sets the old StudyGuide of the mutation.
func withStudyGuide(node *StudyGuide) studyguideOption {
	return func(m *StudyGuideMutation) {
		m.oldValue = func(context.Context) (*StudyGuide, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyGuideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyGuideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudyGuide entities.
func (m *StudyGuideMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyGuideMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyGuideMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyGuide.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubject sets the "subject" field.
func (m *StudyGuideMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *StudyGuideMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *StudyGuideMutation) ResetSubject() {
	m.subject = nil
}

// SetTopic sets the "topic" field.
func (m *StudyGuideMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *StudyGuideMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *StudyGuideMutation) ResetTopic() {
	m.topic = nil
}

// SetLevel sets the "level" field.
func (m *StudyGuideMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *StudyGuideMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ClearLevel clears the value of the "level" field.
func (m *StudyGuideMutation) ClearLevel() {
	m.level = nil
	m.clearedFields[studyguide.FieldLevel] = struct{}{}
}

// LevelCleared returns if the "level" field was cleared in this mutation.
func (m *StudyGuideMutation) LevelCleared() bool {
	_, ok := m.clearedFields[studyguide.FieldLevel]
	return ok
}

// ResetLevel resets all changes to the "level" field.
func (m *StudyGuideMutation) ResetLevel() {
	m.level = nil
	delete(m.clearedFields, studyguide.FieldLevel)
}

// SetModel sets the "model" field.
func (m *StudyGuideMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *StudyGuideMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *StudyGuideMutation) ClearModel() {
	m.model = nil
	m.clearedFields[studyguide.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *StudyGuideMutation) ModelCleared() bool {
	_, ok := m.clearedFields[studyguide.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *StudyGuideMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, studyguide.FieldModel)
}

// SetContent sets the "content" field.
func (m *StudyGuideMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *StudyGuideMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *StudyGuideMutation) ResetContent() {
	m.content = nil
}

// SetSections sets the "sections" field.
func (m *StudyGuideMutation) SetSections(gu []guide.Section) {
	m.sections = &gu
	m.appendsections = nil
}

// Sections returns the value of the "sections" field in the mutation.
func (m *StudyGuideMutation) Sections() (r []guide.Section, exists bool) {
	v := m.sections
	if v == nil {
		return
	}
	return *v, true
}

// OldSections returns the old "sections" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldSections(ctx context.Context) (v []guide.Section, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSections is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSections requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSections: %w", err)
	}
	return oldValue.Sections, nil
}

// AppendSections adds gu to the "sections" field.
func (m *StudyGuideMutation) AppendSections(gu []guide.Section) {
	m.appendsections = append(m.appendsections, gu...)
}

// AppendedSections returns the list of values that were appended to the "sections" field in this mutation.
func (m *StudyGuideMutation) AppendedSections() ([]guide.Section, bool) {
	if len(m.appendsections) == 0 {
		return nil, false
	}
	return m.appendsections, true
}

// ClearSections clears the value of the "sections" field.
func (m *StudyGuideMutation) ClearSections() {
	m.sections = nil
	m.appendsections = nil
	m.clearedFields[studyguide.FieldSections] = struct{}{}
}

// SectionsCleared returns if the "sections" field was cleared in this mutation.
func (m *StudyGuideMutation) SectionsCleared() bool {
	_, ok := m.clearedFields[studyguide.FieldSections]
	return ok
}

// ResetSections resets all changes to the "sections" field.
func (m *StudyGuideMutation) ResetSections() {
	m.sections = nil
	m.appendsections = nil
	delete(m.clearedFields, studyguide.FieldSections)
}

// SetMetadata sets the "metadata" field.
func (m *StudyGuideMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *StudyGuideMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *StudyGuideMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[studyguide.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *StudyGuideMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[studyguide.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *StudyGuideMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, studyguide.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *StudyGuideMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudyGuideMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudyGuide entity.
// If the StudyGuide object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyGuideMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudyGuideMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StudyGuideMutation builder.
func (m *StudyGuideMutation) Where(ps ...predicate.StudyGuide) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyGuideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyGuideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyGuide, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyGuideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyGuideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyGuide).
func (m *StudyGuideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyGuideMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.subject != nil {
		fields = append(fields, studyguide.FieldSubject)
	}
	if m.topic != nil {
		fields = append(fields, studyguide.FieldTopic)
	}
	if m.level != nil {
		fields = append(fields, studyguide.FieldLevel)
	}
	if m.model != nil {
		fields = append(fields, studyguide.FieldModel)
	}
	if m.content != nil {
		fields = append(fields, studyguide.FieldContent)
	}
	if m.sections != nil {
		fields = append(fields, studyguide.FieldSections)
	}
	if m.metadata != nil {
		fields = append(fields, studyguide.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, studyguide.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyGuideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyguide.FieldSubject:
		return m.Subject()
	case studyguide.FieldTopic:
		return m.Topic()
	case studyguide.FieldLevel:
		return m.Level()
	case studyguide.FieldModel:
		return m.Model()
	case studyguide.FieldContent:
		return m.Content()
	case studyguide.FieldSections:
		return m.Sections()
	case studyguide.FieldMetadata:
		return m.Metadata()
	case studyguide.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyGuideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyguide.FieldSubject:
		return m.OldSubject(ctx)
	case studyguide.FieldTopic:
		return m.OldTopic(ctx)
	case studyguide.FieldLevel:
		return m.OldLevel(ctx)
	case studyguide.FieldModel:
		return m.OldModel(ctx)
	case studyguide.FieldContent:
		return m.OldContent(ctx)
	case studyguide.FieldSections:
		return m.OldSections(ctx)
	case studyguide.FieldMetadata:
		return m.OldMetadata(ctx)
	case studyguide.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudyGuide field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyGuideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyguide.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case studyguide.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case studyguide.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case studyguide.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case studyguide.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case studyguide.FieldSections:
		v, ok := value.([]guide.Section)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSections(v)
		return nil
	case studyguide.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case studyguide.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudyGuide field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyGuideMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyGuideMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyGuideMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StudyGuide numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyGuideMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studyguide.FieldLevel) {
		fields = append(fields, studyguide.FieldLevel)
	}
	if m.FieldCleared(studyguide.FieldModel) {
		fields = append(fields, studyguide.FieldModel)
	}
	if m.FieldCleared(studyguide.FieldSections) {
		fields = append(fields, studyguide.FieldSections)
	}
	if m.FieldCleared(studyguide.FieldMetadata) {
		fields = append(fields, studyguide.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyGuideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyGuideMutation) ClearField(name string) error {
	switch name {
	case studyguide.FieldLevel:
		m.ClearLevel()
		return nil
	case studyguide.FieldModel:
		m.ClearModel()
		return nil
	case studyguide.FieldSections:
		m.ClearSections()
		return nil
	case studyguide.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown StudyGuide nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyGuideMutation) ResetField(name string) error {
	switch name {
	case studyguide.FieldSubject:
		m.ResetSubject()
		return nil
	case studyguide.FieldTopic:
		m.ResetTopic()
		return nil
	case studyguide.FieldLevel:
		m.ResetLevel()
		return nil
	case studyguide.FieldModel:
		m.ResetModel()
		return nil
	case studyguide.FieldContent:
		m.ResetContent()
		return nil
	case studyguide.FieldSections:
		m.ResetSections()
		return nil
	case studyguide.FieldMetadata:
		m.ResetMetadata()
		return nil
	case studyguide.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudyGuide field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyGuideMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyGuideMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyGuideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyGuideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyGuideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyGuideMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyGuideMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudyGuide unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyGuideMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudyGuide edge %s", name)
}
