// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/studyforgeco/studyforge/pkg/guide"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/graderesult"
)

// GradeResult is the model entity for the GradeResult schema.
type GradeResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExamName holds the value of the "exam_name" field.
	ExamName string `json:"exam_name,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// TotalMarks holds the value of the "total_marks" field.
	TotalMarks float64 `json:"total_marks,omitempty"`
	// TotalPossibleMarks holds the value of the "total_possible_marks" field.
	TotalPossibleMarks float64 `json:"total_possible_marks,omitempty"`
	// Breakdown holds the value of the "breakdown" field.
	Breakdown []guide.GradeLine `json:"breakdown,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradeResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graderesult.FieldBreakdown, graderesult.FieldMetadata:
			values[i] = new([]byte)
		case graderesult.FieldTotalMarks, graderesult.FieldTotalPossibleMarks:
			values[i] = new(sql.NullFloat64)
		case graderesult.FieldID, graderesult.FieldExamName, graderesult.FieldSubject, graderesult.FieldModel, graderesult.FieldFeedback:
			values[i] = new(sql.NullString)
		case graderesult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradeResult fields.
func (_m *GradeResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graderesult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case graderesult.FieldExamName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_name", values[i])
			} else if value.Valid {
				_m.ExamName = value.String
			}
		case graderesult.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case graderesult.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case graderesult.FieldTotalMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_marks", values[i])
			} else if value.Valid {
				_m.TotalMarks = value.Float64
			}
		case graderesult.FieldTotalPossibleMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_possible_marks", values[i])
			} else if value.Valid {
				_m.TotalPossibleMarks = value.Float64
			}
		case graderesult.FieldBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Breakdown); err != nil {
					return fmt.Errorf("unmarshal field breakdown: %w", err)
				}
			}
		case graderesult.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case graderesult.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case graderesult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradeResult.
// This includes values selected through modifiers, order, etc.
func (_m *GradeResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GradeResult.
// Note that you need to call GradeResult.Unwrap() before calling this method if this GradeResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradeResult) Update() *GradeResultUpdateOne {
	return NewGradeResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradeResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradeResult) Unwrap() *GradeResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradeResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradeResult) String() string {
	var builder strings.Builder
	builder.WriteString("GradeResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("exam_name=")
	builder.WriteString(_m.ExamName)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("total_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMarks))
	builder.WriteString(", ")
	builder.WriteString("total_possible_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPossibleMarks))
	builder.WriteString(", ")
	builder.WriteString("breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.Breakdown))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GradeResults is a parsable slice of GradeResult.
type GradeResults []*GradeResult
