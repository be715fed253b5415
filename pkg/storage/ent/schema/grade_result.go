package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/studyforgeco/studyforge/pkg/guide"
)

// GradeResult holds the schema definition for the GradeResult entity, the
// persisted form of a graded exam.
type GradeResult struct {
	ent.Schema
}

// Fields of the GradeResult.
func (GradeResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		field.String("exam_name").
			NotEmpty(),

		field.String("subject").
			Optional(),

		field.String("model").
			Optional(),

		field.Float("total_marks"),

		field.Float("total_possible_marks"),

		field.JSON("breakdown", []guide.GradeLine{}).
			Optional(),

		field.Text("feedback").
			Optional(),

		field.JSON("metadata", map[string]any{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the GradeResult.
func (GradeResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("exam_name"),
		index.Fields("created_at"),
	}
}
