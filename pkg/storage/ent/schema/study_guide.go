package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/studyforgeco/studyforge/pkg/guide"
)

// StudyGuide holds the schema definition for the StudyGuide entity, the
// persisted form of a generated study guide.
type StudyGuide struct {
	ent.Schema
}

// Fields of the StudyGuide.
func (StudyGuide) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			NotEmpty(),

		field.String("subject").
			NotEmpty(),

		field.String("topic").
			NotEmpty(),

		field.String("level").
			Optional(),

		field.String("model").
			Optional(),

		field.Text("content"),

		field.JSON("sections", []guide.Section{}).
			Optional(),

		field.JSON("metadata", map[string]any{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the StudyGuide.
func (StudyGuide) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("level"),
		index.Fields("created_at"),
	}
}
