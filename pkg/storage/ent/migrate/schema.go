// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GradeResultsColumns holds the columns for the "grade_results" table.
	GradeResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "exam_name", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "total_marks", Type: field.TypeFloat64},
		{Name: "total_possible_marks", Type: field.TypeFloat64},
		{Name: "breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// GradeResultsTable holds the schema information for the "grade_results" table.
	GradeResultsTable = &schema.Table{
		Name:       "grade_results",
		Columns:    GradeResultsColumns,
		PrimaryKey: []*schema.Column{GradeResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "graderesult_subject",
				Unique:  false,
				Columns: []*schema.Column{GradeResultsColumns[2]},
			},
			{
				Name:    "graderesult_exam_name",
				Unique:  false,
				Columns: []*schema.Column{GradeResultsColumns[1]},
			},
			{
				Name:    "graderesult_created_at",
				Unique:  false,
				Columns: []*schema.Column{GradeResultsColumns[9]},
			},
		},
	}
	// StudyGuidesColumns holds the columns for the "study_guides" table.
	StudyGuidesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "subject", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "level", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "sections", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// StudyGuidesTable holds the schema information for the "study_guides" table.
	StudyGuidesTable = &schema.Table{
		Name:       "study_guides",
		Columns:    StudyGuidesColumns,
		PrimaryKey: []*schema.Column{StudyGuidesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyguide_subject",
				Unique:  false,
				Columns: []*schema.Column{StudyGuidesColumns[1]},
			},
			{
				Name:    "studyguide_level",
				Unique:  false,
				Columns: []*schema.Column{StudyGuidesColumns[3]},
			},
			{
				Name:    "studyguide_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyGuidesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GradeResultsTable,
		StudyGuidesTable,
	}
)

func init() {
}
