// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/studyforgeco/studyforge/pkg/storage/ent/graderesult"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/schema"
	"github.com/studyforgeco/studyforge/pkg/storage/ent/studyguide"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	graderesultFields := schema.GradeResult{}.Fields()
	_ = graderesultFields
	// graderesultDescExamName is the schema descriptor for exam_name field.
	graderesultDescExamName := graderesultFields[1].Descriptor()
	// graderesult.ExamNameValidator is a validator for the "exam_name" field. It is called by the builders before save.
	graderesult.ExamNameValidator = graderesultDescExamName.Validators[0].(func(string) error)
	// graderesultDescCreatedAt is the schema descriptor for created_at field.
	graderesultDescCreatedAt := graderesultFields[9].Descriptor()
	// graderesult.DefaultCreatedAt holds the default value on creation for the created_at field.
	graderesult.DefaultCreatedAt = graderesultDescCreatedAt.Default.(func() time.Time)
	// graderesultDescID is the schema descriptor for id field.
	graderesultDescID := graderesultFields[0].Descriptor()
	// graderesult.IDValidator is a validator for the "id" field. It is called by the builders before save.
	graderesult.IDValidator = graderesultDescID.Validators[0].(func(string) error)
	studyguideFields := schema.StudyGuide{}.Fields()
	_ = studyguideFields
	// studyguideDescSubject is the schema descriptor for subject field.
	studyguideDescSubject := studyguideFields[1].Descriptor()
	// studyguide.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	studyguide.SubjectValidator = studyguideDescSubject.Validators[0].(func(string) error)
	// studyguideDescTopic is the schema descriptor for topic field.
	studyguideDescTopic := studyguideFields[2].Descriptor()
	// studyguide.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	studyguide.TopicValidator = studyguideDescTopic.Validators[0].(func(string) error)
	// studyguideDescCreatedAt is the schema descriptor for created_at field.
	studyguideDescCreatedAt := studyguideFields[8].Descriptor()
	// studyguide.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyguide.DefaultCreatedAt = studyguideDescCreatedAt.Default.(func() time.Time)
	// studyguideDescID is the schema descriptor for id field.
	studyguideDescID := studyguideFields[0].Descriptor()
	// studyguide.IDValidator is a validator for the "id" field. It is called by the builders before save.
	studyguide.IDValidator = studyguideDescID.Validators[0].(func(string) error)
}
