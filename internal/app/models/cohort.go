package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cohort defines a record in the 'cohorts' collection
type Cohort struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CohortSlug     string             `bson:"cohortSlug" json:"cohortSlug"`
	CohortName     string             `bson:"cohortName" json:"cohortName"`
	Program        string             `bson:"program,omitempty" json:"program,omitempty"`
	Format         string             `bson:"format,omitempty" json:"format,omitempty"`
	Campus         string             `bson:"campus,omitempty" json:"campus,omitempty"`
	StartDate      *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	InProgress     bool               `bson:"inProgress" json:"inProgress"`
	ProgramManager string             `bson:"programManager,omitempty" json:"programManager,omitempty"`
	LeadTeacher    string             `bson:"leadTeacher,omitempty" json:"leadTeacher,omitempty"`
	TotalHours     int                `bson:"totalHours,omitempty" json:"totalHours,omitempty"`
}
