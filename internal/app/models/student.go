package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student defines a record in the 'students' collection. All fields besides
// the id are supplied by the client; updates replace them wholesale.
type Student struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	LinkedinURL string             `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`
	Languages   []string           `bson:"languages,omitempty" json:"languages,omitempty"`
	Program     string             `bson:"program,omitempty" json:"program,omitempty"`
	Background  string             `bson:"background,omitempty" json:"background,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Projects    []string           `bson:"projects,omitempty" json:"projects,omitempty"`

	// CohortID is a weak reference to a cohort; deleting the cohort clears it
	CohortID *primitive.ObjectID `bson:"cohort,omitempty" json:"cohortId,omitempty"`

	// Cohort is the resolved reference (populated when needed, never stored)
	Cohort *Cohort `bson:"-" json:"cohort,omitempty"`
}
