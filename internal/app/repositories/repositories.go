// Package repositories implements data access against MongoDB collections.
package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository-level sentinel errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrCohortNotFound  = errors.New("cohort not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateKey    = errors.New("duplicate key")
)

// Repositories is the container for all repositories
type Repositories struct {
	UserRepository    *UserRepository
	StudentRepository *StudentRepository
	CohortRepository  *CohortRepository
}

// NewRepositories creates all repositories backed by the given database
func NewRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		StudentRepository: NewStudentRepository(db),
		CohortRepository:  NewCohortRepository(db),
	}
}
