package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/repositories"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
)

// CohortService handles cohort operations
type CohortService struct {
	cohortRepo  repositories.ICohortRepository
	studentRepo repositories.IStudentRepository
}

// NewCohortService creates a new cohort service instance
func NewCohortService(cohortRepo repositories.ICohortRepository, studentRepo repositories.IStudentRepository) *CohortService {
	return &CohortService{
		cohortRepo:  cohortRepo,
		studentRepo: studentRepo,
	}
}

// GetAllCohorts retrieves all cohorts
func (s *CohortService) GetAllCohorts(ctx context.Context) ([]*models.Cohort, error) {
	cohorts, err := s.cohortRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cohorts: %w", err)
	}
	return cohorts, nil
}

// GetCohortByID retrieves one cohort by id
func (s *CohortService) GetCohortByID(ctx context.Context, id string) (*models.Cohort, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidID, "Cohort ID must be a valid object id")
	}

	cohort, err := s.cohortRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrCohortNotFound) {
			return nil, apperrors.ErrCohortNotFound
		}
		return nil, fmt.Errorf("error retrieving cohort: %w", err)
	}
	return cohort, nil
}

// CreateCohort inserts the client-supplied payload as a new cohort
func (s *CohortService) CreateCohort(ctx context.Context, cohort *models.Cohort) error {
	cohort.ID = primitive.NilObjectID

	if err := s.cohortRepo.Create(ctx, cohort); err != nil {
		return fmt.Errorf("error creating cohort: %w", err)
	}
	return nil
}

// UpdateCohort replaces the mutable fields of the cohort wholesale
func (s *CohortService) UpdateCohort(ctx context.Context, id string, cohort *models.Cohort) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidID, "Cohort ID must be a valid object id")
	}

	cohort.ID = oid

	if err := s.cohortRepo.Update(ctx, cohort); err != nil {
		if errors.Is(err, repositories.ErrCohortNotFound) {
			return apperrors.ErrCohortNotFound
		}
		return fmt.Errorf("error updating cohort: %w", err)
	}
	return nil
}

// DeleteCohort removes a cohort by id. Students referencing the cohort keep
// existing: their reference is cleared, never cascaded. Unknown ids are a
// no-op, so the operation is idempotent.
func (s *CohortService) DeleteCohort(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidID, "Cohort ID must be a valid object id")
	}

	if err := s.studentRepo.ClearCohortRefs(ctx, oid); err != nil {
		return fmt.Errorf("error clearing cohort references: %w", err)
	}

	if err := s.cohortRepo.Delete(ctx, oid); err != nil {
		return fmt.Errorf("error deleting cohort: %w", err)
	}
	return nil
}
