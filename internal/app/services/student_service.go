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

// StudentService handles student operations. Read operations resolve each
// student's cohort reference to the full cohort object.
type StudentService struct {
	studentRepo repositories.IStudentRepository
	cohortRepo  repositories.ICohortRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, cohortRepo repositories.ICohortRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		cohortRepo:  cohortRepo,
	}
}

// GetAllStudents retrieves all students with their cohort references resolved
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	if err := s.resolveCohorts(ctx, students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudentsByCohortID retrieves the students belonging to one cohort.
// An invalid or unknown cohort id yields an empty list, not an error.
func (s *StudentService) GetStudentsByCohortID(ctx context.Context, cohortID string) ([]*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(cohortID)
	if err != nil {
		return []*models.Student{}, nil
	}

	students, err := s.studentRepo.GetByCohortID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by cohort: %w", err)
	}

	if err := s.resolveCohorts(ctx, students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudentByID retrieves one student with its cohort resolved
func (s *StudentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidID, "Student ID must be a valid object id")
	}

	student, err := s.studentRepo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if err := s.resolveCohorts(ctx, []*models.Student{student}); err != nil {
		return nil, err
	}
	return student, nil
}

// CreateStudent inserts the client-supplied payload as a new student
func (s *StudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	student.ID = primitive.NilObjectID
	student.Cohort = nil

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// UpdateStudent replaces the mutable fields of the student wholesale
func (s *StudentService) UpdateStudent(ctx context.Context, id string, student *models.Student) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidID, "Student ID must be a valid object id")
	}

	student.ID = oid
	student.Cohort = nil

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent removes a student by id. Unknown ids are a no-op, so the
// operation is idempotent.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrInvalidID, "Student ID must be a valid object id")
	}

	if err := s.studentRepo.Delete(ctx, oid); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// resolveCohorts populates the Cohort relation for every student holding a
// reference. Each distinct cohort is fetched once; a dangling reference is
// left unresolved rather than failing the request.
func (s *StudentService) resolveCohorts(ctx context.Context, students []*models.Student) error {
	cache := make(map[primitive.ObjectID]*models.Cohort)

	for _, student := range students {
		if student.CohortID == nil {
			continue
		}

		if cohort, ok := cache[*student.CohortID]; ok {
			student.Cohort = cohort
			continue
		}

		cohort, err := s.cohortRepo.GetByID(ctx, *student.CohortID)
		if err != nil {
			if errors.Is(err, repositories.ErrCohortNotFound) {
				cache[*student.CohortID] = nil
				continue
			}
			return fmt.Errorf("error resolving cohort: %w", err)
		}

		cache[*student.CohortID] = cohort
		student.Cohort = cohort
	}
	return nil
}
