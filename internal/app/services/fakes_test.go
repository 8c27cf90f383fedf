package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/repositories"
	"github.com/cohorttools/cohort-api/internal/pkg/auth"
)

// In-memory stand-ins for the mongo-backed repositories. They mirror the
// store semantics the services rely on: duplicate-key rejection, not-found
// sentinels and idempotent deletes.

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.UserName == user.UserName {
			return repositories.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UserNameExists(_ context.Context, userName string) (bool, error) {
	for _, u := range r.users {
		if u.UserName == userName {
			return true, nil
		}
	}
	return false, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashedPassword, password string) bool {
	return hashedPassword == "hashed:"+password
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(userID, email, userName string) (string, error) {
	return fmt.Sprintf("token|%s|%s|%s", userID, email, userName), nil
}

func (fakeTokenService) ValidateToken(tokenString string) (*auth.Claims, error) {
	parts := tokenParts(tokenString)
	if len(parts) != 4 || parts[0] != "token" {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{UserID: parts[1], Email: parts[2], UserName: parts[3]}, nil
}

type fakeStudentRepo struct {
	students []*models.Student
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeStudentRepo) GetByCohortID(_ context.Context, cohortID primitive.ObjectID) ([]*models.Student, error) {
	out := make([]*models.Student, 0)
	for _, s := range r.students {
		if s.CohortID != nil && *s.CohortID == cohortID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repositories.ErrStudentNotFound
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	student.ID = primitive.NewObjectID()
	stored := *student
	r.students = append(r.students, &stored)
	return nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	for i, s := range r.students {
		if s.ID == student.ID {
			stored := *student
			r.students[i] = &stored
			return nil
		}
	}
	return repositories.ErrStudentNotFound
}

func (r *fakeStudentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeStudentRepo) ClearCohortRefs(_ context.Context, cohortID primitive.ObjectID) error {
	for _, s := range r.students {
		if s.CohortID != nil && *s.CohortID == cohortID {
			s.CohortID = nil
		}
	}
	return nil
}

type fakeCohortRepo struct {
	cohorts []*models.Cohort
}

func (r *fakeCohortRepo) GetAll(_ context.Context) ([]*models.Cohort, error) {
	out := make([]*models.Cohort, 0, len(r.cohorts))
	for _, c := range r.cohorts {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeCohortRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Cohort, error) {
	for _, c := range r.cohorts {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCohortNotFound
}

func (r *fakeCohortRepo) Create(_ context.Context, cohort *models.Cohort) error {
	cohort.ID = primitive.NewObjectID()
	stored := *cohort
	r.cohorts = append(r.cohorts, &stored)
	return nil
}

func (r *fakeCohortRepo) Update(_ context.Context, cohort *models.Cohort) error {
	for i, c := range r.cohorts {
		if c.ID == cohort.ID {
			stored := *cohort
			r.cohorts[i] = &stored
			return nil
		}
	}
	return repositories.ErrCohortNotFound
}

func (r *fakeCohortRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, c := range r.cohorts {
		if c.ID == id {
			r.cohorts = append(r.cohorts[:i], r.cohorts[i+1:]...)
			return nil
		}
	}
	return nil
}

// failingUserRepo surfaces a store error from every call, for exercising the
// generic error path.
type failingUserRepo struct{}

var errStoreDown = errors.New("store unavailable")

func (failingUserRepo) Create(context.Context, *models.User) error { return errStoreDown }
func (failingUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errStoreDown
}
func (failingUserRepo) EmailExists(context.Context, string) (bool, error) {
	return false, errStoreDown
}
func (failingUserRepo) UserNameExists(context.Context, string) (bool, error) {
	return false, errStoreDown
}

func tokenParts(token string) []string {
	return strings.Split(token, "|")
}
