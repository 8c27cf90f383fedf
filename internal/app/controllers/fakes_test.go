package controllers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cohorttools/cohort-api/internal/app/controllers"
	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/repositories"
	"github.com/cohorttools/cohort-api/internal/app/routes"
	"github.com/cohorttools/cohort-api/internal/app/services"
	"github.com/cohorttools/cohort-api/internal/middleware"
	"github.com/cohorttools/cohort-api/internal/pkg/auth"
)

// In-memory repositories backing a full router, so the handler tests exercise
// the real route table, binding and error mapping end to end.

type memUserRepo struct {
	users []*models.User
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
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

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) UserNameExists(_ context.Context, userName string) (bool, error) {
	for _, u := range r.users {
		if u.UserName == userName {
			return true, nil
		}
	}
	return false, nil
}

type memStudentRepo struct {
	students []*models.Student
}

func (r *memStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memStudentRepo) GetByCohortID(_ context.Context, cohortID primitive.ObjectID) ([]*models.Student, error) {
	out := make([]*models.Student, 0)
	for _, s := range r.students {
		if s.CohortID != nil && *s.CohortID == cohortID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memStudentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repositories.ErrStudentNotFound
}

func (r *memStudentRepo) Create(_ context.Context, student *models.Student) error {
	student.ID = primitive.NewObjectID()
	stored := *student
	r.students = append(r.students, &stored)
	return nil
}

func (r *memStudentRepo) Update(_ context.Context, student *models.Student) error {
	for i, s := range r.students {
		if s.ID == student.ID {
			stored := *student
			r.students[i] = &stored
			return nil
		}
	}
	return repositories.ErrStudentNotFound
}

func (r *memStudentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memStudentRepo) ClearCohortRefs(_ context.Context, cohortID primitive.ObjectID) error {
	for _, s := range r.students {
		if s.CohortID != nil && *s.CohortID == cohortID {
			s.CohortID = nil
		}
	}
	return nil
}

type memCohortRepo struct {
	cohorts []*models.Cohort
}

func (r *memCohortRepo) GetAll(_ context.Context) ([]*models.Cohort, error) {
	out := make([]*models.Cohort, 0, len(r.cohorts))
	for _, c := range r.cohorts {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memCohortRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Cohort, error) {
	for _, c := range r.cohorts {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCohortNotFound
}

func (r *memCohortRepo) Create(_ context.Context, cohort *models.Cohort) error {
	cohort.ID = primitive.NewObjectID()
	stored := *cohort
	r.cohorts = append(r.cohorts, &stored)
	return nil
}

func (r *memCohortRepo) Update(_ context.Context, cohort *models.Cohort) error {
	for i, c := range r.cohorts {
		if c.ID == cohort.ID {
			stored := *cohort
			r.cohorts[i] = &stored
			return nil
		}
	}
	return repositories.ErrCohortNotFound
}

func (r *memCohortRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, c := range r.cohorts {
		if c.ID == id {
			r.cohorts = append(r.cohorts[:i], r.cohorts[i+1:]...)
			return nil
		}
	}
	return nil
}

// plainHasher avoids bcrypt's work factor in handler tests
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Compare(hashedPassword, password string) bool {
	return hashedPassword == "hashed:"+password
}

type testEnv struct {
	router      *gin.Engine
	userRepo    *memUserRepo
	studentRepo *memStudentRepo
	cohortRepo  *memCohortRepo
	jwtService  *auth.JWTService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		userRepo:    &memUserRepo{},
		studentRepo: &memStudentRepo{},
		cohortRepo:  &memCohortRepo{},
	}
	env.jwtService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key-for-testing-only",
		TokenExpiry: 6 * time.Hour,
		TokenIssuer: "cohort-tools-test",
	})

	authService := services.NewAuthService(env.userRepo, plainHasher{}, env.jwtService, zerolog.Nop())
	studentService := services.NewStudentService(env.studentRepo, env.cohortRepo)
	cohortService := services.NewCohortService(env.cohortRepo, env.studentRepo)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(authService, zerolog.Nop()),
		controllers.NewStudentController(studentService),
		controllers.NewCohortController(cohortService),
		middleware.NewAuthMiddleware(env.jwtService),
	)

	env.router = router
	return env
}

func (e *testEnv) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
