package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cohorttools/cohort-api/internal/app/models"
)

func TestStudents_ListEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("GET", "/api/students", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "an empty store yields an empty array, not null")
}

func TestStudents_CreateThenGet(t *testing.T) {
	env := newTestEnv(t)

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","languages":["english","french"],"projects":["analytical-engine"]}`
	rec := env.do("POST", "/api/students", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.False(t, created.ID.IsZero())

	rec = env.do("GET", "/api/students/"+created.ID.Hex(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Ada", fetched.FirstName)
	assert.Equal(t, "Lovelace", fetched.LastName)
	assert.Equal(t, []string{"english", "french"}, fetched.Languages)
	assert.Equal(t, []string{"analytical-engine"}, fetched.Projects)
}

func TestStudents_CreateMalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("POST", "/api/students", `{"firstName":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.studentRepo.students)
}

func TestStudents_GetUnknownID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("GET", "/api/students/"+primitive.NewObjectID().Hex(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Student not found", resp["message"])
}

func TestStudents_GetInvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("GET", "/api/students/not-a-hex-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudents_ListByCohort(t *testing.T) {
	env := newTestEnv(t)

	cohortID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	env.cohortRepo.cohorts = append(env.cohortRepo.cohorts, &models.Cohort{ID: cohortID, CohortSlug: "ft-wd-1", CohortName: "FT Web Dev 1"})
	env.studentRepo.students = append(env.studentRepo.students,
		&models.Student{ID: primitive.NewObjectID(), FirstName: "Ada", CohortID: &cohortID},
		&models.Student{ID: primitive.NewObjectID(), FirstName: "Grace", CohortID: &otherID},
	)

	rec := env.do("GET", "/api/students/cohort/"+cohortID.Hex(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var students []models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, "Ada", students[0].FirstName)
	require.NotNil(t, students[0].Cohort, "the cohort reference comes back resolved")
	assert.Equal(t, "ft-wd-1", students[0].Cohort.CohortSlug)
}

func TestStudents_ListByCohort_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	env.studentRepo.students = append(env.studentRepo.students,
		&models.Student{ID: primitive.NewObjectID(), FirstName: "Ada"},
	)

	// A malformed cohort id is just a filter nothing matches
	rec := env.do("GET", "/api/students/cohort/not-a-hex-id", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestStudents_Update(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("POST", "/api/students", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do("PUT", "/api/students/"+created.ID.Hex(), `{"firstName":"Ada","lastName":"King","email":"ada@example.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "King", updated.LastName)
}

func TestStudents_UpdateUnknownID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("PUT", "/api/students/"+primitive.NewObjectID().Hex(), `{"firstName":"Ada"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudents_DeleteIdempotent(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("POST", "/api/students", `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := fmt.Sprintf("/api/students/%s", created.ID.Hex())

	rec = env.do("DELETE", path, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Deleting the same student again still reports success
	rec = env.do("DELETE", path, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("GET", "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Not Found", resp["message"])
}

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do("GET", "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
