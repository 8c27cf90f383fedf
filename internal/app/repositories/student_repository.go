package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cohorttools/cohort-api/internal/app/models"
)

// IStudentRepository defines store operations for students
type IStudentRepository interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByCohortID(ctx context.Context, cohortID primitive.ObjectID) ([]*models.Student, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ClearCohortRefs(ctx context.Context, cohortID primitive.ObjectID) error
}

// StudentRepository persists students in the 'students' collection
type StudentRepository struct {
	c *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{c: db.Collection("students")}
}

// GetAll retrieves every student record
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.find(ctx, bson.M{})
}

// GetByCohortID retrieves the students whose cohort reference equals cohortID
func (r *StudentRepository) GetByCohortID(ctx context.Context, cohortID primitive.ObjectID) ([]*models.Student, error) {
	return r.find(ctx, bson.M{"cohort": cohortID})
}

func (r *StudentRepository) find(ctx context.Context, filter bson.M) ([]*models.Student, error) {
	cur, err := r.c.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer cur.Close(ctx)

	students := make([]*models.Student, 0)
	for cur.Next(ctx) {
		var s models.Student
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, &s)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}
	return students, nil
}

// GetByID retrieves one student, returning ErrStudentNotFound when absent
func (r *StudentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var s models.Student
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	return &s, nil
}

// Create inserts a new student and fills in its generated id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	res, err := r.c.InsertOne(ctx, student)
	if err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}
	return nil
}

// Update replaces the student document wholesale, keeping its id
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": student.ID}, student)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Delete removes a student by id. Deleting an absent id is a no-op.
func (r *StudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}

// ClearCohortRefs unsets the cohort field on every student referencing the
// given cohort. Used when a cohort is deleted so no dangling reference stays
// behind.
func (r *StudentRepository) ClearCohortRefs(ctx context.Context, cohortID primitive.ObjectID) error {
	_, err := r.c.UpdateMany(ctx,
		bson.M{"cohort": cohortID},
		bson.M{"$unset": bson.M{"cohort": ""}},
	)
	if err != nil {
		return fmt.Errorf("failed to clear cohort references: %w", err)
	}
	return nil
}
