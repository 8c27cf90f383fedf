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

// ICohortRepository defines store operations for cohorts
type ICohortRepository interface {
	GetAll(ctx context.Context) ([]*models.Cohort, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Cohort, error)
	Create(ctx context.Context, cohort *models.Cohort) error
	Update(ctx context.Context, cohort *models.Cohort) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CohortRepository persists cohorts in the 'cohorts' collection
type CohortRepository struct {
	c *mongo.Collection
}

// NewCohortRepository creates a new CohortRepository
func NewCohortRepository(db *mongo.Database) *CohortRepository {
	return &CohortRepository{c: db.Collection("cohorts")}
}

// GetAll retrieves every cohort record
func (r *CohortRepository) GetAll(ctx context.Context) ([]*models.Cohort, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query cohorts: %w", err)
	}
	defer cur.Close(ctx)

	cohorts := make([]*models.Cohort, 0)
	for cur.Next(ctx) {
		var c models.Cohort
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode cohort: %w", err)
		}
		cohorts = append(cohorts, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cohorts: %w", err)
	}
	return cohorts, nil
}

// GetByID retrieves one cohort, returning ErrCohortNotFound when absent
func (r *CohortRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Cohort, error) {
	var c models.Cohort
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCohortNotFound
		}
		return nil, fmt.Errorf("failed to fetch cohort: %w", err)
	}
	return &c, nil
}

// Create inserts a new cohort and fills in its generated id
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) error {
	res, err := r.c.InsertOne(ctx, cohort)
	if err != nil {
		return fmt.Errorf("failed to insert cohort: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cohort.ID = oid
	}
	return nil
}

// Update replaces the cohort document wholesale, keeping its id
func (r *CohortRepository) Update(ctx context.Context, cohort *models.Cohort) error {
	res, err := r.c.ReplaceOne(ctx, bson.M{"_id": cohort.ID}, cohort)
	if err != nil {
		return fmt.Errorf("failed to update cohort: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrCohortNotFound
	}
	return nil
}

// Delete removes a cohort by id. Deleting an absent id is a no-op.
func (r *CohortRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete cohort: %w", err)
	}
	return nil
}
