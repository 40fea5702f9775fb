package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

// MongoResultRepository implements ResultRepository for MongoDB
// #ORM_INTEGRATION: Append-only collection; results are never updated in place
type MongoResultRepository struct {
	collection *mongo.Collection
}

// NewMongoResultRepository creates a new MongoDB diagnostic result repository
func NewMongoResultRepository(db *mongo.Database) *MongoResultRepository {
	return &MongoResultRepository{
		collection: db.Collection(models.DiagnosticResult{}.CollectionName()),
	}
}

// Create persists a new diagnostic result
func (r *MongoResultRepository) Create(ctx context.Context, result *models.DiagnosticResult) error {
	result.BeforeCreate()
	_, err := r.collection.InsertOne(ctx, result)
	return err
}

// GetByID finds a result by ID
func (r *MongoResultRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticResult, error) {
	var result models.DiagnosticResult
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// List lists results with pagination
func (r *MongoResultRepository) List(ctx context.Context, opts PaginationOptions) (*PaginatedResult[models.DiagnosticResult], error) {
	filter := bson.M{}

	// Count total
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Apply pagination
	skip := int64((opts.Page - 1) * opts.Limit)
	findOpts := options.Find().
		SetSkip(skip).
		SetLimit(int64(opts.Limit)).
		SetSort(bson.D{{Key: opts.SortBy, Value: opts.SortDir}})

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.DiagnosticResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.DiagnosticResult{}
	}

	totalPages := int(total) / opts.Limit
	if int(total)%opts.Limit > 0 {
		totalPages++
	}

	return &PaginatedResult[models.DiagnosticResult]{
		Items:      results,
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: totalPages,
	}, nil
}

// Delete removes a result
func (r *MongoResultRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrResultNotFound
	}
	return nil
}

// Count returns the number of stored results
func (r *MongoResultRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
