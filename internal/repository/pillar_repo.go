package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

// MongoPillarRepository implements PillarRepository for MongoDB
// #ORM_INTEGRATION: Questions are embedded in the pillar document and always
// written back as a whole; the questionnaire is small enough for that
type MongoPillarRepository struct {
	collection *mongo.Collection
}

// NewMongoPillarRepository creates a new MongoDB pillar repository
func NewMongoPillarRepository(db *mongo.Database) *MongoPillarRepository {
	return &MongoPillarRepository{
		collection: db.Collection(models.Pillar{}.CollectionName()),
	}
}

// Create creates a new pillar
func (r *MongoPillarRepository) Create(ctx context.Context, pillar *models.Pillar) error {
	pillar.BeforeCreate()
	_, err := r.collection.InsertOne(ctx, pillar)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrAlreadyExists
	}
	return err
}

// GetByOrdinal finds a pillar by its public ordinal
func (r *MongoPillarRepository) GetByOrdinal(ctx context.Context, ordinal int) (*models.Pillar, error) {
	var pillar models.Pillar
	err := r.collection.FindOne(ctx, bson.M{"ordinal": ordinal}).Decode(&pillar)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrPillarNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pillar, nil
}

// ListAll lists all pillars ordered by ordinal
// #QUERY_PATTERN: The whole questionnaire is fetched at once; scoring and
// display both need every pillar in order
func (r *MongoPillarRepository) ListAll(ctx context.Context) ([]models.Pillar, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "ordinal", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pillars []models.Pillar
	if err := cursor.All(ctx, &pillars); err != nil {
		return nil, err
	}
	if pillars == nil {
		pillars = []models.Pillar{}
	}

	return pillars, nil
}

// Update persists changes to a pillar and its embedded questions
func (r *MongoPillarRepository) Update(ctx context.Context, pillar *models.Pillar) error {
	pillar.BeforeUpdate()
	filter := bson.M{"_id": pillar.ID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": pillar})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return models.ErrPillarNotFound
	}
	return nil
}

// Delete removes a pillar and its embedded questions
// #CASCADE_STRATEGY: Questions live inside the pillar document, so the delete
// cascades by construction; historical results keep their own copies
func (r *MongoPillarRepository) Delete(ctx context.Context, ordinal int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"ordinal": ordinal})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return models.ErrPillarNotFound
	}
	return nil
}

// HighestOrdinal returns the highest assigned ordinal, 0 when no pillars exist
func (r *MongoPillarRepository) HighestOrdinal(ctx context.Context) (int, error) {
	findOpts := options.FindOne().SetSort(bson.D{{Key: "ordinal", Value: -1}})

	var pillar models.Pillar
	err := r.collection.FindOne(ctx, bson.M{}, findOpts).Decode(&pillar)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return pillar.Ordinal, nil
}

// Count returns the number of pillars
func (r *MongoPillarRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
