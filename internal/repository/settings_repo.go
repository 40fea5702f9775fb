package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

// MongoSettingsRepository implements SettingsRepository for MongoDB
type MongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new MongoDB settings repository
func NewMongoSettingsRepository(db *mongo.Database) *MongoSettingsRepository {
	return &MongoSettingsRepository{
		collection: db.Collection(models.Settings{}.CollectionName()),
	}
}

// Get returns the settings singleton
func (r *MongoSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := r.collection.FindOne(ctx, bson.M{"_id": models.SettingsKey}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert creates or replaces the settings singleton
func (r *MongoSettingsRepository) Upsert(ctx context.Context, settings *models.Settings) error {
	settings.BeforeUpsert()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": models.SettingsKey}, settings, opts)
	return err
}
