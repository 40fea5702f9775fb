// Package repository defines interfaces for data access and their MongoDB implementations
// #ORM_PATTERN: Repository pattern with interfaces for testability and abstraction
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

// PaginationOptions contains pagination parameters
type PaginationOptions struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir int // 1 for ascending, -1 for descending
}

// DefaultPaginationOptions returns default pagination settings
// #DATA_ASSUMPTION: Pagination defaults to 20 items per page, newest first
func DefaultPaginationOptions() PaginationOptions {
	return PaginationOptions{
		Page:    1,
		Limit:   20,
		SortBy:  "date",
		SortDir: -1,
	}
}

// PaginatedResult contains paginated query results
type PaginatedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// PillarRepository defines operations for questionnaire pillars
// #QUERY_INTERFACE: Pillars are always read as the full ordered questionnaire
type PillarRepository interface {
	// Create creates a new pillar
	Create(ctx context.Context, pillar *models.Pillar) error

	// GetByOrdinal finds a pillar by its public ordinal
	GetByOrdinal(ctx context.Context, ordinal int) (*models.Pillar, error)

	// ListAll lists all pillars ordered by ordinal
	ListAll(ctx context.Context) ([]models.Pillar, error)

	// Update persists changes to a pillar and its embedded questions
	Update(ctx context.Context, pillar *models.Pillar) error

	// Delete removes a pillar and its questions
	Delete(ctx context.Context, ordinal int) error

	// HighestOrdinal returns the highest assigned ordinal, 0 when empty
	HighestOrdinal(ctx context.Context) (int, error)

	// Count returns the number of pillars
	Count(ctx context.Context) (int64, error)
}

// ResultRepository defines operations for diagnostic results
// #QUERY_INTERFACE: Results are append-only; no update operation exists
type ResultRepository interface {
	// Create persists a new diagnostic result
	Create(ctx context.Context, result *models.DiagnosticResult) error

	// GetByID finds a result by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticResult, error)

	// List lists results with pagination, newest first by default
	List(ctx context.Context, opts PaginationOptions) (*PaginatedResult[models.DiagnosticResult], error)

	// Delete removes a result
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Count returns the number of stored results
	Count(ctx context.Context) (int64, error)
}

// SettingsRepository defines operations for the branding settings singleton
type SettingsRepository interface {
	// Get returns the settings document
	Get(ctx context.Context) (*models.Settings, error)

	// Upsert creates or replaces the settings document
	Upsert(ctx context.Context, settings *models.Settings) error
}

// UserRepository defines operations for backoffice users
// #QUERY_INTERFACE: User data access patterns
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// GetByID finds a user by ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	// GetByEmail finds a user by email
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Update updates a user
	Update(ctx context.Context, user *models.User) error

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID) error
}
