// Package repository provides data access layer factories
// #IMPLEMENTATION_DECISION: Factory functions wrap raw MongoDB constructors for our database.Client
package repository

import (
	"github.com/diagnostico-tools/diagnostico_backend/internal/database"
)

// NewPillarRepository creates a new pillar repository using our database client
func NewPillarRepository(client *database.Client) PillarRepository {
	return NewMongoPillarRepository(client.Database())
}

// NewResultRepository creates a new diagnostic result repository using our database client
func NewResultRepository(client *database.Client) ResultRepository {
	return NewMongoResultRepository(client.Database())
}

// NewSettingsRepository creates a new settings repository using our database client
func NewSettingsRepository(client *database.Client) SettingsRepository {
	return NewMongoSettingsRepository(client.Database())
}

// NewUserRepository creates a new user repository using our database client
func NewUserRepository(client *database.Client) UserRepository {
	return NewMongoUserRepository(client.Database())
}
