package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
	"github.com/diagnostico-tools/diagnostico_backend/internal/repository"
)

// SettingsService handles the branding settings singleton
type SettingsService interface {
	// GetSettings returns the current branding settings, or empty defaults
	// when nothing has been configured yet
	GetSettings(ctx context.Context) (*models.Settings, error)

	// UpdateSettings applies a partial update and upserts the singleton
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*models.Settings, error)
}

// UpdateSettingsRequest represents a partial branding update. Nil fields are
// left untouched; an explicit empty string clears the URL.
type UpdateSettingsRequest struct {
	LogoURL       *string `json:"logo_url,omitempty"`
	NavbarLogoURL *string `json:"navbar_logo_url,omitempty"`
}

// settingsService implements SettingsService
type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the current branding settings
// #IMPLEMENTATION_DECISION: A missing document is not an error to callers;
// the frontend renders default branding for empty URLs
func (s *settingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, models.ErrSettingsNotFound) {
			return &models.Settings{Key: models.SettingsKey}, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies a partial update and upserts the singleton
func (s *settingsService) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.LogoURL != nil {
		settings.LogoURL = *req.LogoURL
	}
	if req.NavbarLogoURL != nil {
		settings.NavbarLogoURL = *req.NavbarLogoURL
	}

	settings.BeforeUpsert()

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}
