// Package services provides business logic implementations.
// #IMPLEMENTATION_DECISION: Services orchestrate repositories and external services
package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/diagnostico-tools/diagnostico_backend/internal/auth"
	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
	"github.com/diagnostico-tools/diagnostico_backend/internal/repository"
)

// Custom errors for auth service, aliased so the shared error classifiers
// in models recognize them
var (
	ErrInvalidCredentials  = models.ErrInvalidCredentials
	ErrUserNotFound        = models.ErrUserNotFound
	ErrUserInactive        = models.ErrUserInactive
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// bcryptCost is used when hashing new passwords
const bcryptCost = 12

// AuthService handles authentication logic
// #INTEGRATION_POINT: Used by auth handler for login/refresh flows
type AuthService interface {
	// Login verifies email/password credentials and returns a token pair
	Login(ctx context.Context, email, password string) (*auth.TokenPair, *models.User, error)

	// RefreshAccessToken refreshes an access token using a refresh token
	RefreshAccessToken(ctx context.Context, refreshToken string) (*auth.TokenPair, error)

	// GetCurrentUser retrieves the user behind a set of token claims
	GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error)

	// CreateUser creates a new backoffice account with a hashed password
	CreateUser(ctx context.Context, email, name, password string, role models.UserRole) (*models.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo   repository.UserRepository
	jwtService auth.JWTService
}

// NewAuthService creates a new auth service instance
// #IMPLEMENTATION_DECISION: Constructor injection for testability
func NewAuthService(userRepo repository.UserRepository, jwtService auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues tokens
// #SECURITY_CONCERN: The same error is returned for unknown emails and wrong
// passwords to prevent account enumeration
func (s *authService) Login(ctx context.Context, email, password string) (*auth.TokenPair, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil || user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, ErrUserInactive
	}

	// Update last login
	if updateErr := s.userRepo.UpdateLastLogin(ctx, user.ID); updateErr != nil { //nolint:staticcheck // Log error but don't fail login
		// #TECHNICAL_DEBT: Log error but don't fail login
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID.Hex(), user.Email, string(user.Role))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokenPair, user, nil
}

// RefreshAccessToken refreshes an access token
// #SECURITY_CONCERN: Refresh tokens should ideally be stored and tracked for rotation
func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID.Hex(), user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokenPair, nil
}

// GetCurrentUser retrieves the authenticated user
func (s *authService) GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser creates a new backoffice account
// #IMPLEMENTATION_DECISION: bcrypt cost 12 balances hash time against login latency
func (s *authService) CreateUser(ctx context.Context, email, name, password string, role models.UserRole) (*models.User, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", models.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
