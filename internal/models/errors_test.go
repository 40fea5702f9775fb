package models

import (
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrNotFound", ErrNotFound, true},
		{"ErrUserNotFound", ErrUserNotFound, true},
		{"ErrPillarNotFound", ErrPillarNotFound, true},
		{"ErrQuestionNotFound", ErrQuestionNotFound, true},
		{"ErrResultNotFound", ErrResultNotFound, true},
		{"ErrSettingsNotFound", ErrSettingsNotFound, true},
		{"Non-NotFound error", ErrInvalidInput, false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrInvalidInput", ErrInvalidInput, true},
		{"ErrEmptyPillarName", ErrEmptyPillarName, true},
		{"ErrInvalidQuestionPoints", ErrInvalidQuestionPoints, true},
		{"ErrInvalidAnswerType", ErrInvalidAnswerType, true},
		{"ErrInvalidPositiveAnswer", ErrInvalidPositiveAnswer, true},
		{"ErrInvalidCreditTable", ErrInvalidCreditTable, true},
		{"Non-validation error", ErrUserNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.expected {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrUnauthorized", ErrUnauthorized, true},
		{"ErrForbidden", ErrForbidden, true},
		{"ErrInvalidCredentials", ErrInvalidCredentials, true},
		{"ErrUserInactive", ErrUserInactive, true},
		{"Non-auth error", ErrPillarNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.err); got != tt.expected {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsConflictError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ErrAlreadyExists", ErrAlreadyExists, true},
		{"ErrEmailAlreadyExists", ErrEmailAlreadyExists, true},
		{"ErrResultImmutable", ErrResultImmutable, true},
		{"Non-conflict error", ErrUserNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConflictError(tt.err); got != tt.expected {
				t.Errorf("IsConflictError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
