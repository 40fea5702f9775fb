package models

import "errors"

// Model validation and operation errors
var (
	// General errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserInactive       = errors.New("user is inactive")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidUserRole    = errors.New("invalid user role")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Pillar errors
	ErrPillarNotFound      = errors.New("pillar not found")
	ErrEmptyPillarName     = errors.New("pillar name must not be empty")
	ErrDuplicateQuestionID = errors.New("duplicate question ordinal within pillar")

	// Question errors
	ErrQuestionNotFound      = errors.New("question not found")
	ErrInvalidQuestionPoints = errors.New("question points must be positive")
	ErrInvalidAnswerType     = errors.New("invalid answer type")
	ErrInvalidPositiveAnswer = errors.New("positive answer not in answer type vocabulary")
	ErrInvalidCreditTable    = errors.New("invalid answer credit table")

	// Diagnostic result errors
	ErrResultNotFound  = errors.New("diagnostic result not found")
	ErrResultImmutable = errors.New("diagnostic results cannot be modified")

	// Settings errors
	ErrSettingsNotFound = errors.New("settings not found")
)

// IsNotFoundError returns true if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPillarNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrResultNotFound) ||
		errors.Is(err, ErrSettingsNotFound)
}

// IsValidationError returns true if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidUserRole) ||
		errors.Is(err, ErrEmptyPillarName) ||
		errors.Is(err, ErrDuplicateQuestionID) ||
		errors.Is(err, ErrInvalidQuestionPoints) ||
		errors.Is(err, ErrInvalidAnswerType) ||
		errors.Is(err, ErrInvalidPositiveAnswer) ||
		errors.Is(err, ErrInvalidCreditTable)
}

// IsAuthError returns true if the error is an authentication/authorization error
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrUserInactive) ||
		errors.Is(err, ErrInvalidCredentials)
}

// IsConflictError returns true if the error is a conflict/duplicate error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrResultImmutable)
}
