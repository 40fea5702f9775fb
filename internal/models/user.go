package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole represents the role of a backoffice user
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
)

// IsValid checks if the UserRole is a valid value
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User represents a backoffice administrator account
// #SECURITY_ASSUMPTION: Password hashes are bcrypt; plaintext never stored
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         UserRole           `bson:"role" json:"role"`
	IsActive     bool               `bson:"is_active" json:"is_active"`

	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
}

// CollectionName returns the MongoDB collection name for users
func (User) CollectionName() string {
	return "users"
}

// BeforeCreate sets default values before inserting a new user
func (u *User) BeforeCreate() {
	now := time.Now().UTC()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.Email = NormalizeEmail(u.Email)
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.Role == "" {
		u.Role = RoleAdmin
	}
	u.IsActive = true
}

// BeforeUpdate sets the UpdatedAt timestamp
func (u *User) BeforeUpdate() {
	u.UpdatedAt = time.Now().UTC()
}

// Validate checks the structural invariants of the user
func (u *User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidInput
	}
	if !u.Role.IsValid() {
		return ErrInvalidUserRole
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
