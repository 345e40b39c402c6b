package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored account document from the USUARIOS collection.
// Credential fields must never leave the service boundary: both hash fields
// are excluded from JSON and are stripped during normalization.
//
// Legacy documents may carry the bcrypt hash under "password" instead of
// "senha"; PasswordHash exists only to read those back.
type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	// Email is the unique login identifier.
	Email string `bson:"email" json:"email"`

	// Senha holds the bcrypt hash of the user's password.
	Senha string `bson:"senha,omitempty" json:"-"`

	// PasswordHash is the legacy storage field for the bcrypt hash.
	PasswordHash string `bson:"password,omitempty" json:"-"`

	// Nome is the display name. Non-sensitive.
	Nome string `bson:"nome,omitempty" json:"nome,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"-"`
}

// StoredHash returns the bcrypt hash regardless of which field it was
// persisted under. Empty when the account has no password on record.
func (u User) StoredHash() string {
	if u.Senha != "" {
		return u.Senha
	}
	return u.PasswordHash
}

// UserResponse is the public shape of a user: internal identifier projected
// to a string id, credential fields gone.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome,omitempty"`
}

// Normalize converts the stored document into its response shape.
func (u User) Normalize() UserResponse {
	return UserResponse{
		ID:    u.ID.Hex(),
		Email: u.Email,
		Nome:  u.Nome,
	}
}
