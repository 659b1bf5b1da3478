package entity

import (
	"time"
)

// User represents a registered end user in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	FullName     string    `bson:"full_name" json:"fullName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// PrincipalRole identifies which side of the platform a token belongs to.
type PrincipalRole string

const (
	RoleUser    PrincipalRole = "user"
	RolePartner PrincipalRole = "partner"
)
