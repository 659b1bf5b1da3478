package entity

import (
	"time"
)

// FoodPartner represents a business account that uploads food videos.
type FoodPartner struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	BusinessName string    `bson:"business_name" json:"businessName"`
	ContactName  string    `bson:"contact_name" json:"contactName"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
