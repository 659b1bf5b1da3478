package entity

import (
	"time"
)

// Food represents a short food video uploaded by a food partner.
// LikeCount and SaveCount are denormalized counters; they are derived from the
// interactions collection and mutated only through atomic deltas applied by the
// interaction usecase.
type Food struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	VideoURL      string    `bson:"video_url" json:"video"`
	FoodPartnerID string    `bson:"food_partner_id" json:"foodPartner"`
	LikeCount     int64     `bson:"like_count" json:"likeCount"`
	SaveCount     int64     `bson:"save_count" json:"saveCount"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
