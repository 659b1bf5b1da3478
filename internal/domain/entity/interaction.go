package entity

import (
	"time"
)

// InteractionKind represents the kind of interaction a user has with a food item.
type InteractionKind string

const (
	InteractionKindLike InteractionKind = "like"
	InteractionKindSave InteractionKind = "save"
)

// Valid reports whether the kind is one of the supported interaction kinds.
func (k InteractionKind) Valid() bool {
	return k == InteractionKindLike || k == InteractionKindSave
}

// Interaction records that a user currently has an active like or save on a
// food item. The (user_id, food_id, kind) triple is unique: at most one active
// record per kind per user per item. This collection is the authoritative
// membership set; the counters on Food are a derived cache of its cardinality.
type Interaction struct {
	ID        string          `bson:"_id,omitempty" json:"id"`
	UserID    string          `bson:"user_id" json:"user_id"`
	FoodID    string          `bson:"food_id" json:"food_id"`
	Kind      InteractionKind `bson:"kind" json:"kind"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}

// ToggleResult is the outcome of flipping an interaction: the new membership
// state for the calling user and the item's post-delta counter value.
type ToggleResult struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}
