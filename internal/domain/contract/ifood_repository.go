package contract

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// IFoodRepository defines the interface for food-item persistence.
//
// ApplyCounterDelta must be an atomic field-delta at the storage layer (no
// read-modify-write) and must return the post-delta counter value, so that
// concurrent toggles on the same item cannot lose updates.
type IFoodRepository interface {
	CreateFood(ctx context.Context, food *entity.Food) error
	GetFoodByID(ctx context.Context, foodID string) (*entity.Food, error)
	ListFoods(ctx context.Context) ([]entity.Food, error)
	GetFoodsByIDs(ctx context.Context, foodIDs []string) ([]entity.Food, error)
	ListFoodsByPartnerID(ctx context.Context, partnerID string) ([]entity.Food, error)
	ApplyCounterDelta(ctx context.Context, foodID string, kind entity.InteractionKind, delta int64) (int64, error)
}
