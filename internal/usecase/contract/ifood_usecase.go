package usecasecontract

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// IFoodUseCase defines the interface for food-item operations.
type IFoodUseCase interface {
	CreateFood(ctx context.Context, partnerID, name, description string, video []byte, contentType string) (*entity.Food, error)
	ListFoods(ctx context.Context) ([]entity.Food, error)
	GetPartnerProfile(ctx context.Context, partnerID string) (*entity.FoodPartner, []entity.Food, error)
}
