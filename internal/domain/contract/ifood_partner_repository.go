package contract

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// IFoodPartnerRepository defines the interface for food-partner persistence.
type IFoodPartnerRepository interface {
	CreatePartner(ctx context.Context, partner *entity.FoodPartner) error
	GetPartnerByEmail(ctx context.Context, email string) (*entity.FoodPartner, error)
	GetPartnerByID(ctx context.Context, partnerID string) (*entity.FoodPartner, error)
}
