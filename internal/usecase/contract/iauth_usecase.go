package usecasecontract

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// IAuthUseCase defines the interface for registration and login of both
// end users and food partners. Login and Register return the created/resolved
// principal together with a signed session token.
type IAuthUseCase interface {
	RegisterUser(ctx context.Context, fullName, email, password string) (*entity.User, string, error)
	LoginUser(ctx context.Context, email, password string) (*entity.User, string, error)
	RegisterPartner(ctx context.Context, businessName, contactName, phone, email, password string) (*entity.FoodPartner, string, error)
	LoginPartner(ctx context.Context, email, password string) (*entity.FoodPartner, string, error)
}
