package contract

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// IInteractionRepository defines the interface for the like/save membership set.
//
// The storage layer must enforce a uniqueness constraint on
// (user_id, food_id, kind): Insert returns entity.ErrDuplicateInteraction when
// a concurrent insert for the same triple has already won.
type IInteractionRepository interface {
	Insert(ctx context.Context, interaction *entity.Interaction) error
	Delete(ctx context.Context, userID, foodID string, kind entity.InteractionKind) (bool, error)
	Exists(ctx context.Context, userID, foodID string, kind entity.InteractionKind) (bool, error)
	ListFoodIDsByUserAndKind(ctx context.Context, userID string, kind entity.InteractionKind) ([]string, error)
	CountByFoodAndKind(ctx context.Context, foodID string, kind entity.InteractionKind) (int64, error)
}
