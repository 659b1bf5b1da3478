package usecasecontract

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// IInteractionUseCase defines the interface for the toggle-interaction engine.
type IInteractionUseCase interface {
	Toggle(ctx context.Context, userID, foodID string, kind entity.InteractionKind) (*entity.ToggleResult, error)
	ListSaved(ctx context.Context, userID string) ([]entity.Food, error)
}
