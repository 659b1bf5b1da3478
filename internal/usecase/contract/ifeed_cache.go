package usecasecontract

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// IFeedCache caches the food feed listing. It is an optional dependency: the
// food and interaction usecases work without one, and all cache errors are
// soft failures (logged, never surfaced).
type IFeedCache interface {
	GetFeed(ctx context.Context) ([]entity.Food, bool, error)
	SetFeed(ctx context.Context, foods []entity.Food) error
	InvalidateFeed(ctx context.Context) error
}
