package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bereketsol/Reelbite/internal/domain/contract"
	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/infrastructure/metrics"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// InteractionUsecase is the toggle-interaction engine: it flips a user's
// like/save membership on a food item and keeps the item's denormalized
// counter in step with the membership set.
//
// The membership write and the counter delta are two sequential storage
// operations with no transaction around them; a crash between the two leaves
// the counter off by one until the item is reconciled against the membership
// set. The unique index on (user_id, food_id, kind) and the atomic delta keep
// concurrent toggles from compounding that drift.
type InteractionUsecase struct {
	interactionRepo contract.IInteractionRepository
	foodRepo        contract.IFoodRepository
	uuidGen         contract.IUUIDGenerator
	logger          usecasecontract.IAppLogger
	feedCache       usecasecontract.IFeedCache
}

// NewInteractionUsecase creates and returns a new InteractionUsecase instance.
func NewInteractionUsecase(interactionRepo contract.IInteractionRepository, foodRepo contract.IFoodRepository, uuidGen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *InteractionUsecase {
	return &InteractionUsecase{
		interactionRepo: interactionRepo,
		foodRepo:        foodRepo,
		uuidGen:         uuidGen,
		logger:          logger,
	}
}

// SetFeedCache attaches an optional feed cache, invalidated whenever a toggle
// changes a counter.
func (u *InteractionUsecase) SetFeedCache(cache usecasecontract.IFeedCache) {
	u.feedCache = cache
}

// Toggle flips the (userID, foodID, kind) membership record and adjusts the
// corresponding counter on the food item by exactly one. It returns the new
// membership state and the post-delta count.
//
// Calling Toggle twice with the same arguments returns the item to its
// original state; there is no "set to true" primitive.
func (u *InteractionUsecase) Toggle(ctx context.Context, userID, foodID string, kind entity.InteractionKind) (*entity.ToggleResult, error) {
	if !kind.Valid() {
		return nil, entity.ErrInvalidInteractionKind
	}
	if foodID == "" {
		return nil, entity.ErrFoodNotFound
	}

	// Validation must not mutate anything, so the item lookup comes first.
	if _, err := u.foodRepo.GetFoodByID(ctx, foodID); err != nil {
		if errors.Is(err, entity.ErrFoodNotFound) {
			return nil, entity.ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to look up food item: %w", err)
	}

	deleted, err := u.interactionRepo.Delete(ctx, userID, foodID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to delete interaction record: %w", err)
	}

	if deleted {
		count, err := u.applyDelta(ctx, foodID, kind, -1)
		if err != nil {
			return nil, err
		}
		metrics.TogglesTotal.WithLabelValues(string(kind), "off").Inc()
		u.invalidateFeed(ctx)
		return &entity.ToggleResult{Active: false, Count: count}, nil
	}

	record := &entity.Interaction{
		ID:     u.uuidGen.NewUUID(),
		UserID: userID,
		FoodID: foodID,
		Kind:   kind,
	}
	if err := u.interactionRepo.Insert(ctx, record); err != nil {
		if errors.Is(err, entity.ErrDuplicateInteraction) {
			// A concurrent toggle for the same triple won the unique-index
			// race. The record and its delta have already been applied, so
			// report the current state without adjusting the counter again.
			u.logger.Warnf("concurrent toggle detected for user=%s food=%s kind=%s", userID, foodID, kind)
			food, err := u.foodRepo.GetFoodByID(ctx, foodID)
			if err != nil {
				return nil, fmt.Errorf("failed to re-read food item after duplicate insert: %w", err)
			}
			return &entity.ToggleResult{Active: true, Count: counterFor(food, kind)}, nil
		}
		return nil, fmt.Errorf("failed to insert interaction record: %w", err)
	}

	count, err := u.applyDelta(ctx, foodID, kind, +1)
	if err != nil {
		return nil, err
	}
	metrics.TogglesTotal.WithLabelValues(string(kind), "on").Inc()
	u.invalidateFeed(ctx)
	return &entity.ToggleResult{Active: true, Count: count}, nil
}

// applyDelta applies an atomic counter delta, retrying once on a transient
// storage error before surfacing the failure.
func (u *InteractionUsecase) applyDelta(ctx context.Context, foodID string, kind entity.InteractionKind, delta int64) (int64, error) {
	count, err := u.foodRepo.ApplyCounterDelta(ctx, foodID, kind, delta)
	if err == nil {
		return count, nil
	}
	if errors.Is(err, entity.ErrFoodNotFound) {
		return 0, entity.ErrFoodNotFound
	}
	u.logger.Warnf("counter delta failed for food=%s kind=%s, retrying: %v", foodID, kind, err)
	count, retryErr := u.foodRepo.ApplyCounterDelta(ctx, foodID, kind, delta)
	if retryErr != nil {
		return 0, fmt.Errorf("failed to apply counter delta: %w", retryErr)
	}
	return count, nil
}

// ListSaved returns every food item the user currently has an active save on,
// in the insertion order of the save records.
func (u *InteractionUsecase) ListSaved(ctx context.Context, userID string) ([]entity.Food, error) {
	foodIDs, err := u.interactionRepo.ListFoodIDsByUserAndKind(ctx, userID, entity.InteractionKindSave)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved food ids: %w", err)
	}
	if len(foodIDs) == 0 {
		return []entity.Food{}, nil
	}
	foods, err := u.foodRepo.GetFoodsByIDs(ctx, foodIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved food items: %w", err)
	}
	return foods, nil
}

func (u *InteractionUsecase) invalidateFeed(ctx context.Context) {
	if u.feedCache == nil {
		return
	}
	if err := u.feedCache.InvalidateFeed(ctx); err != nil {
		u.logger.Warnf("failed to invalidate feed cache: %v", err)
	}
}

func counterFor(food *entity.Food, kind entity.InteractionKind) int64 {
	if kind == entity.InteractionKindSave {
		return food.SaveCount
	}
	return food.LikeCount
}
