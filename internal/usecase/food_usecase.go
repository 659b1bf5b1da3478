package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bereketsol/Reelbite/internal/domain/contract"
	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/infrastructure/metrics"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// ErrMissingVideo is returned when food creation is attempted without a video.
var ErrMissingVideo = errors.New("food video file is required")

// ErrMissingFoodFields is returned when name or description is missing.
var ErrMissingFoodFields = errors.New("name and description are required")

// FoodUsecase handles food-item creation and listing.
type FoodUsecase struct {
	foodRepo    contract.IFoodRepository
	partnerRepo contract.IFoodPartnerRepository
	blobStore   contract.IBlobStore
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	feedCache   usecasecontract.IFeedCache
}

// NewFoodUsecase creates and returns a new FoodUsecase instance.
func NewFoodUsecase(foodRepo contract.IFoodRepository, partnerRepo contract.IFoodPartnerRepository, blobStore contract.IBlobStore, uuidGen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *FoodUsecase {
	return &FoodUsecase{
		foodRepo:    foodRepo,
		partnerRepo: partnerRepo,
		blobStore:   blobStore,
		uuidGen:     uuidGen,
		logger:      logger,
	}
}

// SetFeedCache attaches an optional feed cache.
func (u *FoodUsecase) SetFeedCache(cache usecasecontract.IFeedCache) {
	u.feedCache = cache
}

// CreateFood uploads the video to the blob store and then writes the food
// record. The upload happens first: if it fails, no record is created.
func (u *FoodUsecase) CreateFood(ctx context.Context, partnerID, name, description string, video []byte, contentType string) (*entity.Food, error) {
	if name == "" || description == "" {
		return nil, ErrMissingFoodFields
	}
	if len(video) == 0 {
		return nil, ErrMissingVideo
	}

	if _, err := u.partnerRepo.GetPartnerByID(ctx, partnerID); err != nil {
		if errors.Is(err, entity.ErrPartnerNotFound) {
			return nil, entity.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to look up food partner: %w", err)
	}

	fileName := u.uuidGen.NewUUID() + extensionFor(contentType)
	videoURL, err := u.blobStore.Upload(ctx, video, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to upload food video: %w", err)
	}

	food := &entity.Food{
		ID:            u.uuidGen.NewUUID(),
		Name:          name,
		Description:   description,
		VideoURL:      videoURL,
		FoodPartnerID: partnerID,
	}
	if err := u.foodRepo.CreateFood(ctx, food); err != nil {
		return nil, fmt.Errorf("failed to create food record: %w", err)
	}
	metrics.FoodsCreatedTotal.Inc()

	if u.feedCache != nil {
		if err := u.feedCache.InvalidateFeed(ctx); err != nil {
			u.logger.Warnf("failed to invalidate feed cache: %v", err)
		}
	}
	return food, nil
}

// ListFoods returns every food item with its current counters. Per-user
// like/save state is not annotated here; a client needs the saved listing for
// that.
func (u *FoodUsecase) ListFoods(ctx context.Context) ([]entity.Food, error) {
	if u.feedCache != nil {
		if foods, ok, err := u.feedCache.GetFeed(ctx); err == nil && ok {
			return foods, nil
		} else if err != nil {
			u.logger.Warnf("feed cache read failed: %v", err)
		}
	}

	foods, err := u.foodRepo.ListFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}

	if u.feedCache != nil {
		if err := u.feedCache.SetFeed(ctx, foods); err != nil {
			u.logger.Warnf("feed cache write failed: %v", err)
		}
	}
	return foods, nil
}

// GetPartnerProfile returns a food partner together with their food items.
func (u *FoodUsecase) GetPartnerProfile(ctx context.Context, partnerID string) (*entity.FoodPartner, []entity.Food, error) {
	partner, err := u.partnerRepo.GetPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, entity.ErrPartnerNotFound) {
			return nil, nil, entity.ErrPartnerNotFound
		}
		return nil, nil, fmt.Errorf("failed to look up food partner: %w", err)
	}
	foods, err := u.foodRepo.ListFoodsByPartnerID(ctx, partnerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list partner food items: %w", err)
	}
	return partner, foods, nil
}

func extensionFor(contentType string) string {
	if idx := strings.LastIndex(contentType, "/"); idx >= 0 && idx < len(contentType)-1 {
		return "." + contentType[idx+1:]
	}
	return ""
}
