package mocks

import (
	"context"
	"errors"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// MockFoodUsecase is a mock implementation of the IFoodUseCase interface
type MockFoodUsecase struct {
	// Control mock behavior
	ShouldFailCreate          bool
	ShouldFailList            bool
	ShouldFailPartnerNotFound bool

	// Return values
	MockFood    entity.Food
	MockFoods   []entity.Food
	MockPartner entity.FoodPartner
}

var _ usecasecontract.IFoodUseCase = (*MockFoodUsecase)(nil)

func NewMockFoodUsecase() *MockFoodUsecase {
	food := entity.Food{
		ID:            "mock-food-id",
		Name:          "Doro Wat",
		Description:   "Slow-cooked chicken stew",
		VideoURL:      "https://cdn.example.com/videos/doro.mp4",
		FoodPartnerID: "mock-partner-id",
		LikeCount:     5,
		SaveCount:     2,
	}
	return &MockFoodUsecase{
		MockFood:  food,
		MockFoods: []entity.Food{food},
		MockPartner: entity.FoodPartner{
			ID:           "mock-partner-id",
			BusinessName: "Test Kitchen",
			ContactName:  "Test Owner",
			Phone:        "0911000000",
			Email:        "kitchen@example.com",
		},
	}
}

func (m *MockFoodUsecase) CreateFood(ctx context.Context, partnerID, name, description string, video []byte, contentType string) (*entity.Food, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("blob upload failed")
	}
	if m.ShouldFailPartnerNotFound {
		return nil, entity.ErrPartnerNotFound
	}
	return &m.MockFood, nil
}

func (m *MockFoodUsecase) ListFoods(ctx context.Context) ([]entity.Food, error) {
	if m.ShouldFailList {
		return nil, errors.New("storage unavailable")
	}
	return m.MockFoods, nil
}

func (m *MockFoodUsecase) GetPartnerProfile(ctx context.Context, partnerID string) (*entity.FoodPartner, []entity.Food, error) {
	if m.ShouldFailPartnerNotFound {
		return nil, nil, entity.ErrPartnerNotFound
	}
	return &m.MockPartner, m.MockFoods, nil
}
