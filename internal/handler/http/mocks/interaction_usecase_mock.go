package mocks

import (
	"context"
	"errors"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// MockInteractionUsecase is a mock implementation of the IInteractionUseCase interface
type MockInteractionUsecase struct {
	// Control mock behavior
	ShouldFailNotFound  bool
	ShouldFailInternal  bool
	ShouldFailListSaved bool

	// Return values
	MockResult     entity.ToggleResult
	MockSavedFoods []entity.Food

	// Captured arguments
	LastUserID string
	LastFoodID string
	LastKind   entity.InteractionKind
}

var _ usecasecontract.IInteractionUseCase = (*MockInteractionUsecase)(nil)

func NewMockInteractionUsecase() *MockInteractionUsecase {
	return &MockInteractionUsecase{
		MockResult: entity.ToggleResult{Active: true, Count: 1},
		MockSavedFoods: []entity.Food{
			{ID: "mock-food-id", Name: "Injera Wrap", Description: "Spicy wrap", VideoURL: "https://cdn.example.com/videos/wrap.mp4", FoodPartnerID: "mock-partner-id", SaveCount: 3},
		},
	}
}

func (m *MockInteractionUsecase) Toggle(ctx context.Context, userID, foodID string, kind entity.InteractionKind) (*entity.ToggleResult, error) {
	m.LastUserID = userID
	m.LastFoodID = foodID
	m.LastKind = kind
	if m.ShouldFailNotFound {
		return nil, entity.ErrFoodNotFound
	}
	if m.ShouldFailInternal {
		return nil, errors.New("storage unavailable")
	}
	res := m.MockResult
	return &res, nil
}

func (m *MockInteractionUsecase) ListSaved(ctx context.Context, userID string) ([]entity.Food, error) {
	m.LastUserID = userID
	if m.ShouldFailListSaved {
		return nil, errors.New("storage unavailable")
	}
	return m.MockSavedFoods, nil
}
