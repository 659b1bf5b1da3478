package mocks

import (
	"context"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailEmailTaken  bool
	ShouldFailCredentials bool

	// Return values
	MockUser    entity.User
	MockPartner entity.FoodPartner
	MockToken   string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			FullName: "Test User",
			Email:    "test@example.com",
		},
		MockPartner: entity.FoodPartner{
			ID:           "mock-partner-id",
			BusinessName: "Test Kitchen",
			ContactName:  "Test Owner",
			Phone:        "0911000000",
			Email:        "kitchen@example.com",
		},
		MockToken: "mock_session_token",
	}
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, fullName, email, password string) (*entity.User, string, error) {
	if m.ShouldFailEmailTaken {
		return nil, "", entity.ErrEmailTaken
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailCredentials {
		return nil, "", entity.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) RegisterPartner(ctx context.Context, businessName, contactName, phone, email, password string) (*entity.FoodPartner, string, error) {
	if m.ShouldFailEmailTaken {
		return nil, "", entity.ErrEmailTaken
	}
	return &m.MockPartner, m.MockToken, nil
}

func (m *MockAuthUsecase) LoginPartner(ctx context.Context, email, password string) (*entity.FoodPartner, string, error) {
	if m.ShouldFailCredentials {
		return nil, "", entity.ErrInvalidCredentials
	}
	return &m.MockPartner, m.MockToken, nil
}
