package dto

import (
	"time"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
)

// UserResponse is the DTO for an end user.
type UserResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// FoodPartnerResponse is the DTO for a food partner.
type FoodPartnerResponse struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	CreatedAt    string `json:"created_at"`
}

// FoodResponse is the DTO for a food item.
type FoodResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Video       string `json:"video"`
	FoodPartner string `json:"foodPartner"`
	LikeCount   int64  `json:"likeCount"`
	SaveCount   int64  `json:"saveCount"`
	CreatedAt   string `json:"created_at"`
}

// SavedFoodResponse is a food item annotated with the caller's active save state.
type SavedFoodResponse struct {
	FoodResponse
	Active bool `json:"active"`
}

// ToggleResponse reports the outcome of a like/save toggle.
type ToggleResponse struct {
	Message string `json:"message"`
	Active  bool   `json:"active"`
	Count   int64  `json:"count"`
}

// PartnerProfileResponse is a food partner together with their food items.
type PartnerProfileResponse struct {
	FoodPartnerResponse
	FoodItems []FoodResponse `json:"foodItems"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// ToFoodPartnerResponse converts an entity.FoodPartner to its DTO.
func ToFoodPartnerResponse(partner entity.FoodPartner) FoodPartnerResponse {
	return FoodPartnerResponse{
		ID:           partner.ID,
		BusinessName: partner.BusinessName,
		ContactName:  partner.ContactName,
		Phone:        partner.Phone,
		Email:        partner.Email,
		CreatedAt:    partner.CreatedAt.Format(time.RFC3339),
	}
}

// ToFoodResponse converts an entity.Food to a FoodResponse DTO.
func ToFoodResponse(food entity.Food) FoodResponse {
	return FoodResponse{
		ID:          food.ID,
		Name:        food.Name,
		Description: food.Description,
		Video:       food.VideoURL,
		FoodPartner: food.FoodPartnerID,
		LikeCount:   food.LikeCount,
		SaveCount:   food.SaveCount,
		CreatedAt:   food.CreatedAt.Format(time.RFC3339),
	}
}

// ToFoodResponses converts a slice of foods.
func ToFoodResponses(foods []entity.Food) []FoodResponse {
	out := make([]FoodResponse, 0, len(foods))
	for _, f := range foods {
		out = append(out, ToFoodResponse(f))
	}
	return out
}

// ToSavedFoodResponses converts saved foods, marking each active.
func ToSavedFoodResponses(foods []entity.Food) []SavedFoodResponse {
	out := make([]SavedFoodResponse, 0, len(foods))
	for _, f := range foods {
		out = append(out, SavedFoodResponse{FoodResponse: ToFoodResponse(f), Active: true})
	}
	return out
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
