package dto

// ToggleRequest is the payload for like/save toggle endpoints.
type ToggleRequest struct {
	FoodID string `json:"foodId" binding:"required"`
}
