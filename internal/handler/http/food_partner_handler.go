package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/handler/http/dto"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// FoodPartnerHandler serves food-partner profile pages.
type FoodPartnerHandler struct {
	foodUsecase usecasecontract.IFoodUseCase
}

func NewFoodPartnerHandler(foodUsecase usecasecontract.IFoodUseCase) *FoodPartnerHandler {
	return &FoodPartnerHandler{
		foodUsecase: foodUsecase,
	}
}

// GetFoodPartnerHandler returns a partner's profile with their food items.
func (h *FoodPartnerHandler) GetFoodPartnerHandler(c *gin.Context) {
	partnerID := c.Param("id")
	if partnerID == "" {
		ErrorHandler(c, http.StatusBadRequest, "Food partner ID is required")
		return
	}

	partner, foods, err := h.foodUsecase.GetPartnerProfile(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, entity.ErrPartnerNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Food partner not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"message": "Food partner retrieved successfully",
		"foodPartner": dto.PartnerProfileResponse{
			FoodPartnerResponse: dto.ToFoodPartnerResponse(*partner),
			FoodItems:           dto.ToFoodResponses(foods),
		},
	})
}
