package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/handler/http/dto"
	"github.com/bereketsol/Reelbite/internal/usecase"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// FoodHandler serves food creation and the feed listing.
type FoodHandler struct {
	foodUsecase usecasecontract.IFoodUseCase
}

func NewFoodHandler(foodUsecase usecasecontract.IFoodUseCase) *FoodHandler {
	return &FoodHandler{
		foodUsecase: foodUsecase,
	}
}

// CreateFoodHandler accepts a multipart upload ("video" + name/description)
// from a food partner. The video is uploaded to the blob store before the
// record is written; an upload failure creates nothing.
func (h *FoodHandler) CreateFoodHandler(c *gin.Context) {
	partnerID, ok := principalID(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	description := c.PostForm("description")
	if name == "" || description == "" {
		ErrorHandler(c, http.StatusBadRequest, "Name and description required")
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Food video/file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}
	defer file.Close()
	video, err := io.ReadAll(file)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	food, err := h.foodUsecase.CreateFood(c.Request.Context(), partnerID, name, description, video, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingFoodFields), errors.Is(err, usecase.ErrMissingVideo):
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, entity.ErrPartnerNotFound):
			ErrorHandler(c, http.StatusUnauthorized, "Unauthorized")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	SuccessHandler(c, http.StatusCreated, gin.H{
		"message": "Food created successfully",
		"food":    dto.ToFoodResponse(*food),
	})
}

// GetFoodItemsHandler returns every food item with its current counters.
// Per-user like/save state is not annotated on the feed.
func (h *FoodHandler) GetFoodItemsHandler(c *gin.Context) {
	foods, err := h.foodUsecase.ListFoods(c.Request.Context())
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{
		"message":   "Food items fetched successfully",
		"foodItems": dto.ToFoodResponses(foods),
	})
}
