package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/handler/http/dto"
	"github.com/bereketsol/Reelbite/internal/handler/http/middleware"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

// InteractionHandler serves the like/save toggle and saved-list endpoints.
type InteractionHandler struct {
	interactionUsecase usecasecontract.IInteractionUseCase
}

func NewInteractionHandler(interactionUsecase usecasecontract.IInteractionUseCase) *InteractionHandler {
	return &InteractionHandler{
		interactionUsecase: interactionUsecase,
	}
}

// ToggleLikeHandler flips the caller's like on a food item.
func (h *InteractionHandler) ToggleLikeHandler(c *gin.Context) {
	h.toggle(c, entity.InteractionKindLike, "liked", "unliked")
}

// ToggleSaveHandler flips the caller's save on a food item.
func (h *InteractionHandler) ToggleSaveHandler(c *gin.Context) {
	h.toggle(c, entity.InteractionKindSave, "saved", "unsaved")
}

func (h *InteractionHandler) toggle(c *gin.Context, kind entity.InteractionKind, onWord, offWord string) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	var req dto.ToggleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.interactionUsecase.Toggle(c.Request.Context(), userID, req.FoodID, kind)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrFoodNotFound):
			ErrorHandler(c, http.StatusNotFound, "Food item not found")
		case errors.Is(err, entity.ErrInvalidInteractionKind):
			ErrorHandler(c, http.StatusBadRequest, "Invalid interaction kind")
		default:
			ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	message := "Food " + offWord + " successfully"
	if result.Active {
		message = "Food " + onWord + " successfully"
	}
	SuccessHandler(c, http.StatusOK, dto.ToggleResponse{
		Message: message,
		Active:  result.Active,
		Count:   result.Count,
	})
}

// ListSavedHandler returns the caller's saved food items.
func (h *InteractionHandler) ListSavedHandler(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}

	foods, err := h.interactionUsecase.ListSaved(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"message":    "Saved foods retrieved successfully",
		"savedFoods": dto.ToSavedFoodResponses(foods),
	})
}

// principalID pulls the authenticated principal id out of the gin context.
func principalID(c *gin.Context) (string, bool) {
	id, exists := c.Get(middleware.ContextPrincipalID)
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	return idStr, true
}
