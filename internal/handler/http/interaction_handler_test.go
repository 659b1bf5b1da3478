package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	handler "github.com/bereketsol/Reelbite/internal/handler/http"
	"github.com/bereketsol/Reelbite/internal/handler/http/dto"
	"github.com/bereketsol/Reelbite/internal/handler/http/middleware"
	"github.com/bereketsol/Reelbite/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// asUser injects an authenticated end-user principal, standing in for the
// auth middleware.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextPrincipalID, userID)
		c.Set(middleware.ContextRole, entity.RoleUser)
		c.Next()
	}
}

func setupInteractionRouter(h *handler.InteractionHandler, authed bool) *gin.Engine {
	r := gin.New()
	group := r.Group("/api/food")
	if authed {
		group.Use(asUser("user-1"))
	}
	group.POST("/like", h.ToggleLikeHandler)
	group.POST("/save", h.ToggleSaveHandler)
	group.GET("/save", h.ListSavedHandler)
	return r
}

func postToggle(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestToggleLike(t *testing.T) {
	mockUsecase := mocks.NewMockInteractionUsecase()
	mockUsecase.MockResult = entity.ToggleResult{Active: true, Count: 4}
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, true)

	w := postToggle(r, "/api/food/like", dto.ToggleRequest{FoodID: "food-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ToggleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
	assert.Equal(t, int64(4), resp.Count)
	assert.Equal(t, "Food liked successfully", resp.Message)
	assert.Equal(t, "user-1", mockUsecase.LastUserID)
	assert.Equal(t, entity.InteractionKindLike, mockUsecase.LastKind)
}

func TestToggleSaveOff(t *testing.T) {
	mockUsecase := mocks.NewMockInteractionUsecase()
	mockUsecase.MockResult = entity.ToggleResult{Active: false, Count: 0}
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, true)

	w := postToggle(r, "/api/food/save", dto.ToggleRequest{FoodID: "food-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Food unsaved successfully")
	assert.Equal(t, entity.InteractionKindSave, mockUsecase.LastKind)
}

func TestToggleMissingFoodID(t *testing.T) {
	mockUsecase := mocks.NewMockInteractionUsecase()
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, true)

	w := postToggle(r, "/api/food/like", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mockUsecase.LastFoodID, "validation failure must not reach the usecase")
}

func TestToggleFoodNotFound(t *testing.T) {
	mockUsecase := mocks.NewMockInteractionUsecase()
	mockUsecase.ShouldFailNotFound = true
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, true)

	w := postToggle(r, "/api/food/like", dto.ToggleRequest{FoodID: "missing"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Food item not found")
}

func TestToggleUnauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockInteractionUsecase()
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, false)

	w := postToggle(r, "/api/food/like", dto.ToggleRequest{FoodID: "food-1"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, mockUsecase.LastFoodID, "unauthenticated request must not reach the usecase")
}

func TestToggleInternalError(t *testing.T) {
	mockUsecase := mocks.NewMockInteractionUsecase()
	mockUsecase.ShouldFailInternal = true
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, true)

	w := postToggle(r, "/api/food/like", dto.ToggleRequest{FoodID: "food-1"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListSaved(t *testing.T) {
	mockUsecase := mocks.NewMockInteractionUsecase()
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/food/save", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Injera Wrap")
	assert.Contains(t, w.Body.String(), `"active":true`)
}

func TestListSavedUnauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockInteractionUsecase()
	h := handler.NewInteractionHandler(mockUsecase)
	r := setupInteractionRouter(h, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/food/save", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
