package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/bereketsol/Reelbite/internal/handler/http"
	"github.com/bereketsol/Reelbite/internal/handler/http/dto"
	"github.com/bereketsol/Reelbite/internal/handler/http/mocks"
	"github.com/bereketsol/Reelbite/internal/infrastructure/config"
)

func setupAuthRouter(h *handler.AuthHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/user/register", h.RegisterUserHandler)
	auth.POST("/user/login", h.LoginUserHandler)
	auth.GET("/user/logout", h.LogoutUserHandler)
	auth.POST("/foodpartner/register", h.RegisterPartnerHandler)
	auth.POST("/foodpartner/login", h.LoginPartnerHandler)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestRegisterUser(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/user/register", dto.RegisterUserRequest{
		FullName: "Test User",
		Email:    "test@example.com",
		Password: "Password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")

	cookie := sessionCookie(w)
	if assert.NotNil(t, cookie, "registration must set the session cookie") {
		assert.Equal(t, "mock_session_token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	}
}

func TestRegisterUserMissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/user/register", map[string]string{"email": "test@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterUserEmailTaken(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailEmailTaken = true
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/user/register", dto.RegisterUserRequest{
		FullName: "Test User",
		Email:    "test@example.com",
		Password: "Password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestLoginUser(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/user/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User logged in successfully")
	assert.NotNil(t, sessionCookie(w))
}

func TestLoginUserInvalidCredentials(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailCredentials = true
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/user/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLogoutUserClearsCookie(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := setupAuthRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/user/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	if assert.NotNil(t, cookie) {
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestRegisterPartner(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/foodpartner/register", dto.RegisterPartnerRequest{
		BusinessName: "Test Kitchen",
		ContactName:  "Test Owner",
		Phone:        "0911000000",
		Email:        "kitchen@example.com",
		Password:     "Password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Food partner registered successfully")
	assert.NotNil(t, sessionCookie(w))
}

func TestLoginPartner(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase, config.NewConfig())
	r := setupAuthRouter(h)

	w := postJSON(r, "/api/auth/foodpartner/login", dto.LoginRequest{
		Email:    "kitchen@example.com",
		Password: "Password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Food partner logged in successfully")
}
