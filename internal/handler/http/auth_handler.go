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

// AuthHandler serves registration, login and logout for users and partners.
type AuthHandler struct {
	authUsecase  usecasecontract.IAuthUseCase
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase, config usecasecontract.IConfigProvider) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieMaxAge: int(config.GetSessionTokenExpiry().Seconds()),
		cookieSecure: config.GetCookieSecure(),
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, h.cookieMaxAge, "/", "", h.cookieSecure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
}

// RegisterUserHandler creates an end-user account and starts a session.
func (h *AuthHandler) RegisterUserHandler(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.RegisterUser(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			ErrorHandler(c, http.StatusBadRequest, "User already exists")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	h.setSessionCookie(c, token)
	SuccessHandler(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    dto.ToUserResponse(*user),
	})
}

// LoginUserHandler authenticates an end user and starts a session.
func (h *AuthHandler) LoginUserHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.authUsecase.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			ErrorHandler(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	h.setSessionCookie(c, token)
	SuccessHandler(c, http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"user":    dto.ToUserResponse(*user),
	})
}

// LogoutUserHandler clears the session cookie.
func (h *AuthHandler) LogoutUserHandler(c *gin.Context) {
	h.clearSessionCookie(c)
	MessageHandler(c, http.StatusOK, "User logged out successfully")
}

// RegisterPartnerHandler creates a food-partner account and starts a session.
func (h *AuthHandler) RegisterPartnerHandler(c *gin.Context) {
	var req dto.RegisterPartnerRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	partner, token, err := h.authUsecase.RegisterPartner(c.Request.Context(), req.BusinessName, req.ContactName, req.Phone, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrEmailTaken) {
			ErrorHandler(c, http.StatusBadRequest, "Food partner account already exists")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to register food partner")
		return
	}

	h.setSessionCookie(c, token)
	SuccessHandler(c, http.StatusCreated, gin.H{
		"message":     "Food partner registered successfully",
		"foodPartner": dto.ToFoodPartnerResponse(*partner),
	})
}

// LoginPartnerHandler authenticates a food partner and starts a session.
func (h *AuthHandler) LoginPartnerHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	partner, token, err := h.authUsecase.LoginPartner(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			ErrorHandler(c, http.StatusBadRequest, "Invalid email or password")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	h.setSessionCookie(c, token)
	SuccessHandler(c, http.StatusOK, gin.H{
		"message":     "Food partner logged in successfully",
		"foodPartner": dto.ToFoodPartnerResponse(*partner),
	})
}

// LogoutPartnerHandler clears the session cookie.
func (h *AuthHandler) LogoutPartnerHandler(c *gin.Context) {
	h.clearSessionCookie(c)
	MessageHandler(c, http.StatusOK, "Food partner logged out successfully")
}
