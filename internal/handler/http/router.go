package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/handler/http/middleware"
	"github.com/bereketsol/Reelbite/internal/usecase"
	usecasecontract "github.com/bereketsol/Reelbite/internal/usecase/contract"
)

type Router struct {
	authHandler        *AuthHandler
	foodHandler        *FoodHandler
	partnerHandler     *FoodPartnerHandler
	interactionHandler *InteractionHandler
	jwtService         usecase.JWTService
}

func NewRouter(authUsecase usecasecontract.IAuthUseCase, foodUsecase usecasecontract.IFoodUseCase, interactionUsecase usecasecontract.IInteractionUseCase, jwtService usecase.JWTService, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		authHandler:        NewAuthHandler(authUsecase, config),
		foodHandler:        NewFoodHandler(foodUsecase),
		partnerHandler:     NewFoodPartnerHandler(foodUsecase),
		interactionHandler: NewInteractionHandler(interactionUsecase),
		jwtService:         jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/user/register", r.authHandler.RegisterUserHandler)
		auth.POST("/user/login", r.authHandler.LoginUserHandler)
		auth.GET("/user/logout", r.authHandler.LogoutUserHandler)

		auth.POST("/foodpartner/register", r.authHandler.RegisterPartnerHandler)
		auth.POST("/foodpartner/login", r.authHandler.LoginPartnerHandler)
		auth.GET("/foodpartner/logout", r.authHandler.LogoutPartnerHandler)
	}

	authRequired := middleware.AuthMiddleWare(r.jwtService)
	userOnly := middleware.RequireRole(entity.RoleUser)
	partnerOnly := middleware.RequireRole(entity.RolePartner)

	// Food routes
	food := api.Group("/food")
	food.Use(authRequired)
	{
		food.POST("", partnerOnly, r.foodHandler.CreateFoodHandler)
		food.GET("", userOnly, r.foodHandler.GetFoodItemsHandler)

		food.POST("/like", userOnly, r.interactionHandler.ToggleLikeHandler)
		food.POST("/save", userOnly, r.interactionHandler.ToggleSaveHandler)
		food.GET("/save", userOnly, r.interactionHandler.ListSavedHandler)
	}

	// Food partner profile routes
	partner := api.Group("/food-partner")
	partner.Use(authRequired)
	{
		partner.GET("/:id", r.partnerHandler.GetFoodPartnerHandler)
	}
}
