package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/bereketsol/Reelbite/internal/handler/http"
	"github.com/bereketsol/Reelbite/internal/infrastructure/blobstore"
	redisclient "github.com/bereketsol/Reelbite/internal/infrastructure/cache"
	"github.com/bereketsol/Reelbite/internal/infrastructure/config"
	"github.com/bereketsol/Reelbite/internal/infrastructure/database"
	"github.com/bereketsol/Reelbite/internal/infrastructure/jwt"
	"github.com/bereketsol/Reelbite/internal/infrastructure/logger"
	passwordservice "github.com/bereketsol/Reelbite/internal/infrastructure/password_service"
	"github.com/bereketsol/Reelbite/internal/infrastructure/repository/mongodb"
	"github.com/bereketsol/Reelbite/internal/infrastructure/store"
	"github.com/bereketsol/Reelbite/internal/infrastructure/uuidgen"
	"github.com/bereketsol/Reelbite/internal/infrastructure/validator"
	"github.com/bereketsol/Reelbite/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Client.Database(dbName)

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	partnerRepo := mongodb.NewFoodPartnerRepository(db)
	foodRepo := mongodb.NewFoodRepository(db)
	interactionRepo := mongodb.NewInteractionRepository(db)
	if err := interactionRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create interaction indexes: %v", err)
	}

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetSessionTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	hasher := passwordservice.NewHasher()
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Blob store for food videos
	s3Client, err := blobstore.NewS3Client(context.Background(), os.Getenv("AWS_REGION"))
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}
	blobStore := blobstore.NewS3BlobStore(s3Client, os.Getenv("S3_BUCKET_NAME"), os.Getenv("S3_PUBLIC_BASE_URL"))

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, partnerRepo, hasher, jwtService, uuidGenerator, appValidator, appLogger)
	foodUsecase := usecase.NewFoodUsecase(foodRepo, partnerRepo, blobStore, uuidGenerator, appLogger)
	interactionUsecase := usecase.NewInteractionUsecase(interactionRepo, foodRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis feed cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		feedCache := store.NewFeedCacheStore(rdb)
		foodUsecase.SetFeedCache(feedCache)
		interactionUsecase.SetFeedCache(feedCache)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(authUsecase, foodUsecase, interactionUsecase, jwtService, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
