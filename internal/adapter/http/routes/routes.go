package routes

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "joalheria_xpto/docs" // This will be auto-generated
	"joalheria_xpto/internal/adapter/http/handlers"
	repository2 "joalheria_xpto/internal/adapter/persistence/repository"
	"joalheria_xpto/internal/infrastructure/database"
	"joalheria_xpto/internal/infrastructure/sheets"
	"joalheria_xpto/internal/infrastructure/storage"
	"joalheria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		logger.Fatal("aws config", zap.Error(err))
	}
	ddb := database.NewDynamoDBClient(awsCfg)

	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb, logger)

	sheetSource := sheets.NewCSVSource(os.Getenv("SHEET_BASE_URL"), nil, logger)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, settingsRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, sheetSource, logger)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	var imageHandler *handlers.ImageHandler
	imageStorage, err := storage.NewS3ImageStorage(awsCfg, logger)
	if err != nil {
		logger.Warn("image storage not configured, upload endpoint disabled", zap.Error(err))
	} else {
		imageHandler = handlers.NewImageHandler(imageStorage)
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, estimateHandler, settingsHandler, imageHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
