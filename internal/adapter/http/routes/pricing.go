package routes

import (
	"joalheria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathEstimates = "/estimates"
	PathSettings  = "/settings"
	PathImages    = "/images"
)

func addPricingRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, settingsHandler *handlers.SettingsHandler, imageHandler *handlers.ImageHandler) {
	rg.POST(PathQuotes, estimateHandler.Quote)

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
		settings.POST("/sync", settingsHandler.SyncSettings)
	}

	// The upload endpoint only exists when an image bucket is configured.
	if imageHandler != nil {
		rg.POST(PathImages, imageHandler.UploadImage)
	}
}
