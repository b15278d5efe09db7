package api

import (
	_ "deepresearch-backend/docs"
	"deepresearch-backend/internal/api/v1/admin/apiconfig"
	"deepresearch-backend/internal/api/v1/prompt"
	"deepresearch-backend/internal/api/v1/sheets"
	"deepresearch-backend/internal/api/v1/status"
	"deepresearch-backend/internal/api/v1/template"
	"deepresearch-backend/internal/api/v1/upload"
	"deepresearch-backend/internal/middleware"
	"deepresearch-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the constructed services the HTTP layer exposes.
type Deps struct {
	Prompts *services.PromptService
	Sheets  *services.SheetsService
	Status  *services.StatusService
}

func NewRouter(deps *Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		prompt.RegisterRoutes(v1, deps.Prompts)
		template.RegisterRoutes(v1, deps.Prompts)
		upload.RegisterRoutes(v1, deps.Prompts)
		sheets.RegisterRoutes(v1, deps.Prompts, deps.Sheets)
		status.RegisterRoutes(v1, deps.Status)

		admin := v1.Group("/admin")
		{
			apiconfig.RegisterRoutes(admin)
		}
	}

	return router
}
