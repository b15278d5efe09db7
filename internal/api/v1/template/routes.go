package template

import (
	"deepresearch-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.PromptService) {
	promptService = svc

	group := router.Group("/templates")
	{
		group.POST("", CreateTemplate)
		group.GET("", ListTemplates)
		group.GET("/public", PublicTemplates)
		group.GET("/categories", Categories)
		group.POST("/validate", ValidateTemplate)
		group.POST("/preview", PreviewTemplate)
		group.GET("/:id", GetTemplate)
		group.PUT("/:id", UpdateTemplate)
		group.DELETE("/:id", DeleteTemplate)
		group.POST("/:id/apply", ApplyTemplate)
	}
}
