package prompt

import (
	"deepresearch-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.PromptService) {
	promptService = svc

	group := router.Group("/prompts")
	{
		group.POST("", CreatePrompt)
		group.GET("", ListPrompts)
		group.GET("/:id", GetPrompt)
		group.POST("/:id/process", ProcessPrompt)
		group.POST("/process-pending", ProcessPending)
	}
}
