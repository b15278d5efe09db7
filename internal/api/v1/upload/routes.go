package upload

import (
	"deepresearch-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.PromptService) {
	promptService = svc

	router.POST("/upload", UploadPrompts)
}
