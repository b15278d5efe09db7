package sheets

import (
	"deepresearch-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, prompts *services.PromptService, sheets *services.SheetsService) {
	promptService = prompts
	sheetsService = sheets

	router.POST("/sheets/import", ImportPrompts)
}
