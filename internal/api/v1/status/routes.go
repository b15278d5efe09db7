package status

import (
	"deepresearch-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.StatusService) {
	statusService = svc

	router.GET("/status", GetStatus)
	router.POST("/status/refresh", RefreshStatus)
}
