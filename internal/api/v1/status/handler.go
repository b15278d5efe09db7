package status

import (
	"net/http"

	"deepresearch-backend/internal/services"
	"deepresearch-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

var statusService *services.StatusService

// GetStatus godoc
// @Summary External service availability
// @Description Cached availability snapshot, refreshed periodically by the scheduler
// @Tags status
// @Produce json
// @Success 200 {object} utils.Response{data=services.APIStatus}
// @Router /status [get]
func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", statusService.Cached()))
}

// RefreshStatus godoc
// @Summary Recompute service availability
// @Tags status
// @Produce json
// @Success 200 {object} utils.Response{data=services.APIStatus}
// @Router /status/refresh [post]
func RefreshStatus(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Status refreshed", statusService.Refresh()))
}
