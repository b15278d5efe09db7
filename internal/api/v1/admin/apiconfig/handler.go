package apiconfig

import (
	"errors"
	"net/http"
	"strconv"

	"deepresearch-backend/internal/models"
	"deepresearch-backend/internal/services"
	"deepresearch-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListConfigs godoc
// @Summary List API configurations
// @Description All configurations with secrets redacted
// @Tags admin
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.APIConfig}
// @Router /admin/configs [get]
func ListConfigs(c *gin.Context) {
	configs, err := services.ListConfigs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	redacted := make([]models.APIConfig, len(configs))
	for i, cfg := range configs {
		redacted[i] = cfg.Redacted()
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", redacted))
}

// GetConfig godoc
// @Summary Get one API configuration
// @Tags admin
// @Produce json
// @Param id path int true "Config ID"
// @Success 200 {object} utils.Response{data=models.APIConfig}
// @Failure 404 {object} utils.Response
// @Router /admin/configs/{id} [get]
func GetConfig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	cfg, err := services.GetConfig(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "config not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", cfg.Redacted()))
}

// CreateConfig godoc
// @Summary Create an API configuration
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SaveConfigRequest true "Configuration"
// @Success 200 {object} utils.Response{data=models.APIConfig}
// @Failure 400 {object} utils.Response
// @Router /admin/configs [post]
func CreateConfig(c *gin.Context) {
	var req SaveConfigRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	saved, err := services.SaveConfig(req.toModel(0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Config saved successfully", saved.Redacted()))
}

// UpdateConfig godoc
// @Summary Update an API configuration
// @Description Blank secret fields keep their stored values
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Config ID"
// @Param request body SaveConfigRequest true "Configuration"
// @Success 200 {object} utils.Response{data=models.APIConfig}
// @Failure 404 {object} utils.Response
// @Router /admin/configs/{id} [put]
func UpdateConfig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req SaveConfigRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	saved, err := services.SaveConfig(req.toModel(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "config not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Config saved successfully", saved.Redacted()))
}

// DeleteConfig godoc
// @Summary Delete an API configuration
// @Tags admin
// @Produce json
// @Param id path int true "Config ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/configs/{id} [delete]
func DeleteConfig(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := services.DeleteConfig(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "config not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Config deleted successfully", nil))
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "invalid id"))
		return 0, err
	}
	return uint(id), nil
}
