package prompt

import (
	"errors"
	"net/http"
	"strconv"

	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/models"
	"deepresearch-backend/internal/services"
	"deepresearch-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var promptService *services.PromptService

// CreatePrompt godoc
// @Summary Submit a research prompt
// @Description Create a new research prompt in PENDING status
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Create Prompt Request"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts [post]
func CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	source := models.PromptSource(req.Source)
	if source == "" {
		source = models.PromptSourceWeb
	}

	p, err := promptService.Create(req.Content, source, req.CreatedBy, req.NotificationEmail, req.NotificationPhone)
	if err != nil {
		if errors.Is(err, services.ErrInvalidContent) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt created successfully", p))
}

// ListPrompts godoc
// @Summary List prompts
// @Description List all prompts, optionally filtered by status
// @Tags prompts
// @Produce json
// @Param status query string false "Filter by status (PENDING, COMPLETED, ERROR)"
// @Success 200 {object} utils.Response{data=PromptListResponse}
// @Failure 500 {object} utils.Response
// @Router /prompts [get]
func ListPrompts(c *gin.Context) {
	db := database.DB.Model(&models.Prompt{})
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var prompts []models.Prompt
	if err := db.Order("created_at desc").Find(&prompts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", PromptListResponse{
		Total: len(prompts),
		Items: prompts,
	}))
}

// GetPrompt godoc
// @Summary Get a prompt
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [get]
func GetPrompt(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var p models.Prompt
	if err := database.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", p))
}

// ProcessPrompt godoc
// @Summary Process one prompt
// @Description Run a PENDING prompt through the generator; terminal prompts are returned unchanged
// @Tags prompts
// @Produce json
// @Param id path int true "Prompt ID"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts/{id}/process [post]
func ProcessPrompt(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	p, err := promptService.ProcessOne(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt processed", p))
}

// ProcessPending godoc
// @Summary Process all pending prompts
// @Tags prompts
// @Produce json
// @Success 200 {object} utils.Response{data=ProcessPendingResponse}
// @Router /prompts/process-pending [post]
func ProcessPending(c *gin.Context) {
	processed := promptService.ProcessAllPending(c.Request.Context())
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Pending prompts processed", ProcessPendingResponse{
		Processed: processed,
	}))
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "invalid id"))
		return 0, err
	}
	return uint(id), nil
}
