package sheets

import (
	"net/http"

	"deepresearch-backend/internal/models"
	"deepresearch-backend/internal/services"
	"deepresearch-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	promptService *services.PromptService
	sheetsService *services.SheetsService
)

// ImportPrompts godoc
// @Summary Import prompts from a Google Sheets range
// @Description Read the first column of the given range and create one PENDING prompt per non-blank cell
// @Tags sheets
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Spreadsheet and range"
// @Success 200 {object} utils.Response{data=ImportResponse}
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /sheets/import [post]
func ImportPrompts(c *gin.Context) {
	var req ImportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !sheetsService.Available() {
		c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(http.StatusServiceUnavailable, "google sheets is not configured"))
		return
	}

	lines, err := sheetsService.ReadPrompts(c.Request.Context(), req.SpreadsheetID, req.Range)
	if err != nil {
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, err.Error()))
		return
	}

	created := promptService.CreateBatch(lines, models.PromptSourceSheets,
		req.NotificationEmail, req.NotificationPhone)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompts imported successfully", ImportResponse{
		Created: created,
	}))
}
