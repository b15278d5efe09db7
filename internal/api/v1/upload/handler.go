package upload

import (
	"net/http"

	"deepresearch-backend/internal/models"
	"deepresearch-backend/internal/services"
	"deepresearch-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

var promptService *services.PromptService

// UploadPrompts godoc
// @Summary Upload a text file of prompts
// @Description Create one PENDING prompt per non-blank line in the uploaded file
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Text file, one prompt per line"
// @Param notification_email formData string false "Email to notify on completion"
// @Param notification_phone formData string false "Phone to notify on completion"
// @Success 200 {object} utils.Response{data=UploadResponse}
// @Failure 400 {object} utils.Response
// @Router /upload [post]
func UploadPrompts(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "missing file"))
		return
	}

	if !services.IsValidTextFile(fileHeader.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "unsupported file type, expected plain text"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	defer file.Close()

	lines, err := services.ExtractPromptLines(file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	created := promptService.CreateBatch(lines, models.PromptSourceFile,
		c.PostForm("notification_email"), c.PostForm("notification_phone"))

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompts uploaded successfully", UploadResponse{
		Created: created,
	}))
}

type UploadResponse struct {
	Created int `json:"created"`
}
