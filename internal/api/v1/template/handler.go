package template

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

var promptService *services.PromptService

// CreateTemplate godoc
// @Summary Create a prompt template
// @Tags templates
// @Accept json
// @Produce json
// @Param request body SaveTemplateRequest true "Template"
// @Success 200 {object} utils.Response{data=models.PromptTemplate}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /templates [post]
func CreateTemplate(c *gin.Context) {
	var req SaveTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	tpl, err := services.SaveTemplate(&models.PromptTemplate{
		Name:              req.Name,
		TemplateContent:   req.TemplateContent,
		Description:       req.Description,
		PlaceholderFormat: req.PlaceholderFormat,
		CreatedBy:         req.CreatedBy,
		IsPublic:          req.IsPublic,
		Category:          req.Category,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template created successfully", tpl))
}

// UpdateTemplate godoc
// @Summary Update a prompt template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body SaveTemplateRequest true "Template"
// @Success 200 {object} utils.Response{data=models.PromptTemplate}
// @Failure 404 {object} utils.Response
// @Router /templates/{id} [put]
func UpdateTemplate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req SaveTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	tpl, err := services.GetTemplate(id)
	if err != nil {
		notFoundOrInternal(c, err, "template not found")
		return
	}

	tpl.Name = req.Name
	tpl.TemplateContent = req.TemplateContent
	tpl.Description = req.Description
	tpl.PlaceholderFormat = req.PlaceholderFormat
	tpl.IsPublic = req.IsPublic
	tpl.Category = req.Category

	saved, err := services.SaveTemplate(tpl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template updated successfully", saved))
}

// GetTemplate godoc
// @Summary Get a template
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.Response{data=models.PromptTemplate}
// @Failure 404 {object} utils.Response
// @Router /templates/{id} [get]
func GetTemplate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	tpl, err := services.GetTemplate(id)
	if err != nil {
		notFoundOrInternal(c, err, "template not found")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", tpl))
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} utils.Response
// @Router /templates/{id} [delete]
func DeleteTemplate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := services.DeleteTemplate(id); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template deleted successfully", nil))
}

// ListTemplates godoc
// @Summary List templates
// @Description List templates, optionally filtered by name substring and category
// @Tags templates
// @Produce json
// @Param name query string false "Name filter"
// @Param category query string false "Category filter"
// @Success 200 {object} utils.Response{data=TemplateListResponse}
// @Router /templates [get]
func ListTemplates(c *gin.Context) {
	templates, err := services.SearchTemplates(c.Query("name"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", TemplateListResponse{
		Total: len(templates),
		Items: templates,
	}))
}

// PublicTemplates godoc
// @Summary List public templates
// @Tags templates
// @Produce json
// @Success 200 {object} utils.Response{data=TemplateListResponse}
// @Router /templates/public [get]
func PublicTemplates(c *gin.Context) {
	templates, err := services.GetPublicTemplates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", TemplateListResponse{
		Total: len(templates),
		Items: templates,
	}))
}

// Categories godoc
// @Summary List template categories
// @Tags templates
// @Produce json
// @Success 200 {object} utils.Response{data=[]string}
// @Router /templates/categories [get]
func Categories(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", categories))
}

// ApplyTemplate godoc
// @Summary Apply a template
// @Description Fill a template with variables and create a PENDING prompt from it
// @Tags templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body ApplyTemplateRequest true "Variables and notification targets"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 404 {object} utils.Response
// @Router /templates/{id}/apply [post]
func ApplyTemplate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req ApplyTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	p, err := promptService.ApplyTemplate(id, req.Variables, req.NotificationEmail, req.NotificationPhone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "template not found"))
			return
		}
		if errors.Is(err, services.ErrInvalidContent) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template applied successfully", p))
}

// ValidateTemplate godoc
// @Summary Validate template content
// @Description Return the placeholders extractable from the given content and format
// @Tags templates
// @Accept json
// @Produce json
// @Param request body ValidateTemplateRequest true "Template content"
// @Success 200 {object} utils.Response{data=ValidateTemplateResponse}
// @Router /templates/validate [post]
func ValidateTemplate(c *gin.Context) {
	var req ValidateTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", ValidateTemplateResponse{
		Placeholders: models.ExtractPlaceholders(req.TemplateContent, req.PlaceholderFormat),
	}))
}

// PreviewTemplate godoc
// @Summary Preview a template application
// @Tags templates
// @Accept json
// @Produce json
// @Param request body PreviewTemplateRequest true "Template content and variables"
// @Success 200 {object} utils.Response{data=PreviewTemplateResponse}
// @Router /templates/preview [post]
func PreviewTemplate(c *gin.Context) {
	var req PreviewTemplateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", PreviewTemplateResponse{
		Preview: models.ApplyTemplate(req.TemplateContent, req.PlaceholderFormat, req.Variables),
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

func notFoundOrInternal(c *gin.Context, err error, msg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, msg))
		return
	}
	c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
}
