package template

import "deepresearch-backend/internal/models"

type SaveTemplateRequest struct {
	Name              string `json:"name" binding:"required"`
	TemplateContent   string `json:"template_content" binding:"required,min=1,max=5000"`
	Description       string `json:"description"`
	PlaceholderFormat string `json:"placeholder_format"`
	CreatedBy         string `json:"created_by"`
	IsPublic          bool   `json:"is_public"`
	Category          string `json:"category"`
}

type ApplyTemplateRequest struct {
	Variables         map[string]string `json:"variables" binding:"required"`
	NotificationEmail string            `json:"notification_email" binding:"omitempty,email"`
	NotificationPhone string            `json:"notification_phone" binding:"omitempty,e164"`
}

type ValidateTemplateRequest struct {
	TemplateContent   string `json:"template_content" binding:"required"`
	PlaceholderFormat string `json:"placeholder_format"`
}

type ValidateTemplateResponse struct {
	Placeholders []string `json:"placeholders"`
}

type PreviewTemplateRequest struct {
	TemplateContent   string            `json:"template_content" binding:"required"`
	PlaceholderFormat string            `json:"placeholder_format"`
	Variables         map[string]string `json:"variables" binding:"required"`
}

type PreviewTemplateResponse struct {
	Preview string `json:"preview"`
}

type TemplateListResponse struct {
	Total int                     `json:"total"`
	Items []models.PromptTemplate `json:"items"`
}
