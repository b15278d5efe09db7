package prompt

import "deepresearch-backend/internal/models"

type CreatePromptRequest struct {
	Content           string `json:"content" binding:"required,min=3,max=2000"`
	Source            string `json:"source"`
	CreatedBy         string `json:"created_by"`
	NotificationEmail string `json:"notification_email" binding:"omitempty,email"`
	NotificationPhone string `json:"notification_phone" binding:"omitempty,e164"`
}

type PromptListResponse struct {
	Total int             `json:"total"`
	Items []models.Prompt `json:"items"`
}

type ProcessPendingResponse struct {
	Processed int `json:"processed"`
}
