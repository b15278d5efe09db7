package apiconfig

import "deepresearch-backend/internal/models"

type SaveConfigRequest struct {
	ConfigType models.ConfigType `json:"config_type" binding:"required,oneof=GEMINI EMAIL SMS GOOGLE_SHEETS"`

	APIKey   string `json:"api_key"`
	APIToken string `json:"api_token"`
	Username string `json:"username"`
	Password string `json:"password"`

	ProjectID  string `json:"project_id"`
	SpaceURL   string `json:"space_url"`
	FromNumber string `json:"from_number"`

	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RefreshToken string `json:"refresh_token"`

	IsActive bool `json:"is_active"`
}

func (r *SaveConfigRequest) toModel(id uint) *models.APIConfig {
	return &models.APIConfig{
		ID:           id,
		ConfigType:   r.ConfigType,
		APIKey:       r.APIKey,
		APIToken:     r.APIToken,
		Username:     r.Username,
		Password:     r.Password,
		ProjectID:    r.ProjectID,
		SpaceURL:     r.SpaceURL,
		FromNumber:   r.FromNumber,
		ClientID:     r.ClientID,
		ClientSecret: r.ClientSecret,
		RefreshToken: r.RefreshToken,
		IsActive:     r.IsActive,
	}
}
