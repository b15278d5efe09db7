package models

import "time"

type ConfigType string

const (
	ConfigTypeGemini       ConfigType = "GEMINI"
	ConfigTypeEmail        ConfigType = "EMAIL"
	ConfigTypeSMS          ConfigType = "SMS"
	ConfigTypeGoogleSheets ConfigType = "GOOGLE_SHEETS"
)

// APIConfig holds credentials for one external service, stored in the
// database so operators can change them without a restart. Exactly one row
// per type may be active at a time.
type APIConfig struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	ConfigType ConfigType `gorm:"index;not null" json:"config_type"`

	APIKey   string `json:"api_key,omitempty"`
	APIToken string `json:"api_token,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// SMS / SignalWire
	ProjectID  string `json:"project_id,omitempty"`
	SpaceURL   string `json:"space_url,omitempty"`
	FromNumber string `json:"from_number,omitempty"`

	// Google
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`

	IsActive  bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const secretMask = "********"

// Redacted returns a copy safe to expose over HTTP: secret material is
// masked when present and never echoed back. A pure projection, not a
// parallel DTO type.
func (c APIConfig) Redacted() APIConfig {
	out := c
	if out.APIKey != "" {
		out.APIKey = secretMask
	}
	if out.APIToken != "" {
		out.APIToken = secretMask
	}
	if out.Password != "" {
		out.Password = secretMask
	}
	if out.ClientSecret != "" {
		out.ClientSecret = secretMask
	}
	if out.RefreshToken != "" {
		out.RefreshToken = secretMask
	}
	return out
}
