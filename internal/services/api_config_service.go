package services

import (
	"encoding/json"
	"errors"
	"time"

	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/models"
	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	APIStatusCacheKey      = "api_status:snapshot"
	APIStatusCacheDuration = 30 * time.Minute
)

// GetActiveConfig returns the active configuration row for a service type.
func GetActiveConfig(configType models.ConfigType) (*models.APIConfig, error) {
	var cfg models.APIConfig
	err := database.DB.Where("config_type = ? AND is_active = ?", configType, true).
		First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ListConfigs returns all configuration rows.
func ListConfigs() ([]models.APIConfig, error) {
	var configs []models.APIConfig
	if err := database.DB.Order("config_type, created_at desc").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// GetConfig returns a configuration row by ID.
func GetConfig(id uint) (*models.APIConfig, error) {
	var cfg models.APIConfig
	if err := database.DB.First(&cfg, id).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig creates or updates a configuration row. Blank secret fields on
// an update keep the stored values, so the redacted projection can be sent
// back unchanged. Activating a row deactivates the other rows of its type.
func SaveConfig(cfg *models.APIConfig) (*models.APIConfig, error) {
	if cfg.ConfigType == "" {
		return nil, errors.New("config_type is required")
	}

	if cfg.ID != 0 {
		var existing models.APIConfig
		if err := database.DB.First(&existing, cfg.ID).Error; err != nil {
			return nil, err
		}
		if cfg.APIKey == "" {
			cfg.APIKey = existing.APIKey
		}
		if cfg.APIToken == "" {
			cfg.APIToken = existing.APIToken
		}
		if cfg.Password == "" {
			cfg.Password = existing.Password
		}
		if cfg.ClientSecret == "" {
			cfg.ClientSecret = existing.ClientSecret
		}
		if cfg.RefreshToken == "" {
			cfg.RefreshToken = existing.RefreshToken
		}
	}

	if cfg.IsActive {
		err := database.DB.Model(&models.APIConfig{}).
			Where("config_type = ? AND id <> ?", cfg.ConfigType, cfg.ID).
			Update("is_active", false).Error
		if err != nil {
			return nil, err
		}
	}

	if err := database.DB.Save(cfg).Error; err != nil {
		return nil, err
	}

	// Stored configuration changed, the cached snapshot is stale
	database.RedisClient.Del(database.Ctx, APIStatusCacheKey)

	return cfg, nil
}

// DeleteConfig removes a configuration row.
func DeleteConfig(id uint) error {
	result := database.DB.Delete(&models.APIConfig{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	database.RedisClient.Del(database.Ctx, APIStatusCacheKey)
	return nil
}

// APIStatus is the availability snapshot of every external collaborator.
type APIStatus struct {
	GeminiAvailable   bool      `json:"gemini_available"`
	EmailAvailable    bool      `json:"email_available"`
	SMSAvailable      bool      `json:"sms_available"`
	WhatsAppAvailable bool      `json:"whatsapp_available"`
	SheetsAvailable   bool      `json:"sheets_available"`
	CheckedAt         time.Time `json:"checked_at"`
}

// StatusService aggregates collaborator availability and maintains the cached
// snapshot that the scheduler refreshes every 15 minutes.
type StatusService struct {
	Gemini     *GeminiService
	Email      *EmailService
	SignalWire *SignalWireService
	Sheets     *SheetsService
}

// Snapshot computes live availability for every collaborator. WhatsApp
// availability equals SMS availability: the channels share one transport.
func (s *StatusService) Snapshot() APIStatus {
	smsAvailable := s.SignalWire.Available()
	return APIStatus{
		GeminiAvailable:   s.Gemini.Available(),
		EmailAvailable:    s.Email.Available(),
		SMSAvailable:      smsAvailable,
		WhatsAppAvailable: smsAvailable,
		SheetsAvailable:   s.Sheets.Available(),
		CheckedAt:         time.Now(),
	}
}

// Refresh recomputes the snapshot and stores it in Redis.
func (s *StatusService) Refresh() APIStatus {
	status := s.Snapshot()

	data, err := json.Marshal(status)
	if err == nil {
		err = database.RedisClient.Set(database.Ctx, APIStatusCacheKey, data, APIStatusCacheDuration).Err()
	}
	if err != nil {
		logger.Log.Warn("failed to cache api status snapshot", zap.Error(err))
	}

	return status
}

// Cached returns the cached snapshot, refreshing it on a miss.
func (s *StatusService) Cached() APIStatus {
	val, err := database.RedisClient.Get(database.Ctx, APIStatusCacheKey).Result()
	if err == nil {
		var status APIStatus
		if err := json.Unmarshal([]byte(val), &status); err == nil {
			return status
		}
	}
	return s.Refresh()
}
