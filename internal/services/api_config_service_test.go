package services

import (
	"testing"

	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSaveConfigActivationDeactivatesSiblings(t *testing.T) {
	setupTestDB(t)
	setupTestRedis(t)

	first, err := SaveConfig(&models.APIConfig{
		ConfigType: models.ConfigTypeGemini,
		APIKey:     "key-1",
		IsActive:   true,
	})
	assert.NoError(t, err)

	second, err := SaveConfig(&models.APIConfig{
		ConfigType: models.ConfigTypeGemini,
		APIKey:     "key-2",
		IsActive:   true,
	})
	assert.NoError(t, err)

	var stored models.APIConfig
	database.DB.First(&stored, first.ID)
	assert.False(t, stored.IsActive)

	active, err := GetActiveConfig(models.ConfigTypeGemini)
	assert.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestSaveConfigPreservesSecretsOnBlankUpdate(t *testing.T) {
	setupTestDB(t)
	setupTestRedis(t)

	created, err := SaveConfig(&models.APIConfig{
		ConfigType:   models.ConfigTypeSMS,
		APIToken:     "secret-token",
		ProjectID:    "project-1",
		SpaceURL:     "example.signalwire.com",
		FromNumber:   "+15550001111",
		ClientSecret: "cs",
		IsActive:     true,
	})
	assert.NoError(t, err)

	// An update round-tripped through the redacted projection carries blank
	// secrets; the stored values must survive.
	updated, err := SaveConfig(&models.APIConfig{
		ID:         created.ID,
		ConfigType: models.ConfigTypeSMS,
		ProjectID:  "project-2",
		SpaceURL:   "example.signalwire.com",
		FromNumber: "+15550001111",
		IsActive:   true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "secret-token", updated.APIToken)
	assert.Equal(t, "cs", updated.ClientSecret)
	assert.Equal(t, "project-2", updated.ProjectID)
}

func TestSaveConfigRequiresType(t *testing.T) {
	setupTestDB(t)
	setupTestRedis(t)

	_, err := SaveConfig(&models.APIConfig{APIKey: "k"})
	assert.Error(t, err)
}

func TestDeleteConfig(t *testing.T) {
	setupTestDB(t)
	setupTestRedis(t)

	created, _ := SaveConfig(&models.APIConfig{ConfigType: models.ConfigTypeEmail, Username: "u"})
	assert.NoError(t, DeleteConfig(created.ID))
	assert.ErrorIs(t, DeleteConfig(created.ID), gorm.ErrRecordNotFound)
}

func TestRedactedHidesSecrets(t *testing.T) {
	cfg := models.APIConfig{
		ConfigType:   models.ConfigTypeGemini,
		APIKey:       "real-key",
		APIToken:     "real-token",
		Password:     "real-password",
		ClientSecret: "real-secret",
		RefreshToken: "real-refresh",
		Username:     "visible",
	}

	redacted := cfg.Redacted()
	assert.Equal(t, "********", redacted.APIKey)
	assert.Equal(t, "********", redacted.APIToken)
	assert.Equal(t, "********", redacted.Password)
	assert.Equal(t, "********", redacted.ClientSecret)
	assert.Equal(t, "********", redacted.RefreshToken)
	assert.Equal(t, "visible", redacted.Username)

	// The projection leaves the source untouched
	assert.Equal(t, "real-key", cfg.APIKey)
}

func TestStatusSnapshotAndCache(t *testing.T) {
	setupTestDB(t)
	mr := setupTestRedis(t)

	svc := &StatusService{
		Gemini:     NewGeminiService(),
		Email:      NewEmailService("smtp.example.com", 587),
		SignalWire: NewSignalWireService(),
		Sheets:     NewSheetsService(),
	}

	// Nothing configured yet
	status := svc.Snapshot()
	assert.False(t, status.GeminiAvailable)
	assert.False(t, status.EmailAvailable)
	assert.False(t, status.SMSAvailable)
	assert.False(t, status.WhatsAppAvailable)
	assert.False(t, status.SheetsAvailable)

	SaveConfig(&models.APIConfig{ConfigType: models.ConfigTypeGemini, APIKey: "k", IsActive: true})
	SaveConfig(&models.APIConfig{
		ConfigType: models.ConfigTypeSMS,
		APIToken:   "t", ProjectID: "p", SpaceURL: "example.signalwire.com", FromNumber: "+15550001111",
		IsActive: true,
	})

	status = svc.Refresh()
	assert.True(t, status.GeminiAvailable)
	assert.True(t, status.SMSAvailable)
	assert.True(t, status.WhatsAppAvailable)
	assert.True(t, mr.Exists(APIStatusCacheKey))

	// Cached reads do not recompute
	database.DB.Where("1 = 1").Delete(&models.APIConfig{})
	cached := svc.Cached()
	assert.True(t, cached.GeminiAvailable)

	// Saving a config invalidates the snapshot; the next read recomputes
	SaveConfig(&models.APIConfig{ConfigType: models.ConfigTypeEmail, Username: "u", IsActive: true})
	assert.False(t, mr.Exists(APIStatusCacheKey))
	fresh := svc.Cached()
	assert.False(t, fresh.GeminiAvailable)
	assert.True(t, fresh.EmailAvailable)
}
