package services

import (
	"encoding/json"
	"time"

	"deepresearch-backend/internal/database"
	"deepresearch-backend/internal/models"
)

const (
	PublicTemplatesCacheKey = "templates:public"
	TemplatesCacheDuration  = 1 * time.Hour
)

// SaveTemplate creates or updates a prompt template.
func SaveTemplate(template *models.PromptTemplate) (*models.PromptTemplate, error) {
	if err := database.DB.Save(template).Error; err != nil {
		return nil, err
	}

	// Any write may affect the public listing
	database.RedisClient.Del(database.Ctx, PublicTemplatesCacheKey)

	return template, nil
}

// GetTemplate retrieves a template by ID.
func GetTemplate(id uint) (*models.PromptTemplate, error) {
	var template models.PromptTemplate
	if err := database.DB.First(&template, id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// DeleteTemplate deletes a template by ID.
func DeleteTemplate(id uint) error {
	if err := database.DB.Delete(&models.PromptTemplate{}, id).Error; err != nil {
		return err
	}
	database.RedisClient.Del(database.Ctx, PublicTemplatesCacheKey)
	return nil
}

// ListTemplates retrieves all templates, newest first.
func ListTemplates() ([]models.PromptTemplate, error) {
	var templates []models.PromptTemplate
	if err := database.DB.Order("created_at desc").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// SearchTemplates filters templates by name substring and/or category.
func SearchTemplates(name, category string) ([]models.PromptTemplate, error) {
	db := database.DB.Model(&models.PromptTemplate{})

	if name != "" {
		db = db.Where("name LIKE ?", "%"+name+"%")
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var templates []models.PromptTemplate
	if err := db.Order("created_at desc").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplatesByCreator retrieves templates created by the given creator.
func GetTemplatesByCreator(createdBy string) ([]models.PromptTemplate, error) {
	var templates []models.PromptTemplate
	err := database.DB.Where("created_by = ?", createdBy).
		Order("created_at desc").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// GetPublicTemplates retrieves public templates, cached in Redis.
func GetPublicTemplates() ([]models.PromptTemplate, error) {
	val, err := database.RedisClient.Get(database.Ctx, PublicTemplatesCacheKey).Result()
	if err == nil {
		var cached []models.PromptTemplate
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	}

	var templates []models.PromptTemplate
	err = database.DB.Where("is_public = ?", true).
		Order("created_at desc").Find(&templates).Error
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(templates); err == nil {
		database.RedisClient.Set(database.Ctx, PublicTemplatesCacheKey, data, TemplatesCacheDuration)
	}

	return templates, nil
}

// ListCategories returns the distinct non-blank template categories.
func ListCategories() ([]string, error) {
	var categories []string
	err := database.DB.Model(&models.PromptTemplate{}).
		Where("category <> ''").Distinct().Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
