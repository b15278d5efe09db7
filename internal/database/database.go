package database

import (
	"deepresearch-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	DB = db
	return db, nil
}

// Migrate creates or updates the schema for all entities owned by this service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Prompt{},
		&models.PromptTemplate{},
		&models.APIConfig{},
	)
}
