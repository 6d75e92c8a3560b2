package database

import (
	"reporter-backend/internal/config"
	"reporter-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the database connection and migrates the schema. The
// unique indexes on User.Username and Patient.Dossier are created here;
// they are what makes duplicate registration a storage-level conflict.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Patient{}, &models.Report{}); err != nil {
		return nil, err
	}
	return db, nil
}
