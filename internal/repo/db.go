package repo

import (
	"Lookbook/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the database and runs migrations for all server models.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.WardrobeItem{},
		&model.InspirationPost{},
		&model.PlannedOutfit{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
