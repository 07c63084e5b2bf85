package database

import (
	"scholar_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every table inside one transaction: the
// schema either fully exists afterwards or is untouched. Callers log a
// failure and keep the process alive.
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&models.User{},
			&models.Project{},
			&models.Colleague{},
			&models.Meeting{},
			&models.Idea{},
			&models.Note{},
			&models.CareerGoal{},
			&models.StageHistory{},
			&models.FutureWork{},
			&models.Deadline{},
			&models.CalendarEvent{},
			&models.Profile{},
		)
	})
}
