package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/niyatanya/habit-tracker/internal/infrastructure/persistence/models"
)

// Migrate creates or updates the users, habits and habit_records tables
// together with their unique indexes
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.HabitModel{},
		&models.HabitRecordModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
