package persistence

import (
	"fmt"

	"github.com/MGTheTrain/contact-web/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate brings the schema of the CRUD sub-application up to date.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.UserModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
