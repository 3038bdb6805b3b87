package migration

import (
	"fmt"

	"recipe-dashboard/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// recipes.id defaults to uuid_generate_v4()
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("error migrating recipe table: %w", err)
	}
	return nil
}
