package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/maximebaudoin/expired-products/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.StorageEntry{}); err != nil {
		log.Fatalf("Error migrating storage entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Device{}); err != nil {
		log.Fatalf("Error migrating device database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
