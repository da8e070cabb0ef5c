package migration

import (
	"fmt"
	"log"

	"github.com/AdityaSinghh7/Endeavor-Take-Home/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Document{}); err != nil {
		log.Fatalf("Error migrating document database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.LineItem{}); err != nil {
		log.Fatalf("Error migrating line item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PurchaseOrder{}); err != nil {
		log.Fatalf("Error migrating purchase order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Matching{}); err != nil {
		log.Fatalf("Error migrating matching database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
