package migration

import (
	"fmt"
	"log"

	"github.com/vini-501/FoodBase/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.MenuItem{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.DeliveryRecord{},
		&entities.Reservation{},
		&entities.DiningTable{},
		&entities.PaymentTransaction{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
