package main

import (
	"context"
	"log"
	"os"

	"github.com/vini-501/FoodBase/cmd/config"
	migration "github.com/vini-501/FoodBase/cmd/database/migrate"
	"github.com/vini-501/FoodBase/internal/utils"
	"github.com/vini-501/FoodBase/pkg/menu"
	"github.com/vini-501/FoodBase/pkg/tableservice"

	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// seed fills the menu catalog and floor plan on a fresh database. Reseeding
// an existing catalog goes through the admin endpoint instead.
func seed(db *gorm.DB) error {
	ctx := context.Background()

	menuRepository := menu.NewMenuRepository(db)
	items, err := menuRepository.GetMenuItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		if err := menuRepository.ReplaceAll(ctx, menu.SeedMenuItems()); err != nil {
			return err
		}
	}

	tableRepository := tableservice.NewTableRepository(db)
	return tableservice.NewTableService(tableRepository).SeedTables(ctx)
}
